package loader

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/langtag"
	"github.com/dmitrymomot/localekit/pkg/message"
)

// Catalog is an immutable per-language store mapping message identifiers to
// formattable patterns. Built exactly once per language at loader-build time;
// safe for concurrent use afterwards.
type Catalog struct {
	language langtag.Tag
	messages map[string]message.Message
}

// Language returns the language the catalog was built for.
func (c *Catalog) Language() langtag.Tag {
	return c.language
}

// Message returns the message with the given identifier, if present.
func (c *Catalog) Message(id string) (message.Message, bool) {
	msg, ok := c.messages[id]
	return msg, ok
}

// Pattern resolves textID to a formattable pattern. A textID of the form
// "msg.attr" (split at the first ".") addresses the named attribute of msg;
// otherwise the message's primary value pattern. Absence of the message, of
// the attribute, or of a value pattern is a miss, reported as ok == false.
func (c *Catalog) Pattern(textID string) (message.Pattern, bool) {
	if msgID, attrID, found := splitTextID(textID); found {
		msg, ok := c.messages[msgID]
		if !ok {
			return nil, false
		}
		return msg.Attribute(attrID)
	}

	msg, ok := c.messages[textID]
	if !ok || msg.Value == nil {
		return nil, false
	}
	return msg.Value, true
}

// Len returns the number of messages in the catalog.
func (c *Catalog) Len() int {
	return len(c.messages)
}

// CatalogBuilder accumulates messages for a catalog before it is frozen.
// A customizer receives the builder exactly once, after all resources have
// been merged, and may adjust or remove individual messages.
type CatalogBuilder struct {
	language langtag.Tag
	messages map[string]message.Message
}

// AddResource merges every message of the resource into the builder. A
// message identifier that is already present is a conflict and fails the
// build; resources are never silently overridden.
func (b *CatalogBuilder) AddResource(res message.Resource) error {
	for _, msg := range res.Messages() {
		if _, exists := b.messages[msg.ID]; exists {
			return fmt.Errorf("%w: %q for language %s", ErrDuplicateMessage, msg.ID, b.language)
		}
		b.messages[msg.ID] = msg
	}
	return nil
}

// SetMessage inserts or replaces a message, bypassing conflict detection.
// Intended for customizers.
func (b *CatalogBuilder) SetMessage(msg message.Message) {
	b.messages[msg.ID] = msg
}

// RemoveMessage deletes the message with the given identifier.
func (b *CatalogBuilder) RemoveMessage(id string) {
	delete(b.messages, id)
}

// Message returns the message with the given identifier, if present.
func (b *CatalogBuilder) Message(id string) (message.Message, bool) {
	msg, ok := b.messages[id]
	return msg, ok
}

// Language returns the language the catalog is being built for.
func (b *CatalogBuilder) Language() langtag.Tag {
	return b.language
}

// Customizer adjusts an in-progress catalog. It runs after all shared and
// per-language resources are merged and before the catalog is frozen.
type Customizer func(*CatalogBuilder)

// BuildCatalog constructs the catalog for lang: shared resources are merged
// first, then the language's own resources, then customize (if non-nil) runs
// once on the mutable builder. A merge conflict aborts the build.
func BuildCatalog(lang langtag.Tag, resources, shared []message.Resource, customize Customizer) (*Catalog, error) {
	builder := &CatalogBuilder{
		language: lang,
		messages: make(map[string]message.Message),
	}

	for _, res := range shared {
		if err := builder.AddResource(res); err != nil {
			return nil, fmt.Errorf("merging shared resource: %w", err)
		}
	}
	for _, res := range resources {
		if err := builder.AddResource(res); err != nil {
			return nil, err
		}
	}

	if customize != nil {
		customize(builder)
	}

	return &Catalog{language: lang, messages: builder.messages}, nil
}

// splitTextID splits a text identifier into message and attribute parts at
// the first ".".
func splitTextID(textID string) (msgID, attrID string, found bool) {
	return strings.Cut(textID, ".")
}
