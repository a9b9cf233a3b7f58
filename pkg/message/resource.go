package message

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Message is a single localizable entry: an identifier, an optional primary
// value pattern, and named attribute patterns. A Message with a nil Value is
// attribute-only; looking up its identifier without an attribute is a miss.
type Message struct {
	ID         string
	Value      Pattern
	Attributes map[string]Pattern
}

// New returns a message with the given identifier and primary value.
func New(id string, value Pattern) Message {
	return Message{ID: id, Value: value}
}

// WithAttribute returns a copy of the message with the named attribute set.
func (m Message) WithAttribute(name string, value Pattern) Message {
	attrs := maps.Clone(m.Attributes)
	if attrs == nil {
		attrs = make(map[string]Pattern, 1)
	}
	attrs[name] = value
	m.Attributes = attrs
	return m
}

// Attribute returns the named attribute pattern, if present.
func (m Message) Attribute(name string) (Pattern, bool) {
	p, ok := m.Attributes[name]
	return p, ok
}

// Resource is an ordered collection of messages for one language. Resources
// are the unit of catalog construction; they arrive already parsed and are
// never re-read by this package.
type Resource struct {
	messages []Message
}

// NewResource assembles a resource from the given messages in order.
// Message identifiers must be non-empty and must not contain the attribute
// separator ".".
func NewResource(messages ...Message) (Resource, error) {
	for _, msg := range messages {
		if msg.ID == "" {
			return Resource{}, ErrEmptyMessageID
		}
		if strings.Contains(msg.ID, ".") {
			return Resource{}, fmt.Errorf("%w: message id %q contains %q", ErrInvalidResource, msg.ID, ".")
		}
	}
	return Resource{messages: slices.Clone(messages)}, nil
}

// MustNewResource is like NewResource but panics on invalid input.
// Intended for resources known at compile time.
func MustNewResource(messages ...Message) Resource {
	res, err := NewResource(messages...)
	if err != nil {
		panic(err)
	}
	return res
}

// Messages returns the messages in authoring order. The returned slice must
// not be modified.
func (r Resource) Messages() []Message {
	return r.messages
}

// Len returns the number of messages in the resource.
func (r Resource) Len() int {
	return len(r.messages)
}

// ResourceFromMap builds a resource from a nested map, the shape produced by
// decoding YAML, JSON, or TOML documents. Top-level keys become message
// identifiers. A string value is the message's primary value; a nested map
// holds attributes, with the special "_value" key as the primary value and
// deeper nesting flattened into dot-separated attribute names. All text
// compiles to Placeholder patterns. Keys are emitted in sorted order so a
// given document always yields the same resource.
func ResourceFromMap(data map[string]any) (Resource, error) {
	messages := make([]Message, 0, len(data))

	for _, id := range sortedKeys(data) {
		msg := Message{ID: id}

		switch v := data[id].(type) {
		case map[string]any:
			attrs := flattenAttributes(v, "")
			for _, name := range sortedKeys(attrs) {
				if name == valueKey {
					msg.Value = Placeholder(attrs[name])
					continue
				}
				msg = msg.WithAttribute(name, Placeholder(attrs[name]))
			}
		case nil:
			return Resource{}, fmt.Errorf("%w: message %q has no value", ErrInvalidResource, id)
		default:
			msg.Value = Placeholder(stringify(v))
		}

		messages = append(messages, msg)
	}

	return NewResource(messages...)
}

// valueKey marks the primary value of a message authored as a map.
const valueKey = "_value"

func flattenAttributes(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string, len(data))

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			maps.Copy(result, flattenAttributes(v, fullKey))
		default:
			result[fullKey] = stringify(v)
		}
	}

	return result
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
