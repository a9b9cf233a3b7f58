package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/langtag"
)

var (
	// ErrNotFound reports a lookup miss: the message, attribute, or value
	// pattern is absent everywhere in the fallback chain.
	ErrNotFound = errors.New("loader: localization not found")

	// ErrLanguageNotLoaded reports that no catalog exists for a language.
	ErrLanguageNotLoaded = errors.New("loader: language not loaded")

	// ErrDuplicateMessage reports a merge conflict during catalog construction.
	ErrDuplicateMessage = errors.New("loader: duplicate message definition")

	// ErrNoFallbackLanguage reports a loader built without an ultimate
	// fallback language.
	ErrNoFallbackLanguage = errors.New("loader: fallback language is required")

	// ErrNoResources reports a loader built without any resource source.
	ErrNoResources = errors.New("loader: no resources provided")
)

// FormatError reports that a message was found but could not be rendered,
// e.g. because a referenced argument is missing. It is distinct from a
// lookup miss; callers that need to tell "no such string" from "string
// exists but is broken" can errors.As for it.
type FormatError struct {
	Lang    langtag.Tag
	ID      string
	Partial string // best-effort output of the formatting engine
	Errs    []error
}

func (e *FormatError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("loader: formatting %q for %s: %s", e.ID, e.Lang, strings.Join(msgs, "; "))
}

// Unwrap exposes the formatting engine's errors to errors.Is inspection.
func (e *FormatError) Unwrap() []error {
	return e.Errs
}
