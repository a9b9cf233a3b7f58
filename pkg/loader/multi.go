package loader

import (
	"fmt"
	"iter"
	"slices"

	"github.com/dmitrymomot/localekit/pkg/langtag"
	"github.com/dmitrymomot/localekit/pkg/message"
)

// MultiLoader composes an ordered sequence of loaders into one. Lookups try
// each source front to back and return the first successful result; a miss
// or a formatting failure in one source simply moves on to the next. Each
// source resolves its own fallback chain internally, so insertion order, not
// language specificity, decides which source answers when several could.
//
// The source list may be extended with Append and Prepend while the loader
// is being assembled. Once shared across goroutines it must be treated as
// read-only; interleaving mutation with concurrent lookups requires external
// synchronization.
type MultiLoader struct {
	sources []Loader
}

// NewMulti creates a MultiLoader over the given sources, in priority order.
func NewMulti(sources ...Loader) *MultiLoader {
	return &MultiLoader{sources: slices.Clone(sources)}
}

// Append adds a source with the lowest priority.
func (m *MultiLoader) Append(source Loader) {
	m.sources = append(m.sources, source)
}

// Prepend adds a source with the highest priority.
func (m *MultiLoader) Prepend(source Loader) {
	m.sources = append([]Loader{source}, m.sources...)
}

// Len returns the number of composed sources.
func (m *MultiLoader) Len() int {
	return len(m.sources)
}

// LookupComplete implements Loader.
func (m *MultiLoader) LookupComplete(lang langtag.Tag, textID string, args message.Args) string {
	for _, source := range m.sources {
		if text, err := source.TryLookupComplete(lang, textID, args); err == nil {
			return text
		}
	}
	return sentinel(textID)
}

// TryLookupComplete implements Loader.
func (m *MultiLoader) TryLookupComplete(lang langtag.Tag, textID string, args message.Args) (string, error) {
	for _, source := range m.sources {
		if text, err := source.TryLookupComplete(lang, textID, args); err == nil {
			return text, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, textID)
}

// Locales implements Loader. The sequence concatenates every source's
// locales without deduplication.
func (m *MultiLoader) Locales() iter.Seq[langtag.Tag] {
	return func(yield func(langtag.Tag) bool) {
		for _, source := range m.sources {
			for locale := range source.Locales() {
				if !yield(locale) {
					return
				}
			}
		}
	}
}

var _ Loader = (*MultiLoader)(nil)
