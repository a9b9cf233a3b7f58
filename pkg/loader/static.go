package loader

import (
	"iter"

	"github.com/dmitrymomot/localekit/pkg/langtag"
	"github.com/dmitrymomot/localekit/pkg/message"
)

// StaticLoader resolves lookups against catalogs fixed at construction.
// Intended for resources assembled once for the life of the process, e.g.
// from embedded files. It is immutable and safe for concurrent use.
type StaticLoader struct {
	snap *snapshot
}

// NewStatic builds a StaticLoader. resources maps language tag strings to
// the parsed resources of that language; shared resources are merged into
// every language's catalog before its own, and customize (optional) runs
// once per catalog before it is frozen. fallback is the ultimate fallback
// language consulted when a fallback chain resolves nothing; it should be
// one of the resource languages.
func NewStatic(resources map[string][]message.Resource, shared []message.Resource, fallback langtag.Tag, customize Customizer) (*StaticLoader, error) {
	if fallback.IsEmpty() {
		return nil, ErrNoFallbackLanguage
	}
	if len(resources) == 0 {
		return nil, ErrNoResources
	}

	snap, err := buildSnapshot(resources, shared, fallback, customize)
	if err != nil {
		return nil, err
	}

	return &StaticLoader{snap: snap}, nil
}

// LookupComplete implements Loader.
func (l *StaticLoader) LookupComplete(lang langtag.Tag, textID string, args message.Args) string {
	return l.snap.lookup(lang, textID, args)
}

// TryLookupComplete implements Loader.
func (l *StaticLoader) TryLookupComplete(lang langtag.Tag, textID string, args message.Args) (string, error) {
	return l.snap.tryLookup(lang, textID, args)
}

// Locales implements Loader.
func (l *StaticLoader) Locales() iter.Seq[langtag.Tag] {
	return l.snap.localeSeq()
}

// LookupSingleLanguage resolves textID in exactly one language, with no
// fallback of any kind.
func (l *StaticLoader) LookupSingleLanguage(lang langtag.Tag, textID string, args message.Args) (string, error) {
	return l.snap.lookupSingle(lang, textID, args)
}

// LookupNoDefaultFallback walks only lang's fallback chain, never the
// ultimate fallback. A language without a chain is a miss.
func (l *StaticLoader) LookupNoDefaultFallback(lang langtag.Tag, textID string, args message.Args) (string, error) {
	return l.snap.lookupNoDefault(lang, textID, args)
}

// Fallback returns the ultimate fallback language.
func (l *StaticLoader) Fallback() langtag.Tag {
	return l.snap.fallback
}

var _ Loader = (*StaticLoader)(nil)
