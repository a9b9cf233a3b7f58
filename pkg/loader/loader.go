package loader

import (
	"errors"
	"fmt"
	"iter"

	"github.com/dmitrymomot/localekit/pkg/langtag"
	"github.com/dmitrymomot/localekit/pkg/message"
)

// Loader resolves localized messages for a language, walking the language's
// fallback chain and finally a designated ultimate fallback language.
// Implementations are immutable snapshots: any number of goroutines may call
// lookup methods concurrently without coordination.
type Loader interface {
	// LookupComplete resolves textID for lang, using args if non-nil. When
	// nothing in the fallback chain resolves the id it returns the sentinel
	// string "Unknown localization <textID>"; it never fails.
	LookupComplete(lang langtag.Tag, textID string, args message.Args) string

	// TryLookupComplete is LookupComplete with an explicit outcome: a
	// lookup miss yields an error wrapping ErrNotFound, a message that
	// exists but could not be rendered yields a *FormatError.
	TryLookupComplete(lang langtag.Tag, textID string, args message.Args) (string, error)

	// Locales returns a restartable sequence over every language known to
	// the loader. Order is unspecified.
	Locales() iter.Seq[langtag.Tag]
}

// Lookup resolves textID for lang without arguments. See Loader.LookupComplete.
func Lookup(l Loader, lang langtag.Tag, textID string) string {
	return l.LookupComplete(lang, textID, nil)
}

// LookupWithArgs resolves textID for lang with named arguments.
func LookupWithArgs(l Loader, lang langtag.Tag, textID string, args message.Args) string {
	return l.LookupComplete(lang, textID, args)
}

// TryLookup resolves textID for lang without arguments. See Loader.TryLookupComplete.
func TryLookup(l Loader, lang langtag.Tag, textID string) (string, error) {
	return l.TryLookupComplete(lang, textID, nil)
}

// TryLookupWithArgs resolves textID for lang with named arguments.
func TryLookupWithArgs(l Loader, lang langtag.Tag, textID string, args message.Args) (string, error) {
	return l.TryLookupComplete(lang, textID, args)
}

// sentinel is the non-failing lookup outcome for an id nothing could resolve.
func sentinel(textID string) string {
	return "Unknown localization " + textID
}

// snapshot is the frozen (catalogs, fallback map, ultimate fallback) triple
// both concrete loaders resolve against. Built once; read-only afterwards.
type snapshot struct {
	catalogs  map[string]*Catalog
	fallbacks langtag.FallbackMap
	locales   []langtag.Tag
	fallback  langtag.Tag
}

// chainFor returns the fallback chain for lang. A language unknown to the
// chain map is handled leniently: it is negotiated against the known locales
// on the fly, so e.g. requesting "de-AT" still reaches a loaded "de", and a
// wholly unknown language simply yields an empty chain and falls through to
// the ultimate fallback.
func (s *snapshot) chainFor(lang langtag.Tag) []langtag.Tag {
	if chain, ok := s.fallbacks.Chain(lang); ok {
		return chain
	}
	return langtag.NegotiateLanguages([]langtag.Tag{lang}, s.locales, nil)
}

// lookupSingle resolves textID in exactly one language. Absence of the
// catalog, the message, the attribute, or the value pattern is a miss;
// formatting failures surface as *FormatError.
func (s *snapshot) lookupSingle(lang langtag.Tag, textID string, args message.Args) (string, error) {
	catalog, ok := s.catalogs[lang.String()]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLanguageNotLoaded, lang)
	}

	pattern, ok := catalog.Pattern(textID)
	if !ok {
		return "", fmt.Errorf("%w: %q in %s", ErrNotFound, textID, lang)
	}

	text, errs := pattern.Format(args)
	if len(errs) > 0 {
		return "", &FormatError{Lang: lang, ID: textID, Partial: text, Errs: errs}
	}

	return text, nil
}

// tryLookup walks lang's fallback chain, then the ultimate fallback. Misses
// continue the walk; a formatting failure aborts it.
func (s *snapshot) tryLookup(lang langtag.Tag, textID string, args message.Args) (string, error) {
	for _, candidate := range s.chainFor(lang) {
		text, err := s.lookupSingle(candidate, textID, args)
		switch {
		case err == nil:
			return text, nil
		case isFormatError(err):
			return "", err
		}
	}

	if !lang.Equal(s.fallback) {
		text, err := s.lookupSingle(s.fallback, textID, args)
		switch {
		case err == nil:
			return text, nil
		case isFormatError(err):
			return "", err
		}
	}

	return "", fmt.Errorf("%w: %q", ErrNotFound, textID)
}

// lookup is the non-failing variant of tryLookup. A miss yields the
// sentinel; a formatting failure yields the engine's best-effort output when
// there is any, otherwise the sentinel.
func (s *snapshot) lookup(lang langtag.Tag, textID string, args message.Args) string {
	text, err := s.tryLookup(lang, textID, args)
	if err == nil {
		return text
	}

	var fe *FormatError
	if errors.As(err, &fe) && fe.Partial != "" {
		return fe.Partial
	}

	return sentinel(textID)
}

// lookupNoDefault walks only the precomputed chain of lang, never the
// ultimate fallback. Unlike the lenient lookup paths it is strict: a
// language unknown to the chain map is a plain miss.
func (s *snapshot) lookupNoDefault(lang langtag.Tag, textID string, args message.Args) (string, error) {
	chain, ok := s.fallbacks.Chain(lang)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLanguageNotLoaded, lang)
	}

	for _, candidate := range chain {
		text, err := s.lookupSingle(candidate, textID, args)
		switch {
		case err == nil:
			return text, nil
		case isFormatError(err):
			return "", err
		}
	}

	return "", fmt.Errorf("%w: %q", ErrNotFound, textID)
}

func (s *snapshot) localeSeq() iter.Seq[langtag.Tag] {
	return func(yield func(langtag.Tag) bool) {
		for _, locale := range s.locales {
			if !yield(locale) {
				return
			}
		}
	}
}

func isFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
