package langtag

import (
	"cmp"
	"slices"
)

// FilterMatches returns every available tag that matches one of the
// requested tags, ranked by descending specificity (stable for ties).
//
// Each requested tag is processed in order against the still-unmatched
// remainder of available, in two passes: exact equality first, then range
// matching with the available tag treated as the range (so available "de"
// matches requested "de-DE", but available "de-DE" does not match requested
// "de"). A requested tag with an empty primary subtag skips the range pass.
// Requested tags that match nothing contribute no output.
func FilterMatches(requested, available []Tag) []Tag {
	matched := make([]Tag, 0, len(available))
	remaining := slices.Clone(available)

	for _, req := range requested {
		remaining, matched = collectMatches(remaining, matched, func(avail Tag) bool {
			return avail.Matches(req, false, false)
		})

		// Per Unicode TR35 §4.4 no likely subtags are added to requested
		// tags; an undetermined request must not wildcard the whole set.
		if req.Primary() == "" {
			continue
		}

		remaining, matched = collectMatches(remaining, matched, func(avail Tag) bool {
			return avail.Matches(req, true, false)
		})
	}

	slices.SortStableFunc(matched, func(a, b Tag) int {
		return cmp.Compare(b.Specificity(), a.Specificity())
	})

	return matched
}

// collectMatches moves every tag satisfying match from remaining to matched,
// preserving order in both slices.
func collectMatches(remaining, matched []Tag, match func(Tag) bool) ([]Tag, []Tag) {
	kept := remaining[:0]
	for _, tag := range remaining {
		if match(tag) {
			matched = append(matched, tag)
		} else {
			kept = append(kept, tag)
		}
	}
	return kept, matched
}

// NegotiateLanguages filters and ranks available against requested, then
// appends def exactly once if it is non-nil and not already present in the
// result. This is the filtering negotiation strategy only; subtags are never
// progressively truncated.
func NegotiateLanguages(requested, available []Tag, def *Tag) []Tag {
	supported := FilterMatches(requested, available)

	if def != nil && !slices.ContainsFunc(supported, def.Equal) {
		supported = append(supported, *def)
	}

	return supported
}

// FallbackMap holds, for every known language, the ranked list of acceptable
// substitute languages. Keys are canonical tag strings. Built once; treated
// as immutable afterwards.
type FallbackMap map[string][]Tag

// BuildFallbacks computes the fallback chain for every given locale by
// negotiating it against the full locale set. Every chain is non-empty and
// starts with the locale itself, since a language always matches itself
// exactly and ranks most specific among its own matches.
func BuildFallbacks(locales []Tag) FallbackMap {
	m := make(FallbackMap, len(locales))
	for _, locale := range locales {
		m[locale.String()] = NegotiateLanguages([]Tag{locale}, locales, nil)
	}
	return m
}

// Chain returns the fallback chain for lang, and whether lang is known.
// The returned slice must not be modified.
func (m FallbackMap) Chain(lang Tag) ([]Tag, bool) {
	chain, ok := m[lang.String()]
	return chain, ok
}
