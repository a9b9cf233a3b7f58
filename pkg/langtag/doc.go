// Package langtag implements BCP-47-style language tags, language
// negotiation, and fallback-chain construction.
//
// Tags are immutable once parsed and safe for concurrent use. Matching is
// deliberately simple: exact equality plus range matching, where an absent
// script, region, or variant list acts as a wildcard. No likely-subtag
// expansion is performed — "de" never becomes "de-Latn-DE".
//
// # Negotiation
//
// NegotiateLanguages selects the available tags that satisfy a requested
// list, ranked by specificity (script + region + variant count):
//
//	requested := []langtag.Tag{langtag.MustParse("de-DE")}
//	available := langtag.MustParseAll("de", "de-DE", "en-US")
//
//	matches := langtag.NegotiateLanguages(requested, available, nil)
//	// matches: [de-DE de]
//
// # Fallback chains
//
// BuildFallbacks pre-computes, for every available language, the ranked list
// of acceptable substitutes:
//
//	chains := langtag.BuildFallbacks(langtag.MustParseAll("en-US", "en", "fr"))
//	chain, _ := chains.Chain(langtag.MustParse("en-US"))
//	// chain: [en-US en]
//
// # Accept-Language
//
// ParseAcceptLanguage turns an HTTP Accept-Language header into a
// quality-ordered requested list suitable for NegotiateLanguages.
package langtag
