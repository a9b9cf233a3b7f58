package langtag

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage parses an HTTP Accept-Language header into a list of
// tags ordered by descending quality value. Wildcards ("*"), undetermined
// entries, and tags this package cannot represent are dropped. A malformed
// header yields an empty list rather than an error.
//
// Example header: "en-US,en;q=0.9,de;q=0.8" parses to [en-US en de].
func ParseAcceptLanguage(header string) []Tag {
	if len(header) > maxAcceptLanguageLength {
		// Cut at an entry boundary so the well-formed prefix still parses.
		header = header[:maxAcceptLanguageLength]
		if cut := strings.LastIndexByte(header, ','); cut >= 0 {
			header = header[:cut]
		}
	}

	parsed, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	tags := make([]Tag, 0, len(parsed))
	for _, p := range parsed {
		tag, err := Parse(p.String())
		if err != nil || tag.Primary() == "" {
			continue
		}
		tags = append(tags, tag)
	}

	return tags
}

// NegotiateAcceptLanguage negotiates an Accept-Language header directly
// against the available tags, appending def once if nothing matched.
func NegotiateAcceptLanguage(header string, available []Tag, def *Tag) []Tag {
	return NegotiateLanguages(ParseAcceptLanguage(header), available, def)
}
