package langtag

import (
	"fmt"
	"slices"
	"strings"
)

// Tag is a structured language identifier: a primary language subtag with
// optional script and region subtags and an ordered list of variant subtags.
// The zero value is the undetermined tag ("und"). A Tag is immutable once
// parsed and safe for concurrent use.
type Tag struct {
	primary  string
	script   string
	region   string
	variants []string
}

// Parse parses a BCP-47-style language tag such as "de", "en-US",
// "zh-Hant-TW" or "de-DE-1996". Both "-" and "_" separators are accepted.
// Subtags are canonicalized: primary lowercase, script title case, region
// upper case, variants lowercase. The primary subtag "und" parses to the
// undetermined (empty) tag.
func Parse(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Tag{}, ErrEmptyTag
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(parts) == 0 {
		return Tag{}, ErrEmptyTag
	}

	var tag Tag

	primary := strings.ToLower(parts[0])
	if !isAlpha(primary) || len(primary) < 2 || len(primary) > 8 {
		return Tag{}, fmt.Errorf("%w: bad primary subtag %q", ErrInvalidTag, parts[0])
	}
	if primary != "und" {
		tag.primary = primary
	}
	parts = parts[1:]

	if len(parts) > 0 && isScript(parts[0]) {
		tag.script = titleCase(parts[0])
		parts = parts[1:]
	}

	if len(parts) > 0 && isRegion(parts[0]) {
		tag.region = strings.ToUpper(parts[0])
		parts = parts[1:]
	}

	for _, part := range parts {
		if !isVariant(part) {
			return Tag{}, fmt.Errorf("%w: bad subtag %q in %q", ErrInvalidTag, part, s)
		}
		tag.variants = append(tag.variants, strings.ToLower(part))
	}

	return tag, nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for tags known at compile time.
func MustParse(s string) Tag {
	tag, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return tag
}

// MustParseAll parses every given tag string, panicking on the first invalid
// one. Intended for tag lists known at compile time.
func MustParseAll(ss ...string) []Tag {
	tags := make([]Tag, len(ss))
	for i, s := range ss {
		tags[i] = MustParse(s)
	}
	return tags
}

// Primary returns the primary language subtag, or "" for the undetermined tag.
func (t Tag) Primary() string { return t.primary }

// Script returns the script subtag, or "" when absent.
func (t Tag) Script() string { return t.script }

// Region returns the region subtag, or "" when absent.
func (t Tag) Region() string { return t.region }

// Variants returns a copy of the variant subtags.
func (t Tag) Variants() []string { return slices.Clone(t.variants) }

// IsEmpty reports whether the tag is the undetermined tag.
func (t Tag) IsEmpty() bool {
	return t.primary == "" && t.script == "" && t.region == "" && len(t.variants) == 0
}

// String returns the canonical textual form of the tag, e.g. "de-DE-1996".
// The undetermined primary subtag renders as "und".
func (t Tag) String() string {
	var sb strings.Builder
	if t.primary == "" {
		sb.WriteString("und")
	} else {
		sb.WriteString(t.primary)
	}
	if t.script != "" {
		sb.WriteByte('-')
		sb.WriteString(t.script)
	}
	if t.region != "" {
		sb.WriteByte('-')
		sb.WriteString(t.region)
	}
	for _, v := range t.variants {
		sb.WriteByte('-')
		sb.WriteString(v)
	}
	return sb.String()
}

// Equal reports whether every subtag of both tags is equal.
func (t Tag) Equal(o Tag) bool {
	return t.primary == o.primary &&
		t.script == o.script &&
		t.region == o.region &&
		slices.Equal(t.variants, o.variants)
}

// Matches reports whether t matches other. With both range flags false this
// is exact equality. When selfAsRange is true, absent subtags of t act as
// wildcards; when otherAsRange is true, absent subtags of other do. The
// variant lists are compared as a whole: only a fully absent list wildcards.
func (t Tag) Matches(other Tag, selfAsRange, otherAsRange bool) bool {
	return subtagMatches(t.primary, other.primary, selfAsRange, otherAsRange) &&
		subtagMatches(t.script, other.script, selfAsRange, otherAsRange) &&
		subtagMatches(t.region, other.region, selfAsRange, otherAsRange) &&
		variantsMatch(t.variants, other.variants, selfAsRange, otherAsRange)
}

// Specificity counts the present script and region subtags plus the number
// of variants. Used to rank equally-matching tags, higher first.
func (t Tag) Specificity() int {
	specificity := len(t.variants)
	if t.script != "" {
		specificity++
	}
	if t.region != "" {
		specificity++
	}
	return specificity
}

func subtagMatches(self, other string, selfAsRange, otherAsRange bool) bool {
	if selfAsRange && self == "" {
		return true
	}
	if otherAsRange && other == "" {
		return true
	}
	return self == other
}

func variantsMatch(self, other []string, selfAsRange, otherAsRange bool) bool {
	if selfAsRange && len(self) == 0 {
		return true
	}
	if otherAsRange && len(other) == 0 {
		return true
	}
	return slices.Equal(self, other)
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return len(s) > 0
}

func isDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isAlphanum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return len(s) > 0
}

// isScript matches a 4-letter script subtag such as "Latn".
func isScript(s string) bool {
	return len(s) == 4 && isAlpha(s)
}

// isRegion matches a 2-letter or 3-digit region subtag such as "DE" or "419".
func isRegion(s string) bool {
	return (len(s) == 2 && isAlpha(s)) || (len(s) == 3 && isDigit(s))
}

// isVariant matches a 5-8 character alphanumeric variant subtag, or a
// 4-character one starting with a digit such as "1996".
func isVariant(s string) bool {
	switch {
	case len(s) >= 5 && len(s) <= 8:
		return isAlphanum(s)
	case len(s) == 4:
		return s[0] >= '0' && s[0] <= '9' && isAlphanum(s)
	default:
		return false
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
