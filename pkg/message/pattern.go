package message

import (
	"fmt"
	"strings"
)

// Pattern is a formattable message value. Implementations substitute named
// arguments into authored text and report everything they could not
// substitute. A non-empty error list is a hard formatting failure: the
// message exists but could not be fully rendered.
//
// Implementations must be safe for concurrent use; loaders format patterns
// from many goroutines without coordination.
type Pattern interface {
	Format(args Args) (string, []error)
}

// Text returns a literal pattern that renders as-is and never fails.
func Text(s string) Pattern {
	return textPattern(s)
}

type textPattern string

func (p textPattern) Format(Args) (string, []error) {
	return string(p), nil
}

// Placeholder returns a pattern substituting {{name}} references from the
// argument map. A reference with no matching argument is left in place and
// reported as a formatting error.
func Placeholder(s string) Pattern {
	return placeholderPattern(s)
}

type placeholderPattern string

func (p placeholderPattern) Format(args Args) (string, []error) {
	text := string(p)
	if !strings.Contains(text, "{{") {
		return text, nil
	}

	var (
		sb   strings.Builder
		errs []error
	)
	sb.Grow(len(text))

	for {
		start := strings.Index(text, "{{")
		if start < 0 {
			sb.WriteString(text)
			break
		}
		end := strings.Index(text[start:], "}}")
		if end < 0 {
			sb.WriteString(text)
			break
		}
		end += start

		sb.WriteString(text[:start])
		name := strings.TrimSpace(text[start+2 : end])

		if value, ok := args[name]; ok {
			sb.WriteString(value.Format())
		} else {
			sb.WriteString(text[start : end+2])
			errs = append(errs, fmt.Errorf("unknown argument {{%s}}", name))
		}

		text = text[end+2:]
	}

	return sb.String(), errs
}
