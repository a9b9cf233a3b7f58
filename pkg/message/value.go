package message

import "strconv"

// Value is a tagged argument value: either a string or a number. The zero
// value is the empty string value.
type Value struct {
	str     string
	num     float64
	numeric bool
}

// String returns a string argument value.
func String(s string) Value {
	return Value{str: s}
}

// Number returns a numeric argument value.
func Number(n float64) Value {
	return Value{num: n, numeric: true}
}

// Int returns a numeric argument value from an integer.
func Int(n int) Value {
	return Number(float64(n))
}

// IsNumber reports whether the value carries a number.
func (v Value) IsNumber() bool { return v.numeric }

// Format renders the value as text. Numbers render without a trailing
// decimal part when integral.
func (v Value) Format() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// Args maps argument names to values. A nil Args is equivalent to an empty
// one.
type Args map[string]Value
