// Package value defines the runtime values of the language. Values are
// immutable and compared structurally.
package value

import (
	"math"
	"strconv"
)

type Value interface {
	// String returns the value as printed by the print statement.
	String() string

	// Type returns the name of the values type, eg. "number".
	Type() string

	value()
}

type (
	Bool   bool
	Number float64
	String string
	Nil    struct{}
)

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
func (b Bool) Type() string   { return "boolean" }
func (Bool) value()           {}

// Integral numbers print without a decimal point. Infinities print as inf
// and -inf.
func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (n Number) Type() string { return "number" }
func (Number) value()         {}

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }
func (String) value()           {}

func (Nil) String() string { return "nil" }
func (Nil) Type() string   { return "nil" }
func (Nil) value()         {}

// Truthy reports whether v is considered true in a condition. Nil is false,
// numbers are false only when zero, strings are always true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Number:
		return v != 0
	case String:
		return true
	default:
		return false
	}
}

// Equal compares two values structurally. Values of different types are never
// equal.
func Equal(a, b Value) bool {
	return a == b
}
