package util

import "fmt"

// Assert panics with the formatted message if v is false. Used for invariants
// whose violation is a bug in the interpreter, never a user error.
func Assert(v bool, format string, args ...any) {
	if !v {
		panic(fmt.Sprintf("assertion failed: %s", fmt.Sprintf(format, args...)))
	}
}
