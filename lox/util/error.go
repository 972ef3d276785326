package util

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorList struct {
	errs []error
}

func (e *ErrorList) Add(err error) {
	e.errs = append(e.errs, err)
}

func (e *ErrorList) Len() int {
	return len(e.errs)
}

func (e *ErrorList) Errors() []error {
	return e.errs
}

// First returns the first error added, or nil.
func (e *ErrorList) First() error {
	if len(e.errs) == 0 {
		return nil
	}
	return e.errs[0]
}

func (e *ErrorList) Error() error {
	return errors.Join(e.errs...)
}

// Pretty formats msg with the offending source line and a caret under the
// given column. Columns are 1-based, matching token.Pos.
func Pretty(line int, lineStr string, msg string, col int) string {
	if col < 1 {
		col = 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", msg)
	fmt.Fprintf(&sb, "%3d | %s\n", line, lineStr)
	fmt.Fprintf(&sb, "    | %s^", strings.Repeat(" ", col-1))
	return sb.String()
}
