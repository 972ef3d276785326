package lox

import (
	"errors"

	"github.com/jesperkha/lox/lox/interp"
)

// ErrorHandler collects the runtime errors reported during a run.
type ErrorHandler struct {
	errs []error
}

// Report implements interp.ErrorReporter.
func (e *ErrorHandler) Report(err *interp.RuntimeError) {
	e.errs = append(e.errs, err)
}

// Errors returns a list of all accumulated errors.
func (e *ErrorHandler) Errors() []error {
	return e.errs
}

// Error returns the accumulated errors joined, or nil if there are none.
func (e *ErrorHandler) Error() error {
	return errors.Join(e.errs...)
}

func (e *ErrorHandler) Reset() {
	e.errs = nil
}
