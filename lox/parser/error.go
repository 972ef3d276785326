package parser

import (
	"errors"
	"fmt"

	"github.com/jesperkha/lox/lox/token"
)

var (
	ErrUnexpectedEOF       = errors.New("unexpected end of tokens")
	ErrInvalidOperator     = errors.New("invalid token to operator conversion")
	ErrInvalidPrimary      = errors.New("invalid primary expression token")
	ErrInvalidAssignTarget = errors.New("invalid assignment target")
	ErrMissingToken        = errors.New("missing expected token")
	ErrUnexpectedComponent = errors.New("unexpected language component")
)

// Error is a parse error for a single declaration.
type Error struct {
	Kind error

	// The offending token. When AtEnd is set the input ran out and Token is
	// the last token of the input, if there was one.
	Token token.Token
	AtEnd bool

	Expected token.TokenType // Set for ErrMissingToken
	Hint     string          // Human readable description of what went wrong
}

func (e *Error) Error() string {
	where := e.Token.Pos.String()
	if e.AtEnd {
		where = "end of input"
	}

	msg := fmt.Sprintf("[%s] %s", where, e.Kind)
	if e.Kind == ErrMissingToken {
		msg += fmt.Sprintf(" %s", e.Expected)
	} else if !e.AtEnd {
		msg += fmt.Sprintf(" '%s'", e.Token.Lexeme)
	}

	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// IsIncomplete reports whether err was caused by the input ending in the
// middle of a declaration, meaning more input could make it valid.
func IsIncomplete(err error) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.AtEnd
}
