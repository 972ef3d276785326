package scanner

import (
	"errors"
	"fmt"

	"github.com/jesperkha/lox/lox/token"
)

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrFloatParse         = errors.New("float parse error")
)

// Error is a lexical error for a single token. The scanner keeps going after
// returning one.
type Error struct {
	Kind   error  // One of the Err* values above
	Char   rune   // Offending character for ErrUnexpectedChar
	Lexeme string // Offending lexeme for ErrFloatParse
	Pos    token.Pos
	Err    error // Underlying strconv error for ErrFloatParse
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnexpectedChar:
		return fmt.Sprintf("[%s] %s: %q", e.Pos, e.Kind, e.Char)
	case ErrFloatParse:
		return fmt.Sprintf("[%s] %s: %s, %v", e.Pos, e.Kind, e.Lexeme, e.Err)
	default:
		return fmt.Sprintf("[%s] %s", e.Pos, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Kind
}
