package interp

import (
	"errors"
	"fmt"

	"github.com/jesperkha/lox/lox/ast"
	"github.com/jesperkha/lox/lox/token"
	"github.com/jesperkha/lox/lox/value"
)

var (
	ErrAlreadyDefined       = errors.New("variable is already defined")
	ErrUndefinedVariable    = errors.New("undefined variable")
	ErrInvalidAssignTarget  = errors.New("invalid assignment target")
	ErrInvalidOperands      = errors.New("invalid operands")
	ErrInvalidUnaryOperator = errors.New("invalid unary operator")
	ErrInvalidUnaryOperand  = errors.New("invalid operator for value")
)

// RuntimeError is the error of a single failed statement. Only the fields
// relevant to Kind are set.
type RuntimeError struct {
	Kind error

	Name     string       // Variable name for ErrAlreadyDefined and ErrUndefinedVariable
	Op       ast.Operator // Operator for the operand and operator errors
	Value    value.Value  // Offending value for ErrInvalidUnaryOperand
	Expected string       // What the operator expected, eg. "two numbers"
	Pos      token.Pos
}

func (e *RuntimeError) Error() string {
	var msg string
	switch e.Kind {
	case ErrAlreadyDefined:
		msg = fmt.Sprintf("variable '%s' is already defined", e.Name)
	case ErrUndefinedVariable:
		msg = fmt.Sprintf("undefined variable '%s'", e.Name)
	case ErrInvalidAssignTarget:
		msg = fmt.Sprintf("cannot assign a value to %s", e.Name)
	case ErrInvalidOperands:
		msg = fmt.Sprintf("invalid operands for '%s', expected %s", e.Op.Kind, e.Expected)
	case ErrInvalidUnaryOperator:
		msg = fmt.Sprintf("invalid operator '%s'", e.Op.Kind)
	case ErrInvalidUnaryOperand:
		msg = fmt.Sprintf("invalid operator '%s' for value %s", e.Op.Kind, quoted(e.Value))
	default:
		msg = fmt.Sprint(e.Kind)
	}

	return fmt.Sprintf("[%s] %s", e.Pos, msg)
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}

func quoted(v value.Value) string {
	if s, ok := v.(value.String); ok {
		return fmt.Sprintf("%q", string(s))
	}
	if v == nil {
		return "nil"
	}
	return v.String()
}
