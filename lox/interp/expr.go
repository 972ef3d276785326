package interp

import (
	"fmt"

	"github.com/jesperkha/lox/lox/ast"
	"github.com/jesperkha/lox/lox/token"
	"github.com/jesperkha/lox/lox/util"
	"github.com/jesperkha/lox/lox/value"
)

// Evaluate computes the value of a single expression. Operands are evaluated
// left to right.
func (i *Interpreter) Evaluate(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return i.Evaluate(e.Inner)

	case *ast.Variable:
		v, err := i.env.Get(e.Name.Lexeme)
		if err != nil {
			return nil, envError(err, e.Name)
		}
		return v, nil

	case *ast.Assign:
		if !e.Name.Is(token.IDENT) {
			return nil, &RuntimeError{
				Kind: ErrInvalidAssignTarget,
				Name: e.Name.Type.String(),
				Pos:  e.Name.Pos,
			}
		}

		v, err := i.Evaluate(e.Value)
		if err != nil {
			return nil, err
		}

		if err := i.env.Assign(e.Name.Lexeme, v); err != nil {
			return nil, envError(err, e.Name)
		}
		return v, nil

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Binary:
		left, err := i.Evaluate(e.Left)
		if err != nil {
			return nil, err
		}

		right, err := i.Evaluate(e.Right)
		if err != nil {
			return nil, err
		}

		return evalBinary(e.Op, left, right)
	}

	panic(fmt.Sprintf("unhandled expression type %T", expr))
}

func (i *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	switch e.Op.Kind {
	case ast.OpMinus:
		right, err := i.Evaluate(e.Right)
		if err != nil {
			return nil, err
		}

		n, ok := right.(value.Number)
		if !ok {
			return nil, &RuntimeError{
				Kind:  ErrInvalidUnaryOperand,
				Op:    e.Op,
				Value: right,
				Pos:   e.Op.Pos,
			}
		}
		return -n, nil

	case ast.OpNot:
		right, err := i.Evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		return value.Bool(!value.Truthy(right)), nil
	}

	return nil, &RuntimeError{
		Kind: ErrInvalidUnaryOperator,
		Op:   e.Op,
		Pos:  e.Op.Pos,
	}
}

func evalBinary(op ast.Operator, left, right value.Value) (value.Value, error) {
	switch op.Kind {
	case ast.OpEqEq:
		return value.Bool(value.Equal(left, right)), nil
	case ast.OpNotEq:
		return value.Bool(!value.Equal(left, right)), nil

	case ast.OpPlus:
		l, lok := left.(value.Number)
		r, rok := right.(value.Number)
		if lok && rok {
			return l + r, nil
		}

		// Anything else is implicitly converted to string
		return value.String(left.String() + right.String()), nil
	}

	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		return nil, &RuntimeError{
			Kind:     ErrInvalidOperands,
			Op:       op,
			Expected: "two numbers",
			Pos:      op.Pos,
		}
	}

	switch op.Kind {
	case ast.OpMinus:
		return l - r, nil
	case ast.OpStar:
		return l * r, nil
	case ast.OpSlash:
		return l / r, nil
	case ast.OpLess:
		return value.Bool(l < r), nil
	case ast.OpLessEq:
		return value.Bool(l <= r), nil
	case ast.OpGreater:
		return value.Bool(l > r), nil
	case ast.OpGreaterEq:
		return value.Bool(l >= r), nil
	}

	// The parser never builds a binary expression from other operators
	util.Assert(false, "invalid binary operator %s", op.Kind)
	return nil, nil
}
