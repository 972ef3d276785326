package ast

import (
	"errors"
	"fmt"

	"github.com/jesperkha/lox/lox/token"
)

// ErrNotOperator is returned by NewOperator for tokens that are not operators.
var ErrNotOperator = errors.New("invalid token to operator conversion")

type OpKind int

const (
	OpDot OpKind = iota
	OpMinus
	OpPlus
	OpSlash
	OpStar
	OpNot
	OpNotEq
	OpEq
	OpEqEq
	OpGreater
	OpGreaterEq
	OpLess
	OpLessEq
)

var opKinds = map[token.TokenType]OpKind{
	token.DOT:        OpDot,
	token.MINUS:      OpMinus,
	token.PLUS:       OpPlus,
	token.SLASH:      OpSlash,
	token.STAR:       OpStar,
	token.NOT:        OpNot,
	token.NOT_EQ:     OpNotEq,
	token.EQ:         OpEq,
	token.EQ_EQ:      OpEqEq,
	token.GREATER:    OpGreater,
	token.GREATER_EQ: OpGreaterEq,
	token.LESS:       OpLess,
	token.LESS_EQ:    OpLessEq,
}

var opSymbols = [...]string{
	OpDot:       ".",
	OpMinus:     "-",
	OpPlus:      "+",
	OpSlash:     "/",
	OpStar:      "*",
	OpNot:       "!",
	OpNotEq:     "!=",
	OpEq:        "=",
	OpEqEq:      "==",
	OpGreater:   ">",
	OpGreaterEq: ">=",
	OpLess:      "<",
	OpLessEq:    "<=",
}

func (k OpKind) String() string {
	if k < 0 || int(k) >= len(opSymbols) {
		return "?"
	}
	return opSymbols[k]
}

// Operator is an operator token narrowed to its kind and source position.
type Operator struct {
	Kind OpKind
	Pos  token.Pos
}

// NewOperator converts an operator shaped token to an Operator. Returns
// ErrNotOperator for any other token.
func NewOperator(tok token.Token) (Operator, error) {
	kind, ok := opKinds[tok.Type]
	if !ok {
		return Operator{}, fmt.Errorf("%w: %s", ErrNotOperator, tok.Type)
	}

	return Operator{Kind: kind, Pos: tok.Pos}, nil
}

func (o Operator) String() string {
	return o.Kind.String()
}
