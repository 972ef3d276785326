package parser

import (
	"github.com/jesperkha/lox/lox/ast"
	"github.com/jesperkha/lox/lox/token"
	"github.com/jesperkha/lox/lox/value"
)

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAssignment()
}

// Assignment is right associative. The target is parsed as an ordinary
// expression first and must turn out to be a plain variable.
func (p *Parser) parseAssignment() (ast.Expr, error) {
	expr, err := p.parseEquality()
	if err != nil {
		return nil, err
	}

	if !p.match(token.EQ) {
		return expr, nil
	}

	eq, _ := p.consume()
	val, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	if v, ok := expr.(*ast.Variable); ok {
		return &ast.Assign{
			Name:  v.Name,
			Value: val,
		}, nil
	}

	return nil, p.errAt(ErrInvalidAssignTarget, eq, "left hand side must be a variable")
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	return p.parseBinary(p.parseComparison, token.NOT_EQ, token.EQ_EQ)
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	return p.parseBinary(p.parseTerm, token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ)
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	return p.parseBinary(p.parseFactor, token.MINUS, token.PLUS)
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	return p.parseBinary(p.parseUnary, token.SLASH, token.STAR)
}

// parseBinary parses a left associative chain of operands from next, joined by
// any of the given operators.
func (p *Parser) parseBinary(next func() (ast.Expr, error), ops ...token.TokenType) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		t, _ := p.consume()
		op, err := p.operator(t)
		if err != nil {
			return nil, err
		}

		right, err := next()
		if err != nil {
			return nil, err
		}

		expr = &ast.Binary{
			Left:  expr,
			Op:    op,
			Right: right,
		}
	}

	return expr, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if !p.match(token.NOT, token.MINUS) {
		return p.parsePrimary()
	}

	t, _ := p.consume()
	op, err := p.operator(t)
	if err != nil {
		return nil, err
	}

	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &ast.Unary{
		Op:    op,
		Right: right,
	}, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	if p.eof() {
		return nil, p.errEOF()
	}

	t := p.cur()
	var lit value.Value

	switch t.Type {
	case token.NIL:
		lit = value.Nil{}
	case token.FALSE:
		lit = value.Bool(false)
	case token.TRUE:
		lit = value.Bool(true)
	case token.STRING:
		lit = value.String(t.Str)
	case token.NUMBER:
		lit = value.Number(t.Num)

	case token.LPAREN:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(token.RPAREN, "expected ')' after expression"); err != nil {
			return nil, err
		}

		return &ast.Grouping{Inner: inner}, nil

	case token.IDENT:
		p.next()
		return &ast.Variable{Name: t}, nil

	default:
		// Not consumed, synchronize skips it.
		return nil, p.errAt(ErrInvalidPrimary, t, "expected expression")
	}

	p.next()
	return &ast.Literal{Value: lit}, nil
}

func (p *Parser) operator(t token.Token) (ast.Operator, error) {
	op, err := ast.NewOperator(t)
	if err != nil {
		return ast.Operator{}, p.errAt(ErrInvalidOperator, t, "")
	}
	return op, nil
}
