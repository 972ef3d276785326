package parser

import (
	"github.com/jesperkha/lox/lox/ast"
	"github.com/jesperkha/lox/lox/token"
)

func (p *Parser) parseDecl() (ast.Stmt, error) {
	if p.match(token.VAR) {
		p.next() // Var keyword
		return p.parseVar()
	}

	return p.parseStmt()
}

func (p *Parser) parseVar() (*ast.Var, error) {
	name, err := p.expect(token.IDENT, "expected variable name")
	if err != nil {
		return nil, err
	}

	var init ast.Expr
	if p.match(token.EQ) {
		p.next()
		if init, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.SEMI, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}

	return &ast.Var{
		Name: name,
		Init: init,
	}, nil
}
