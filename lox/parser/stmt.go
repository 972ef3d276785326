package parser

import (
	"github.com/jesperkha/lox/lox/ast"
	"github.com/jesperkha/lox/lox/token"
	"github.com/jesperkha/lox/lox/value"
)

func (p *Parser) parseStmt() (ast.Stmt, error) {
	if p.eof() {
		return nil, p.errEOF()
	}

	switch p.cur().Type {
	case token.PRINT:
		return p.parsePrint()
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()

	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	if _, err := p.expect(token.LBRACE, "expected '{' at start of block"); err != nil {
		return nil, err
	}

	stmts := []ast.Stmt{}
	for !p.eof() && !p.match(token.RBRACE) {
		s, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}

	if _, err := p.expect(token.RBRACE, "expected '}' at end of block"); err != nil {
		return nil, err
	}

	return &ast.Block{Stmts: stmts}, nil
}

func (p *Parser) parsePrint() (*ast.Print, error) {
	p.next() // Print keyword is guaranteed

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.SEMI, "expected ';' after value"); err != nil {
		return nil, err
	}

	return &ast.Print{E: expr}, nil
}

func (p *Parser) parseExprStmt() (*ast.ExprStmt, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.SEMI, "expected ';' after expression"); err != nil {
		return nil, err
	}

	return &ast.ExprStmt{E: expr}, nil
}

// parseCond parses a parenthesized condition after the given keyword.
func (p *Parser) parseCond(keyword string) (ast.Expr, error) {
	if _, err := p.expect(token.LPAREN, "expected '(' after '"+keyword+"'"); err != nil {
		return nil, err
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.RPAREN, "expected ')' after "+keyword+" condition"); err != nil {
		return nil, err
	}

	return cond, nil
}

// An else always belongs to the innermost if, since the then branch is parsed
// before the else is looked for.
func (p *Parser) parseIf() (*ast.If, error) {
	p.next() // If keyword is guaranteed

	cond, err := p.parseCond("if")
	if err != nil {
		return nil, err
	}

	then, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	var els ast.Stmt
	if p.match(token.ELSE) {
		p.next()
		if els, err = p.parseStmt(); err != nil {
			return nil, err
		}
	}

	return &ast.If{
		Cond: cond,
		Then: then,
		Else: els,
	}, nil
}

func (p *Parser) parseWhile() (*ast.While, error) {
	p.next() // While keyword is guaranteed

	cond, err := p.parseCond("while")
	if err != nil {
		return nil, err
	}

	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	return &ast.While{
		Cond: cond,
		Body: body,
	}, nil
}

// parseFor desugars a for loop into a block holding the initializer and a
// while loop. The increment runs after the body, in a block of its own:
//
//	for (init; cond; incr) body  =>  { init; while (cond) { body; incr; } }
func (p *Parser) parseFor() (*ast.Block, error) {
	keyword, _ := p.consume() // For keyword is guaranteed

	if _, err := p.expect(token.LPAREN, "expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var (
		init ast.Stmt
		err  error
	)

	switch {
	case p.match(token.SEMI):
		p.next()
	case p.match(token.VAR):
		p.next()
		init, err = p.parseVar()
	default:
		init, err = p.parseExprStmt()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr = &ast.Literal{Value: value.Bool(true)}
	if !p.match(token.SEMI) {
		if cond, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMI, "expected ';' after loop condition"); err != nil {
		return nil, err
	}

	var incr ast.Expr
	if !p.match(token.RPAREN) {
		if incr, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RPAREN, "expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		switch body.(type) {
		case *ast.Block, *ast.ExprStmt, *ast.Print:
			body = &ast.Block{Stmts: []ast.Stmt{body, &ast.ExprStmt{E: incr}}}
		default:
			return nil, p.errAt(ErrUnexpectedComponent, keyword, "for loop body must be a block, print or expression statement")
		}
	}

	stmts := []ast.Stmt{}
	if init != nil {
		stmts = append(stmts, init)
	}

	stmts = append(stmts, &ast.While{Cond: cond, Body: body})
	return &ast.Block{Stmts: stmts}, nil
}
