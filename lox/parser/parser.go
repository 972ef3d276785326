package parser

import (
	"github.com/jesperkha/lox/lox/ast"
	"github.com/jesperkha/lox/lox/token"
	"github.com/jesperkha/lox/lox/util"
)

type Parser struct {
	errors util.ErrorList
	toks   []token.Token
	pos    int // Current token being looked at

	NumErrors int
}

func New(toks []token.Token) *Parser {
	return &Parser{
		toks:   toks,
		errors: util.ErrorList{},
	}
}

// Parse parses declarations until the tokens are exhausted. A declaration
// that fails to parse is recorded and the parser skips ahead to the next
// statement boundary, so every broken declaration is reported. If any failed,
// the first error is returned and no statements.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	stmts := []ast.Stmt{}

	for !p.eof() {
		stmt, err := p.parseDecl()
		if err != nil {
			p.errors.Add(err)
			p.NumErrors++
			p.synchronize()
			continue
		}

		stmts = append(stmts, stmt)
	}

	if p.NumErrors > 0 {
		return nil, p.errors.First()
	}

	return stmts, nil
}

// ParseExpr parses a single expression. Use Done to check if all tokens were
// consumed.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.parseExpr()
}

// Done reports whether all tokens have been consumed.
func (p *Parser) Done() bool {
	return p.eof()
}

func (p *Parser) Errors() []error {
	return p.errors.Errors()
}

func (p *Parser) Error() error {
	return p.errors.Error()
}

// Discard tokens until the previous one ended a statement or the current one
// begins a new one.
func (p *Parser) synchronize() {
	p.next()

	for !p.eof() {
		if p.prev().Is(token.SEMI) {
			return
		}

		switch p.cur().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}

		p.next()
	}
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.toks)
}

// cur returns the current token. Must not be called at eof.
func (p *Parser) cur() token.Token {
	util.Assert(!p.eof(), "cur called at end of tokens")
	return p.toks[p.pos]
}

func (p *Parser) prev() token.Token {
	return p.toks[p.pos-1]
}

func (p *Parser) last() token.Token {
	if len(p.toks) == 0 {
		return token.Token{Type: token.EOF}
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) next() {
	if !p.eof() {
		p.pos++
	}
}

// match reports whether the current token is any of the given types. Always
// false at eof.
func (p *Parser) match(types ...token.TokenType) bool {
	if p.eof() {
		return false
	}

	for _, t := range types {
		if p.cur().Is(t) {
			return true
		}
	}
	return false
}

// consume returns the current token and advances, or fails at eof.
func (p *Parser) consume() (token.Token, error) {
	if p.eof() {
		return token.Token{}, p.errEOF()
	}

	t := p.cur()
	p.next()
	return t, nil
}

// expect consumes the current token if it has type typ, otherwise returns a
// missing token error with the given hint.
func (p *Parser) expect(typ token.TokenType, hint string) (token.Token, error) {
	if p.match(typ) {
		return p.consume()
	}

	err := &Error{
		Kind:     ErrMissingToken,
		Expected: typ,
		Hint:     hint,
	}

	if p.eof() {
		err.AtEnd = true
		err.Token = p.last()
	} else {
		err.Token = p.cur()
	}

	return token.Token{}, err
}

func (p *Parser) errEOF() error {
	return &Error{
		Kind:  ErrUnexpectedEOF,
		Token: p.last(),
		AtEnd: true,
	}
}

func (p *Parser) errAt(kind error, tok token.Token, hint string) error {
	return &Error{
		Kind:  kind,
		Token: tok,
		Hint:  hint,
	}
}
