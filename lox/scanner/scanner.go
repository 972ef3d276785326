package scanner

import (
	"errors"
	"io"
	"strconv"
	"unicode"

	"github.com/jesperkha/lox/lox/token"
	"github.com/jesperkha/lox/lox/util"
)

type Scanner struct {
	cur   *Cursor
	start int // Offset of first character in current token
	line  int
	col   int

	errors    util.ErrorList
	NumErrors int
}

// New makes a new Scanner for the given source text.
func New(src string) *Scanner {
	return &Scanner{
		cur:  NewCursor(src),
		line: 1,
		col:  0,
	}
}

// Scan consumes the next token and returns it, advancing the Scanner.
// Whitespace and comments are skipped. A malformed token is returned as a
// *Error after the offending input has been consumed, so Scan can be called
// again to continue. Returns io.EOF when the input is exhausted.
func (s *Scanner) Scan() (token.Token, error) {
	for {
		if s.cur.AtEnd() {
			return token.Token{Type: token.EOF, Pos: s.pos()}, io.EOF
		}

		tok, err := s.scanToken()
		if err != nil {
			return token.Token{}, err
		}

		if tok.Type == token.WHITESPACE || tok.Type == token.COMMENT {
			continue
		}

		return tok, nil
	}
}

// ScanAll scans the whole input and returns all valid tokens. Errors are
// collected and can be read with Errors or Error.
func (s *Scanner) ScanAll() []token.Token {
	toks := []token.Token{}
	for {
		tok, err := s.Scan()
		if err == io.EOF {
			return toks
		}

		if err != nil {
			s.errors.Add(err)
			s.NumErrors++
			continue
		}

		toks = append(toks, tok)
	}
}

func (s *Scanner) Errors() []error {
	return s.errors.Errors()
}

func (s *Scanner) Error() error {
	return s.errors.Error()
}

func (s *Scanner) pos() token.Pos {
	return token.Pos{Line: s.line, Col: s.col}
}

// advance consumes one character. The column is bumped for every consumed
// character, so a token reports the column of its last character.
func (s *Scanner) advance() rune {
	c, ok := s.cur.Next()
	if ok {
		s.col++
	}
	return c
}

func (s *Scanner) newline() {
	s.line++
	s.col = 0
}

func (s *Scanner) lexeme() string {
	lex, ok := s.cur.Substring(s.start, s.cur.Offset())
	util.Assert(ok, "invalid lexeme bounds %d..%d", s.start, s.cur.Offset())
	return lex
}

func (s *Scanner) makeToken(typ token.TokenType) token.Token {
	return token.Token{
		Type:   typ,
		Lexeme: s.lexeme(),
		Pos:    s.pos(),
	}
}

func (s *Scanner) scanToken() (token.Token, error) {
	s.start = s.cur.Offset()
	c := s.advance()

	if typ, ok := token.SingleSymbols[c]; ok {
		return s.makeToken(typ), nil
	}

	if types, ok := token.DoubleSymbols[c]; ok {
		if s.cur.match('=') {
			s.advance()
			return s.makeToken(types[1]), nil
		}
		return s.makeToken(types[0]), nil
	}

	switch {
	case c == '/':
		if s.cur.match('/') {
			for !s.cur.AtEnd() && !s.cur.match('\n') {
				s.advance()
			}
			return s.makeToken(token.COMMENT), nil
		}
		return s.makeToken(token.SLASH), nil

	case c == '"':
		return s.scanString()

	case isNum(c):
		return s.scanNumber()

	case isAlpha(c):
		return s.scanIdent(), nil

	case isWhitespace(c):
		return s.makeToken(token.WHITESPACE), nil

	case c == '\n':
		s.newline()
		return s.makeToken(token.WHITESPACE), nil
	}

	return token.Token{}, &Error{
		Kind: ErrUnexpectedChar,
		Char: c,
		Pos:  s.pos(),
	}
}

func (s *Scanner) scanString() (token.Token, error) {
	for !s.cur.AtEnd() && !s.cur.match('"') {
		if s.advance() == '\n' {
			s.newline()
		}
	}

	if s.cur.AtEnd() {
		return token.Token{}, &Error{
			Kind: ErrUnterminatedString,
			Pos:  s.pos(),
		}
	}

	s.advance() // Closing quote
	tok := s.makeToken(token.STRING)
	str, _ := s.cur.Substring(s.start+1, s.cur.Offset()-1)
	tok.Str = str
	return tok, nil
}

func (s *Scanner) digits() {
	for {
		c, ok := s.cur.Peek(0)
		if !ok || !unicode.IsDigit(c) {
			return
		}
		s.advance()
	}
}

func (s *Scanner) scanNumber() (token.Token, error) {
	s.digits()

	// A trailing dot with no fraction is left for the next token.
	if s.cur.match('.') {
		if c, ok := s.cur.Peek(1); ok && unicode.IsDigit(c) {
			s.advance()
			s.digits()
		}
	}

	tok := s.makeToken(token.NUMBER)
	// Literals too large for a float64 are +Inf, ParseFloat returns that
	// value along with ErrRange.
	n, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return token.Token{}, &Error{
			Kind:   ErrFloatParse,
			Lexeme: tok.Lexeme,
			Pos:    tok.Pos,
			Err:    err,
		}
	}

	tok.Num = n
	return tok, nil
}

func (s *Scanner) scanIdent() token.Token {
	for {
		c, ok := s.cur.Peek(0)
		if !ok || !isIdentChar(c) {
			break
		}
		s.advance()
	}

	tok := s.makeToken(token.IDENT)
	if typ, ok := token.Keywords[tok.Lexeme]; ok {
		tok.Type = typ
	}
	return tok
}
