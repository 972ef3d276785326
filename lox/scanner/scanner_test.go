package scanner

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jesperkha/lox/lox/token"
)

// result is one call to Scan, either a token or an error kind.
type result struct {
	Type   token.TokenType
	Lexeme string
	Line   int
	Col    int
	Err    error
}

func scanResults(src string) []result {
	s := New(src)
	res := []result{}

	for {
		tok, err := s.Scan()
		if err == io.EOF {
			return res
		}

		if err != nil {
			var lexErr *Error
			if !errors.As(err, &lexErr) {
				panic("scan returned non-lexical error")
			}
			res = append(res, result{Line: lexErr.Pos.Line, Col: lexErr.Pos.Col, Err: lexErr.Kind})
			continue
		}

		res = append(res, result{Type: tok.Type, Lexeme: tok.Lexeme, Line: tok.Pos.Line, Col: tok.Pos.Col})
	}
}

func tok(typ token.TokenType, lexeme string, line, col int) result {
	return result{Type: typ, Lexeme: lexeme, Line: line, Col: col}
}

func errAt(kind error, line, col int) result {
	return result{Line: line, Col: col, Err: kind}
}

var cmpErrors = cmp.Comparer(func(a, b error) bool { return a == b })

func TestUseStatement(t *testing.T) {
	got := scanResults("use anyhow::{Context, Result};")
	expect := []result{
		tok(token.IDENT, "use", 1, 3),
		tok(token.IDENT, "anyhow", 1, 10),
		errAt(ErrUnexpectedChar, 1, 11),
		errAt(ErrUnexpectedChar, 1, 12),
		tok(token.LBRACE, "{", 1, 13),
		tok(token.IDENT, "Context", 1, 20),
		tok(token.COMMA, ",", 1, 21),
		tok(token.IDENT, "Result", 1, 28),
		tok(token.RBRACE, "}", 1, 29),
		tok(token.SEMI, ";", 1, 30),
	}

	if diff := cmp.Diff(expect, got, cmpErrors); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
}

func TestOperators(t *testing.T) {
	got := scanResults("! != = == < <= > >= / * - + . ,")
	expect := []token.TokenType{
		token.NOT, token.NOT_EQ, token.EQ, token.EQ_EQ,
		token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ,
		token.SLASH, token.STAR, token.MINUS, token.PLUS, token.DOT, token.COMMA,
	}

	if len(got) != len(expect) {
		t.Fatalf("expected %d tokens, got %d", len(expect), len(got))
	}

	for i, typ := range expect {
		if got[i].Type != typ {
			t.Errorf("token %d: expected %s, got %s", i, typ, got[i].Type)
		}
	}
}

func TestMaximalMunch(t *testing.T) {
	got := scanResults("a<=b==c")
	expect := []result{
		tok(token.IDENT, "a", 1, 1),
		tok(token.LESS_EQ, "<=", 1, 3),
		tok(token.IDENT, "b", 1, 4),
		tok(token.EQ_EQ, "==", 1, 6),
		tok(token.IDENT, "c", 1, 7),
	}

	if diff := cmp.Diff(expect, got, cmpErrors); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
}

func TestKeywords(t *testing.T) {
	for name, typ := range token.Keywords {
		got := scanResults(name)
		if len(got) != 1 || got[0].Type != typ {
			t.Errorf("%s: expected single %s token, got %v", name, typ, got)
		}
	}

	got := scanResults("variable _under score9 aün")
	for i, r := range got {
		if r.Type != token.IDENT {
			t.Errorf("token %d: expected identifier, got %s", i, r.Type)
		}
	}
	if len(got) != 4 {
		t.Errorf("expected 4 identifiers, got %d", len(got))
	}
}

func TestNumbers(t *testing.T) {
	cases := []string{"0", "7", "42", "3.14", "0.5", "123456.789", "10.0"}

	for _, src := range cases {
		s := New(src)
		tk, err := s.Scan()
		if err != nil {
			t.Fatalf("%s: unexpected error %s", src, err)
		}

		expect, _ := strconv.ParseFloat(src, 64)
		if tk.Type != token.NUMBER || tk.Num != expect {
			t.Errorf("%s: expected number %v, got %s %v", src, expect, tk.Type, tk.Num)
		}

		if _, err := s.Scan(); err != io.EOF {
			t.Errorf("%s: expected single token, got %v", src, err)
		}
	}
}

func TestNumberOverflow(t *testing.T) {
	src := strings.Repeat("9", 400) + ".5"
	s := New(src)

	tk, err := s.Scan()
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if tk.Type != token.NUMBER || !math.IsInf(tk.Num, 1) {
		t.Errorf("expected +Inf number, got %s %v", tk.Type, tk.Num)
	}
	if tk.Pos.Col != len(src) {
		t.Errorf("expected col %d, got %d", len(src), tk.Pos.Col)
	}

	if _, err := s.Scan(); err != io.EOF {
		t.Errorf("expected single token, got %v", err)
	}
}

func TestTrailingDot(t *testing.T) {
	got := scanResults("12.")
	expect := []result{
		tok(token.NUMBER, "12", 1, 2),
		tok(token.DOT, ".", 1, 3),
	}

	if diff := cmp.Diff(expect, got, cmpErrors); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
}

func TestFloatParseError(t *testing.T) {
	// Non-ascii digits continue a number but are rejected by ParseFloat.
	s := New("1٣ + 1")
	_, err := s.Scan()

	var lexErr *Error
	if !errors.As(err, &lexErr) || !errors.Is(err, ErrFloatParse) {
		t.Fatalf("expected float parse error, got %v", err)
	}
	if lexErr.Lexeme != "1٣" {
		t.Errorf("expected lexeme 1٣, got %s", lexErr.Lexeme)
	}

	// Scanning resumes after the bad literal.
	tk, err := s.Scan()
	if err != nil || tk.Type != token.PLUS {
		t.Errorf("expected plus after error, got %v %v", tk, err)
	}
}

func TestStrings(t *testing.T) {
	s := New("\"hello world\" \"\"")

	tk, err := s.Scan()
	if err != nil {
		t.Fatal(err)
	}
	if tk.Type != token.STRING || tk.Str != "hello world" || tk.Lexeme != "\"hello world\"" {
		t.Errorf("bad string token %v (%q)", tk, tk.Str)
	}
	if tk.Pos.Col != 13 {
		t.Errorf("expected col 13, got %d", tk.Pos.Col)
	}

	tk, err = s.Scan()
	if err != nil || tk.Str != "" {
		t.Errorf("expected empty string, got %v %v", tk, err)
	}
}

func TestMultilineString(t *testing.T) {
	got := scanResults("\"a\nbc\" x")
	expect := []result{
		tok(token.STRING, "\"a\nbc\"", 2, 3),
		tok(token.IDENT, "x", 2, 5),
	}

	if diff := cmp.Diff(expect, got, cmpErrors); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
}

func TestUnterminatedString(t *testing.T) {
	got := scanResults("print \"oops")
	expect := []result{
		tok(token.PRINT, "print", 1, 5),
		errAt(ErrUnterminatedString, 1, 11),
	}

	if diff := cmp.Diff(expect, got, cmpErrors); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
}

func TestCommentsAndLines(t *testing.T) {
	src := "var a; // trailing comment\n  a = 1 / 2;\n// only comment"
	got := scanResults(src)
	expect := []result{
		tok(token.VAR, "var", 1, 3),
		tok(token.IDENT, "a", 1, 5),
		tok(token.SEMI, ";", 1, 6),
		tok(token.IDENT, "a", 2, 3),
		tok(token.EQ, "=", 2, 5),
		tok(token.NUMBER, "1", 2, 7),
		tok(token.SLASH, "/", 2, 9),
		tok(token.NUMBER, "2", 2, 11),
		tok(token.SEMI, ";", 2, 12),
	}

	if diff := cmp.Diff(expect, got, cmpErrors); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScanAll(t *testing.T) {
	s := New("a # b @ c")
	toks := s.ScanAll()

	if len(toks) != 3 {
		t.Errorf("expected 3 tokens, got %d", len(toks))
	}
	if s.NumErrors != 2 || len(s.Errors()) != 2 {
		t.Errorf("expected 2 errors, got %d", s.NumErrors)
	}
	if !errors.Is(s.Error(), ErrUnexpectedChar) {
		t.Errorf("expected unexpected character error, got %v", s.Error())
	}

	var lexErr *Error
	if !errors.As(s.Errors()[1], &lexErr) || lexErr.Char != '@' {
		t.Errorf("expected '@', got %q", lexErr.Char)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, src := range []string{"", "   \n\t ", "// nothing"} {
		s := New(src)
		if _, err := s.Scan(); err != io.EOF {
			t.Errorf("%q: expected EOF, got %v", src, err)
		}
	}
}
