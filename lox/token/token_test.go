package token

import "testing"

func TestFindEndOfLine(t *testing.T) {
	src := []byte("hello there\nmy name is bob")

	// offset: expect
	cases := map[int]int{
		5:  11,
		14: 26,
	}

	for k, v := range cases {
		if n := findEndOfLine(src, k); n != v {
			t.Errorf("expected end=%d, got %d, for offset=%d", v, n, k)
		}
	}
}

func TestFileLine(t *testing.T) {
	file := NewFile("test.lox", "var a = 1;\n\nprint a;")
	if file.Err != nil {
		t.Fatalf("unexpected error: %s", file.Err)
	}

	cases := map[int]string{
		0: "",
		1: "var a = 1;",
		2: "",
		3: "print a;",
		4: "",
	}

	for line, expect := range cases {
		if s := file.Line(line); s != expect {
			t.Errorf("line %d: expected %q, got %q", line, expect, s)
		}
	}
}

func TestInvalidSource(t *testing.T) {
	file := NewFile("test.lox", 42)
	if file.Err == nil {
		t.Error("expected error for int source")
	}
	if len(file.Src) != 0 {
		t.Errorf("expected empty source, got %q", file.Src)
	}
}

func TestKeywords(t *testing.T) {
	if len(Keywords) != 16 {
		t.Errorf("expected 16 keywords, got %d", len(Keywords))
	}

	for name, typ := range Keywords {
		if !typ.IsKeyword() {
			t.Errorf("%s: expected keyword type, got %s", name, typ)
		}
		if typ.String() != name {
			t.Errorf("expected name %s, got %s", name, typ.String())
		}
	}
}

func TestTokenIs(t *testing.T) {
	a := Token{Type: IDENT, Lexeme: "foo"}
	b := Token{Type: IDENT, Lexeme: "bar"}

	if !a.Is(b.Type) {
		t.Error("expected identifiers to match by type")
	}
	if a.Is(STRING) {
		t.Error("expected identifier not to match string")
	}
}
