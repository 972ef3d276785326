package token

import "fmt"

type Token struct {
	Type   TokenType
	Lexeme string  // The token as it appears in the source
	Str    string  // Text between the quotes for STRING tokens
	Num    float64 // Parsed value for NUMBER tokens
	Pos    Pos     // Position of last character in token
}

func (t Token) String() string {
	return fmt.Sprintf("{%s '%s' l:%d c:%d}", t.Type, t.Lexeme, t.Pos.Line, t.Pos.Col)
}

// Is reports whether the token has type typ. Only the type tag is compared,
// so any identifier matches IDENT regardless of its name.
func (t Token) Is(typ TokenType) bool {
	return t.Type == typ
}

type Pos struct {
	Line int // Line number, starting at 1
	Col  int // Column of character, 1 being the first on the line
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d: col %d", p.Line, p.Col)
}
