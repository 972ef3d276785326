package token

type TokenType int

const (
	EOF TokenType = iota

	// Single character punctuation and operators
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMI
	SLASH
	STAR

	// One or two character operators
	NOT
	NOT_EQ
	EQ
	EQ_EQ
	GREATER
	GREATER_EQ
	LESS
	LESS_EQ

	// Literals
	IDENT
	STRING
	NUMBER

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FOR
	FUN
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE

	// Consumed by the scanner, never returned
	COMMENT
	WHITESPACE
)

var Keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

var SingleSymbols = map[rune]TokenType{
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	',': COMMA,
	'.': DOT,
	'-': MINUS,
	'+': PLUS,
	';': SEMI,
	'*': STAR,
}

// DoubleSymbols maps the first character of an operator that may be
// followed by '=' to its one and two character types.
var DoubleSymbols = map[rune][2]TokenType{
	'!': {NOT, NOT_EQ},
	'=': {EQ, EQ_EQ},
	'<': {LESS, LESS_EQ},
	'>': {GREATER, GREATER_EQ},
}

var typeNames = [...]string{
	EOF:        "end of input",
	LPAREN:     "'('",
	RPAREN:     "')'",
	LBRACE:     "'{'",
	RBRACE:     "'}'",
	COMMA:      "','",
	DOT:        "'.'",
	MINUS:      "'-'",
	PLUS:       "'+'",
	SEMI:       "';'",
	SLASH:      "'/'",
	STAR:       "'*'",
	NOT:        "'!'",
	NOT_EQ:     "'!='",
	EQ:         "'='",
	EQ_EQ:      "'=='",
	GREATER:    "'>'",
	GREATER_EQ: "'>='",
	LESS:       "'<'",
	LESS_EQ:    "'<='",
	IDENT:      "identifier",
	STRING:     "string",
	NUMBER:     "number",
	AND:        "and",
	CLASS:      "class",
	ELSE:       "else",
	FALSE:      "false",
	FOR:        "for",
	FUN:        "fun",
	IF:         "if",
	NIL:        "nil",
	OR:         "or",
	PRINT:      "print",
	RETURN:     "return",
	SUPER:      "super",
	THIS:       "this",
	TRUE:       "true",
	VAR:        "var",
	WHILE:      "while",
	COMMENT:    "comment",
	WHITESPACE: "whitespace",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// IsKeyword reports whether t is one of the reserved words.
func (t TokenType) IsKeyword() bool {
	return t >= AND && t <= WHILE
}
