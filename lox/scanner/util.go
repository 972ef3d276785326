package scanner

import "unicode"

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isNum(c rune) bool {
	return c >= '0' && c <= '9'
}

// Identifiers may continue with any letter or digit, not just ascii.
func isIdentChar(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r'
}
