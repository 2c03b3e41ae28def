package tagexpr

import "strings"

// Token is a lexical unit of a tag expression.
//
// Literal holds the raw text of the token including any whitespace that
// preceded it in the input, so the literals of consecutive tokens cover the
// input contiguously. Position is the byte offset of the first character of
// Literal.
type Token struct {
	Literal  string
	Position int
}

// NewToken creates a new Token.
func NewToken(position int, literal string) Token {
	return Token{Literal: literal, Position: position}
}

// Trimmed returns the token text without surrounding whitespace.
func (t Token) Trimmed() string {
	return strings.TrimSpace(t.Literal)
}

// TrimmedPosition returns the offset of the first non-whitespace character of the token.
// This is the position reported in error messages.
func (t Token) TrimmedPosition() int {
	return t.Position + strings.Index(t.Literal, t.Trimmed())
}

// LastPosition returns the offset of the last character covered by the token.
func (t Token) LastPosition() int {
	return t.Position + len(t.Literal) - 1
}

// IsLeftOf reports whether the token ends before other starts.
func (t Token) IsLeftOf(other Token) bool {
	return t.LastPosition() < other.Position
}

// Concat returns a token spanning t followed by right, used to track the source
// span of an expression derived from several tokens.
func (t Token) Concat(right Token) Token {
	return NewToken(t.Position, t.Literal+right.Literal)
}
