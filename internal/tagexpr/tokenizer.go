package tagexpr

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Literal spellings of the two keyword expressions. The tokenizer and the
// leaf conversion match them case-insensitively.
const (
	AnyLiteral  = "any()"
	NoneLiteral = "none()"
)

var keywordLiterals = []string{AnyLiteral, NoneLiteral}

// Tokenizer splits a tag expression into positioned tokens.
//
// At each step it matches, in order of preference:
//  1. the keyword literals any() and none(), case-insensitively
//  2. one of the structural characters ( ) ! & |
//  3. a maximal run of characters that are neither whitespace nor structural (a tag literal)
//
// Whitespace is never a token of its own: it is attached to the token that follows it.
// Trailing whitespace at the end of the input is dropped.
type Tokenizer struct {
	input    string
	position int
}

// NewTokenizer creates a new Tokenizer for the given input string.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokenize returns all tokens of the input in order. An empty input yields no tokens.
func Tokenize(input string) []Token {
	var (
		tokenizer = NewTokenizer(input)
		tokens    []Token
	)

	for {
		token, ok := tokenizer.NextToken()
		if !ok {
			return tokens
		}

		tokens = append(tokens, token)
	}
}

// NextToken reads and returns the next token. It returns false once the
// input is exhausted.
func (t *Tokenizer) NextToken() (Token, bool) {
	start := t.position

	t.skipWhitespace()

	if t.position >= len(t.input) {
		return Token{}, false
	}

	switch {
	case t.readKeyword():
	case isStructuralChar(rune(t.input[t.position])):
		t.position++
	default:
		t.readTagLiteral()
	}

	return NewToken(start, t.input[start:t.position]), true
}

// skipWhitespace advances over whitespace characters.
func (t *Tokenizer) skipWhitespace() {
	for t.position < len(t.input) {
		ch, size := utf8.DecodeRuneInString(t.input[t.position:])
		if !unicode.IsSpace(ch) {
			return
		}

		t.position += size
	}
}

// readKeyword consumes any() or none() if the input continues with one of them.
func (t *Tokenizer) readKeyword() bool {
	rest := t.input[t.position:]

	for _, keyword := range keywordLiterals {
		if len(rest) >= len(keyword) && strings.EqualFold(rest[:len(keyword)], keyword) {
			t.position += len(keyword)
			return true
		}
	}

	return false
}

// readTagLiteral consumes characters up to the next whitespace or structural character.
func (t *Tokenizer) readTagLiteral() {
	for t.position < len(t.input) {
		ch, size := utf8.DecodeRuneInString(t.input[t.position:])
		if unicode.IsSpace(ch) || isStructuralChar(ch) {
			return
		}

		t.position += size
	}
}

// isStructuralChar returns true for the parentheses and the operator characters.
func isStructuralChar(ch rune) bool {
	return ch == '(' || ch == ')' || ch == '!' || ch == '&' || ch == '|'
}
