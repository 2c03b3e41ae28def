package tagexpr_test

import (
	"testing"

	"github.com/gruntwork-io/tagexpr/internal/tagexpr"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []tagexpr.Token
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "blank input",
			input:    "  \t ",
			expected: nil,
		},
		{
			name:  "single tag",
			input: "fast",
			expected: []tagexpr.Token{
				tagexpr.NewToken(0, "fast"),
			},
		},
		{
			name:  "whitespace is attached to the following token",
			input: "  a & b",
			expected: []tagexpr.Token{
				tagexpr.NewToken(0, "  a"),
				tagexpr.NewToken(3, " &"),
				tagexpr.NewToken(5, " b"),
			},
		},
		{
			name:  "unicode spaces separate tags",
			input: "a\u00a0b\u2003c",
			expected: []tagexpr.Token{
				tagexpr.NewToken(0, "a"),
				tagexpr.NewToken(1, "\u00a0b"),
				tagexpr.NewToken(4, "\u2003c"),
			},
		},
		{
			name:  "trailing whitespace is dropped",
			input: "a   ",
			expected: []tagexpr.Token{
				tagexpr.NewToken(0, "a"),
			},
		},
		{
			name:  "structural characters split tags",
			input: "!(a|b)&c",
			expected: []tagexpr.Token{
				tagexpr.NewToken(0, "!"),
				tagexpr.NewToken(1, "("),
				tagexpr.NewToken(2, "a"),
				tagexpr.NewToken(3, "|"),
				tagexpr.NewToken(4, "b"),
				tagexpr.NewToken(5, ")"),
				tagexpr.NewToken(6, "&"),
				tagexpr.NewToken(7, "c"),
			},
		},
		{
			name:  "keywords are case insensitive",
			input: "ANY() | None()",
			expected: []tagexpr.Token{
				tagexpr.NewToken(0, "ANY()"),
				tagexpr.NewToken(5, " |"),
				tagexpr.NewToken(7, " None()"),
			},
		},
		{
			name:  "keyword prefix inside a tag",
			input: "anything",
			expected: []tagexpr.Token{
				tagexpr.NewToken(0, "anything"),
			},
		},
		{
			name:  "keyword followed by a tag",
			input: "any()x",
			expected: []tagexpr.Token{
				tagexpr.NewToken(0, "any()"),
				tagexpr.NewToken(5, "x"),
			},
		},
		{
			name:  "tags may contain punctuation",
			input: "team:core feature.v2",
			expected: []tagexpr.Token{
				tagexpr.NewToken(0, "team:core"),
				tagexpr.NewToken(9, " feature.v2"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tagexpr.Tokenize(tt.input))
		})
	}
}

func TestTokenizeCoversInput(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a & b",
		"  (fast | slow)  & !flaky",
		"none() |any()",
		"x\ty\nz",
	}

	for _, input := range inputs {
		var joined string
		for _, token := range tagexpr.Tokenize(input) {
			assert.Equal(t, len(joined), token.Position, "tokens of %q must be contiguous", input)
			joined += token.Literal
		}

		assert.Equal(t, input[:len(joined)], joined)
	}
}

func TestToken(t *testing.T) {
	t.Parallel()

	token := tagexpr.NewToken(3, "  fast")

	assert.Equal(t, "fast", token.Trimmed())
	assert.Equal(t, 5, token.TrimmedPosition())
	assert.Equal(t, 8, token.LastPosition())

	next := tagexpr.NewToken(9, " &")
	assert.True(t, token.IsLeftOf(next))
	assert.False(t, next.IsLeftOf(token))

	joined := token.Concat(next)
	assert.Equal(t, tagexpr.NewToken(3, "  fast &"), joined)
	assert.Equal(t, 10, joined.LastPosition())
}

func TestNextToken(t *testing.T) {
	t.Parallel()

	tokenizer := tagexpr.NewTokenizer("a |")

	token, ok := tokenizer.NextToken()
	assert.True(t, ok)
	assert.Equal(t, tagexpr.NewToken(0, "a"), token)

	token, ok = tokenizer.NextToken()
	assert.True(t, ok)
	assert.Equal(t, tagexpr.NewToken(1, " |"), token)

	_, ok = tokenizer.NextToken()
	assert.False(t, ok)
}
