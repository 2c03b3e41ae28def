package tagexpr

import "github.com/gruntwork-io/tagexpr/internal/errors"

// Parse compiles a tag expression.
//
// An empty or blank input fails with "empty tag expression". The exact
// spellings "any()" and "none()" short-circuit the tokenizer.
func Parse(text string) ParseResult {
	switch text {
	case AnyLiteral:
		return success(&Any{})
	case NoneLiteral:
		return success(&None{})
	}

	result := newShuntingYard(Tokenize(text)).execute()
	if result.err != nil {
		result.err.Query = text
	}

	return result
}

// Compile parses text and returns the compiled expression.
// The returned error wraps a *ParseError.
func Compile(text string) (Expression, error) {
	result := Parse(text)
	if !result.IsSuccess() {
		return nil, errors.New(result.Err())
	}

	return result.Expression(), nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(text string) Expression {
	expr, err := Compile(text)
	if err != nil {
		panic(err)
	}

	return expr
}
