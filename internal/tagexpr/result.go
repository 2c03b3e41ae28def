package tagexpr

// ParseResult is the outcome of Parse: either a compiled Expression or a
// ParseError, never both and never neither.
type ParseResult struct {
	expression Expression
	err        *ParseError
}

func success(expr Expression) ParseResult {
	return ParseResult{expression: expr}
}

func failure(err *ParseError) ParseResult {
	return ParseResult{err: err}
}

// IsSuccess reports whether the expression compiled.
func (r ParseResult) IsSuccess() bool {
	return r.err == nil
}

// Expression returns the compiled expression. It panics on a failed result.
func (r ParseResult) Expression() Expression {
	if r.err != nil {
		panic("tagexpr: Expression called on a failed parse result: " + r.err.Message)
	}

	return r.expression
}

// ErrorMessage returns the parse error message. It panics on a successful result.
func (r ParseResult) ErrorMessage() string {
	if r.err == nil {
		panic("tagexpr: ErrorMessage called on a successful parse result")
	}

	return r.err.Message
}

// Err returns the parse error, or nil on success.
func (r ParseResult) Err() *ParseError {
	return r.err
}
