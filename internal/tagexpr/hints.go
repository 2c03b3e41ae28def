package tagexpr

// GetHint returns a single consolidated hint for a parse error, or "" when the message speaks for itself.
func GetHint(code ErrorCode, token string) string {
	switch code {
	case ErrorCodeMissingOperand:
		return getMissingOperandHint(token)
	case ErrorCodeMissingOperator:
		return "Whitespace does not combine tags. Join them with '&' (and) or '|' (or). e.g. 'fast & api'"
	case ErrorCodeMissingOpeningParenthesis:
		return "Unexpected ')' without matching '('. Remove it or open a group before it."
	case ErrorCodeMissingClosingParenthesis:
		return "Every '(' needs a matching ')'. e.g. '(fast | api) & !slow'"
	case ErrorCodeEmptyExpression:
		return "Use 'any()' to select items with at least one tag, or 'none()' to select untagged items."

	// These are errors that don't have obvious hints that can be offered.
	case ErrorCodeUnknown:
		return ""
	}

	return ""
}

func getMissingOperandHint(token string) string {
	switch token {
	case notOperator.Symbol:
		return "The '!' operator negates the expression on its right. e.g. '!slow'"
	case andOperator.Symbol, orOperator.Symbol:
		return "The '" + token + "' operator needs an expression on each side. e.g. 'fast " + token + " api'"
	}

	return ""
}
