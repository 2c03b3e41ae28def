package tagexpr

import "fmt"

// ErrorCode categorizes parse errors for titles and hint lookup.
type ErrorCode int

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodeEmptyExpression
	ErrorCodeMissingOperand
	ErrorCodeMissingOpeningParenthesis
	ErrorCodeMissingClosingParenthesis
	ErrorCodeMissingOperator
)

// Messages used to build parse errors.
const (
	msgEmptyExpression           = "empty tag expression"
	msgMissingOpeningParenthesis = "missing opening parenthesis"
	msgMissingClosingParenthesis = "missing closing parenthesis"
	msgMissingRhsOperand         = "missing rhs operand"
	msgMissingLhsOperand         = "missing lhs operand"
	msgMissingLhsAndRhsOperand   = "missing lhs and rhs operand"
	msgProblemParsing            = "problem parsing"
	msgMissingOperatorBetween    = "missing operator between"
)

// ParseError describes why a tag expression could not be compiled.
type ParseError struct {
	// Message is the user facing description, e.g. "& at <2> missing rhs operand".
	Message string
	// Query is the expression that failed to parse.
	Query string
	// TokenLiteral is the trimmed text of the offending token.
	TokenLiteral string
	// Position is the offset of the offending token in Query.
	Position int
	Code     ErrorCode
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse tag expression %q: %s", e.Query, e.Message)
}

// Title returns a short, high level description of the error category.
func (e *ParseError) Title() string {
	switch e.Code {
	case ErrorCodeEmptyExpression:
		return "Empty expression"
	case ErrorCodeMissingOperand:
		return "Missing operand"
	case ErrorCodeMissingOpeningParenthesis, ErrorCodeMissingClosingParenthesis:
		return "Unbalanced parentheses"
	case ErrorCodeMissingOperator:
		return "Missing operator"
	case ErrorCodeUnknown:
		return "Unexpected token"
	}

	return "Unexpected token"
}

// errorAt builds an error located at token in the form "<symbol> at <pos> <problem>".
func errorAt(token Token, symbol, problem string, code ErrorCode) *ParseError {
	position := token.TrimmedPosition()

	return &ParseError{
		Message:      fmt.Sprintf("%s at %s %s", symbol, formatPosition(position), problem),
		TokenLiteral: symbol,
		Position:     position,
		Code:         code,
	}
}

func emptyTagExpression() *ParseError {
	return &ParseError{Message: msgEmptyExpression, Code: ErrorCodeEmptyExpression}
}

func missingOpeningParenthesis(token Token, symbol string) *ParseError {
	return errorAt(token, symbol, msgMissingOpeningParenthesis, ErrorCodeMissingOpeningParenthesis)
}

func missingClosingParenthesis(token Token, symbol string) *ParseError {
	return errorAt(token, symbol, msgMissingClosingParenthesis, ErrorCodeMissingClosingParenthesis)
}

func missingOperand(token Token, symbol, problem string) *ParseError {
	return errorAt(token, symbol, problem, ErrorCodeMissingOperand)
}

func missingRhsOperand(token Token, symbol string) *ParseError {
	return missingOperand(token, symbol, msgMissingRhsOperand)
}

func problemParsing(token Token, symbol string) *ParseError {
	return errorAt(token, symbol, msgProblemParsing, ErrorCodeUnknown)
}

// missingOperatorBetween reports two adjacent expressions that no operator combines.
func missingOperatorBetween(lhs, rhs tokenWith[Expression]) *ParseError {
	lhsString := lhs.element.String()
	rhsString := rhs.element.String()
	rhsPosition := rhs.token.TrimmedPosition()

	return &ParseError{
		Message: fmt.Sprintf("%s %s %s and %s %s",
			msgMissingOperatorBetween,
			lhsString, formatPosition(lhs.token.TrimmedPosition()),
			rhsString, formatPosition(rhsPosition),
		),
		TokenLiteral: rhsString,
		Position:     rhsPosition,
		Code:         ErrorCodeMissingOperator,
	}
}

func formatPosition(position int) string {
	return fmt.Sprintf("<%d>", position)
}
