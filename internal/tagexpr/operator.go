package tagexpr

import "math"

// Associativity decides how operators of equal precedence group.
type Associativity int

const (
	LeftAssociative Associativity = iota
	RightAssociative
)

// Operator precedences. Parentheses and the sentinel only drive the algorithm.
const (
	sentinelPrecedence         = math.MinInt
	leftParenthesisPrecedence  = -2
	rightParenthesisPrecedence = -1
	orPrecedence               = 1
	andPrecedence              = 2
	notPrecedence              = 3
)

// tokenWith pairs a stack element with the token span it was built from.
type tokenWith[T any] struct {
	element T
	token   Token
}

// combineFunc pops the operands of an operator from the expression stack and
// pushes the combined expression back, or reports why it cannot.
type combineFunc func(expressions *Stack[tokenWith[Expression]], operatorToken Token) *ParseError

// Operator describes one entry of the fixed operator catalog.
type Operator struct {
	combine       combineFunc
	Symbol        string
	Precedence    int
	Arity         int
	Associativity Associativity
}

var (
	notOperator = unaryOperator("!", notPrecedence, RightAssociative, func(inner Expression) Expression {
		return &Not{Inner: inner}
	})
	andOperator = binaryOperator("&", andPrecedence, LeftAssociative, func(lhs, rhs Expression) Expression {
		return &And{Left: lhs, Right: rhs}
	})
	orOperator = binaryOperator("|", orPrecedence, LeftAssociative, func(lhs, rhs Expression) Expression {
		return &Or{Left: lhs, Right: rhs}
	})

	leftParenthesis  = nullaryOperator("(", leftParenthesisPrecedence)
	rightParenthesis = nullaryOperator(")", rightParenthesisPrecedence)
	sentinel         = nullaryOperator("sentinel", sentinelPrecedence)
)

// operators is the public catalog, looked up by exact symbol text.
var operators = map[string]*Operator{
	notOperator.Symbol: notOperator,
	andOperator.Symbol: andOperator,
	orOperator.Symbol:  orOperator,
}

// IsOperator reports whether symbol is one of !, & or |.
func IsOperator(symbol string) bool {
	_, ok := operators[symbol]
	return ok
}

// OperatorFor returns the operator for symbol.
func OperatorFor(symbol string) (*Operator, bool) {
	op, ok := operators[symbol]
	return op, ok
}

func nullaryOperator(symbol string, precedence int) *Operator {
	return &Operator{
		Symbol:        symbol,
		Precedence:    precedence,
		Arity:         0,
		Associativity: LeftAssociative,
		combine: func(*Stack[tokenWith[Expression]], Token) *ParseError {
			return nil
		},
	}
}

func unaryOperator(symbol string, precedence int, associativity Associativity, create func(Expression) Expression) *Operator {
	return &Operator{
		Symbol:        symbol,
		Precedence:    precedence,
		Arity:         1,
		Associativity: associativity,
		combine: func(expressions *Stack[tokenWith[Expression]], operatorToken Token) *ParseError {
			rhs := expressions.Pop()

			if !operatorToken.IsLeftOf(rhs.token) {
				return missingRhsOperand(operatorToken, symbol)
			}

			expressions.Push(tokenWith[Expression]{
				element: create(rhs.element),
				token:   operatorToken.Concat(rhs.token),
			})

			return nil
		},
	}
}

func binaryOperator(symbol string, precedence int, associativity Associativity, create func(lhs, rhs Expression) Expression) *Operator {
	return &Operator{
		Symbol:        symbol,
		Precedence:    precedence,
		Arity:         2,
		Associativity: associativity,
		combine: func(expressions *Stack[tokenWith[Expression]], operatorToken Token) *ParseError {
			rhs := expressions.Pop()
			lhs := expressions.Pop()

			if lhs.token.IsLeftOf(operatorToken) && operatorToken.IsLeftOf(rhs.token) {
				expressions.Push(tokenWith[Expression]{
					element: create(lhs.element, rhs.element),
					token:   lhs.token.Concat(operatorToken).Concat(rhs.token),
				})

				return nil
			}

			if !operatorToken.IsLeftOf(rhs.token) {
				return missingRhsOperand(operatorToken, symbol)
			}

			// The lhs does not precede the operator: the two expressions were
			// adjacent in the input with nothing combining them.
			if !lhs.token.IsLeftOf(operatorToken) {
				return missingOperatorBetween(lhs, rhs)
			}

			// Unreachable while the tokens are ordered.
			return problemParsing(operatorToken, symbol)
		},
	}
}

// createAndAddExpressionTo combines the operands on top of expressions, first
// making sure enough of them are available.
func (op *Operator) createAndAddExpressionTo(expressions *Stack[tokenWith[Expression]], operatorToken Token) *ParseError {
	if expressions.Size() < op.Arity {
		return missingOperand(operatorToken, op.Symbol, op.missingOperandProblem(expressions, operatorToken))
	}

	return op.combine(expressions, operatorToken)
}

func (op *Operator) missingOperandProblem(expressions *Stack[tokenWith[Expression]], operatorToken Token) string {
	if op.Arity == 1 {
		return msgMissingRhsOperand
	}

	if op.Arity-expressions.Size() == 2 {
		return msgMissingLhsAndRhsOperand
	}

	// One operand is available: it is the lhs when it sits left of the operator.
	if operatorToken.IsLeftOf(expressions.Peek().token) {
		return msgMissingLhsOperand
	}

	return msgMissingRhsOperand
}

func (op *Operator) hasLowerPrecedenceThan(other *Operator) bool {
	return op.Precedence < other.Precedence
}

func (op *Operator) hasSamePrecedenceAs(other *Operator) bool {
	return op.Precedence == other.Precedence
}

func (op *Operator) isLeftAssociative() bool {
	return op.Associativity == LeftAssociative
}

func (op *Operator) String() string {
	return op.Symbol
}
