package tagexpr

import "strings"

// shuntingYard turns a token sequence into an expression tree using an
// operator stack and an expression stack.
type shuntingYard struct {
	operators   *Stack[tokenWith[*Operator]]
	expressions *Stack[tokenWith[Expression]]
	tokens      []Token
}

func newShuntingYard(tokens []Token) *shuntingYard {
	sy := &shuntingYard{
		operators:   NewStack[tokenWith[*Operator]](),
		expressions: NewStack[tokenWith[Expression]](),
		tokens:      tokens,
	}

	// The sentinel keeps the operator stack non-empty while tokens are consumed.
	sy.pushOperator(NewToken(-1, ""), sentinel)

	return sy
}

func (sy *shuntingYard) execute() ParseResult {
	for _, token := range sy.tokens {
		if err := sy.process(token); err != nil {
			return failure(err)
		}
	}

	if err := sy.consumeRemainingOperators(); err != nil {
		return failure(err)
	}

	if err := sy.ensureExactlyOneExpressionLeft(); err != nil {
		return failure(err)
	}

	return success(sy.expressions.Pop().element)
}

func (sy *shuntingYard) process(token Token) *ParseError {
	text := token.Trimmed()

	switch {
	case text == leftParenthesis.Symbol:
		sy.pushOperator(token, leftParenthesis)
		return nil
	case text == rightParenthesis.Symbol:
		return sy.findMatchingLeftParenthesis(token)
	}

	if op, ok := OperatorFor(text); ok {
		return sy.findOperands(token, op)
	}

	sy.expressions.Push(tokenWith[Expression]{element: leafExpression(text), token: token})

	return nil
}

// findMatchingLeftParenthesis combines operators until the ( opened before token is found.
func (sy *shuntingYard) findMatchingLeftParenthesis(token Token) *ParseError {
	for !sy.operators.IsEmpty() {
		top := sy.operators.Pop()
		if top.element == leftParenthesis {
			return nil
		}

		if err := sy.combine(top); err != nil {
			return err
		}
	}

	return missingOpeningParenthesis(token, rightParenthesis.Symbol)
}

// findOperands combines every stacked operator that binds at least as tightly
// as current before pushing current.
func (sy *shuntingYard) findOperands(token Token, current *Operator) *ParseError {
	for {
		previous := sy.operators.Peek().element

		if !current.hasLowerPrecedenceThan(previous) &&
			!(current.hasSamePrecedenceAs(previous) && current.isLeftAssociative()) {
			break
		}

		if err := sy.combine(sy.operators.Pop()); err != nil {
			return err
		}
	}

	sy.pushOperator(token, current)

	return nil
}

func (sy *shuntingYard) consumeRemainingOperators() *ParseError {
	for !sy.operators.IsEmpty() {
		top := sy.operators.Pop()
		if top.element == leftParenthesis {
			return missingClosingParenthesis(top.token, leftParenthesis.Symbol)
		}

		if err := sy.combine(top); err != nil {
			return err
		}
	}

	return nil
}

func (sy *shuntingYard) ensureExactlyOneExpressionLeft() *ParseError {
	switch sy.expressions.Size() {
	case 0:
		return emptyTagExpression()
	case 1:
		return nil
	}

	rhs := sy.expressions.Pop()
	lhs := sy.expressions.Pop()

	return missingOperatorBetween(lhs, rhs)
}

func (sy *shuntingYard) combine(op tokenWith[*Operator]) *ParseError {
	return op.element.createAndAddExpressionTo(sy.expressions, op.token)
}

func (sy *shuntingYard) pushOperator(token Token, op *Operator) {
	sy.operators.Push(tokenWith[*Operator]{element: op, token: token})
}

// leafExpression converts the text of a non-operator token into an expression.
func leafExpression(text string) Expression {
	switch {
	case strings.EqualFold(text, AnyLiteral):
		return &Any{}
	case strings.EqualFold(text, NoneLiteral):
		return &None{}
	}

	return &Tag{Name: text}
}
