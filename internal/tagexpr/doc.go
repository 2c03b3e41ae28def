// Package tagexpr compiles textual tag expressions such as "fast & !slow" into
// predicates over a set of tags.
//
// # Syntax
//
//	expr    := orExpr
//	orExpr  := andExpr ( '|' andExpr )*
//	andExpr := notExpr ( '&' notExpr )*
//	notExpr := '!' notExpr | atom
//	atom    := '(' expr ')' | TAG | 'any()' | 'none()'
//
// A TAG is any run of characters without whitespace, parentheses, '!', '&' or '|'.
// Tags compare with exact, case-sensitive equality, while the keywords any()
// and none() are recognised in any letter case. any() matches a non-empty tag
// set, none() matches only the empty one.
//
// # Operator Precedence
//
// From highest to lowest:
//  1. ! (negation, right associative)
//  2. & (and, left associative)
//  3. | (or, left associative)
//
// Parentheses override precedence: "(a | b) & c".
//
// # Implementation
//
// The Tokenizer (tokenizer.go) produces positioned tokens; leading whitespace
// is kept in the token so token spans stay contiguous. The shunting-yard driver
// (shunting_yard.go) consumes them with an operator stack, bottomed by a
// sentinel operator of minimal precedence, and an expression stack. Operators
// (operator.go) combine operands while checking token order, which is how two
// adjacent tags with no operator between them are reported.
//
// Parse returns a ParseResult holding either the Expression or a ParseError
// with a position-addressed message:
//
//	&       -> "& at <0> missing lhs and rhs operand"
//	a &     -> "& at <2> missing rhs operand"
//	(a      -> "( at <0> missing closing parenthesis"
//	a)      -> ") at <1> missing opening parenthesis"
//	a b     -> "missing operator between a <0> and b <2>"
//
// # Usage
//
//	expr, err := tagexpr.Compile("fast & !slow")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tagexpr.Evaluate(expr, tagexpr.NewTagSet("fast")) // true
//
// Compiled expressions are immutable and safe for concurrent use.
package tagexpr
