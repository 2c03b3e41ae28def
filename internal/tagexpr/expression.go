package tagexpr

// Expression is a compiled tag expression. The set of implementations is
// closed: *Tag, *Not, *And, *Or, *Any and *None.
//
// Expressions are never mutated after parsing and may be evaluated
// concurrently from any number of goroutines.
type Expression interface {
	// expressionNode is a marker method to close the set of expression nodes.
	expressionNode()
	// String renders the expression in a form that parses back to an equivalent expression.
	String() string
}

// Tag matches when the tag set contains Name.
type Tag struct {
	Name string
}

func (t *Tag) expressionNode() {}
func (t *Tag) String() string  { return t.Name }

// Not negates Inner.
type Not struct {
	Inner Expression
}

func (n *Not) expressionNode() {}
func (n *Not) String() string  { return "!" + n.Inner.String() }

// And matches when both Left and Right match.
type And struct {
	Left  Expression
	Right Expression
}

func (a *And) expressionNode() {}
func (a *And) String() string {
	return "(" + a.Left.String() + " & " + a.Right.String() + ")"
}

// Or matches when Left or Right matches.
type Or struct {
	Left  Expression
	Right Expression
}

func (o *Or) expressionNode() {}
func (o *Or) String() string {
	return "(" + o.Left.String() + " | " + o.Right.String() + ")"
}

// Any matches any non-empty tag set.
type Any struct{}

func (a *Any) expressionNode() {}
func (a *Any) String() string  { return AnyLiteral }

// None matches only the empty tag set.
type None struct{}

func (n *None) expressionNode() {}
func (n *None) String() string  { return NoneLiteral }
