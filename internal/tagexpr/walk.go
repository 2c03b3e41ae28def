package tagexpr

import "slices"

// WalkExpressions traverses the expression tree depth-first, calling fn for each node.
// The traversal continues to child nodes only if fn returns true.
func WalkExpressions(expr Expression, fn func(Expression) bool) {
	if expr == nil {
		return
	}

	if !fn(expr) {
		return
	}

	switch node := expr.(type) {
	case *Not:
		WalkExpressions(node.Inner, fn)
	case *And:
		WalkExpressions(node.Left, fn)
		WalkExpressions(node.Right, fn)
	case *Or:
		WalkExpressions(node.Left, fn)
		WalkExpressions(node.Right, fn)
	}
}

// Tags returns the distinct tag names referenced by expr, sorted.
func Tags(expr Expression) []string {
	var names []string

	WalkExpressions(expr, func(e Expression) bool {
		if tag, ok := e.(*Tag); ok && !slices.Contains(names, tag.Name) {
			names = append(names, tag.Name)
		}

		return true
	})

	slices.Sort(names)

	return names
}
