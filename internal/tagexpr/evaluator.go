package tagexpr

import (
	"fmt"
	"slices"
)

// TagSet is the set of tags a candidate item carries. Tag comparison is exact string equality.
type TagSet map[string]struct{}

// NewTagSet creates a TagSet holding tags.
func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}

	return set
}

// Contains reports whether tag is in the set.
func (s TagSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int {
	return len(s)
}

// Slice returns the tags in sorted order.
func (s TagSet) Slice() []string {
	tags := make([]string, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}

	slices.Sort(tags)

	return tags
}

// Evaluate reports whether tags satisfy expr.
func Evaluate(expr Expression, tags TagSet) bool {
	switch node := expr.(type) {
	case *Tag:
		return tags.Contains(node.Name)
	case *Not:
		return !Evaluate(node.Inner, tags)
	case *And:
		return Evaluate(node.Left, tags) && Evaluate(node.Right, tags)
	case *Or:
		return Evaluate(node.Left, tags) || Evaluate(node.Right, tags)
	case *Any:
		return tags.Len() > 0
	case *None:
		return tags.Len() == 0
	}

	panic(fmt.Sprintf("tagexpr: unknown expression type %T", expr))
}

// Matches is a shorthand for Evaluate(expr, NewTagSet(tags...)).
func Matches(expr Expression, tags ...string) bool {
	return Evaluate(expr, NewTagSet(tags...))
}
