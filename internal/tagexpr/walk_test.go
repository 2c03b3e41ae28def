package tagexpr_test

import (
	"testing"

	"github.com/gruntwork-io/tagexpr/internal/tagexpr"
	"github.com/stretchr/testify/assert"
)

func TestWalkExpressions(t *testing.T) {
	t.Parallel()

	expr := tagexpr.MustCompile("a & !(b | any())")

	var visited []string

	tagexpr.WalkExpressions(expr, func(e tagexpr.Expression) bool {
		visited = append(visited, e.String())
		return true
	})

	assert.Equal(t, []string{
		"(a & !(b | any()))",
		"a",
		"!(b | any())",
		"(b | any())",
		"b",
		"any()",
	}, visited)
}

func TestWalkExpressionsStopsDescending(t *testing.T) {
	t.Parallel()

	expr := tagexpr.MustCompile("a & !(b | c)")

	var visited []string

	tagexpr.WalkExpressions(expr, func(e tagexpr.Expression) bool {
		visited = append(visited, e.String())

		_, isNot := e.(*tagexpr.Not)

		return !isNot
	})

	assert.Equal(t, []string{"(a & !(b | c))", "a", "!(b | c)"}, visited)
}

func TestTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr     string
		expected []string
	}{
		{expr: "a", expected: []string{"a"}},
		{expr: "b & a | !b", expected: []string{"a", "b"}},
		{expr: "any() | none()", expected: nil},
		{expr: "(x | y) & (y | z)", expected: []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tagexpr.Tags(tagexpr.MustCompile(tt.expr)), tt.expr)
	}
}
