package tagexpr_test

import (
	"testing"

	"github.com/gruntwork-io/tagexpr/internal/tagexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	t.Parallel()

	stack := tagexpr.NewStack[int]()
	assert.True(t, stack.IsEmpty())
	assert.Equal(t, 0, stack.Size())

	stack.Push(1)
	stack.Push(2)
	stack.Push(3)

	assert.False(t, stack.IsEmpty())
	assert.Equal(t, 3, stack.Size())
	assert.Equal(t, 3, stack.Peek())
	assert.Equal(t, 3, stack.Size(), "peek must not remove the element")

	assert.Equal(t, 3, stack.Pop())
	assert.Equal(t, 2, stack.Pop())
	assert.Equal(t, 1, stack.Pop())
	assert.True(t, stack.IsEmpty())
}

func TestStackEmptyAccessPanics(t *testing.T) {
	t.Parallel()

	stack := tagexpr.NewStack[string]()

	require.PanicsWithValue(t, "tagexpr: access to an empty stack", func() { stack.Pop() })
	require.PanicsWithValue(t, "tagexpr: access to an empty stack", func() { stack.Peek() })
}
