package tagexpr

// Stack is a minimal LIFO used by the shunting-yard driver for both the
// operator stack and the expression stack.
//
// Pop and Peek panic when the stack is empty. The driver keeps a sentinel at
// the bottom of the operator stack, so an empty-stack access is always a
// programming error and never a user-facing condition.
type Stack[T any] struct {
	elements []T
}

// NewStack creates an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places element on top of the stack.
func (s *Stack[T]) Push(element T) {
	s.elements = append(s.elements, element)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() T {
	top := s.Peek()

	var zero T

	last := len(s.elements) - 1
	s.elements[last] = zero
	s.elements = s.elements[:last]

	return top
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() T {
	if s.IsEmpty() {
		panic("tagexpr: access to an empty stack")
	}

	return s.elements[len(s.elements)-1]
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

// Size returns the number of elements on the stack.
func (s *Stack[T]) Size() int {
	return len(s.elements)
}
