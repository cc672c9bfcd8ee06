// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/lum/internal/common/errs"
)

// The stack type is one of a task's bounded stacks. It grows on demand and
// reports a CapacityExceeded error instead of growing past its limit.
type stack[E any] struct {
	items []E
	limit int
	name  string
}

func newStack[E any](name string, limit int) stack[E] {
	return stack[E]{name: name, limit: limit}
}

// At returns the element at index i counting from the bottom.
func (s *stack[E]) At(i int) E {
	return s.items[i]
}

// Len returns the current depth of the stack.
func (s *stack[E]) Len() int {
	return len(s.items)
}

// Peek returns the element offset places below the top (0 is the top).
func (s *stack[E]) Peek(offset int) (e E, ok bool) {
	i := len(s.items) - 1 - offset
	if offset < 0 || i < 0 {
		return e, false
	}

	return s.items[i], true
}

// Pop removes and returns the top element.
func (s *stack[E]) Pop() E {
	var zero E

	n := len(s.items) - 1
	e := s.items[n]
	s.items[n] = zero
	s.items = s.items[:n]

	return e
}

// Push adds e to the top of the stack.
func (s *stack[E]) Push(e E) error {
	if s.limit > 0 && len(s.items) >= s.limit {
		return errs.CapacityExceeded.New(
			"%s stack capacity of %d exceeded", s.name, s.limit,
		)
	}

	s.items = append(s.items, e)

	return nil
}

// Top returns the top element, if any.
func (s *stack[E]) Top() (e E, ok bool) {
	return s.Peek(0)
}

// Truncate pops elements until the stack is n deep.
func (s *stack[E]) Truncate(n int) {
	var zero E

	for i := n; i < len(s.items); i++ {
		s.items[i] = zero
	}

	if n < len(s.items) {
		s.items = s.items[:n]
	}
}
