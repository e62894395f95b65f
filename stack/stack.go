// SPDX-License-Identifier: MIT

package stack

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/jlzhjp/algorithms/vector"
)

// Stack is a LIFO view over one vector.Vector. The zero Stack is empty and
// ready to use. A Stack must not be copied after first use; use Clone or
// Take instead.
type Stack[T any] struct {
	items vector.Vector[T]
}

// New creates an empty stack. opts configure the underlying vector.
func New[T any](opts ...vector.Option[T]) (*Stack[T], error) {
	v, err := vector.New(opts...)
	if err != nil {
		return nil, err
	}

	return FromVector(v), nil
}

// Of creates a heap-backed stack holding vals; the last value is the top.
func Of[T any](vals ...T) *Stack[T] {
	return FromVector(vector.Of(vals...))
}

// FromVector moves the contents of v into a new stack. v is left empty.
func FromVector[T any](v *vector.Vector[T]) *Stack[T] {
	s := &Stack[T]{}
	s.items.MoveFrom(v)

	return s
}

// Push places x on top.
func (s *Stack[T]) Push(x T) error {
	return s.items.PushBack(x)
}

// Pop removes and returns the top element. Panics when the stack is empty.
func (s *Stack[T]) Pop() T {
	if s.items.Empty() {
		panic("stack: Pop on empty stack")
	}
	top := s.items.Back()
	s.items.PopBack()

	return top
}

// TryPop is Pop returning ErrEmptyStack instead of panicking.
func (s *Stack[T]) TryPop() (T, error) {
	if s.items.Empty() {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.Pop(), nil
}

// Top returns the top element without removing it. Panics when the stack
// is empty.
func (s *Stack[T]) Top() T {
	if s.items.Empty() {
		panic("stack: Top on empty stack")
	}

	return s.items.Back()
}

// TryTop is Top returning ErrEmptyStack instead of panicking.
func (s *Stack[T]) TryTop() (T, error) {
	if s.items.Empty() {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.items.Back(), nil
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.items.Empty() }

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return s.items.Len() }

// Cap returns the capacity of the underlying vector.
func (s *Stack[T]) Cap() int { return s.items.Cap() }

// Swap exchanges the contents of two stacks in O(1).
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.items.Swap(&other.items)
}

// Clone returns an independent copy.
func (s *Stack[T]) Clone() (*Stack[T], error) {
	v, err := s.items.Clone()
	if err != nil {
		return nil, err
	}

	return FromVector(v), nil
}

// Take moves the contents into a new stack and leaves s empty.
func (s *Stack[T]) Take() *Stack[T] {
	return FromVector(s.items.Take())
}

// Values iterates from the top down to the bottom.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s.items.Backward() {
			if !yield(x) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Stack[T]) bool {
	return vector.Equal(&a.items, &b.items)
}

// Compare orders stacks lexicographically from bottom to top.
func Compare[T constraints.Ordered](a, b *Stack[T]) int {
	return vector.Compare(&a.items, &b.items)
}
