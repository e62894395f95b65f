// SPDX-License-Identifier: MIT

package list

import (
	"fmt"
	"iter"

	"github.com/jlzhjp/algorithms/buffer"
)

// Element is a node of a List.
type Element[T any] struct {
	next, prev *Element[T]
	ring       *ring[T]
	slot       []T // one-slot region from the list's allocator
}

// Next returns the following element, or nil at the end or once e has been
// erased.
func (e *Element[T]) Next() *Element[T] {
	if n := e.next; e.ring != nil && n != &e.ring.root {
		return n
	}

	return nil
}

// Prev returns the preceding element, or nil at the front or once e has
// been erased.
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.ring != nil && p != &e.ring.root {
		return p
	}

	return nil
}

// Value returns the stored value. Panics once e has been erased.
func (e *Element[T]) Value() T { return *e.Ref() }

// Ref returns a pointer to the stored value, valid until e is erased.
// Panics once e has been erased.
func (e *Element[T]) Ref() *T {
	if e.ring == nil {
		panic("list: access to an erased element")
	}

	return &e.slot[0]
}

// ring is the sentinel-headed circle shared by a List and its elements.
// root.next is the front and root.prev the back.
type ring[T any] struct {
	root  Element[T]
	len   int
	alloc buffer.Allocator[T]
}

func newRing[T any](alloc buffer.Allocator[T]) *ring[T] {
	if alloc == nil {
		alloc = buffer.HeapAllocator[T]{}
	}
	r := &ring[T]{alloc: alloc}
	r.root.next = &r.root
	r.root.prev = &r.root

	return r
}

// List is a doubly linked list of T. The zero List is empty and ready to
// use. A List must not be copied after first use; use Clone or Take
// instead.
type List[T any] struct {
	r *ring[T]
}

// New creates an empty list configured by opts.
func New[T any](opts ...Option[T]) *List[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	return &List[T]{r: newRing(o.Allocator)}
}

// Of creates a heap-backed list holding vals in order.
func Of[T any](vals ...T) *List[T] {
	l := New[T]()
	if _, err := l.InsertSlice(nil, vals...); err != nil {
		// The heap allocator never refuses a one-slot region.
		panic(err)
	}

	return l
}

// Repeat creates a list holding count copies of x.
//
// Errors:
//   - ErrInvalidRange for a negative count.
//   - whatever the allocator returns.
func Repeat[T any](count int, x T, opts ...Option[T]) (*List[T], error) {
	l := New(opts...)
	if _, err := l.InsertN(nil, count, x); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *List[T]) state() *ring[T] {
	if l.r == nil {
		l.r = newRing[T](nil)
	}

	return l.r
}

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int { return l.state().len }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.state().len == 0 }

// Allocator returns the list's storage strategy.
func (l *List[T]) Allocator() buffer.Allocator[T] { return l.state().alloc }

// Front returns the first element, or nil when the list is empty.
func (l *List[T]) Front() *Element[T] {
	r := l.state()
	if r.len == 0 {
		return nil
	}

	return r.root.next
}

// Back returns the last element, or nil when the list is empty.
func (l *List[T]) Back() *Element[T] {
	r := l.state()
	if r.len == 0 {
		return nil
	}

	return r.root.prev
}

// All iterates index/value pairs from front to back. Erasing the current
// element ends the iteration.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for e := l.Front(); e != nil; e = e.Next() {
			if !yield(i, e.slot[0]) {
				return
			}
			i++
		}
	}
}

// Values iterates values from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range l.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward iterates index/value pairs from back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.Len() - 1
		for e := l.Back(); e != nil; e = e.Prev() {
			if !yield(i, e.slot[0]) {
				return
			}
			i--
		}
	}
}

// Swap exchanges contents and allocator with other in O(1). Elements keep
// belonging to the contents they were part of.
func (l *List[T]) Swap(other *List[T]) {
	l.state()
	other.state()
	l.r, other.r = other.r, l.r
}

// Clone returns an independent copy with the same allocator. On error
// nothing is leaked.
func (l *List[T]) Clone() (*List[T], error) {
	r := l.state()
	c := New(WithAllocator(r.alloc))
	vals := make([]T, 0, r.len)
	for x := range l.Values() {
		vals = append(vals, x)
	}
	if _, err := c.InsertSlice(nil, vals...); err != nil {
		return nil, err
	}

	return c, nil
}

// Take moves the contents of l into a new List and returns it. l is left
// empty and keeps its allocator.
func (l *List[T]) Take() *List[T] {
	r := l.state()
	l.r = newRing(r.alloc)

	return &List[T]{r: r}
}

// String formats the elements like a slice.
func (l *List[T]) String() string {
	vals := make([]T, 0, l.Len())
	for x := range l.Values() {
		vals = append(vals, x)
	}

	return fmt.Sprint(vals)
}
