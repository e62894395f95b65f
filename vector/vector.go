// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"iter"

	"github.com/jlzhjp/algorithms/buffer"
)

// Vector is a resizable, contiguous sequence of T. It owns exactly one
// buffer.Buffer and never shares it with another Vector.
//
// A Vector must not be copied after first use: a copy would share the
// buffer. Use Clone for an independent copy and Take to move one.
type Vector[T any] struct {
	buf *buffer.Buffer[T]
}

// New creates an empty vector configured by opts.
//
// Errors:
//   - whatever the allocator returns for the initial capacity
//     (buffer.ErrAllocationFailure for the bundled allocators).
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	buf, err := buffer.New(o.Allocator, o.Capacity)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{buf: buf}, nil
}

// Of creates a heap-backed vector holding vals, with capacity
// len(vals)+buffer.SpareSpace.
func Of[T any](vals ...T) *Vector[T] {
	v, err := OfWith[T](nil, vals...)
	if err != nil {
		// The heap allocator cannot refuse a region sized from an existing slice.
		panic(err)
	}

	return v
}

// OfWith is Of with an explicit allocator. A nil alloc means the heap.
func OfWith[T any](alloc buffer.Allocator[T], vals ...T) (*Vector[T], error) {
	buf, err := buffer.New(alloc, len(vals)+buffer.SpareSpace)
	if err != nil {
		return nil, err
	}
	if _, err = buffer.UninitializedCopy(buf.Allocator(), vals, buf.Slots()); err != nil {
		buf.Release()
		return nil, err
	}
	buf.SetLen(len(vals))

	return &Vector[T]{buf: buf}, nil
}

// store returns the backing buffer, creating an empty heap buffer for the
// zero Vector.
func (v *Vector[T]) store() *buffer.Buffer[T] {
	if v.buf == nil {
		v.buf = buffer.Empty[T](nil)
	}

	return v.buf
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.store().Len() }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return v.store().Cap() }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.store().Len() == 0 }

// Allocator returns the vector's storage strategy.
func (v *Vector[T]) Allocator() buffer.Allocator[T] { return v.store().Allocator() }

// At returns the element at index i.
//
// Errors:
//   - ErrIndexOutOfRange when i is outside [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	b := v.store()
	if i < 0 || i >= b.Len() {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, b.Len())
	}

	return *b.At(i), nil
}

// Get returns the element at index i. Panics when i is outside [0, Len()).
func (v *Vector[T]) Get(i int) T {
	return *v.Ref(i)
}

// Set replaces the element at index i. Panics when i is outside [0, Len()).
func (v *Vector[T]) Set(i int, x T) {
	*v.Ref(i) = x
}

// Ref returns a pointer to the element at index i. Panics when i is outside
// [0, Len()). The pointer is subject to the invalidation rules of Data.
func (v *Vector[T]) Ref(i int) *T {
	b := v.store()
	if i < 0 || i >= b.Len() {
		panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, b.Len()))
	}

	return b.At(i)
}

// Front returns the first element. Panics when the vector is empty.
func (v *Vector[T]) Front() T {
	if v.Empty() {
		panic("vector: Front on empty vector")
	}

	return *v.buf.At(0)
}

// Back returns the last element. Panics when the vector is empty.
func (v *Vector[T]) Back() T {
	if v.Empty() {
		panic("vector: Back on empty vector")
	}

	return *v.buf.At(v.buf.Len() - 1)
}

// Data returns a view of the elements in order. The view aliases the
// vector's storage; see the package documentation for when it is invalidated.
func (v *Vector[T]) Data() []T { return v.store().Live() }

// All iterates index/value pairs from front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, *v.buf.At(i)) {
				return
			}
		}
	}
}

// Values iterates values from front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(*v.buf.At(i)) {
				return
			}
		}
	}
}

// Backward iterates index/value pairs from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(i, *v.buf.At(i)) {
				return
			}
		}
	}
}

// Swap exchanges contents, capacity and allocator with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.store().Swap(other.store())
}

// Clone returns an independent copy with the same capacity and allocator.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	buf, err := v.store().Clone()
	if err != nil {
		return nil, err
	}

	return &Vector[T]{buf: buf}, nil
}

// CopyFrom replaces the contents of v with copies of src's elements, taking
// src's capacity and allocator. On error v is unchanged.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if src == v {
		return nil
	}
	c, err := src.store().Clone()
	if err != nil {
		return err
	}
	v.store().Swap(c)
	c.Release()

	return nil
}

// Take moves the contents of v into a new Vector and returns it. v is left
// empty with capacity 0 and keeps its allocator.
func (v *Vector[T]) Take() *Vector[T] {
	b := v.store()
	v.buf = buffer.Empty(b.Allocator())

	return &Vector[T]{buf: b}
}

// MoveFrom releases v's storage and adopts src's. src is left empty with
// capacity 0.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if src == v {
		return
	}
	v.store().Release()
	v.buf = src.Take().buf
}

// Release destroys every element and returns the storage to the allocator.
// The vector stays usable, empty with capacity 0. Releasing twice is a no-op.
func (v *Vector[T]) Release() {
	v.store().Release()
}

// String formats the elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}
