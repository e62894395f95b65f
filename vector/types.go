// SPDX-License-Identifier: MIT

package vector

import (
	"errors"

	"github.com/jlzhjp/algorithms/buffer"
)

// Sentinel errors for vector operations.
var (
	// ErrIndexOutOfRange indicates an index or position outside the valid range.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidRange indicates first > last, a negative count or a negative length.
	ErrInvalidRange = errors.New("vector: invalid range")
)

// Option configures a Vector at construction time.
type Option[T any] func(*Options[T])

// Options holds the construction parameters of a Vector.
type Options[T any] struct {
	// Capacity is the number of slots allocated up front.
	Capacity int

	// Allocator supplies storage and element construction.
	Allocator buffer.Allocator[T]
}

// DefaultOptions returns Options with:
//   - Capacity = buffer.SpareSpace
//   - Allocator = buffer.HeapAllocator[T]
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Capacity:  buffer.SpareSpace,
		Allocator: buffer.HeapAllocator[T]{},
	}
}

// WithCapacity sets the initial capacity. A negative value makes New fail
// with buffer.ErrAllocationFailure.
func WithCapacity[T any](n int) Option[T] {
	return func(o *Options[T]) {
		o.Capacity = n
	}
}

// WithAllocator sets the storage strategy. A nil allocator has no effect.
func WithAllocator[T any](a buffer.Allocator[T]) Option[T] {
	return func(o *Options[T]) {
		if a != nil {
			o.Allocator = a
		}
	}
}
