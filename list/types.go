// SPDX-License-Identifier: MIT

package list

import (
	"errors"

	"github.com/jlzhjp/algorithms/buffer"
)

// Sentinel errors for list operations.
var (
	// ErrEmptyList is returned by TryPopFront and TryPopBack on an empty list.
	ErrEmptyList = errors.New("list: empty list")

	// ErrForeignElement indicates a position that does not belong to the list.
	ErrForeignElement = errors.New("list: element not in list")

	// ErrInvalidRange indicates a negative count or length, or an erase range
	// whose end does not follow its start.
	ErrInvalidRange = errors.New("list: invalid range")
)

// Option configures a List at construction time.
type Option[T any] func(*Options[T])

// Options holds the construction parameters of a List.
type Options[T any] struct {
	// Allocator supplies the storage of every element.
	Allocator buffer.Allocator[T]
}

// DefaultOptions returns Options with Allocator = buffer.HeapAllocator[T].
func DefaultOptions[T any]() Options[T] {
	return Options[T]{Allocator: buffer.HeapAllocator[T]{}}
}

// WithAllocator sets the storage strategy. A nil allocator has no effect.
func WithAllocator[T any](a buffer.Allocator[T]) Option[T] {
	return func(o *Options[T]) {
		if a != nil {
			o.Allocator = a
		}
	}
}
