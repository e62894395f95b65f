// SPDX-License-Identifier: MIT

package buffer

import "fmt"

// Buffer is an exclusively owned, contiguous region of Cap() slots of which
// the first Len() hold live elements.
//
// Invariants:
//   - 0 <= Len() <= Cap()
//   - the region is nil only when Cap() == 0
//   - every live element was placed by Allocator().Construct and is removed
//     by Allocator().Destroy exactly once
//
// The zero Buffer is not usable; construct one with New.
type Buffer[T any] struct {
	slots []T // len(slots) == capacity
	size  int
	alloc Allocator[T]
}

// New allocates a buffer of the given capacity. A nil alloc means
// HeapAllocator.
//
// Errors:
//   - whatever alloc.Allocate returns (ErrAllocationFailure for the bundled
//     allocators).
func New[T any](alloc Allocator[T], capacity int) (*Buffer[T], error) {
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}
	slots, err := alloc.Allocate(capacity)
	if err != nil {
		return nil, err
	}

	return &Buffer[T]{slots: slots, alloc: alloc}, nil
}

// Empty returns a buffer with capacity 0 that has not asked alloc for any
// storage. It never fails. A nil alloc means HeapAllocator.
func Empty[T any](alloc Allocator[T]) *Buffer[T] {
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}

	return &Buffer[T]{alloc: alloc}
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int { return len(b.slots) }

// Allocator returns the strategy the buffer was built with.
func (b *Buffer[T]) Allocator() Allocator[T] { return b.alloc }

// Live returns a view of the live elements. The view aliases the region and
// is capped at Len() so appending to it never writes into spare slots.
func (b *Buffer[T]) Live() []T { return b.slots[:b.size:b.size] }

// Slots returns a view of the whole region, live and spare.
func (b *Buffer[T]) Slots() []T { return b.slots }

// At returns a pointer to slot i. Panics when i is outside [0, Cap()).
func (b *Buffer[T]) At(i int) *T { return &b.slots[i] }

// SetLen records that slots [0, n) are live. It is the bookkeeping half of a
// bulk construction performed directly on Slots().
func (b *Buffer[T]) SetLen(n int) {
	if n < 0 || n > len(b.slots) {
		panic(fmt.Sprintf("buffer: SetLen(%d) outside [0, %d]", n, len(b.slots)))
	}
	b.size = n
}

// PushBack constructs v into the first spare slot, growing when full.
func (b *Buffer[T]) PushBack(v T) error {
	if err := b.EnsureRoom(1); err != nil {
		return err
	}
	if err := b.alloc.Construct(&b.slots[b.size], v); err != nil {
		return err
	}
	b.size++

	return nil
}

// PopBack destroys the last live element. Panics when the buffer is empty.
func (b *Buffer[T]) PopBack() {
	if b.size == 0 {
		panic("buffer: PopBack on empty buffer")
	}
	b.size--
	b.alloc.Destroy(&b.slots[b.size])
}

// Truncate destroys the live elements at [n, Len()). No-op when n >= Len().
func (b *Buffer[T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("buffer: Truncate(%d) with negative length", n))
	}
	if n >= b.size {
		return
	}
	DestroyAll(b.alloc, b.slots[n:b.size])
	b.size = n
}

// Clear destroys every live element. Capacity is unchanged.
func (b *Buffer[T]) Clear() { b.Truncate(0) }

// Reserve grows the region to exactly n slots when n > Cap(); otherwise it
// does nothing. Capacity never shrinks here.
func (b *Buffer[T]) Reserve(n int) error {
	if n <= len(b.slots) {
		return nil
	}

	return b.Relocate(n)
}

// EnsureRoom guarantees room for addition more elements, applying the growth
// policy (see GrowthCapacity) when the current capacity is insufficient.
func (b *Buffer[T]) EnsureRoom(addition int) error {
	if addition <= len(b.slots)-b.size {
		if addition < 0 {
			return fmt.Errorf("%w: negative addition %d", ErrAllocationFailure, addition)
		}
		return nil
	}
	newCap, err := GrowthCapacity(b.size, addition)
	if err != nil {
		return err
	}

	return b.Relocate(newCap)
}

// Relocate moves the live elements into a fresh region of exactly n slots
// and releases the old one.
//
// Strong guarantee: if allocation or any construction fails the buffer is
// unchanged. Panics when n < Len().
func (b *Buffer[T]) Relocate(n int) error {
	if n < b.size {
		panic(fmt.Sprintf("buffer: Relocate(%d) below live size %d", n, b.size))
	}
	fresh, err := b.alloc.Allocate(n)
	if err != nil {
		return err
	}
	if _, err = UninitializedMove(b.alloc, b.slots[:b.size], fresh); err != nil {
		b.alloc.Deallocate(fresh)
		return err
	}
	b.alloc.Deallocate(b.slots)
	b.slots = fresh

	return nil
}

// ShrinkToFit relocates into a region of exactly Len() slots. It is a no-op
// when the capacity already equals the size.
func (b *Buffer[T]) ShrinkToFit() error {
	if len(b.slots) == b.size {
		return nil
	}

	return b.Relocate(b.size)
}

// Replace installs a region built by the caller, whose first size slots are
// live, and deallocates the current region without destroying anything. The
// caller must already have destroyed or moved out every live element.
func (b *Buffer[T]) Replace(slots []T, size int) {
	if size < 0 || size > len(slots) {
		panic(fmt.Sprintf("buffer: Replace size %d outside [0, %d]", size, len(slots)))
	}
	b.alloc.Deallocate(b.slots)
	b.slots = slots
	b.size = size
}

// Swap exchanges region, size and allocator with other. Never fails.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
	b.size, other.size = other.size, b.size
	b.alloc, other.alloc = other.alloc, b.alloc
}

// Release destroys every live element and deallocates the region. The
// buffer is left empty with capacity 0 and stays usable; a second Release
// does nothing.
func (b *Buffer[T]) Release() {
	DestroyAll(b.alloc, b.slots[:b.size])
	b.alloc.Deallocate(b.slots)
	b.slots = nil
	b.size = 0
}

// Clone builds an independent buffer with the same capacity and allocator
// holding copies of the live elements.
func (b *Buffer[T]) Clone() (*Buffer[T], error) {
	c, err := New(b.alloc, len(b.slots))
	if err != nil {
		return nil, err
	}
	if _, err = UninitializedCopy(b.alloc, b.slots[:b.size], c.slots); err != nil {
		c.Release()
		return nil, err
	}
	c.size = b.size

	return c, nil
}
