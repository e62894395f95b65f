// SPDX-License-Identifier: MIT

package buffer

import (
	"fmt"
	"math"
	"unsafe"
)

// maxAllocBytes bounds a single region, mirroring the runtime's own limit on
// 64-bit heaps.
const maxAllocBytes uint64 = 1 << 47

// HeapAllocator allocates regions on the Go heap.
//
// Destroy zeroes the slot so that the garbage collector can reclaim whatever
// the element referenced; Deallocate clears the region for the same reason.
type HeapAllocator[T any] struct{}

// MaxSlots reports the largest region Allocate will attempt for T.
func (HeapAllocator[T]) MaxSlots() int {
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	limit := maxAllocBytes / size
	if limit > uint64(math.MaxInt) {
		return math.MaxInt
	}

	return int(limit)
}

// Allocate returns n zero slots. Allocate(0) returns nil.
func (h HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative slot count %d", ErrAllocationFailure, n)
	}
	if n > h.MaxSlots() {
		return nil, fmt.Errorf("%w: %d slots exceed the maximum of %d",
			ErrAllocationFailure, n, h.MaxSlots())
	}
	if n == 0 {
		return nil, nil
	}

	return make([]T, n), nil
}

// Deallocate clears the region. A nil region is a no-op.
func (HeapAllocator[T]) Deallocate(slots []T) {
	clear(slots)
}

// Construct stores v into slot.
func (HeapAllocator[T]) Construct(slot *T, v T) error {
	*slot = v
	return nil
}

// Destroy zeroes slot.
func (HeapAllocator[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// CountingAllocator decorates another allocator and records Metrics for
// every call. It is the observability hook of the module: tests use it to
// prove that no region is leaked or released twice and that every
// constructed element is destroyed exactly once.
type CountingAllocator[T any] struct {
	inner Allocator[T]
	m     Metrics
}

// NewCountingAllocator wraps inner. A nil inner means HeapAllocator.
func NewCountingAllocator[T any](inner Allocator[T]) *CountingAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}

	return &CountingAllocator[T]{inner: inner}
}

// Allocate forwards to the wrapped allocator. Empty regions are not counted.
func (c *CountingAllocator[T]) Allocate(n int) ([]T, error) {
	slots, err := c.inner.Allocate(n)
	if err != nil {
		c.m.FailedAllocations++
		return nil, err
	}
	if len(slots) > 0 {
		c.m.Allocations++
		c.m.SlotsAllocated += len(slots)
		c.m.SlotsOutstanding += len(slots)
	}

	return slots, nil
}

// Deallocate forwards to the wrapped allocator.
func (c *CountingAllocator[T]) Deallocate(slots []T) {
	if len(slots) == 0 {
		return
	}
	c.m.Deallocations++
	c.m.SlotsOutstanding -= len(slots)
	c.inner.Deallocate(slots)
}

// Construct forwards to the wrapped allocator.
func (c *CountingAllocator[T]) Construct(slot *T, v T) error {
	if err := c.inner.Construct(slot, v); err != nil {
		c.m.FailedConstructions++
		return err
	}
	c.m.Constructed++
	c.m.LiveElements++

	return nil
}

// Destroy forwards to the wrapped allocator.
func (c *CountingAllocator[T]) Destroy(slot *T) {
	c.inner.Destroy(slot)
	c.m.Destroyed++
	c.m.LiveElements--
}

// Metrics returns a snapshot of the recorded counters.
func (c *CountingAllocator[T]) Metrics() Metrics {
	return c.m
}

// Reset zeroes every counter.
func (c *CountingAllocator[T]) Reset() {
	c.m = Metrics{}
}

// LimitAllocator decorates another allocator with a quota on outstanding
// slots. Allocate fails with ErrAllocationFailure once the quota would be
// exceeded; construction is forwarded untouched.
type LimitAllocator[T any] struct {
	inner       Allocator[T]
	limit       int
	outstanding int
}

// NewLimitAllocator wraps inner with a quota of limit slots. A nil inner
// means HeapAllocator.
func NewLimitAllocator[T any](inner Allocator[T], limit int) *LimitAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}

	return &LimitAllocator[T]{inner: inner, limit: limit}
}

// Allocate fails when n more slots would exceed the quota.
func (l *LimitAllocator[T]) Allocate(n int) ([]T, error) {
	if n > 0 && n > l.limit-l.outstanding {
		return nil, fmt.Errorf("%w: %d slots requested, %d of %d in use",
			ErrAllocationFailure, n, l.outstanding, l.limit)
	}
	slots, err := l.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.outstanding += len(slots)

	return slots, nil
}

// Deallocate returns the region's slots to the quota.
func (l *LimitAllocator[T]) Deallocate(slots []T) {
	if len(slots) == 0 {
		return
	}
	l.outstanding -= len(slots)
	l.inner.Deallocate(slots)
}

// Construct forwards to the wrapped allocator.
func (l *LimitAllocator[T]) Construct(slot *T, v T) error {
	return l.inner.Construct(slot, v)
}

// Destroy forwards to the wrapped allocator.
func (l *LimitAllocator[T]) Destroy(slot *T) {
	l.inner.Destroy(slot)
}

// SetLimit changes the quota. Regions already handed out are kept.
func (l *LimitAllocator[T]) SetLimit(limit int) {
	l.limit = limit
}

// Outstanding reports the slots currently allocated through l.
func (l *LimitAllocator[T]) Outstanding() int {
	return l.outstanding
}
