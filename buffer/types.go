// SPDX-License-Identifier: MIT

package buffer

import (
	"errors"
	"fmt"
	"math"
)

// SpareSpace is the fixed headroom added by the growth policy and the default
// capacity of a freshly constructed container.
const SpareSpace = 16

// Sentinel errors for buffer operations.
var (
	// ErrAllocationFailure indicates that storage for the requested number of
	// slots could not be obtained (negative count, overflow or exhausted quota).
	ErrAllocationFailure = errors.New("buffer: allocation failure")

	// ErrConstructFailure indicates that an allocator refused to construct an
	// element in a slot. Allocators may also return their own errors.
	ErrConstructFailure = errors.New("buffer: construct failure")
)

// Allocator is the storage strategy a Buffer is parametric over.
//
// Contract:
//   - Allocate(n) returns a region of exactly n zero slots, or an error.
//     Allocate(0) may return nil.
//   - Deallocate(slots) releases a region previously returned by Allocate;
//     a nil region is a no-op.
//   - Construct(slot, v) places v into an uninitialized slot. On error the
//     slot must be left uninitialized.
//   - Destroy(slot) ends the lifetime of a live element and must not fail.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(slots []T)
	Construct(slot *T, v T) error
	Destroy(slot *T)
}

// Metrics is a snapshot of the bookkeeping recorded by a CountingAllocator.
type Metrics struct {
	Allocations         int // non-empty regions handed out
	Deallocations       int // non-empty regions released
	FailedAllocations   int // Allocate calls that returned an error
	SlotsAllocated      int // total slots ever handed out
	SlotsOutstanding    int // slots allocated and not yet released
	Constructed         int // successful Construct calls
	Destroyed           int // Destroy calls
	FailedConstructions int // Construct calls that returned an error
	LiveElements        int // Constructed - Destroyed
}

// GrowthCapacity returns the capacity the growth policy picks when a buffer
// holding size elements must make room for addition more:
// 2 * (size + addition + SpareSpace).
//
// Returns ErrAllocationFailure when the arithmetic would overflow int or when
// either argument is negative.
func GrowthCapacity(size, addition int) (int, error) {
	if size < 0 || addition < 0 {
		return 0, fmt.Errorf("%w: negative growth request (size=%d, addition=%d)",
			ErrAllocationFailure, size, addition)
	}
	if size > (math.MaxInt/2-SpareSpace)-addition {
		return 0, fmt.Errorf("%w: capacity overflow (size=%d, addition=%d)",
			ErrAllocationFailure, size, addition)
	}

	return 2 * (size + addition + SpareSpace), nil
}
