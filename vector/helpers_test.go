// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"

	"github.com/jlzhjp/algorithms/buffer"
	"github.com/jlzhjp/algorithms/vector"
)

// Common sizes used across vector tests (avoid magic numbers in test bodies).
const (
	StressCount   = 10000
	RoundTripMax  = 40
	InitialCap10  = 10
	ReserveTarget = 100
)

// errInjected is the failure produced by flakyAllocator.
var errInjected = errors.New("injected construct failure")

// flakyAllocator is a heap allocator whose Construct fails once armed.
// Arm(k) makes the k-th following Construct call fail.
type flakyAllocator[T any] struct {
	buffer.HeapAllocator[T]
	failAt int
	calls  int
}

func (f *flakyAllocator[T]) Construct(slot *T, v T) error {
	f.calls++
	if f.failAt > 0 && f.calls == f.failAt {
		return errInjected
	}

	return f.HeapAllocator.Construct(slot, v)
}

// Arm schedules the k-th next Construct call to fail.
func (f *flakyAllocator[T]) Arm(k int) { f.failAt = f.calls + k }

// strs builds a heap vector of strings.
func strs(vals ...string) *vector.Vector[string] {
	return vector.Of(vals...)
}

// instrumented builds a vector of vals over a counting allocator wrapping a
// flaky allocator, so tests can both inject failures and check balances.
func instrumented(vals ...string) (*vector.Vector[string], *buffer.CountingAllocator[string], *flakyAllocator[string]) {
	flaky := &flakyAllocator[string]{}
	counting := buffer.NewCountingAllocator[string](flaky)
	v, err := vector.OfWith[string](counting, vals...)
	if err != nil {
		panic(err)
	}

	return v, counting, flaky
}
