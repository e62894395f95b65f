// SPDX-License-Identifier: MIT

package buffer_test

import (
	"errors"

	"github.com/jlzhjp/algorithms/buffer"
)

// errInjected is the failure produced by flakyAllocator.
var errInjected = errors.New("injected construct failure")

// flakyAllocator is a heap allocator whose failAt-th Construct call fails.
// failAt == 0 disables the failure.
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

// countingFlaky returns a counting allocator over a flaky one.
func countingFlaky[T any](failAt int) (*buffer.CountingAllocator[T], *flakyAllocator[T]) {
	f := &flakyAllocator[T]{failAt: failAt}
	return buffer.NewCountingAllocator[T](f), f
}

// filled returns a heap buffer holding vals with the given capacity.
func filled(capacity int, vals ...string) *buffer.Buffer[string] {
	b, err := buffer.New[string](nil, capacity)
	if err != nil {
		panic(err)
	}
	for _, v := range vals {
		if err = b.PushBack(v); err != nil {
			panic(err)
		}
	}

	return b
}
