// SPDX-License-Identifier: MIT

package list_test

import (
	"errors"

	"github.com/jlzhjp/algorithms/buffer"
	"github.com/jlzhjp/algorithms/list"
)

// errInjected is the failure produced by flakyAllocator.
var errInjected = errors.New("injected construct failure")

// flakyAllocator is a heap allocator whose Construct fails once armed.
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

// instrumented builds a list of vals over a counting allocator wrapping a
// flaky allocator.
func instrumented(vals ...string) (*list.List[string], *buffer.CountingAllocator[string], *flakyAllocator[string]) {
	flaky := &flakyAllocator[string]{}
	counting := buffer.NewCountingAllocator[string](flaky)
	l := list.New(list.WithAllocator[string](counting))
	if _, err := l.InsertSlice(nil, vals...); err != nil {
		panic(err)
	}

	return l, counting, flaky
}

// values returns the contents front to back.
func values[T any](l *list.List[T]) []T {
	out := []T{}
	for x := range l.Values() {
		out = append(out, x)
	}

	return out
}

// backward returns the contents back to front, walking Prev links.
func backward[T any](l *list.List[T]) []T {
	out := []T{}
	for e := l.Back(); e != nil; e = e.Prev() {
		out = append(out, e.Value())
	}

	return out
}
