// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/jlzhjp/algorithms/vector"
)

// BenchmarkPushBack measures amortized append cost from an empty vector.
func BenchmarkPushBack(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := vector.New(vector.WithCapacity[int](0))
		for j := 0; j < 1024; j++ {
			_ = v.PushBack(j)
		}
	}
}

// BenchmarkInsertFront measures the O(n) shift of inserting at position 0.
func BenchmarkInsertFront(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := vector.New[int]()
		for j := 0; j < 256; j++ {
			_, _ = v.Insert(0, j)
		}
	}
}

// BenchmarkEraseFront measures the O(n) shift of erasing position 0.
func BenchmarkEraseFront(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v, _ := vector.New[int]()
		_ = v.AssignN(256, 7)
		b.StartTimer()
		for !v.Empty() {
			_, _ = v.Erase(0)
		}
	}
}
