// SPDX-License-Identifier: MIT

// Package algorithms is an in-memory library of generic containers and the
// classic algorithms built on top of them.
//
// What is inside?
//
//	buffer/     - owned slot storage: pluggable Allocator, bulk construction
//	              primitives with rollback, the growth policy
//	vector/     - Vector[T], a contiguous dynamic array over buffer.Buffer
//	stack/      - Stack[T], a LIFO adapter over vector.Vector
//	sorting/    - selection, insertion, shell, merge and quick sort
//	search/     - binary search and lower bound over sorted sequences
//	unionfind/  - quick-find, quick-union, weighted quick-union
//	evaluate/   - Dijkstra's two-stack arithmetic evaluator
//	list/       - List[T], a doubly linked list over buffer.Allocator
//
// Layering:
//
//	stack -> vector -> buffer
//	list -> buffer
//	sorting, search, unionfind, evaluate -> vector / stack
//
// Guarantees:
//
//   - Errors are sentinel values matched with errors.Is; nothing logs.
//   - A failed growth or insertion leaves a vector exactly as it was.
//   - Every region obtained from an Allocator is returned to it exactly
//     once, and every constructed element is destroyed exactly once.
//   - Containers are not safe for concurrent use; guard an instance with a
//     mutex when sharing it between goroutines.
//
// Quick example:
//
//	v := vector.Of("A", "B", "C")
//	_ = v.ResizeWith(5, "D")  // [A B C D D]
//	_, _ = v.EraseRange(1, 4) // [A D]
//
//	s := stack.Of("A", "B")
//	_ = s.Push("C")
//	top := s.Pop()            // "C"
package algorithms
