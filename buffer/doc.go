// SPDX-License-Identifier: MIT

// Package buffer implements the owning, allocator-aware storage region that
// backs vector.Vector and, through it, stack.Stack.
//
// What:
//
//   - Allocator[T]: pluggable strategy supplying Allocate/Deallocate for whole
//     regions and Construct/Destroy for single slots.
//   - HeapAllocator, CountingAllocator, LimitAllocator: the Go heap, a metrics
//     decorator and a quota decorator.
//   - Bulk primitives: UninitializedCopy/Move/Fill (+ _N variants) and
//     UninitializedMoveBackward. Each reports how far it progressed and rolls
//     back every slot it constructed before returning an error.
//   - Buffer[T]: capacity, live size and the region itself, with the growth
//     policy used by every container in this module.
//
// Growth policy:
//
//	newCap = 2 * (size + addition + SpareSpace)      (SpareSpace = 16)
//
// applied only when size+addition exceeds the current capacity. Capacity
// never shrinks unless ShrinkToFit or Relocate is called explicitly.
//
// Slot model:
//
//	[0, Len())        live, constructed elements
//	[Len(), Cap())    allocated but uninitialized (zero) slots
//
// Errors:
//
//   - ErrAllocationFailure  storage could not be obtained
//   - ErrConstructFailure   an allocator refused to construct an element
//
// A Buffer is not safe for concurrent use; a single owner mutates it.
package buffer
