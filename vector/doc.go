// SPDX-License-Identifier: MIT

// Package vector implements Vector[T], a contiguous, random-access sequence
// with amortized O(1) append, built by composition over buffer.Buffer[T].
//
// What:
//
//   - Construction: New (functional options WithCapacity / WithAllocator),
//     Of, OfWith. The zero Vector is empty, has capacity 0 and uses the heap.
//   - Access: At (checked), Get / Set / Ref / Front / Back (unchecked),
//     Data, All, Values, Backward.
//   - Mutation: PushBack, EmplaceBack, Emplace, PopBack, Insert, InsertN,
//     InsertSlice, InsertSeq, Erase, EraseRange, Resize, ResizeWith,
//     Reserve, ShrinkToFit, Clear, AssignN, AssignSlice, AssignSeq, Swap.
//   - Value semantics: Clone / CopyFrom copy, Take / MoveFrom move, Release
//     frees storage.
//   - Comparison: Equal, EqualFunc, Compare, CompareFunc, Less.
//
// Positions are integer indices: a valid position for insertion is any of
// [0, Len()], for erasure any of [0, Len()). Insert* return the index of the
// first inserted element; Erase* return the index of the element that
// followed the erased range (Len() when none did).
//
// Growth:
//
// When an append or insertion does not fit, capacity becomes
// 2*(Len()+added+buffer.SpareSpace). Capacity never shrinks on its own;
// ShrinkToFit reduces it to Len().
//
// Invalidation:
//
// Slices returned by Data and pointers returned by Ref alias the vector's
// storage. They stay valid only until the next call that may reallocate or
// shift elements: Insert*, Emplace*, Erase*, Resize*, Reserve, ShrinkToFit,
// Assign*, Clear, PushBack on a full vector, Take, MoveFrom, Release.
// After a reallocation, writes through an old view no longer reach the
// vector.
//
// Failure semantics:
//
//   - ErrIndexOutOfRange  At or a position argument outside the valid range
//   - ErrInvalidRange     first > last, negative count or negative length
//   - buffer.ErrAllocationFailure and Allocator.Construct errors propagate
//     unchanged; growth and insertion leave the vector as it was (strong
//     guarantee), Assign* may leave it empty (basic guarantee).
//
// Caller contract violations (Get/Set/Ref out of range, Front/Back/PopBack
// on an empty vector) panic.
//
// A Vector is not safe for concurrent use.
package vector
