// SPDX-License-Identifier: MIT

// Package list implements List[T], a generic doubly linked list whose
// element storage goes through a buffer.Allocator.
//
// What:
//
//   - Construction: New (WithAllocator), Of, Repeat. The zero List is empty
//     and uses the heap.
//   - Access: Front / Back return *Element; Element.Next / Prev walk the
//     list and Element.Value / Ref read the stored value.
//   - Mutation: PushFront, PushBack, Insert, InsertN, InsertSlice,
//     PopFront, PopBack (TryPopFront / TryPopBack), Erase, EraseRange,
//     Resize, ResizeWith, Clear, Reverse, RemoveFunc, Swap.
//   - Value semantics: Clone copies, Take moves.
//   - Iteration and comparison: All, Values, Backward, Equal, Compare,
//     Remove.
//
// Positions:
//
// A position is an *Element of the list. A nil position means the end of
// the list, the slot after Back. Insert* place their values before the
// position and return the first inserted element; Erase* return the element
// that followed the erased range, nil when none did. A position that belongs
// to another list fails with ErrForeignElement.
//
// Storage:
//
// Every element owns a one-slot region obtained from the allocator. It is
// constructed on insertion and destroyed and released on erasure, so a
// buffer.CountingAllocator sees one allocation and one construction per
// element, and a buffer.LimitAllocator caps the number of elements.
// Inserting several values constructs them all before linking any; on
// error the list is unchanged.
//
// Invalidation:
//
// Insertion never invalidates other elements. Erasing an element
// invalidates only that element: its Next and Prev return nil afterwards.
//
// Caller contract violations (PopFront/PopBack on an empty list) panic.
//
// A List is not safe for concurrent use.
package list
