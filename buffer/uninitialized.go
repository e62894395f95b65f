// SPDX-License-Identifier: MIT

// Package buffer: bulk construction primitives over uninitialized slots.
//
// Every primitive follows the same contract:
//   - it returns the number of destination slots it constructed;
//   - on error it destroys, in reverse order, every slot it constructed,
//     returns 0 and the error of the failing Construct;
//   - move variants destroy their source elements only after every
//     destination slot was constructed, so a failed move leaves the source
//     range exactly as it was.
//
// Source and destination ranges must not overlap, and the destination must
// hold enough slots; violating either is a programmer error and panics.
package buffer

// UninitializedCopy constructs copies of src into dst[:len(src)].
func UninitializedCopy[T any](a Allocator[T], src, dst []T) (int, error) {
	mustFit(len(src), len(dst))
	for i := range src {
		if err := a.Construct(&dst[i], src[i]); err != nil {
			rollback(a, dst[:i])
			return 0, err
		}
	}

	return len(src), nil
}

// UninitializedCopyN constructs copies of src[:n] into dst[:n].
func UninitializedCopyN[T any](a Allocator[T], src []T, n int, dst []T) (int, error) {
	return UninitializedCopy(a, src[:n], dst)
}

// UninitializedMove relocates src into dst[:len(src)]: it constructs every
// destination slot and then destroys the source elements.
func UninitializedMove[T any](a Allocator[T], src, dst []T) (int, error) {
	n, err := UninitializedCopy(a, src, dst)
	if err != nil {
		return 0, err
	}
	DestroyAll(a, src)

	return n, nil
}

// UninitializedMoveN relocates src[:n] into dst[:n].
func UninitializedMoveN[T any](a Allocator[T], src []T, n int, dst []T) (int, error) {
	return UninitializedMove(a, src[:n], dst)
}

// UninitializedMoveBackward relocates src into the last len(src) slots of
// dst, constructing from the back toward the front. It is the primitive used
// to shift a suffix toward higher addresses into fresh storage.
func UninitializedMoveBackward[T any](a Allocator[T], src, dst []T) (int, error) {
	mustFit(len(src), len(dst))
	offset := len(dst) - len(src)
	for i := len(src) - 1; i >= 0; i-- {
		if err := a.Construct(&dst[offset+i], src[i]); err != nil {
			rollback(a, dst[offset+i+1:])
			return 0, err
		}
	}
	DestroyAll(a, src)

	return len(src), nil
}

// UninitializedFill constructs a copy of v into every slot of dst.
func UninitializedFill[T any](a Allocator[T], dst []T, v T) (int, error) {
	for i := range dst {
		if err := a.Construct(&dst[i], v); err != nil {
			rollback(a, dst[:i])
			return 0, err
		}
	}

	return len(dst), nil
}

// UninitializedFillN constructs a copy of v into dst[:n].
func UninitializedFillN[T any](a Allocator[T], dst []T, n int, v T) (int, error) {
	mustFit(n, len(dst))
	return UninitializedFill(a, dst[:n], v)
}

// ConstructWith builds a value with build and constructs it into slot.
// When build fails the slot is left untouched.
func ConstructWith[T any](a Allocator[T], slot *T, build func() (T, error)) error {
	v, err := build()
	if err != nil {
		return err
	}

	return a.Construct(slot, v)
}

// DestroyAll destroys every element of slots, back to front.
func DestroyAll[T any](a Allocator[T], slots []T) {
	for i := len(slots) - 1; i >= 0; i-- {
		a.Destroy(&slots[i])
	}
}

// rollback undoes a partially completed bulk construction.
func rollback[T any](a Allocator[T], constructed []T) {
	DestroyAll(a, constructed)
}

func mustFit(n, room int) {
	if n < 0 || n > room {
		panic("buffer: destination range too small")
	}
}
