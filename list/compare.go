// SPDX-License-Identifier: MIT

package list

import "golang.org/x/exp/constraints"

// Equal reports whether a and b hold equal values in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for x, y := a.Front(), b.Front(); x != nil; x, y = x.Next(), y.Next() {
		if x.slot[0] != y.slot[0] {
			return false
		}
	}

	return true
}

// Compare orders a and b lexicographically, returning -1, 0 or +1.
func Compare[T constraints.Ordered](a, b *List[T]) int {
	x, y := a.Front(), b.Front()
	for ; x != nil && y != nil; x, y = x.Next(), y.Next() {
		switch {
		case x.slot[0] < y.slot[0]:
			return -1
		case x.slot[0] > y.slot[0]:
			return 1
		}
	}
	switch {
	case x == nil && y != nil:
		return -1
	case x != nil && y == nil:
		return 1
	default:
		return 0
	}
}

// Remove erases every element equal to x and returns how many were erased.
func Remove[T comparable](l *List[T], x T) int {
	return l.RemoveFunc(func(v T) bool { return v == x })
}
