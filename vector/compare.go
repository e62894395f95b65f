// SPDX-License-Identifier: MIT

package vector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare orders a and b lexicographically by the elements' natural order.
// The result is -1, 0 or +1.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc is Compare with a caller-supplied three-way element comparison.
func CompareFunc[T any](a, b *Vector[T], cmp func(x, y T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), cmp)
}

// Less reports whether a orders strictly before b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// Index returns the index of the first element equal to x, or -1.
func Index[T comparable](v *Vector[T], x T) int {
	return slices.Index(v.Data(), x)
}

// Contains reports whether x is present in v.
func Contains[T comparable](v *Vector[T], x T) bool {
	return slices.Contains(v.Data(), x)
}
