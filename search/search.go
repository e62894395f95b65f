// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"reflect"

	"golang.org/x/exp/constraints"
)

// ErrNilSequence indicates a nil sequence or a nil comparison.
var ErrNilSequence = errors.New("search: nil sequence or comparison")

// Sequence is read-only random access to n elements.
type Sequence[T any] interface {
	Len() int
	Get(i int) T
}

// BinarySearch returns the index of an element equal to key, or -1 when
// there is none. With duplicates any matching index may be returned.
func BinarySearch[T constraints.Ordered](seq Sequence[T], key T) (int, error) {
	return BinarySearchFunc(seq, key, func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// BinarySearchFunc is BinarySearch with cmp(element, key) returning a
// negative number, zero or a positive number.
func BinarySearchFunc[T, K any](seq Sequence[T], key K, cmp func(elem T, key K) int) (int, error) {
	if isNil(seq) || cmp == nil {
		return -1, ErrNilSequence
	}
	lo, hi := 0, seq.Len()-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch c := cmp(seq.Get(mid), key); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		default:
			return mid, nil
		}
	}

	return -1, nil
}

// LowerBound returns the first index whose element is not less than key,
// or Len() when every element is.
func LowerBound[T any](seq Sequence[T], key T, less func(a, b T) bool) (int, error) {
	if isNil(seq) || less == nil {
		return 0, ErrNilSequence
	}
	lo, hi := 0, seq.Len()
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(seq.Get(mid), key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo, nil
}

// isNil reports whether seq is nil, including a nil pointer (or other nil
// reference) stored in the interface.
func isNil[T any](seq Sequence[T]) bool {
	if seq == nil {
		return true
	}
	switch v := reflect.ValueOf(seq); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
