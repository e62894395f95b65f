// SPDX-License-Identifier: MIT

package sorting

import (
	"errors"
	"reflect"
)

// ErrNilSequence indicates a nil sequence or a nil comparison.
var ErrNilSequence = errors.New("sorting: nil sequence or predicate")

// Sequence is random access to n elements in place.
type Sequence[T any] interface {
	Len() int
	Get(i int) T
	Set(i int, x T)
}

// Option configures Quick.
type Option func(*Options)

// Options holds sorting parameters.
type Options struct {
	// Seed drives the shuffle of Quick. 0 selects defaultSeed.
	Seed int64
}

// DefaultOptions returns Options with Seed = 0 (the fixed default seed).
func DefaultOptions() Options {
	return Options{Seed: 0}
}

// WithSeed sets the shuffle seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
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
