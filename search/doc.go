// SPDX-License-Identifier: MIT

// Package search implements binary search over a sorted, indexed Sequence
// such as *vector.Vector[T].
//
// All functions run in O(log n) and require the sequence to be sorted by
// the same order they search with. A nil sequence or comparison yields
// ErrNilSequence.
package search
