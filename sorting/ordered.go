// SPDX-License-Identifier: MIT

package sorting

import "golang.org/x/exp/constraints"

func naturalLess[T constraints.Ordered](a, b T) bool { return a < b }

// OrderedSelection is Selection with the natural order.
func OrderedSelection[T constraints.Ordered](seq Sequence[T]) error {
	return Selection(seq, naturalLess[T])
}

// OrderedInsertion is Insertion with the natural order.
func OrderedInsertion[T constraints.Ordered](seq Sequence[T]) error {
	return Insertion(seq, naturalLess[T])
}

// OrderedShell is Shell with the natural order.
func OrderedShell[T constraints.Ordered](seq Sequence[T]) error {
	return Shell(seq, naturalLess[T])
}

// OrderedMerge is Merge with the natural order.
func OrderedMerge[T constraints.Ordered](seq Sequence[T]) error {
	return Merge(seq, naturalLess[T])
}

// OrderedQuick is Quick with the natural order.
func OrderedQuick[T constraints.Ordered](seq Sequence[T], opts ...Option) error {
	return Quick(seq, naturalLess[T], opts...)
}
