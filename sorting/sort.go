// SPDX-License-Identifier: MIT

package sorting

import "github.com/jlzhjp/algorithms/vector"

// Selection sorts seq by repeatedly selecting the minimum of the unsorted
// suffix.
func Selection[T any](seq Sequence[T], less func(a, b T) bool) error {
	if isNil(seq) || less == nil {
		return ErrNilSequence
	}
	n := seq.Len()
	for i := 0; i < n; i++ {
		lowest := i
		for j := i + 1; j < n; j++ {
			if less(seq.Get(j), seq.Get(lowest)) {
				lowest = j
			}
		}
		swap(seq, i, lowest)
	}

	return nil
}

// Insertion sorts seq by sinking each element into the sorted prefix.
// Stable.
func Insertion[T any](seq Sequence[T], less func(a, b T) bool) error {
	if isNil(seq) || less == nil {
		return ErrNilSequence
	}
	insertionGap(seq, less, 1)

	return nil
}

// Shell sorts seq with h-insertion passes over Knuth's gaps (3h+1).
func Shell[T any](seq Sequence[T], less func(a, b T) bool) error {
	if isNil(seq) || less == nil {
		return ErrNilSequence
	}
	n := seq.Len()
	h := 1
	for h < n/3 {
		h = 3*h + 1
	}
	for ; h >= 1; h /= 3 {
		insertionGap(seq, less, h)
	}

	return nil
}

// Merge sorts seq top-down through an auxiliary vector of Len() elements.
// Halves already in order are not merged. Stable.
func Merge[T any](seq Sequence[T], less func(a, b T) bool) error {
	if isNil(seq) || less == nil {
		return ErrNilSequence
	}
	n := seq.Len()
	if n < 2 {
		return nil
	}
	aux, err := vector.New(vector.WithCapacity[T](n))
	if err != nil {
		return err
	}
	defer aux.Release()
	if err = aux.Resize(n); err != nil {
		return err
	}
	mergeSort(seq, aux, less, 0, n-1)

	return nil
}

// Quick shuffles seq, then sorts it by recursive two-way partitioning.
func Quick[T any](seq Sequence[T], less func(a, b T) bool, opts ...Option) error {
	if isNil(seq) || less == nil {
		return ErrNilSequence
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	shuffle(seq, rngFromSeed(o.Seed))
	quickSort(seq, less, 0, seq.Len()-1)

	return nil
}

func swap[T any](seq Sequence[T], i, j int) {
	if i == j {
		return
	}
	a, b := seq.Get(i), seq.Get(j)
	seq.Set(i, b)
	seq.Set(j, a)
}

func insertionGap[T any](seq Sequence[T], less func(a, b T) bool, h int) {
	for i := h; i < seq.Len(); i++ {
		for j := i; j >= h && less(seq.Get(j), seq.Get(j-h)); j -= h {
			swap(seq, j, j-h)
		}
	}
}

func mergeSort[T any](seq Sequence[T], aux *vector.Vector[T], less func(a, b T) bool, lo, hi int) {
	if hi <= lo {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(seq, aux, less, lo, mid)
	mergeSort(seq, aux, less, mid+1, hi)
	if !less(seq.Get(mid+1), seq.Get(mid)) {
		return
	}
	merge(seq, aux, less, lo, mid, hi)
}

// merge combines the sorted runs [lo, mid] and [mid+1, hi].
func merge[T any](seq Sequence[T], aux *vector.Vector[T], less func(a, b T) bool, lo, mid, hi int) {
	for k := lo; k <= hi; k++ {
		aux.Set(k, seq.Get(k))
	}
	i, j := lo, mid+1
	for k := lo; k <= hi; k++ {
		switch {
		case i > mid:
			seq.Set(k, aux.Get(j))
			j++
		case j > hi:
			seq.Set(k, aux.Get(i))
			i++
		case less(aux.Get(j), aux.Get(i)):
			seq.Set(k, aux.Get(j))
			j++
		default:
			seq.Set(k, aux.Get(i))
			i++
		}
	}
}

func quickSort[T any](seq Sequence[T], less func(a, b T) bool, lo, hi int) {
	for lo < hi {
		p := partition(seq, less, lo, hi)
		// Recurse into the smaller side to bound stack depth.
		if p-lo < hi-p {
			quickSort(seq, less, lo, p-1)
			lo = p + 1
		} else {
			quickSort(seq, less, p+1, hi)
			hi = p - 1
		}
	}
}

// partition places seq[lo] at its final index p with no greater element
// before it and no smaller element after it, and returns p.
func partition[T any](seq Sequence[T], less func(a, b T) bool, lo, hi int) int {
	pivot := seq.Get(lo)
	i, j := lo, hi+1
	for {
		i++
		for i < hi && less(seq.Get(i), pivot) {
			i++
		}
		j--
		for j > lo && less(pivot, seq.Get(j)) {
			j--
		}
		if i >= j {
			break
		}
		swap(seq, i, j)
	}
	swap(seq, lo, j)

	return j
}
