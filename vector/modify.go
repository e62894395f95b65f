// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"iter"

	"golang.org/x/exp/slices"

	"github.com/jlzhjp/algorithms/buffer"
)

// placeFunc constructs exactly len(dst) elements into the uninitialized
// slots dst, rolling its own work back on error.
type placeFunc[T any] func(a buffer.Allocator[T], dst []T) error

// PushBack appends x, growing the storage when it is full.
// Amortized O(1); O(n) when a reallocation happens.
func (v *Vector[T]) PushBack(x T) error {
	return v.store().PushBack(x)
}

// EmplaceBack appends the value produced by build. When build or the
// construction fails the vector is unchanged (apart from a possible growth
// of its capacity).
func (v *Vector[T]) EmplaceBack(build func() (T, error)) error {
	b := v.store()
	if err := b.EnsureRoom(1); err != nil {
		return err
	}
	n := b.Len()
	if err := buffer.ConstructWith(b.Allocator(), b.At(n), build); err != nil {
		return err
	}
	b.SetLen(n + 1)

	return nil
}

// Emplace inserts the value produced by build at pos and returns pos.
func (v *Vector[T]) Emplace(pos int, build func() (T, error)) (int, error) {
	if err := v.checkPosition(pos); err != nil {
		return pos, err
	}
	x, err := build()
	if err != nil {
		return pos, err
	}

	return v.Insert(pos, x)
}

// PopBack removes the last element. Panics when the vector is empty.
func (v *Vector[T]) PopBack() {
	if v.Empty() {
		panic("vector: PopBack on empty vector")
	}
	v.buf.PopBack()
}

// Insert places x before position pos and returns pos.
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	return v.insertWith(pos, 1, func(a buffer.Allocator[T], dst []T) error {
		_, err := buffer.UninitializedFill(a, dst, x)
		return err
	})
}

// InsertN places count copies of x before position pos and returns pos.
func (v *Vector[T]) InsertN(pos, count int, x T) (int, error) {
	if count < 0 {
		return pos, fmt.Errorf("%w: negative count %d", ErrInvalidRange, count)
	}

	return v.insertWith(pos, count, func(a buffer.Allocator[T], dst []T) error {
		_, err := buffer.UninitializedFill(a, dst, x)
		return err
	})
}

// InsertSlice places copies of vals before position pos and returns pos.
// vals may alias the vector's own storage.
func (v *Vector[T]) InsertSlice(pos int, vals ...T) (int, error) {
	return v.insertWith(pos, len(vals), func(a buffer.Allocator[T], dst []T) error {
		_, err := buffer.UninitializedCopy(a, vals, dst)
		return err
	})
}

// InsertSeq places the values yielded by seq before position pos and
// returns pos. seq is drained before the vector is modified.
func (v *Vector[T]) InsertSeq(pos int, seq iter.Seq[T]) (int, error) {
	if err := v.checkPosition(pos); err != nil {
		return pos, err
	}

	return v.InsertSlice(pos, collect(seq)...)
}

// Erase removes the element at pos and returns pos, the index of the
// element that followed it.
func (v *Vector[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= v.Len() {
		return pos, fmt.Errorf("%w: erase position %d, length %d", ErrIndexOutOfRange, pos, v.Len())
	}

	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the elements at [first, last) and returns first, the
// index of the element that followed the range. Never fails for a valid
// range.
func (v *Vector[T]) EraseRange(first, last int) (int, error) {
	b := v.store()
	n := b.Len()
	if first < 0 || last > n {
		return first, fmt.Errorf("%w: erase range [%d, %d), length %d", ErrIndexOutOfRange, first, last, n)
	}
	if first > last {
		return first, fmt.Errorf("%w: erase range [%d, %d)", ErrInvalidRange, first, last)
	}
	if first == last {
		return first, nil
	}
	// Move the erased elements to the tail, then destroy them there.
	rotateLeft(b.Live()[first:], last-first)
	b.Truncate(n - (last - first))

	return first, nil
}

// Resize changes the length to n, appending zero values or destroying
// trailing elements.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeWith(n, zero)
}

// ResizeWith changes the length to n, appending copies of x or destroying
// trailing elements. Capacity grows as needed and never shrinks.
func (v *Vector[T]) ResizeWith(n int, x T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidRange, n)
	}
	b := v.store()
	size := b.Len()
	if n <= size {
		b.Truncate(n)
		return nil
	}
	if err := b.EnsureRoom(n - size); err != nil {
		return err
	}
	if _, err := buffer.UninitializedFill(b.Allocator(), b.Slots()[size:n], x); err != nil {
		return err
	}
	b.SetLen(n)

	return nil
}

// Reserve grows the capacity to exactly n when n > Cap(). Otherwise it does
// nothing; it never shrinks.
func (v *Vector[T]) Reserve(n int) error {
	return v.store().Reserve(n)
}

// ShrinkToFit reduces the capacity to Len().
func (v *Vector[T]) ShrinkToFit() error {
	return v.store().ShrinkToFit()
}

// Clear destroys every element. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	v.store().Clear()
}

// AssignN replaces the contents with count copies of x.
// Basic guarantee: on error the vector is left empty.
func (v *Vector[T]) AssignN(count int, x T) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidRange, count)
	}

	return v.assign(count, func(a buffer.Allocator[T], dst []T) error {
		_, err := buffer.UninitializedFill(a, dst, x)
		return err
	})
}

// AssignSlice replaces the contents with copies of vals. vals may alias the
// vector's own storage. Basic guarantee: on error the vector is left empty.
func (v *Vector[T]) AssignSlice(vals ...T) error {
	return v.assignOwned(slices.Clone(vals))
}

// AssignSeq replaces the contents with the values yielded by seq.
// Basic guarantee: on error the vector is left empty.
func (v *Vector[T]) AssignSeq(seq iter.Seq[T]) error {
	return v.assignOwned(collect(seq))
}

func (v *Vector[T]) assignOwned(vals []T) error {
	return v.assign(len(vals), func(a buffer.Allocator[T], dst []T) error {
		_, err := buffer.UninitializedCopy(a, vals, dst)
		return err
	})
}

func (v *Vector[T]) assign(count int, place placeFunc[T]) error {
	b := v.store()
	b.Clear()
	if err := b.EnsureRoom(count); err != nil {
		return err
	}
	if err := place(b.Allocator(), b.Slots()[:count]); err != nil {
		return err
	}
	b.SetLen(count)

	return nil
}

// insertWith opens a gap of count slots at pos and fills it with place.
// Strong guarantee: on any error the vector is unchanged.
func (v *Vector[T]) insertWith(pos, count int, place placeFunc[T]) (int, error) {
	if err := v.checkPosition(pos); err != nil {
		return pos, err
	}
	if count == 0 {
		return pos, nil
	}
	b := v.store()
	if count <= b.Cap()-b.Len() {
		return pos, v.insertInPlace(pos, count, place)
	}

	return pos, v.insertGrow(pos, count, place)
}

// insertInPlace constructs the new elements in the spare tail and rotates
// them into position, so a failed construction touches nothing live.
func (v *Vector[T]) insertInPlace(pos, count int, place placeFunc[T]) error {
	b := v.store()
	n := b.Len()
	slots := b.Slots()
	if err := place(b.Allocator(), slots[n:n+count]); err != nil {
		return err
	}
	rotateRight(slots[pos:n+count], count)
	b.SetLen(n + count)

	return nil
}

// insertGrow builds the whole grown region (new elements, prefix copy,
// suffix moved backward) before committing it.
func (v *Vector[T]) insertGrow(pos, count int, place placeFunc[T]) error {
	b := v.store()
	a := b.Allocator()
	n := b.Len()
	newCap, err := buffer.GrowthCapacity(n, count)
	if err != nil {
		return err
	}
	fresh, err := a.Allocate(newCap)
	if err != nil {
		return err
	}
	if err = place(a, fresh[pos:pos+count]); err != nil {
		a.Deallocate(fresh)
		return err
	}
	old := b.Live()
	if _, err = buffer.UninitializedCopy(a, old[:pos], fresh); err != nil {
		buffer.DestroyAll(a, fresh[pos:pos+count])
		a.Deallocate(fresh)
		return err
	}
	if _, err = buffer.UninitializedMoveBackward(a, old[pos:], fresh[:n+count]); err != nil {
		buffer.DestroyAll(a, fresh[:pos+count])
		a.Deallocate(fresh)
		return err
	}
	buffer.DestroyAll(a, old[:pos])
	b.Replace(fresh, n+count)

	return nil
}

func (v *Vector[T]) checkPosition(pos int) error {
	if pos < 0 || pos > v.Len() {
		return fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfRange, pos, v.Len())
	}

	return nil
}

// rotateRight rotates s so that its last k elements come first.
func rotateRight[T any](s []T, k int) {
	slices.Reverse(s)
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
}

// rotateLeft rotates s so that its first k elements come last.
func rotateLeft[T any](s []T, k int) {
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}

func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for x := range seq {
		out = append(out, x)
	}

	return out
}
