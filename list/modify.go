// SPDX-License-Identifier: MIT

package list

import "fmt"

// PushFront inserts x at the front and returns its element.
func (l *List[T]) PushFront(x T) (*Element[T], error) {
	return l.Insert(l.Front(), x)
}

// PushBack inserts x at the back and returns its element.
func (l *List[T]) PushBack(x T) (*Element[T], error) {
	return l.Insert(nil, x)
}

// Insert places x before pos (nil: at the end) and returns its element.
func (l *List[T]) Insert(pos *Element[T], x T) (*Element[T], error) {
	return l.insert(pos, 1, func(int) T { return x })
}

// InsertN places count copies of x before pos and returns the first of
// them, or pos when count is 0.
func (l *List[T]) InsertN(pos *Element[T], count int, x T) (*Element[T], error) {
	if count < 0 {
		return pos, fmt.Errorf("%w: negative count %d", ErrInvalidRange, count)
	}

	return l.insert(pos, count, func(int) T { return x })
}

// InsertSlice places copies of vals before pos and returns the first of
// them, or pos when vals is empty.
func (l *List[T]) InsertSlice(pos *Element[T], vals ...T) (*Element[T], error) {
	return l.insert(pos, len(vals), func(i int) T { return vals[i] })
}

// PopFront removes and returns the first value. Panics when the list is
// empty.
func (l *List[T]) PopFront() T {
	if l.Empty() {
		panic("list: PopFront on empty list")
	}

	return l.pop(l.r.root.next)
}

// PopBack removes and returns the last value. Panics when the list is
// empty.
func (l *List[T]) PopBack() T {
	if l.Empty() {
		panic("list: PopBack on empty list")
	}

	return l.pop(l.r.root.prev)
}

// TryPopFront is PopFront returning ErrEmptyList instead of panicking.
func (l *List[T]) TryPopFront() (T, error) {
	if l.Empty() {
		var zero T
		return zero, ErrEmptyList
	}

	return l.PopFront(), nil
}

// TryPopBack is PopBack returning ErrEmptyList instead of panicking.
func (l *List[T]) TryPopBack() (T, error) {
	if l.Empty() {
		var zero T
		return zero, ErrEmptyList
	}

	return l.PopBack(), nil
}

// Erase removes e and returns the element that followed it (nil at the
// end).
func (l *List[T]) Erase(e *Element[T]) (*Element[T], error) {
	r := l.state()
	if e == nil || e.ring != r {
		return nil, ErrForeignElement
	}
	next := e.Next()
	r.unlink(e)
	r.free(e)

	return next, nil
}

// EraseRange removes the elements from first up to, not including, last
// (nil: the end) and returns last. The list is unchanged on error.
func (l *List[T]) EraseRange(first, last *Element[T]) (*Element[T], error) {
	r := l.state()
	if first == nil {
		if last != nil {
			return last, fmt.Errorf("%w: range starts at the end", ErrInvalidRange)
		}
		return nil, nil
	}
	if first.ring != r || (last != nil && last.ring != r) {
		return last, ErrForeignElement
	}
	e := first
	for e != last && e != nil {
		e = e.Next()
	}
	if e != last {
		return last, fmt.Errorf("%w: range end does not follow its start", ErrInvalidRange)
	}
	for e = first; e != last; {
		next := e.Next()
		r.unlink(e)
		r.free(e)
		e = next
	}

	return last, nil
}

// Resize changes the length to n, appending zero values or erasing
// trailing elements.
func (l *List[T]) Resize(n int) error {
	var zero T
	return l.ResizeWith(n, zero)
}

// ResizeWith changes the length to n, appending copies of x or erasing
// trailing elements.
func (l *List[T]) ResizeWith(n int, x T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidRange, n)
	}
	r := l.state()
	for r.len > n {
		l.pop(r.root.prev)
	}
	_, err := l.InsertN(nil, n-r.len, x)

	return err
}

// Clear erases every element.
func (l *List[T]) Clear() {
	r := l.state()
	for r.len > 0 {
		l.pop(r.root.next)
	}
}

// Reverse reverses the order of the elements in place. Elements stay
// valid.
func (l *List[T]) Reverse() {
	r := l.state()
	e := &r.root
	for {
		e.next, e.prev = e.prev, e.next
		e = e.prev // the old next
		if e == &r.root {
			return
		}
	}
}

// RemoveFunc erases every element whose value satisfies pred and returns
// how many were erased.
func (l *List[T]) RemoveFunc(pred func(T) bool) int {
	r := l.state()
	removed := 0
	for e := l.Front(); e != nil; {
		next := e.Next()
		if pred(e.slot[0]) {
			r.unlink(e)
			r.free(e)
			removed++
		}
		e = next
	}

	return removed
}

// insert builds count elements from value and links them before pos. The
// list is unchanged on error.
func (l *List[T]) insert(pos *Element[T], count int, value func(i int) T) (*Element[T], error) {
	r := l.state()
	at := &r.root
	if pos != nil {
		if pos.ring != r {
			return pos, ErrForeignElement
		}
		at = pos
	}
	if count == 0 {
		return pos, nil
	}
	elems, err := r.build(count, value)
	if err != nil {
		return pos, err
	}
	r.linkBefore(at, elems)

	return elems[0], nil
}

func (l *List[T]) pop(e *Element[T]) T {
	x := e.slot[0]
	l.r.unlink(e)
	l.r.free(e)

	return x
}

// newElement allocates and constructs one unlinked element holding x.
func (r *ring[T]) newElement(x T) (*Element[T], error) {
	slot, err := r.alloc.Allocate(1)
	if err != nil {
		return nil, err
	}
	if err = r.alloc.Construct(&slot[0], x); err != nil {
		r.alloc.Deallocate(slot)
		return nil, err
	}

	return &Element[T]{ring: r, slot: slot}, nil
}

// build constructs count unlinked elements, all or none.
func (r *ring[T]) build(count int, value func(i int) T) ([]*Element[T], error) {
	elems := make([]*Element[T], 0, count)
	for i := 0; i < count; i++ {
		e, err := r.newElement(value(i))
		if err != nil {
			for j := len(elems) - 1; j >= 0; j-- {
				r.free(elems[j])
			}
			return nil, err
		}
		elems = append(elems, e)
	}

	return elems, nil
}

// linkBefore splices elems, in order, in front of at.
func (r *ring[T]) linkBefore(at *Element[T], elems []*Element[T]) {
	for _, e := range elems {
		e.prev = at.prev
		e.next = at
		at.prev.next = e
		at.prev = e
	}
	r.len += len(elems)
}

func (r *ring[T]) unlink(e *Element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	r.len--
}

// free destroys the value of an unlinked element, releases its slot and
// detaches it.
func (r *ring[T]) free(e *Element[T]) {
	r.alloc.Destroy(&e.slot[0])
	r.alloc.Deallocate(e.slot)
	e.slot = nil
	e.next = nil
	e.prev = nil
	e.ring = nil
}
