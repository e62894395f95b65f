// SPDX-License-Identifier: MIT

package vector_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlzhjp/algorithms/buffer"
	"github.com/jlzhjp/algorithms/vector"
)

func TestPushPop_StressReverseOrder(t *testing.T) {
	v, err := vector.New(vector.WithCapacity[string](0))
	require.NoError(t, err)
	for i := 0; i <= StressCount; i++ {
		require.NoError(t, v.PushBack(strconv.Itoa(i)))
	}
	for i := StressCount; i >= 0; i-- {
		require.Equal(t, strconv.Itoa(i), v.Back())
		v.PopBack()
	}
	assert.True(t, v.Empty())
}

// TestGrowthPolicy_FromZero pins the capacity steps 2*(size+1+SpareSpace).
func TestGrowthPolicy_FromZero(t *testing.T) {
	v, err := vector.New(vector.WithCapacity[int](0))
	require.NoError(t, err)

	var want, got []int
	c := 0
	for c < 2000 {
		c = 2 * (c + 1 + buffer.SpareSpace)
		want = append(want, c)
	}
	last := v.Cap()
	for i := 0; i < want[len(want)-1]; i++ {
		require.NoError(t, v.PushBack(i))
		if v.Cap() != last {
			last = v.Cap()
			got = append(got, last)
		}
	}
	assert.Equal(t, want, got)
	assert.Equal(t, []int{34, 102, 238, 510, 1054, 2142}, got)
}

func TestEmplaceBack(t *testing.T) {
	v := strs()
	build := func() (string, error) { return string([]byte{'A', 'B', 'C'}), nil }
	require.NoError(t, v.EmplaceBack(build))
	require.NoError(t, v.EmplaceBack(build))
	assert.Equal(t, []string{"ABC", "ABC"}, v.Data())

	err := v.EmplaceBack(func() (string, error) { return "", errInjected })
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, 2, v.Len())
}

func TestEmplace(t *testing.T) {
	v := strs("B")
	pos, err := v.Emplace(0, func() (string, error) { return "A", nil })
	require.NoError(t, err)
	assert.Equal(t, 0, pos)
	assert.Equal(t, []string{"A", "B"}, v.Data())

	_, err = v.Emplace(5, func() (string, error) { return "X", nil })
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.Emplace(1, func() (string, error) { return "", errInjected })
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, []string{"A", "B"}, v.Data())
}

func TestInsert_Overloads(t *testing.T) {
	v := strs()
	pos, err := v.Insert(0, "F")
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	pos, err = v.InsertSlice(0, "B", "C", "D", "E")
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	pos, err = v.InsertN(0, 3, "A")
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	assert.Equal(t, []string{"A", "A", "A", "B", "C", "D", "E", "F"}, v.Data())
}

func TestInsert_MiddleAndEnd(t *testing.T) {
	v := strs("A", "D")
	pos, err := v.InsertSlice(1, "B", "C")
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	pos, err = v.Insert(v.Len(), "E")
	require.NoError(t, err)
	assert.Equal(t, 4, pos)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, v.Data())
}

func TestInsert_InvalidPositions(t *testing.T) {
	v := strs("A")
	_, err := v.Insert(2, "X")
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.Insert(-1, "X")
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.InsertN(0, -1, "X")
	assert.ErrorIs(t, err, vector.ErrInvalidRange)
	_, err = v.InsertSlice(3)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)

	pos, err := v.InsertN(1, 0, "X")
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, []string{"A"}, v.Data())
}

func TestInsert_GrowthPath(t *testing.T) {
	v, err := vector.New(vector.WithCapacity[string](3))
	require.NoError(t, err)
	require.NoError(t, v.AssignSlice("A", "B", "E"))

	pos, err := v.InsertSlice(2, "C", "D")
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, v.Data())
	assert.Equal(t, 2*(3+2+buffer.SpareSpace), v.Cap())
}

func TestInsertSlice_SelfAliasing(t *testing.T) {
	v := strs("A", "B")
	_, err := v.InsertSlice(1, v.Data()...)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A", "B", "B"}, v.Data())

	w, err := vector.New(vector.WithCapacity[string](2))
	require.NoError(t, err)
	require.NoError(t, w.AssignSlice("A", "B"))
	_, err = w.InsertSlice(0, w.Data()...)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A", "B"}, w.Data())
}

func TestInsertSeq(t *testing.T) {
	v := strs("A", "E")
	pos, err := v.InsertSeq(1, strs("B", "C", "D").Values())
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, v.Data())

	_, err = v.InsertSeq(9, strs("X").Values())
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
}

func TestErase(t *testing.T) {
	v := strs("A", "B", "C", "D", "E", "F")
	pos, err := v.Erase(0)
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	pos, err = v.EraseRange(1, v.Len()-1)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, []string{"B", "F"}, v.Data())

	pos, err = v.Erase(v.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, v.Len(), pos, "erasing the last element returns the end position")
}

func TestErase_InvalidRanges(t *testing.T) {
	v := strs("A", "B", "C")
	_, err := v.Erase(3)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.EraseRange(-1, 1)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.EraseRange(0, 4)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.EraseRange(2, 1)
	assert.ErrorIs(t, err, vector.ErrInvalidRange)

	pos, err := v.EraseRange(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, []string{"A", "B", "C"}, v.Data())
}

func TestErase_DestroysErasedElements(t *testing.T) {
	v, counting, _ := instrumented("A", "B", "C", "D")
	_, err := v.EraseRange(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D"}, v.Data())
	assert.Equal(t, 2, counting.Metrics().LiveElements)
	assert.Equal(t, 2, counting.Metrics().Destroyed)
}

func TestResize(t *testing.T) {
	v := strs("A", "B", "C")
	require.NoError(t, v.ResizeWith(5, "D"))
	assert.Equal(t, []string{"A", "B", "C", "D", "D"}, v.Data())
	require.NoError(t, v.Resize(2))
	assert.Equal(t, []string{"A", "B"}, v.Data())
	require.NoError(t, v.Resize(3))
	assert.Equal(t, []string{"A", "B", ""}, v.Data())

	assert.ErrorIs(t, v.Resize(-1), vector.ErrInvalidRange)
}

func TestResize_GrowsButNeverShrinksCapacity(t *testing.T) {
	v := strs("A")
	c := v.Cap()
	require.NoError(t, v.Resize(c+1))
	grown := v.Cap()
	assert.Equal(t, 2*(1+c+buffer.SpareSpace), grown)
	require.NoError(t, v.Resize(0))
	assert.Equal(t, grown, v.Cap())
}

func TestReserve(t *testing.T) {
	v := strs("A", "B")
	c := v.Cap()
	require.NoError(t, v.Reserve(0))
	assert.Equal(t, c, v.Cap())
	require.NoError(t, v.Reserve(c))
	assert.Equal(t, c, v.Cap())
	require.NoError(t, v.Reserve(ReserveTarget))
	assert.Equal(t, ReserveTarget, v.Cap())
	assert.Equal(t, []string{"A", "B"}, v.Data())
}

func TestShrinkToFit_Idempotent(t *testing.T) {
	v := strs("A", "B", "C")
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, v.Len(), v.Cap())
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, []string{"A", "B", "C"}, v.Data())

	v.Clear()
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 0, v.Cap())
}

func TestClear(t *testing.T) {
	v := strs("A", "B", "C")
	c := v.Cap()
	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, c, v.Cap())
}

func TestAssign(t *testing.T) {
	v := strs()
	require.NoError(t, v.AssignN(30, "A"))
	assert.Equal(t, 30, v.Len())
	for x := range v.Values() {
		assert.Equal(t, "A", x)
	}

	require.NoError(t, v.AssignSeq(strs("A", "B", "C").Values()))
	assert.Equal(t, []string{"A", "B", "C"}, v.Data())

	require.NoError(t, v.AssignSlice("D", "E"))
	assert.Equal(t, []string{"D", "E"}, v.Data())

	require.NoError(t, v.AssignSlice(v.Data()[1:]...))
	assert.Equal(t, []string{"E"}, v.Data())

	assert.ErrorIs(t, v.AssignN(-1, "X"), vector.ErrInvalidRange)
}
