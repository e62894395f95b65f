// SPDX-License-Identifier: MIT

package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlzhjp/algorithms/buffer"
)

func TestUninitializedCopy(t *testing.T) {
	alloc := buffer.NewCountingAllocator[string](nil)
	dst := make([]string, 5)
	n, err := buffer.UninitializedCopy[string](alloc, []string{"A", "B", "C"}, dst)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"A", "B", "C", "", ""}, dst)
	assert.Equal(t, 3, alloc.Metrics().LiveElements)

	n, err = buffer.UninitializedCopyN[string](alloc, []string{"X", "Y", "Z"}, 2, dst[3:])
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"A", "B", "C", "X", "Y"}, dst)
}

func TestUninitializedCopy_RollsBack(t *testing.T) {
	alloc, _ := countingFlaky[string](3)
	dst := make([]string, 4)
	n, err := buffer.UninitializedCopy[string](alloc, []string{"A", "B", "C", "D"}, dst)
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, 0, n)
	assert.Equal(t, []string{"", "", "", ""}, dst, "constructed slots must be destroyed")

	m := alloc.Metrics()
	assert.Equal(t, 0, m.LiveElements)
	assert.Equal(t, 2, m.Destroyed)
	assert.Equal(t, 1, m.FailedConstructions)
}

func TestUninitializedCopy_DestinationTooSmall(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = buffer.UninitializedCopy[string](buffer.HeapAllocator[string]{}, []string{"A", "B"}, make([]string, 1))
	})
}

func TestUninitializedMove(t *testing.T) {
	alloc := buffer.NewCountingAllocator[string](nil)
	src := []string{"A", "B"}
	dst := make([]string, 2)
	n, err := buffer.UninitializedMove[string](alloc, src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"A", "B"}, dst)
	assert.Equal(t, []string{"", ""}, src, "moved-from elements are destroyed")
	assert.Equal(t, 2, alloc.Metrics().Destroyed)
}

func TestUninitializedMove_FailureLeavesSource(t *testing.T) {
	alloc, _ := countingFlaky[string](2)
	src := []string{"A", "B", "C"}
	dst := make([]string, 3)
	n, err := buffer.UninitializedMoveN[string](alloc, src, 3, dst)
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, 0, n)
	assert.Equal(t, []string{"A", "B", "C"}, src)
	assert.Equal(t, []string{"", "", ""}, dst)
}

func TestUninitializedMoveBackward(t *testing.T) {
	alloc := buffer.NewCountingAllocator[string](nil)
	src := []string{"C", "D"}
	dst := make([]string, 4)
	n, err := buffer.UninitializedMoveBackward[string](alloc, src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"", "", "C", "D"}, dst)
	assert.Equal(t, []string{"", ""}, src)
}

func TestUninitializedMoveBackward_RollsBack(t *testing.T) {
	// Constructs D first, then fails on C.
	alloc, _ := countingFlaky[string](2)
	src := []string{"B", "C", "D"}
	dst := make([]string, 5)
	n, err := buffer.UninitializedMoveBackward[string](alloc, src, dst)
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, 0, n)
	assert.Equal(t, []string{"B", "C", "D"}, src)
	assert.Equal(t, make([]string, 5), dst)
	assert.Equal(t, 0, alloc.Metrics().LiveElements)
}

func TestUninitializedFill(t *testing.T) {
	alloc := buffer.NewCountingAllocator[string](nil)
	dst := make([]string, 3)
	n, err := buffer.UninitializedFill[string](alloc, dst, "Z")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"Z", "Z", "Z"}, dst)

	assert.Panics(t, func() { _, _ = buffer.UninitializedFillN[string](alloc, dst, 4, "Z") })
}

func TestUninitializedFill_RollsBack(t *testing.T) {
	alloc, _ := countingFlaky[string](4)
	dst := make([]string, 6)
	n, err := buffer.UninitializedFillN[string](alloc, dst, 5, "Z")
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, 0, n)
	assert.Equal(t, make([]string, 6), dst)
	assert.Equal(t, 3, alloc.Metrics().Destroyed)
}

func TestConstructWith(t *testing.T) {
	alloc := buffer.NewCountingAllocator[string](nil)
	var slot string
	err := buffer.ConstructWith[string](alloc, &slot, func() (string, error) { return "ABC", nil })
	require.NoError(t, err)
	assert.Equal(t, "ABC", slot)

	var untouched string
	err = buffer.ConstructWith[string](alloc, &untouched, func() (string, error) { return "", errInjected })
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, 1, alloc.Metrics().Constructed)
}
