package array_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/fixedarray/array"
	"github.com/stretchr/testify/require"
)

func TestValues_ConstructionOrder(t *testing.T) {
	a := array.Of(3, 1, 2)
	require.Equal(t, []int{3, 1, 2}, slices.Collect(a.Values()))
	// restartable
	require.Equal(t, []int{3, 1, 2}, slices.Collect(a.Values()))
}

func TestAll_IndexValuePairs(t *testing.T) {
	a := array.Of("a", "b", "c")
	var idx []int
	var vals []string
	for i, v := range a.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	require.Equal(t, []int{0, 1, 2}, idx)
	require.Equal(t, []string{"a", "b", "c"}, vals)
}

func TestBackward(t *testing.T) {
	a := array.Of(1, 2, 3)
	var got []int
	for i, v := range a.Backward() {
		require.Equal(t, a.Get(i), v)
		got = append(got, v)
	}
	require.Equal(t, []int{3, 2, 1}, got)
}

func TestSeq_EarlyBreak(t *testing.T) {
	a := array.Of(1, 2, 3, 4)
	n := 0
	for range a.All() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestSeq_ZeroLength(t *testing.T) {
	e := array.MustNew[int](0)
	require.Empty(t, slices.Collect(e.Values()))
}
