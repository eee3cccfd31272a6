package array_test

import (
	"testing"

	"github.com/katalvlaran/fixedarray/array"
	"github.com/stretchr/testify/require"
)

// collect walks [first, last) with any forward or reverse cursor.
func collect[C interface {
	Get() int
	Next() C
	Equal(C) bool
}](first, last C) []int {
	var out []int
	for it := first; !it.Equal(last); it = it.Next() {
		out = append(out, it.Get())
	}

	return out
}

func TestIterator_ForwardOrder(t *testing.T) {
	a := array.Of(1, 2, 3, 4)
	require.Equal(t, []int{1, 2, 3, 4}, collect(a.Begin(), a.End()))
	require.Equal(t, []int{1, 2, 3, 4}, collect(a.CBegin(), a.CEnd()))
	require.Equal(t, a.Size(), a.Begin().Distance(a.End()))
}

func TestIterator_Restartable(t *testing.T) {
	a := array.Of(5, 6)
	first := collect(a.Begin(), a.End())
	second := collect(a.Begin(), a.End())
	require.Equal(t, first, second)
	require.Equal(t, a.Begin(), a.Begin())
}

func TestIterator_WriteRoundTrip(t *testing.T) {
	a := array.MustNew[int](3)
	i := 0
	for it := a.Begin(); it != a.End(); it = it.Next() {
		it.Set(100 + i)
		i++
	}
	for i := 0; i < a.Size(); i++ {
		require.Equal(t, 100+i, a.Get(i))
	}

	*a.Begin().Advance(1).Ptr() = 7
	require.Equal(t, 7, a.Get(1))
}

func TestIterator_Movement(t *testing.T) {
	a := array.Of(10, 20, 30)
	it := a.Begin().Advance(2)
	require.Equal(t, 30, it.Get())
	require.Equal(t, 20, it.Prev().Get())
	require.Equal(t, a.End(), it.Next())
	require.True(t, a.Begin().Less(it))
	require.False(t, it.Less(a.Begin()))
	require.Equal(t, -2, it.Distance(a.Begin()))
}

func TestIterator_Const(t *testing.T) {
	a := array.Of(1, 2)
	require.Equal(t, a.CBegin(), a.Begin().Const())
	require.Equal(t, a.CEnd(), a.End().Const())

	a.Set(0, 9)
	require.Equal(t, 9, a.CBegin().Get())
}

func TestIterator_DistinctArraysNotEqual(t *testing.T) {
	a := array.Of(1, 2)
	b := array.Of(1, 2)
	require.NotEqual(t, a.Begin(), b.Begin())
	require.False(t, a.Begin().Equal(b.Begin()))
}

func TestIterator_ZeroLengthCanonical(t *testing.T) {
	e1 := array.MustNew[int](0)
	e2 := array.MustNew[int](0)
	require.Equal(t, array.Iterator[int]{}, e1.Begin())
	require.Equal(t, e1.End(), e2.End())
	require.Empty(t, collect(e1.Begin(), e1.End()))
}

func TestIterator_DerefAtEndPanics(t *testing.T) {
	a := array.Of(1)
	require.Panics(t, func() { _ = a.End().Get() })
}
