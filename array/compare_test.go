package array_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/fixedarray/array"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	require.True(t, array.Equal(array.Of(1, 2), array.Of(1, 2)))
	require.False(t, array.Equal(array.Of(1, 2), array.Of(1, 3)))
	require.False(t, array.Equal(array.Of(1, 2), array.Of(1, 2, 3)))
	require.True(t, array.Equal(array.MustNew[int](0), array.MustNew[int](0)))
	require.True(t, array.Equal[int](nil, nil))
	require.False(t, array.Equal(nil, array.Of(1)))
}

func TestEqualFunc(t *testing.T) {
	a := array.Of("Go", "LANG")
	b := array.Of("go", "lang")
	require.True(t, array.EqualFunc(a, b, strings.EqualFold))
}

func TestCompare(t *testing.T) {
	require.Equal(t, 0, array.Compare(array.Of(1, 2, 3), array.Of(1, 2, 3)))
	require.Equal(t, -1, array.Compare(array.Of(1, 2, 3), array.Of(1, 3, 0)))
	require.Equal(t, 1, array.Compare(array.Of(2), array.Of(1, 9)))
	require.Equal(t, -1, array.Compare(array.Of(1, 2), array.Of(1, 2, 0)))
	require.Equal(t, 0, array.Compare(array.MustNew[int](0), array.MustNew[int](0)))
}
