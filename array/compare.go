// SPDX-License-Identifier: MIT

package array

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same N and equal elements index-wise.
// Two nil arrays are equal; a nil and a non-nil array are not.
// Complexity: O(N).
func Equal[T comparable](a, b *Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n {
		return false
	}

	return slices.EqualFunc(a.values, b.values, eq)
}

// Compare orders a and b lexicographically, returning -1, 0 or +1.
// A shorter array that is a prefix of the longer one sorts first.
// Both operands must be non-nil.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return slices.Compare(a.values, b.values)
}
