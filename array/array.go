// SPDX-License-Identifier: MIT

package array

import (
	"fmt"
	"strings"
)

// panic messages for the Must* constructors.
const (
	panicMustNew = "array: MustNew: "
)

// Array is a fixed-capacity ordered container of exactly N values of T.
// N is chosen at construction and never changes; the backing storage is
// allocated once and is never reallocated, so pointers returned by Ref, At,
// Front, Back and Data stay valid for the lifetime of the Array.
//
// Assigning a *Array aliases it. Use Clone for a value copy.
type Array[T any] struct {
	values []T // len(values) == n; nil when n == 0
	n      int // fixed length
}

// New creates an Array of length n using aggregate-style initialization:
// values fills slots 0..len(values)-1, the remaining slots hold T's zero value.
// Stage 1 (Validate): n >= 0 and len(values) <= n.
// Stage 2 (Prepare): allocate n slots (none when n == 0).
// Stage 3 (Finalize): copy the initial values.
// Complexity: O(n) time and memory.
func New[T any](n int, values ...T) (*Array[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrBadSize)
	}
	if len(values) > n {
		return nil, fmt.Errorf("New(%d) with %d values: %w", n, len(values), ErrTooManyValues)
	}

	a := &Array[T]{n: n}
	// zero-length arrays keep nil storage; Data() relies on it
	if n > 0 {
		a.values = make([]T, n)
		copy(a.values, values)
	}

	return a, nil
}

// MustNew is like New but panics on an invalid size or too many values.
// Intended for package-level literals where the shape is a programmer constant.
func MustNew[T any](n int, values ...T) *Array[T] {
	a, err := New(n, values...)
	if err != nil {
		panic(panicMustNew + err.Error())
	}

	return a
}

// Of creates an Array whose length is the number of values given.
func Of[T any](values ...T) *Array[T] {
	return MustNew(len(values), values...)
}

// FromSlice creates an Array of length len(s) holding a copy of s.
// Later writes to s are not observed by the Array.
func FromSlice[T any](s []T) *Array[T] {
	return MustNew(len(s), s...)
}

// Clone returns a value copy: a new Array with the same N and a copy of
// every element. Complexity: O(N).
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{n: a.n}
	if a.n > 0 {
		c.values = make([]T, a.n)
		copy(c.values, a.values)
	}

	return c
}

// Fill overwrites every element with v. No-op when N == 0.
// Complexity: O(N).
func (a *Array[T]) Fill(v T) {
	for i := range a.values {
		a.values[i] = v
	}
}

// Swap exchanges contents element-wise with other. Both arrays must have
// the same N; on mismatch nothing is modified and ErrSizeMismatch is returned.
// No allocation. Complexity: O(N).
func (a *Array[T]) Swap(other *Array[T]) error {
	if a == nil || other == nil {
		return fmt.Errorf("Array.Swap: %w", ErrNilArray)
	}
	if a.n != other.n {
		return fmt.Errorf("Array.Swap: %d vs %d: %w", a.n, other.n, ErrSizeMismatch)
	}
	for i := range a.values {
		a.values[i], other.values[i] = other.values[i], a.values[i]
	}

	return nil
}

// Swap is the free-function form of a.Swap(b).
func Swap[T any](a, b *Array[T]) error {
	if a == nil {
		return fmt.Errorf("array.Swap: %w", ErrNilArray)
	}

	return a.Swap(b)
}

// ---------- capacity ----------

// Empty reports whether N == 0. Fixed at construction.
func (a *Array[T]) Empty() bool { return a.n == 0 }

// Size returns N.
func (a *Array[T]) Size() int { return a.n }

// MaxSize returns N; capacity is not a runtime state.
func (a *Array[T]) MaxSize() int { return a.n }

// ---------- unchecked element access ----------

// Ref returns a pointer to the element at pos without validation.
// Caller guarantees 0 <= pos < N; otherwise the Go runtime panics.
// Complexity: O(1).
func (a *Array[T]) Ref(pos int) *T {
	return &a.values[pos]
}

// Get returns the element at pos without validation. See Ref.
func (a *Array[T]) Get(pos int) T {
	return a.values[pos]
}

// Set stores v at pos without validation. See Ref.
func (a *Array[T]) Set(pos int, v T) {
	a.values[pos] = v
}

// ---------- checked element access ----------

// At returns a pointer to the element at pos, or an error wrapping
// ErrOutOfRange when pos is outside [0, N). This is the only accessor
// that validates its argument.
// Stage 1 (Validate): 0 <= pos < N.
// Stage 2 (Execute): address into storage.
// Complexity: O(1).
func (a *Array[T]) At(pos int) (*T, error) {
	if pos < 0 || pos >= a.n {
		return nil, arrayErrorf("At", pos, a.n, ErrOutOfRange)
	}

	return &a.values[pos], nil
}

// Front returns a pointer to the first element. Unchecked: panics when N == 0.
func (a *Array[T]) Front() *T {
	return &a.values[0]
}

// Back returns a pointer to the last element. Unchecked: panics when N == 0.
func (a *Array[T]) Back() *T {
	return &a.values[a.n-1]
}

// Data exposes the contiguous storage as a slice of length and capacity N.
// Writes through the slice are writes to the Array. Returns nil when N == 0.
func (a *Array[T]) Data() []T {
	// full slice expression: appending to the result must never write past N
	return a.values[:a.n:a.n]
}

// String implements fmt.Stringer, e.g. "[1 2 3]".
// Complexity: O(N).
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}
