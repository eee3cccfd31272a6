// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// Every exported failure of this package is one of the sentinels below,
// optionally wrapped with method context via fmt.Errorf("...: %w", ErrX).
// Callers match with errors.Is. Unchecked accessors never return errors;
// violating their preconditions panics in the Go runtime.

package array

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a checked access (At) outside [0, Size()).
	// It is the only error the element accessors ever return.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrBadSize is returned when a negative length is requested.
	ErrBadSize = errors.New("array: size must be >= 0")

	// ErrTooManyValues is returned when aggregate initialization supplies
	// more values than the array has slots.
	ErrTooManyValues = errors.New("array: too many initial values")

	// ErrSizeMismatch signals an operation across two arrays of different N,
	// e.g. Swap. Arrays of different length are different types in spirit.
	ErrSizeMismatch = errors.New("array: size mismatch")

	// ErrNilArray indicates that a nil *Array was passed as an operand.
	ErrNilArray = errors.New("array: nil array")
)

// arrayErrorf wraps err with Array method context.
func arrayErrorf(method string, pos, n int, err error) error {
	return fmt.Errorf("Array.%s(%d): %w [0,%d)", method, pos, err, n)
}
