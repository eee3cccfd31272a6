// Package fixedarray is a fixed-size array container for Go with the access
// and iterator contract of a standard-library fixed array, plus the small
// reporting harness used to validate it.
//
// Everything is organized under these packages:
//
//	array/                — Array[T]: fixed-length storage, checked and unchecked
//	                        access, forward/const/reverse iterators, comparisons
//	tester/               — pass/fail reporting harness (modes, threshold, summary)
//	internal/conformance/ — the container contract expressed as tester checks
//	cmd/arraytest/        — CLI running the conformance suite
//
// Quick example:
//
//	a := array.Of(1, 2, 3)
//	if _, err := a.At(5); errors.Is(err, array.ErrOutOfRange) {
//	    // checked access failed; a is unchanged
//	}
//	a.Fill(9) // [9 9 9]
//
//	go get github.com/katalvlaran/fixedarray/array
package fixedarray
