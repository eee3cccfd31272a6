// Package tester is a minimal unit-test reporting harness.
//
// A Tester counts tests, prints one line per failure (and, depending on the
// PassMode, per pass) and finally a summary:
//
//	t := tester.New(tester.WithPassMode(tester.PassDetail), tester.WithFailThreshold(3))
//	if err := t.Verify(a.Size() == 3, "size is 3"); err != nil {
//	    return err // ErrFailThreshold: stop early
//	}
//	_ = t.Summarize()
//
// Output format:
//
//	Test #1: Pass: size is 3
//	Test #2: FAIL: at(5) reports out of range
//
//	1 tests succeeded out of 2 tests performed
//	1 tests failed
package tester
