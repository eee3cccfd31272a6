package tester

import (
	"errors"
	"fmt"
)

// Counts is a snapshot of the tester's bookkeeping.
type Counts struct {
	Done   int // tests performed
	Passed int // tests that passed
	Failed int // tests that failed
}

// Tester records pass/fail results and writes a human-readable report.
// A Tester is not safe for concurrent use.
type Tester struct {
	opts       Options
	passMode   PassMode
	counts     Counts
	headerDone bool
}

// New creates a Tester configured by opts.
// PassAuto is treated as PassNone; resolve it with PassMode.Resolve first
// when the destination is known to be a file.
func New(opts ...Option) *Tester {
	o := gatherOptions(opts...)

	return &Tester{opts: o, passMode: o.passMode.Resolve(false)}
}

// Verify records one test with outcome ok and description msg.
// Failures are always reported; passes per the configured PassMode.
// Returns ErrFailThreshold once failures reach a non-zero threshold,
// or an error wrapping ErrWrite if the report could not be written.
func (t *Tester) Verify(ok bool, msg string) error {
	if err := t.writeHeader(); err != nil {
		return err
	}

	t.counts.Done++
	n := t.counts.Done
	var err error
	if ok {
		t.counts.Passed++
		switch t.passMode {
		case PassIndicate:
			err = t.printf("Test #%d: Pass\n", n)
		case PassDetail:
			err = t.printf("Test #%d: Pass: %s\n", n, msg)
		}
	} else {
		t.counts.Failed++
		err = t.printf("Test #%d: FAIL: %s\n", n, msg)
	}
	if err != nil {
		return err
	}

	if t.opts.failThreshold > 0 && t.counts.Failed >= t.opts.failThreshold {
		return ErrFailThreshold
	}

	return nil
}

// VerifyError records a test that passes when errors.Is(err, target).
// A nil target expects err == nil.
func (t *Tester) VerifyError(err, target error, msg string) error {
	if target == nil {
		return t.Verify(err == nil, msg)
	}

	return t.Verify(errors.Is(err, target), msg)
}

// VerifyPanics records a test that passes when fn panics.
func (t *Tester) VerifyPanics(fn func(), msg string) error {
	return t.Verify(panics(fn), msg)
}

func panics(fn func()) (didPanic bool) {
	defer func() {
		if recover() != nil {
			didPanic = true
		}
	}()
	fn()

	return false
}

// Summarize writes the pass/fail totals.
func (t *Tester) Summarize() error {
	if err := t.writeHeader(); err != nil {
		return err
	}

	c := t.counts
	if err := t.printf("\n%d tests succeeded out of %d tests performed\n", c.Passed, c.Done); err != nil {
		return err
	}
	if c.Failed > 0 {
		return t.printf("%d tests failed\n", c.Failed)
	}

	return nil
}

// Counts returns the current totals.
func (t *Tester) Counts() Counts { return t.counts }

// Failed returns the number of failed tests.
func (t *Tester) Failed() int { return t.counts.Failed }

// PassMode returns the effective pass report mode.
func (t *Tester) PassMode() PassMode { return t.passMode }

func (t *Tester) writeHeader() error {
	if t.headerDone {
		return nil
	}
	t.headerDone = true
	if t.opts.header == "" {
		return nil
	}

	return t.printf("%s\n\n", t.opts.header)
}

func (t *Tester) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(t.opts.out, format, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}
