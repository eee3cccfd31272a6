// SPDX-License-Identifier: MIT

// Package tester: functional configuration for Tester.
// Defaults are documented constants; WithX constructors panic only on
// nonsensical values (programmer error), never on user data.

package tester

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// PassMode controls how passing tests are reported. Failures are always
// reported in full.
type PassMode int

const (
	// PassAuto resolves to PassNone for terminal output and PassIndicate
	// for file output (see Resolve).
	PassAuto PassMode = iota
	// PassNone prints nothing for passing tests.
	PassNone
	// PassIndicate prints "Test #k: Pass" for each passing test.
	PassIndicate
	// PassDetail prints "Test #k: Pass: <message>" for each passing test.
	PassDetail
)

var passModeNames = map[PassMode]string{
	PassAuto:     "auto",
	PassNone:     "none",
	PassIndicate: "indicate",
	PassDetail:   "detail",
}

// String returns the command-line name of m.
func (m PassMode) String() string {
	if s, ok := passModeNames[m]; ok {
		return s
	}

	return fmt.Sprintf("PassMode(%d)", int(m))
}

// ParsePassMode maps "auto", "none", "indicate" or "detail" (case-insensitive)
// to a PassMode.
func ParsePassMode(s string) (PassMode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range passModeNames {
		if name == key {
			return m, nil
		}
	}

	return PassAuto, fmt.Errorf("ParsePassMode(%q): %w", s, ErrUnknownPassMode)
}

// Resolve turns PassAuto into a concrete mode: PassIndicate when the report
// goes to a file, PassNone otherwise. Other modes are returned unchanged.
func (m PassMode) Resolve(toFile bool) PassMode {
	if m != PassAuto {
		return m
	}
	if toFile {
		return PassIndicate
	}

	return PassNone
}

// ---------- Defaults ----------

const (
	// DefaultPassMode reports nothing for passing tests on a terminal.
	DefaultPassMode = PassAuto

	// DefaultFailThreshold of 0 disables the threshold: every test runs.
	DefaultFailThreshold = 0

	// DefaultHeader is empty: no header line is printed.
	DefaultHeader = ""
)

const (
	panicNilOutput         = "tester: WithOutput: writer must be non-nil"
	panicNegativeThreshold = "tester: WithFailThreshold: threshold must be >= 0"
)

// Options holds Tester configuration. Fields are unexported; use Option.
type Options struct {
	out           io.Writer
	passMode      PassMode
	failThreshold int
	header        string
}

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// WithOutput sets the report destination. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic(panicNilOutput)
	}

	return func(o *Options) { o.out = w }
}

// WithPassMode sets how passing tests are reported.
func WithPassMode(m PassMode) Option {
	return func(o *Options) { o.passMode = m }
}

// WithFailThreshold stops testing after n failures; 0 means never stop.
func WithFailThreshold(n int) Option {
	if n < 0 {
		panic(panicNegativeThreshold)
	}

	return func(o *Options) { o.failThreshold = n }
}

// WithHeader sets a line printed once before the first report.
func WithHeader(text string) Option {
	return func(o *Options) { o.header = text }
}

func defaultOptions() Options {
	return Options{
		out:           os.Stdout,
		passMode:      DefaultPassMode,
		failThreshold: DefaultFailThreshold,
		header:        DefaultHeader,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
