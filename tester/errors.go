// SPDX-License-Identifier: MIT

package tester

import "errors"

var (
	// ErrFailThreshold is returned by Verify once the number of failures
	// reaches the configured threshold. Callers stop running tests.
	ErrFailThreshold = errors.New("tester: fail threshold reached")

	// ErrUnknownPassMode is returned by ParsePassMode for unrecognised names.
	ErrUnknownPassMode = errors.New("tester: unknown pass report mode")

	// ErrWrite wraps a failure writing a report line to the output.
	ErrWrite = errors.New("tester: write report")
)
