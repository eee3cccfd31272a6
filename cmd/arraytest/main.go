// Command arraytest runs the fixed-array conformance suite and reports
// pass/fail results to the terminal or to a file.
//
// The process exit status is the number of failed tests (capped at 125).
package main

import "os"

func main() {
	os.Exit(Execute(os.Args[1:]))
}
