package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fixedarray/internal/conformance"
	"github.com/katalvlaran/fixedarray/tester"
)

const (
	exeMacro          = "$exe"
	defaultHeaderText = "Running " + exeMacro
	defaultExtension  = ".out"
	maxExitCode       = 125
)

// File modes for --file-mode.
const (
	fileModeCreate    = "create"    // refuse to touch an existing file
	fileModeOverwrite = "overwrite" // truncate
	fileModeAppend    = "append"
)

// ErrOutputExists is returned in create mode when the output file exists.
var ErrOutputExists = errors.New("arraytest: output file already exists")

// config collects the command-line switches.
type config struct {
	header        bool
	headerText    string
	passMode      string
	summary       bool
	failThreshold int
	file          string
	fileMode      string
}

// Execute runs the root command with args and returns the exit status.
func Execute(args []string) int {
	code := 0
	cmd := newRootCmd(os.Args[0], &code)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}

	return code
}

func newRootCmd(argv0 string, code *int) *cobra.Command {
	cfg := config{}
	cmd := &cobra.Command{
		Use:   "arraytest",
		Short: "Run the fixed-array conformance suite.",
		Long: `arraytest exercises every operation of the fixed-size array ` +
			`container and reports pass/fail counts. "$exe" in the header ` +
			`text or output file name expands to the executable name.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			failed, err := run(cfg, exeName(argv0), cmd.OutOrStdout())
			if err != nil {
				slog.Error("arraytest failed", "err", err)
				return err
			}
			*code = min(failed, maxExitCode)

			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&cfg.header, "header", true, "print a header before the results")
	f.StringVar(&cfg.headerText, "header-text", defaultHeaderText, "header text")
	f.StringVarP(&cfg.passMode, "pass-mode", "p", tester.PassAuto.String(),
		"pass report mode: auto, none, indicate or detail")
	f.BoolVarP(&cfg.summary, "summary", "s", true, "print a summary after the results")
	f.IntVarP(&cfg.failThreshold, "fail-threshold", "t", 0, "stop after this many failures (0: never)")
	f.StringVarP(&cfg.file, "file", "f", "", "write the report to this file instead of stdout")
	f.StringVar(&cfg.fileMode, "file-mode", fileModeCreate, "output file mode: create, overwrite or append")

	return cmd
}

// run executes the suite per cfg and returns the number of failed tests.
func run(cfg config, exe string, stdout io.Writer) (int, error) {
	mode, err := tester.ParsePassMode(cfg.passMode)
	if err != nil {
		return 0, err
	}
	if cfg.failThreshold < 0 {
		return 0, fmt.Errorf("fail threshold %d must be >= 0", cfg.failThreshold)
	}

	headerText := ""
	if cfg.header {
		headerText = expandExe(cfg.headerText, exe)
	}

	out := stdout
	toFile := cfg.file != ""
	if toFile {
		fh, err := openOutput(expandExe(cfg.file, exe), cfg.fileMode)
		if err != nil {
			return 0, err
		}
		defer fh.Close()
		out = fh
	}

	t := tester.New(
		tester.WithOutput(out),
		tester.WithPassMode(mode.Resolve(toFile)),
		tester.WithFailThreshold(cfg.failThreshold),
		tester.WithHeader(headerText),
	)

	err = conformance.Run(t)
	switch {
	case errors.Is(err, tester.ErrFailThreshold):
		fmt.Fprintln(out, err)
	case err != nil:
		return t.Failed(), err
	}

	if cfg.summary {
		if err := t.Summarize(); err != nil {
			return t.Failed(), err
		}
	}

	return t.Failed(), nil
}

// openOutput opens path per mode. A path without extension gets ".out".
func openOutput(path, mode string) (*os.File, error) {
	if filepath.Ext(path) == "" {
		path += defaultExtension
	}

	var flags int
	switch mode {
	case fileModeCreate:
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	case fileModeOverwrite:
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case fileModeAppend:
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	default:
		return nil, fmt.Errorf("unknown file mode %q", mode)
	}

	fh, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrOutputExists)
	}
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}

	return fh, nil
}

// exeName strips directory and extension from argv0.
func exeName(argv0 string) string {
	base := filepath.Base(argv0)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

func expandExe(s, exe string) string {
	return strings.ReplaceAll(s, exeMacro, exe)
}
