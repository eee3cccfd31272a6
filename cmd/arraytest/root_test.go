package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixedarray/tester"
)

func execute(t *testing.T, args ...string) (string, int, error) {
	t.Helper()
	var buf bytes.Buffer
	code := -1
	cmd := newRootCmd("/usr/local/bin/arraytest.exe", &code)
	cmd.SetOut(&buf)
	// nil args would make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()

	return buf.String(), code, err
}

func TestRoot_Defaults(t *testing.T) {
	out, code, err := execute(t)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, out, "Running arraytest\n")
	require.Contains(t, out, "tests succeeded out of")
	require.NotContains(t, out, "Pass")
}

func TestRoot_DetailNoHeaderNoSummary(t *testing.T) {
	out, code, err := execute(t, "-p", "detail", "--header=false", "-s=false")
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.NotContains(t, out, "Running")
	require.NotContains(t, out, "tests performed")
	require.Contains(t, out, "Test #1: Pass: ")
}

func TestRoot_BadPassMode(t *testing.T) {
	_, _, err := execute(t, "-p", "loud")
	require.ErrorIs(t, err, tester.ErrUnknownPassMode)
}

func TestRoot_FileOutput(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "$exe-report")

	stdout, code, err := execute(t, "-f", target)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Empty(t, stdout)

	data, err := os.ReadFile(filepath.Join(dir, "arraytest-report.out"))
	require.NoError(t, err)
	// auto pass mode resolves to indicate for files
	require.Contains(t, string(data), "Test #1: Pass\n")

	// create mode refuses an existing file
	_, _, err = execute(t, "-f", target)
	require.ErrorIs(t, err, ErrOutputExists)

	// append mode adds a second report
	_, _, err = execute(t, "-f", target, "--file-mode", "append")
	require.NoError(t, err)
	appended, err := os.ReadFile(filepath.Join(dir, "arraytest-report.out"))
	require.NoError(t, err)
	require.Equal(t, 2*len(data), len(appended))

	// overwrite truncates
	_, _, err = execute(t, "-f", target, "--file-mode", "overwrite")
	require.NoError(t, err)
	overwritten, err := os.ReadFile(filepath.Join(dir, "arraytest-report.out"))
	require.NoError(t, err)
	require.Equal(t, data, overwritten)
}

func TestRoot_UnknownFileMode(t *testing.T) {
	_, _, err := execute(t, "-f", filepath.Join(t.TempDir(), "r.txt"), "--file-mode", "replace")
	require.Error(t, err)
}

func TestExeName(t *testing.T) {
	require.Equal(t, "arraytest", exeName("/usr/bin/arraytest"))
	require.Equal(t, "arraytest", exeName(`arraytest.exe`))
	require.Equal(t, "Running x and x", expandExe("Running $exe and $exe", "x"))
}
