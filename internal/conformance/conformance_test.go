package conformance_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/fixedarray/internal/conformance"
	"github.com/katalvlaran/fixedarray/tester"
	"github.com/stretchr/testify/require"
)

func TestRun_AllPass(t *testing.T) {
	var buf bytes.Buffer
	tt := tester.New(tester.WithOutput(&buf), tester.WithPassMode(tester.PassDetail))
	require.NoError(t, conformance.Run(tt))

	c := tt.Counts()
	require.Zero(t, c.Failed, buf.String())
	require.Greater(t, c.Done, 40)
	require.Equal(t, c.Done, c.Passed)
	require.Contains(t, buf.String(), "Pass: {1,2,3}.at(5) is out of range")
}

type shortWriter struct{ n int }

func (w *shortWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("closed")
	}
	w.n--

	return len(p), nil
}

func TestRun_StopsOnTesterError(t *testing.T) {
	tt := tester.New(tester.WithOutput(&shortWriter{n: 3}), tester.WithPassMode(tester.PassIndicate))
	err := conformance.Run(tt)
	require.ErrorIs(t, err, tester.ErrWrite)
	require.Equal(t, 4, tt.Counts().Done)
}
