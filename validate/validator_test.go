// SPDX-License-Identifier: MIT
package validate_test

import (
	"bytes"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/matcheck/matfile"
	"github.com/katalvlaran/matcheck/matrix"
	"github.com/katalvlaran/matcheck/validate"
	"github.com/stretchr/testify/require"
)

// writeFiles stores each text under dir and returns the paths in order.
func writeFiles(t *testing.T, texts ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(texts))
	for i, text := range texts {
		paths[i] = filepath.Join(dir, []string{"a.txt", "b.txt", "c.txt", "d.txt"}[i])
		require.NoError(t, os.WriteFile(paths[i], []byte(text), 0o600))
	}

	return paths
}

// kernels runs every test body once per product kernel.
var kernels = map[string]validate.Multiplier{
	"blas":      matrix.MulBLAS,
	"reference": matrix.Mul,
}

// TestRunIdentityPasses is the identity scenario: exact product, zero norm.
func TestRunIdentityPasses(t *testing.T) {
	t.Parallel()
	paths := writeFiles(t, "1 0\n0 1\n", "5 6\n7 8\n", "5 6\n7 8\n")

	for name, mul := range kernels {
		var out bytes.Buffer
		rep, err := validate.New(validate.WithOutput(&out), validate.WithMultiplier(mul)).Run(paths...)
		require.NoError(t, err, name)
		require.True(t, rep.Passed())
		require.Equal(t, 0.0, rep.Norm)
		require.Empty(t, rep.Mismatches)
		require.Equal(t, "A = (2, 2)\nB = (2, 2)\nC = (2, 2)\nOk\nMax difference: 0\n", out.String(), name)
	}
}

// TestRunMismatchReported is the 1x2·2x1 scenario with a wrong expected value.
func TestRunMismatchReported(t *testing.T) {
	t.Parallel()
	paths := writeFiles(t, "1 2\n", "1\n1\n", "10\n")

	for name, mul := range kernels {
		var out bytes.Buffer
		rep, err := validate.New(validate.WithOutput(&out), validate.WithMultiplier(mul)).Run(paths...)
		require.NoError(t, err, name)
		require.False(t, rep.Passed())
		require.Equal(t, 7.0, rep.Norm)
		require.Equal(t,
			"A = (1, 2)\nB = (2, 1)\nC = (1, 1)\nError\ni = 0 b[i] = 10 b2[i] = 3\nMax difference: 7\n",
			out.String(), name)
	}
}

// TestRunMismatchCounter checks that the printed index counts mismatches, not positions.
func TestRunMismatchCounter(t *testing.T) {
	paths := writeFiles(t,
		"1 0 0\n0 1 0\n0 0 1\n",
		"1 2 3\n4 5 6\n7 8 9\n",
		"1 2 3\n4 0 6\n7 8 9.5\n")

	var out bytes.Buffer
	rep, err := validate.New(validate.WithOutput(&out)).Run(paths...)
	require.NoError(t, err)
	require.Len(t, rep.Mismatches, 2)
	require.Equal(t, [2]int{1, 1}, [2]int{rep.Mismatches[0].Row, rep.Mismatches[0].Col})
	require.Equal(t, [2]int{2, 2}, [2]int{rep.Mismatches[1].Row, rep.Mismatches[1].Col})
	require.Equal(t,
		"A = (3, 3)\nB = (3, 3)\nC = (3, 3)\nError\n"+
			"i = 0 b[i] = 0 b2[i] = 5\n"+
			"i = 1 b[i] = 9.5 b2[i] = 9\n"+
			"Max difference: 5\n",
		out.String())
}

// TestRunWithinTolerance accepts differences up to 1e-3 and still reports the norm.
func TestRunWithinTolerance(t *testing.T) {
	paths := writeFiles(t, "1\n", "2\n", "2.0005\n")

	var out bytes.Buffer
	rep, err := validate.New(validate.WithOutput(&out)).Run(paths...)
	require.NoError(t, err)
	require.True(t, rep.Passed())
	require.InDelta(t, 5e-4, rep.Norm, 1e-12)
	require.Equal(t, "A = (1, 1)\nB = (1, 1)\nC = (1, 1)\nOk\nMax difference: 0.0005\n", out.String())
}

// TestRunNaNNorm pins the classification rule "failing only if norm > 1e-3":
// a NaN norm is not greater than the tolerance, so the run reports Ok.
func TestRunNaNNorm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b, c string
		want    string
	}{
		{"nan expected", "1\n", "2\n", "nan\n",
			"A = (1, 1)\nB = (1, 1)\nC = (1, 1)\nOk\nMax difference: nan\n"},
		{"equal infinities", "1\n", "inf\n", "inf\n",
			"A = (1, 1)\nB = (1, 1)\nC = (1, 1)\nOk\nMax difference: nan\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			rep, err := validate.New(validate.WithOutput(&out)).Run(writeFiles(t, tc.a, tc.b, tc.c)...)
			require.NoError(t, err)
			require.True(t, rep.Passed())
			require.True(t, math.IsNaN(rep.Norm))
			require.Empty(t, rep.Mismatches)
			require.Equal(t, tc.want, out.String())
		})
	}
}

// TestRunInnerDimensionMismatch is the 3x2·3x2 scenario: no comparison happens.
func TestRunInnerDimensionMismatch(t *testing.T) {
	paths := writeFiles(t, "1 2\n3 4\n5 6\n", "1 2\n3 4\n5 6\n", "1\n")

	var out bytes.Buffer
	rep, err := validate.New(validate.WithOutput(&out)).Run(paths...)
	require.Nil(t, rep)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, "A = (3, 2)\nB = (3, 2)\nC = (1, 1)\n", out.String())
}

// TestRunResultShapeMismatch fails when A·B and C differ in shape.
func TestRunResultShapeMismatch(t *testing.T) {
	paths := writeFiles(t, "1 2\n", "1\n1\n", "3 3\n")

	var out bytes.Buffer
	_, err := validate.New(validate.WithOutput(&out)).Run(paths...)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "compare")
	require.NotContains(t, out.String(), "Max difference")
}

// TestRunArguments rejects anything but three paths without printing.
func TestRunArguments(t *testing.T) {
	for _, n := range []int{0, 1, 2, 4} {
		var out bytes.Buffer
		_, err := validate.New(validate.WithOutput(&out)).Run(make([]string, n)...)
		require.ErrorIs(t, err, validate.ErrArguments)
		require.Empty(t, out.String())
	}
}

// TestRunFileErrors covers a missing file and malformed content, including partial output.
func TestRunFileErrors(t *testing.T) {
	paths := writeFiles(t, "1 0\n0 1\n", "5 x\n", "5 6\n7 8\n")

	var out bytes.Buffer
	_, err := validate.New(validate.WithOutput(&out)).Run(paths...)
	require.ErrorIs(t, err, matfile.ErrParse)
	require.Contains(t, err.Error(), "load B")
	require.Equal(t, "A = (2, 2)\n", out.String())

	out.Reset()
	_, err = validate.New(validate.WithOutput(&out)).Run(paths[0], paths[2], filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, matfile.ErrFileAccess)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Equal(t, "A = (2, 2)\nB = (2, 2)\n", out.String())
}

// brokenWriter fails every write.
type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

// TestRunWriteError surfaces output failures.
func TestRunWriteError(t *testing.T) {
	paths := writeFiles(t, "1\n", "1\n", "1\n")

	_, err := validate.New(validate.WithOutput(brokenWriter{})).Run(paths...)
	require.ErrorContains(t, err, "closed pipe")
}

// TestCheckInMemory exercises Check without files.
func TestCheckInMemory(t *testing.T) {
	a, err := matrix.NewDenseFrom([][]float64{{2}})
	require.NoError(t, err)

	var out bytes.Buffer
	rep, err := validate.New(validate.WithOutput(&out)).Check(a, a, a)
	require.NoError(t, err)
	require.Equal(t, validate.Shape{Rows: 1, Cols: 1}, rep.C)
	require.Equal(t, "Error\ni = 0 b[i] = 2 b2[i] = 4\nMax difference: 2\n", out.String())
}

// TestOptionPanics documents programmer-error panics.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { validate.WithOutput(nil) })
	require.Panics(t, func() { validate.WithMultiplier(nil) })
}
