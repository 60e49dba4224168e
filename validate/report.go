// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/matcheck/matrix"
)

// Shape is a (rows, cols) pair; it prints like a tuple: "(2, 3)".
type Shape struct {
	Rows, Cols int
}

func shapeOf(m matrix.Matrix) Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }

func (s Shape) String() string { return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols) }

// Report is the outcome of one validation run.
type Report struct {
	A, B, C    Shape             // shapes of the loaded matrices
	Norm       float64           // max |computed - expected|; NaN if any difference is NaN
	Mismatches []matrix.Mismatch // elements over Tolerance, only filled for failing runs
}

// Passed reports whether the run is not failing, i.e. Norm is not above
// Tolerance. A NaN norm is not above it, so it passes.
func (r *Report) Passed() bool { return !(r.Norm > Tolerance) }

// WriteTo prints the verdict, the mismatch lines of a failing run, and the
// "Max difference" line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	if r.Passed() {
		fmt.Fprintln(cw, "Ok")
	} else {
		fmt.Fprintln(cw, "Error")
		for _, mm := range r.Mismatches {
			fmt.Fprintf(cw, "i = %d b[i] = %s b2[i] = %s\n", mm.Index, formatG(mm.Expected), formatG(mm.Computed))
		}
	}
	fmt.Fprintf(cw, "Max difference: %s\n", formatG(r.Norm))

	return cw.n, cw.err
}

// formatG renders v like C's "%g": six significant digits, trailing zeros
// dropped, exponent form outside [1e-4, 1e6), lower-case nan/inf.
func formatG(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'g', 6, 64)
}

// countWriter counts bytes and keeps the first write error; later writes are dropped.
type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err

	return n, err
}
