// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"
	"io"

	"github.com/katalvlaran/matcheck/matfile"
	"github.com/katalvlaran/matcheck/matrix"
)

// Tolerance is the largest max-absolute-difference accepted as a pass.
const Tolerance = 1.0e-3

// labels names the three inputs in load order.
var labels = [3]string{"A", "B", "C"}

// Validator runs the load → multiply → compare → report sequence.
// It holds no state between runs.
type Validator struct {
	out io.Writer
	mul Multiplier
}

// New returns a Validator writing to os.Stdout and multiplying with matrix.MulBLAS.
func New(opts ...Option) *Validator {
	v := defaults()
	for _, fn := range opts {
		fn(v)
	}

	return v
}

// Run validates paths[2] against paths[0]·paths[1].
//
// Each matrix's shape is printed right after it loads, so a failure on B
// still leaves the "A = ..." line behind. The report follows the comparison.
//
// Errors (the report is not printed):
//   - ErrArguments unless exactly three paths are given (nothing is printed).
//   - matfile.ErrFileAccess, matfile.ErrParse from loading.
//   - matrix.ErrDimensionMismatch when A·B is undefined or its shape differs from C.
func (v *Validator) Run(paths ...string) (*Report, error) {
	if len(paths) != len(labels) {
		return nil, fmt.Errorf("got %d: %w", len(paths), ErrArguments)
	}

	var loaded [3]*matrix.Dense
	for i, path := range paths {
		m, err := matfile.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", labels[i], err)
		}
		loaded[i] = m
		if _, err = fmt.Fprintf(v.out, "%s = %s\n", labels[i], shapeOf(m)); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
	}

	return v.Check(loaded[0], loaded[1], loaded[2])
}

// Check recomputes a·b, compares it with expected and prints the report.
// It is Run without the file handling.
func (v *Validator) Check(a, b, expected matrix.Matrix) (*Report, error) {
	computed, err := v.mul(a, b)
	if err != nil {
		return nil, fmt.Errorf("multiply: %w", err)
	}

	norm, err := matrix.MaxAbsDiff(computed, expected)
	if err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}

	rep := &Report{A: shapeOf(a), B: shapeOf(b), C: shapeOf(expected), Norm: norm}
	if !rep.Passed() {
		if rep.Mismatches, err = matrix.Mismatches(expected, computed, Tolerance); err != nil {
			return nil, fmt.Errorf("compare: %w", err)
		}
	}

	if _, err = rep.WriteTo(v.out); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	return rep, nil
}
