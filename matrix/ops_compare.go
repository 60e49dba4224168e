// SPDX-License-Identifier: MIT

// Package matrix - comparison kernels for checking a product against a reference.
//
// Purpose:
//   - MaxAbsDiff: the max-absolute-difference "norm" max|a-b| over all elements.
//   - Mismatches: the row-major list of element pairs whose |a-b| exceeds a tolerance.
//   - AllClose:   the boolean form of the same check.
//
// Numeric policy:
//   - Every check is the plain comparison |a-b| > tol. A NaN difference
//     (NaN operand, or equal infinities) is never "over", so Mismatches skips it
//     and AllClose accepts it.
//   - MaxAbsDiff still propagates NaN, so callers see it in the norm.

package matrix

import "math"

// absDiff returns |a-b|.
func absDiff(a, b float64) float64 { return math.Abs(a - b) }

// exceeds reports whether d > tol; false for a NaN d.
func exceeds(d, tol float64) bool { return d > tol }

// dense2 returns both operands as *Dense after the shared shape validation.
func dense2(tag string, a, b Matrix) (*Dense, *Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return da, db, nil
}

// MaxAbsDiff returns max over all (i,j) of |a(i,j) - b(i,j)|.
// Returns NaN if any difference is NaN.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	da, db, err := dense2(opMaxAbsDiff, a, b)
	if err != nil {
		return 0, err
	}

	norm := 0.0
	for idx, av := range da.data {
		d := absDiff(av, db.data[idx])
		if math.IsNaN(d) {
			return math.NaN(), nil
		}
		if d > norm {
			norm = d
		}
	}

	return norm, nil
}

// Mismatches scans expected and computed in lockstep (row-major, rows outer)
// and returns every pair with |expected - computed| > tol.
// Each Mismatch carries its ordinal among mismatches (Index) and its true
// position (Row, Col).
//
// Errors:
//   - ErrNaNInf when tol is NaN or ±Inf or negative.
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(mismatches).
func Mismatches(expected, computed Matrix, tol float64) ([]Mismatch, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return nil, matrixErrorf(opMismatches, ErrNaNInf)
	}
	de, dc, err := dense2(opMismatches, expected, computed)
	if err != nil {
		return nil, err
	}

	var out []Mismatch
	for idx, ev := range de.data {
		cv := dc.data[idx]
		if !exceeds(absDiff(ev, cv), tol) {
			continue
		}
		out = append(out, Mismatch{
			Index:    len(out),
			Row:      idx / de.c,
			Col:      idx % de.c,
			Expected: ev,
			Computed: cv,
		})
	}

	return out, nil
}

// AllClose reports whether every |a-b| <= atol.
// atol is treated as |atol|; NaN or ±Inf atol yields ErrNaNInf.
//
// Errors:
//   - ErrNaNInf, ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, atol float64) (bool, error) {
	if math.IsNaN(atol) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	da, db, err := dense2(opAllClose, a, b)
	if err != nil {
		return false, err
	}

	atol = math.Abs(atol)
	for idx, av := range da.data {
		if exceeds(absDiff(av, db.data[idx]), atol) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
