// SPDX-License-Identifier: MIT

// Package matrix - bridge to gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Offer an independent, BLAS-backed product (MulBLAS) to check results
//     against, the way numerical reference scripts lean on a linear-algebra library.
//   - Convert between *Dense and gonum matrices without changing values or order.
//
// Notes:
//   - gonum panics on shape errors; every entry point here validates first so
//     callers only ever see package sentinels.

package matrix

import "gonum.org/v1/gonum/mat"

// asGonum exposes a *Dense as a gonum matrix sharing the same buffer.
// Only for read-only use inside this file.
func asGonum(m *Dense) *mat.Dense {
	return mat.NewDense(m.r, m.c, m.data)
}

// toDense returns m itself when it is a *Dense, or a materialized copy otherwise.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// ToGonum returns an independent *mat.Dense copy of m.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return mat.NewDense(d.r, d.c, cp), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty gonum matrix).
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}

// MulBLAS computes a × b through gonum's mat.Dense.Mul (BLAS dgemm).
// The result is written straight into the buffer of the returned *Dense.
//
// Behavior highlights:
//   - Same contract as Mul; values may differ from Mul in the last ulp because
//     BLAS is free to reorder the accumulation.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) (+ copies for non-Dense operands).
func MulBLAS(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulBLAS, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMulBLAS, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMulBLAS, err)
	}
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMulBLAS, err)
	}

	// res.data is fresh, so the receiver never aliases the operands.
	asGonum(res).Mul(asGonum(da), asGonum(db))

	return res, nil
}
