// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise subtraction and the reference matrix product. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.
//   - *Dense operands take a flat-slice fast path; any other Matrix goes through At/Set.

package matrix

import "fmt"

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opSub        = "Sub"
	opMul        = "Mul"
	opMulBLAS    = "MulBLAS"
	opMaxAbsDiff = "MaxAbsDiff"
	opMismatches = "Mismatches"
	opAllClose   = "AllClose"
	opFromGonum  = "FromGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sub returns the element-wise difference a − b as a new *Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateSameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	r, c := a.Rows(), a.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] - db.data[idx]
			}
			return res, nil
		}
	}

	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			res.data[i*c+j] = av - bv
		}
	}

	return res, nil
}

// Mul computes the matrix product a × b with a plain triple loop.
// MAIN DESCRIPTION:
//   - Reference kernel: every output element is the exact row·column dot
//     product accumulated in k order, so results are reproducible bit for bit.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows).
//   - Stage 2: allocate zeroed result (a.Rows × b.Cols).
//   - Stage 3: Dense fast path in i→k→j order over flat slices; otherwise
//     generic i→j→k through At.
//
// Behavior highlights:
//   - Zero entries are NOT skipped: 0·Inf must still yield NaN, exactly like a
//     dot product computed by the program under test.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
		current float64
	)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}
