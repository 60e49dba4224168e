// SPDX-License-Identifier: MIT

// Package matrix: public interfaces and small value types.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept any implementation and take a flat-slice fast path when
// both operands are *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Mismatch describes one element pair whose absolute difference exceeded the
// tolerance in Mismatches.
//
// Index is the running count of mismatches found so far (0-based), NOT the
// element position; Row and Col carry the true position.
type Mismatch struct {
	Index    int     // ordinal among mismatches, in row-major scan order
	Row, Col int     // element coordinates
	Expected float64 // value from the reference matrix
	Computed float64 // value from the recomputed matrix
}
