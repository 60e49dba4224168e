// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No exported
// function panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping.
// ERROR PRIORITY (enforced in tests):
// nil operand -> dimension mismatch -> index/numeric violations.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Sub/MaxAbsDiff on different shapes, Mul where a.Cols != b.Rows,
	// or ragged rows handed to NewDenseFrom.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf tolerance where a finite one is required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
