// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and nil checks.
//  - Keep kernels minimal by delegating guards here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil (*Dense)(nil) stored in the interface is rejected as well.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("ValidateSameShape: (%d, %d) vs (%d, %d): %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() for the product a×b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("ValidateMulCompatible: inner dimensions %d vs %d: %w",
			a.Cols(), b.Rows(), ErrDimensionMismatch)
	}

	return nil
}
