// SPDX-License-Identifier: MIT

// Package matrix offers the dense numeric core used to check matrix products.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking).
//   - Mul, a deterministic reference product (i→k→j loop order), and MulBLAS,
//     the same product delegated to gonum's BLAS-backed mat.Dense.
//   - MaxAbsDiff and Mismatches, the max-absolute-difference metric and the
//     element scan used to report discrepancies between two products.
//   - Central validators returning package sentinels (ErrDimensionMismatch,
//     ErrNilMatrix, ...) so every kernel fails the same way.
//
// All errors are sentinels matched with errors.Is; call sites add an
// operation tag ("Mul: ...") without hiding the sentinel.
package matrix
