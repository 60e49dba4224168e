// SPDX-License-Identifier: MIT

// Package validate checks a precomputed matrix product against a fresh one.
//
// A Validator loads A, B and the expected product C from text files
// (package matfile), recomputes A·B, and compares the two products with the
// max-absolute-difference norm. The run passes when the norm is at most
// Tolerance (1.0e-3). Progress and the final report are written as plain
// text:
//
//	A = (2, 2)
//	B = (2, 2)
//	C = (2, 2)
//	Ok
//	Max difference: 0
//
// A failing run prints "Error" followed by one line per mismatching element,
// numbered by a running mismatch counter rather than by position:
//
//	i = 0 b[i] = 10 b2[i] = 3
//
// Pass or fail is reported in text only; Run returns an error solely for
// argument, file, parse and dimension problems.
package validate
