// SPDX-License-Identifier: MIT

// Package matfile reads and writes matrices as plain text.
//
// Format (one matrix per file):
//
//	# name: A            <- optional comment header, ignored on read
//	# type: matrix
//	# rows: 2
//	# columns: 2
//	1.00000000 0.00000000
//	0.00000000 1.00000000
//
// Rows are newline-separated and values within a row are separated by any
// run of whitespace. Text after '#' is a comment; blank lines are skipped.
// Every row must have the same number of values.
//
// Read/Load turn any violation into ErrParse (with line and field context);
// Load and Save report open, read and write failures as ErrFileAccess.
package matfile
