// SPDX-License-Identifier: MIT

// Package generate produces deterministic matrix-product workloads.
//
// Inputs are filled tile by tile: the rows are cut into tiles of ts rows and
// every tile restarts a drand48 stream seeded with the tile's first row
// index. The same (dim, ts) therefore always yields the same bytes, and any
// program using the POSIX srand48/drand48 pair can rebuild the inputs.
//
// The product is computed tile by tile with the reference kernel
// (matrix.Mul), then written with matfile in the Octave text layout the
// validator reads back.
package generate
