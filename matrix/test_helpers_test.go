// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcheck/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) kernel paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds a *Dense from row literals or fails the test.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// RandDense fills an r×c *Dense with values in [-1, 1) from a fixed seed.
func RandDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}
