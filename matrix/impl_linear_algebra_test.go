// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for Sub and the reference Mul kernel.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matcheck/matrix"
	"github.com/stretchr/testify/require"
)

// TestMulKnownProducts checks small hand-computed products.
func TestMulKnownProducts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b [][]float64
		want [][]float64
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, [][]float64{{5, 6}, {7, 8}}, [][]float64{{5, 6}, {7, 8}}},
		{"row times column", [][]float64{{1, 2}}, [][]float64{{1}, {1}}, [][]float64{{3}}},
		{"column times row", [][]float64{{1}, {2}}, [][]float64{{3, 4}}, [][]float64{{3, 4}, {6, 8}}},
		{"2x3 by 3x2", [][]float64{{1, 2, 3}, {4, 5, 6}}, [][]float64{{7, 8}, {9, 10}, {11, 12}}, [][]float64{{58, 64}, {139, 154}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.Mul(MustFrom(t, tc.a), MustFrom(t, tc.b))
			require.NoError(t, err)
			require.Equal(t, MustFrom(t, tc.want).RawData(), got.RawData())
		})
	}
}

// TestMulDotProductDefinition verifies every element against an explicit dot product
// on random conforming shapes, on both the Dense and the generic path.
func TestMulDotProductDefinition(t *testing.T) {
	t.Parallel()

	for _, shape := range [][3]int{{1, 1, 1}, {3, 5, 2}, {7, 4, 9}, {16, 16, 16}} {
		r, k, c := shape[0], shape[1], shape[2]
		a := RandDense(t, r, k, int64(r*100+k))
		b := RandDense(t, k, c, int64(k*100+c))

		fast, err := matrix.Mul(a, b)
		require.NoError(t, err)
		slow, err := matrix.Mul(hide{a}, hide{b})
		require.NoError(t, err)

		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				want := 0.0
				for p := 0; p < k; p++ {
					av, _ := a.At(i, p)
					bv, _ := b.At(p, j)
					want += av * bv
				}
				got, _ := fast.At(i, j)
				require.Equal(t, want, got, "fast path (%d,%d)", i, j)
				got, _ = slow.At(i, j)
				require.Equal(t, want, got, "generic path (%d,%d)", i, j)
			}
		}
	}
}

// TestMulDimensionMismatch covers incompatible inner dimensions and nil operands.
func TestMulDimensionMismatch(t *testing.T) {
	a := MustDense(t, 3, 2)
	b := MustDense(t, 3, 2)

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Mul(a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulPropagatesNaN ensures zeros are not skipped: 0·Inf must become NaN.
func TestMulPropagatesNaN(t *testing.T) {
	a := MustFrom(t, [][]float64{{0, 1}})
	b := MustFrom(t, [][]float64{{math.Inf(1)}, {2}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	v, _ := got.At(0, 0)
	require.True(t, math.IsNaN(v))
}

// TestSub checks element-wise difference on both paths and shape validation.
func TestSub(t *testing.T) {
	a := MustFrom(t, [][]float64{{5, 6}, {7, 8}})
	b := MustFrom(t, [][]float64{{1, 2}, {3, 4}})

	got, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 4, 4, 4}, got.RawData())

	got, err = matrix.Sub(hide{a}, b)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 4, 4, 4}, got.RawData())

	_, err = matrix.Sub(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
