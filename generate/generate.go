// SPDX-License-Identifier: MIT

package generate

import (
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/matcheck/matfile"
	"github.com/katalvlaran/matcheck/matrix"
)

// Workload kinds; they double as the default file prefix.
const (
	KindMatmul = "matmul" // dim×dim times dim×dim
	KindMatvec = "matvec" // dim×dim times dim×1
)

// Workload holds generated operands and their product C = A·B.
type Workload struct {
	Kind    string
	Dim, TS int
	A, B, C *matrix.Dense
}

// Fill overwrites m with drand48 values, restarting the stream at every
// tile of ts rows with the tile's first row index as seed.
//
// Errors: matrix.ErrNilMatrix, ErrTileSize.
func Fill(m *matrix.Dense, ts int) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("Fill: %w", err)
	}
	rows, cols := m.Shape()
	if err := checkTile(rows, ts); err != nil {
		return fmt.Errorf("Fill: %w", err)
	}

	data := m.RawData()
	for j := 0; j < rows; j += ts {
		rng := NewRand48(int64(j))
		tile := data[j*cols : (j+ts)*cols]
		for k := range tile {
			tile[k] = rng.Float64()
		}
	}

	return nil
}

func checkTile(rows, ts int) error {
	if ts <= 0 || ts > rows || rows%ts != 0 {
		return fmt.Errorf("rows=%d ts=%d: %w", rows, ts, ErrTileSize)
	}

	return nil
}

// Matmul builds a dim×dim by dim×dim workload.
func Matmul(dim, ts int) (*Workload, error) {
	return build(KindMatmul, dim, ts, dim)
}

// Matvec builds a dim×dim by dim×1 workload; C is a dim×1 column.
func Matvec(dim, ts int) (*Workload, error) {
	return build(KindMatvec, dim, ts, 1)
}

func build(kind string, dim, ts, bCols int) (*Workload, error) {
	a, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	b, err := matrix.NewDense(dim, bCols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	if err = Fill(a, ts); err != nil {
		return nil, fmt.Errorf("%s: A: %w", kind, err)
	}
	if err = Fill(b, ts); err != nil {
		return nil, fmt.Errorf("%s: B: %w", kind, err)
	}

	c, err := tiledMul(a, b, ts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	return &Workload{Kind: kind, Dim: dim, TS: ts, A: a, B: b, C: c}, nil
}

// tiledMul computes a·b one block of ts rows of a at a time.
func tiledMul(a, b *matrix.Dense, ts int) (*matrix.Dense, error) {
	rows, inner := a.Shape()
	if err := checkTile(rows, ts); err != nil {
		return nil, err
	}
	c, err := matrix.NewDense(rows, b.Cols())
	if err != nil {
		return nil, err
	}

	block, err := matrix.NewDense(ts, inner)
	if err != nil {
		return nil, err
	}
	src, dst, cols := a.RawData(), c.RawData(), b.Cols()
	for j := 0; j < rows; j += ts {
		copy(block.RawData(), src[j*inner:(j+ts)*inner])
		part, err := matrix.Mul(block, b)
		if err != nil {
			return nil, err
		}
		copy(dst[j*cols:(j+ts)*cols], part.RawData())
	}

	return c, nil
}

// Save writes <prefix>_A.mat, <prefix>_B.mat and <prefix>_C.mat under dir,
// each with its Octave header, and returns the paths in that order.
// An empty prefix falls back to the workload kind.
func (w *Workload) Save(dir, prefix string) ([]string, error) {
	if prefix == "" {
		prefix = w.Kind
	}

	named := []struct {
		name string
		m    *matrix.Dense
	}{{"A", w.A}, {"B", w.B}, {"C", w.C}}

	paths := make([]string, 0, len(named))
	for _, n := range named {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.mat", prefix, n.name))
		if err := matfile.Save(path, n.m, matfile.WithHeader(n.name)); err != nil {
			return nil, fmt.Errorf("save %s: %w", n.name, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
