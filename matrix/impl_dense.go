// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(r*c) copy; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxRow  = "Row" // method tag used in error wrappers
	ctxFrom = "NewDenseFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel stays reachable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0 for every public constructor)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom copies a rectangular [][]float64 into a new *Dense.
// MAIN DESCRIPTION:
//   - Build a Dense from row slices, e.g. literals in tests or rows produced by a parser.
//
// Implementation:
//   - Stage 1: reject empty input (no rows or zero-width first row).
//   - Stage 2: verify every row has the same width as the first.
//   - Stage 3: copy rows into the flat buffer in order.
//
// Errors:
//   - ErrInvalidDimensions (no rows or no columns).
//   - ErrDimensionMismatch (ragged rows), wrapped with the offending row index.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFrom, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFrom, i, len(row), cols, ErrDimensionMismatch)
		}
	}

	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFrom, err)
	}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Any float64 is accepted: loaded data may legitimately contain NaN or ±Inf,
// and the comparison must see them as they are.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawData returns the backing row-major slice without copying.
// Callers must treat it as read-only unless they own the matrix.
func (m *Dense) RawData() []float64 { return m.data }

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders rows as "[v, v, ...]" lines with %g values.
// Intended for debugging and test failure messages; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
