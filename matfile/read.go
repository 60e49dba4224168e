// SPDX-License-Identifier: MIT

package matfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcheck/matrix"
)

// Read parses a whitespace/newline-delimited text matrix from r.
//
// Errors:
//   - ErrParse: bad number (line and 1-based field reported), row width
//     different from the first data row, a line longer than the
//     WithMaxLineBytes limit, or no data rows at all.
//   - ErrFileAccess: the underlying reader failed.
func Read(r io.Reader, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	sc := bufio.NewScanner(r)
	// The initial capacity must not exceed the limit or the limit is ignored.
	sc.Buffer(make([]byte, 0, min(initialLineBytes, o.maxLine)), o.maxLine)

	var (
		rows   [][]float64
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if o.comment != "" {
			if idx := strings.Index(line, o.comment); idx >= 0 {
				line = line[:idx]
			}
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue // blank or comment-only line
		}

		row := make([]float64, len(fields))
		for f, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, field %d: invalid number %q: %w", lineNo, f+1, tok, ErrParse)
			}
			row[f] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: got %d columns, want %d: %w", lineNo, len(row), len(rows[0]), ErrParse)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line %d: longer than %d bytes: %w", lineNo+1, o.maxLine, ErrParse)
		}
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data rows: %w", ErrParse)
	}

	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		// Unreachable after the width checks above; kept as a parse failure.
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return m, nil
}

// Load opens path and parses it with Read.
// Parse errors are prefixed with the path.
func Load(path string, opts ...Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
