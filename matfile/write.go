// SPDX-License-Identifier: MIT

package matfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/matcheck/matrix"
)

// Write renders m row by row: each value as "%3.<precision>f" followed by a
// single space, each row terminated by '\n'. With WithHeader the Octave-style
// "# name/type/rows/columns" block comes first.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - ErrFileAccess when w fails.
func Write(w io.Writer, m matrix.Matrix, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)

	rows, cols := m.Rows(), m.Cols()
	if o.header != "" {
		fmt.Fprintf(bw, "# name: %s\n", o.header)
		bw.WriteString("# type: matrix\n")
		fmt.Fprintf(bw, "# rows: %d\n", rows)
		fmt.Fprintf(bw, "# columns: %d\n", cols)
	}

	verb := "%3." + strconv.Itoa(o.precision) + "f "
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("Write: %w", err)
			}
			fmt.Fprintf(bw, verb, v)
		}
		bw.WriteByte('\n')
	}

	// bufio.Writer keeps the first error; Flush surfaces it.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	return nil
}

// Save writes m to path (created or truncated) using Write.
func Save(path string, m matrix.Matrix, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrFileAccess, cerr)
		}
	}()

	if err = Write(f, m, opts...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
