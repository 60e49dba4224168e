// SPDX-License-Identifier: MIT

package matfile

import "errors"

var (
	// ErrFileAccess is returned when a path cannot be opened, read or written.
	// The underlying *fs.PathError stays reachable via errors.Is/As.
	ErrFileAccess = errors.New("matfile: cannot access file")

	// ErrParse is returned for malformed numbers, ragged rows or files
	// without any data row.
	ErrParse = errors.New("matfile: parse error")
)
