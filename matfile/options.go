// SPDX-License-Identifier: MIT

// Package matfile: functional options shared by readers and writers.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matfile

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultComment starts a comment that runs to the end of the line.
	DefaultComment = "#"

	// DefaultPrecision is the number of fractional digits written per value.
	DefaultPrecision = 8

	// DefaultMaxLineBytes bounds a single row; wide matrices produce long lines.
	DefaultMaxLineBytes = 1 << 28

	// initialLineBytes is the scanner's starting buffer size.
	initialLineBytes = 64 * 1024
)

// Option configures Read, Load, Write and Save.
type Option func(*options)

type options struct {
	comment   string // comment prefix; "" disables comment stripping
	header    string // matrix name for the "# name:" header; "" writes no header
	precision int    // fractional digits of each written value
	maxLine   int    // longest accepted input line in bytes
}

// WithComments sets the comment prefix recognized by the reader.
// An empty prefix disables comment handling entirely.
func WithComments(prefix string) Option {
	return func(o *options) { o.comment = prefix }
}

// WithHeader makes the writer emit the "# name/type/rows/columns" header.
// Panics on an empty name (programmer error).
func WithHeader(name string) Option {
	if name == "" {
		panic("matfile: WithHeader requires a non-empty name")
	}

	return func(o *options) { o.header = name }
}

// WithPrecision sets the number of fractional digits of written values.
// Panics if digits is negative (programmer error).
func WithPrecision(digits int) Option {
	if digits < 0 {
		panic(fmt.Sprintf("matfile: WithPrecision(%d): digits must be >= 0", digits))
	}

	return func(o *options) { o.precision = digits }
}

// WithMaxLineBytes caps the length of a single input line; a longer line is
// a parse error. Panics if n <= 0 (programmer error).
func WithMaxLineBytes(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("matfile: WithMaxLineBytes(%d): n must be > 0", n))
	}

	return func(o *options) { o.maxLine = n }
}

// gatherOptions applies opts on top of the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		comment:   DefaultComment,
		precision: DefaultPrecision,
		maxLine:   DefaultMaxLineBytes,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
