// SPDX-License-Identifier: MIT

package validate

import (
	"io"
	"os"

	"github.com/katalvlaran/matcheck/matrix"
)

// Multiplier computes the product a×b. matrix.MulBLAS and matrix.Mul both qualify.
type Multiplier func(a, b matrix.Matrix) (*matrix.Dense, error)

// Option configures a Validator.
type Option func(*Validator)

// WithOutput redirects the report (default os.Stdout).
// Panics on a nil writer (programmer error).
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic("validate: WithOutput(nil)")
	}

	return func(v *Validator) { v.out = w }
}

// WithMultiplier replaces the product kernel (default matrix.MulBLAS).
// Panics on a nil kernel (programmer error).
func WithMultiplier(mul Multiplier) Option {
	if mul == nil {
		panic("validate: WithMultiplier(nil)")
	}

	return func(v *Validator) { v.mul = mul }
}

func defaults() *Validator {
	return &Validator{out: os.Stdout, mul: matrix.MulBLAS}
}
