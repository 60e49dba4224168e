// SPDX-License-Identifier: MIT

package generate

// POSIX drand48 parameters: x' = (a*x + c) mod 2^48.
const (
	rand48A    = 0x5DEECE66D
	rand48C    = 0xB
	rand48Mask = 1<<48 - 1
	rand48Low  = 0x330E // low 16 bits installed by srand48
)

// Rand48 is the 48-bit linear congruential generator behind srand48/drand48.
// The zero value is not seeded; use NewRand48.
type Rand48 struct {
	x uint64
}

// NewRand48 seeds like srand48(seed): the low 32 bits of seed become the
// high 32 bits of the state, the low 16 bits are 0x330E.
func NewRand48(seed int64) *Rand48 {
	return &Rand48{x: (uint64(uint32(seed))<<16 | rand48Low) & rand48Mask}
}

// Float64 returns the next value in [0, 1), identical to drand48().
func (r *Rand48) Float64() float64 {
	r.x = (rand48A*r.x + rand48C) & rand48Mask

	return float64(r.x) / (1 << 48)
}
