// Package random reproduces the legacy 48-bit linear congruential generator
// and its bounded integer draw, so a seed produces the same sequence here as it
// does in the managed runtime that defined it.
//
// # Determinism
//
// Given the same seed and the same sequence of calls, a Random always returns
// the same values. Every draw advances the state; draws are never idempotent.
//
// # Concurrency
//
// A Random is not safe for concurrent use. Callers that share one across
// goroutines must serialise access themselves.
package random

import (
	"errors"
	"fmt"
)

const (
	multiplier uint64 = 0x5DEECE66D
	addend     uint64 = 0xB
	mask       uint64 = 1<<48 - 1
)

// MaxBound is the largest bound NextInt accepts.
const MaxBound uint32 = 1 << 31

// ErrInvalidBound indicates a bounded draw was requested with a bound of zero
// or a bound above MaxBound.
var ErrInvalidBound = errors.New("bound must be positive and at most 2^31")

// Random is a 48-bit linear congruential generator.
type Random struct {
	state uint64
}

// New returns a generator seeded with seed.
func New(seed uint64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// SetSeed resets the generator as if it had just been created with New(seed).
func (r *Random) SetSeed(seed uint64) {
	r.state = (seed ^ multiplier) & mask
}

// State returns the current 48-bit state. The top 16 bits are always zero.
func (r *Random) State() uint64 {
	return r.state
}

// NextBits advances the generator and returns the top bits of the new state.
// It panics when bits is outside [1, 32].
func (r *Random) NextBits(bits uint32) uint32 {
	if bits < 1 || bits > 32 {
		panic(fmt.Sprintf("random: bit count %d out of range [1, 32]", bits))
	}
	r.state = (r.state*multiplier + addend) & mask
	return uint32(r.state >> (48 - bits))
}

// NextInt returns a value in [0, bound).
//
// Powers of two take the high bits of a single 31-bit draw. Any other bound
// rejects draws that fall in the final partial block below 2^31, retrying
// until bits - val + (bound - 1) does not overflow a signed 32-bit integer.
//
// A bound of zero, or above MaxBound, returns ErrInvalidBound without
// advancing the generator.
func (r *Random) NextInt(bound uint32) (uint32, error) {
	if bound == 0 || bound > MaxBound {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidBound, bound)
	}

	if bound&(bound-1) == 0 {
		return uint32(uint64(bound) * uint64(r.NextBits(31)) >> 31), nil
	}

	for {
		bits := r.NextBits(31)
		val := bits % bound
		if int32(bits-val+(bound-1)) >= 0 {
			return val, nil
		}
	}
}
