package random

const doubleUnit = 0x1p-53

// NextInt32 returns a uniformly distributed signed 32-bit value.
func (r *Random) NextInt32() int32 {
	return int32(r.NextBits(32))
}

// NextLong returns a signed 64-bit value built from two 32-bit draws. The low
// draw is sign-extended before it is added, as the legacy generator does.
func (r *Random) NextLong() int64 {
	hi := int64(r.NextInt32())
	lo := int64(r.NextInt32())
	return hi<<32 + lo
}

// Uint64 returns NextLong as an unsigned value. It lets a Random serve as a
// math/rand/v2 Source.
func (r *Random) Uint64() uint64 {
	return uint64(r.NextLong())
}

// NextBoolean returns the next single-bit draw.
func (r *Random) NextBoolean() bool {
	return r.NextBits(1) != 0
}

// NextFloat returns a value in [0, 1) with 24 bits of precision.
func (r *Random) NextFloat() float32 {
	return float32(r.NextBits(24)) / (1 << 24)
}

// NextDouble returns a value in [0, 1) with 53 bits of precision.
func (r *Random) NextDouble() float64 {
	hi := uint64(r.NextBits(26))
	lo := uint64(r.NextBits(27))
	return float64(hi<<27+lo) * doubleUnit
}

// NextBytes fills b with random bytes. Each 32-bit draw supplies up to four
// bytes, least significant first.
func (r *Random) NextBytes(b []byte) {
	for i := 0; i < len(b); {
		rnd := r.NextBits(32)
		for n := min(len(b)-i, 4); n > 0; n-- {
			b[i] = byte(rnd)
			rnd >>= 8
			i++
		}
	}
}
