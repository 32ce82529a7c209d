package hashcode

import (
	"math"
	"strconv"
)

// Hasher is implemented by values that produce a legacy 32-bit hash code.
//
// HashCode must be pure: bit-identical receivers return identical results.
type Hasher interface {
	HashCode() int32
}

// Hash codes of the two boolean values.
const (
	TrueHash  int32 = 1231
	FalseHash int32 = 1237
)

// Canonical NaN bit patterns used before hashing floating point values.
const (
	CanonicalNaN32 uint32 = 0x7fc00000
	CanonicalNaN64 uint64 = 0x7ff8000000000000
)

// Bool hashes to TrueHash or FalseHash.
type Bool bool

func (b Bool) HashCode() int32 {
	if b {
		return TrueHash
	}
	return FalseHash
}

// Int8 sign-extends to 32 bits.
type Int8 int8

func (v Int8) HashCode() int32 { return int32(v) }

// Uint8 hashes through the signed byte view, so Uint8(255) and Int8(-1) both
// hash to -1.
type Uint8 uint8

func (v Uint8) HashCode() int32 { return int32(int8(v)) }

// Int16 sign-extends to 32 bits.
type Int16 int16

func (v Int16) HashCode() int32 { return int32(v) }

// Uint16 zero-extends to 32 bits.
type Uint16 uint16

func (v Uint16) HashCode() int32 { return int32(v) }

// Int32 hashes to itself.
type Int32 int32

func (v Int32) HashCode() int32 { return int32(v) }

// Uint32 is reinterpreted as a signed 32-bit value.
type Uint32 uint32

func (v Uint32) HashCode() int32 { return int32(v) }

// Int64 folds its high word into its low word.
type Int64 int64

func (v Int64) HashCode() int32 { return foldWords(uint64(v)) }

// Uint64 folds its high word into its low word.
type Uint64 uint64

func (v Uint64) HashCode() int32 { return foldWords(uint64(v)) }

// Int follows the 64-bit rule on 64-bit platforms and the 32-bit rule
// elsewhere.
type Int int

func (v Int) HashCode() int32 {
	if strconv.IntSize == 64 {
		return foldWords(uint64(v))
	}
	return int32(v)
}

// Uint follows the same platform split as Int.
type Uint uint

func (v Uint) HashCode() int32 {
	if strconv.IntSize == 64 {
		return foldWords(uint64(v))
	}
	return int32(v)
}

// Uintptr hashes addresses. It follows the same platform split as Int.
type Uintptr uintptr

func (v Uintptr) HashCode() int32 {
	if strconv.IntSize == 64 {
		return foldWords(uint64(v))
	}
	return int32(v)
}

// Float32 hashes its canonical IEEE-754 bit pattern.
type Float32 float32

func (v Float32) HashCode() int32 { return int32(Float32Bits(float32(v))) }

// Float64 hashes its canonical IEEE-754 bit pattern with the 64-bit fold.
type Float64 float64

func (v Float64) HashCode() int32 { return foldWords(Float64Bits(float64(v))) }

// Rune hashes to its code point.
type Rune rune

func (v Rune) HashCode() int32 { return int32(v) }

// Unit is the empty value. It hashes to 0, like an absent optional.
type Unit struct{}

func (Unit) HashCode() int32 { return 0 }

// Float32Bits returns the bit pattern of f, mapping every NaN to
// CanonicalNaN32.
func Float32Bits(f float32) uint32 {
	if f != f {
		return CanonicalNaN32
	}
	return math.Float32bits(f)
}

// Float64Bits returns the bit pattern of f, mapping every NaN to
// CanonicalNaN64.
func Float64Bits(f float64) uint64 {
	if math.IsNaN(f) {
		return CanonicalNaN64
	}
	return math.Float64bits(f)
}

// foldWords is (int)(v ^ (v >>> 32)).
func foldWords(v uint64) int32 {
	return int32(v ^ v>>32)
}
