// Package wrapping provides integer helpers whose overflow wraps silently.
package wrapping

// Integer is the set of fixed-width integers the helpers accept.
type Integer interface {
	~int32 | ~uint32 | ~int64 | ~uint64
}

// Pow returns base raised to exp by square-and-multiply. Every multiply wraps
// in the width of T.
func Pow[T Integer](base T, exp uint32) T {
	acc := T(1)
	for exp > 1 {
		if exp&1 == 1 {
			acc *= base
		}
		exp >>= 1
		base *= base
	}
	// The last bit is handled outside the loop so the base is not squared
	// once more than needed.
	if exp == 1 {
		acc *= base
	}
	return acc
}
