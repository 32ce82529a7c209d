package hashcode

import (
	"math"

	"github.com/louisbranch/jinterop/internal/wrapping"
)

// PowFoldInt64 reproduces the exponentiation encoding used by earlier releases
// for 64-bit integers: v raised to its own high word, truncated to 32 bits.
// It only agrees with Int64 for some inputs. Use it to match hashes persisted
// by those releases; new data should use Int64.
func PowFoldInt64(v int64) int32 {
	return int32(wrapping.Pow(v, uint32(uint64(v)>>32)))
}

// PowFoldUint64 is PowFoldInt64 for unsigned values.
func PowFoldUint64(v uint64) int32 {
	return int32(wrapping.Pow(v, uint32(v>>32)))
}

// PowFoldFloat64 applies PowFoldUint64 to the raw bit pattern of f. NaN
// payloads are kept as is.
func PowFoldFloat64(f float64) int32 {
	return PowFoldUint64(math.Float64bits(f))
}
