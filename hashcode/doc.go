// Package hashcode reproduces the legacy object hash code contract bit for bit,
// so values hashed here land in the same buckets as values hashed by the
// managed runtime that defined it.
//
// # Capability
//
// Anything with a HashCode() int32 method is a Hasher. The package provides
// Hasher implementations for every primitive kind as named types:
//
//	hashcode.Int64(42).HashCode()
//	hashcode.String("hello").HashCode() // 99162322
//	hashcode.Bool(true).HashCode()      // 1231
//
// # Arithmetic
//
// All arithmetic is 32-bit two's complement and wraps on overflow. Floating
// point values hash by bit pattern after every NaN is mapped to the canonical
// quiet NaN.
//
// # Containers
//
// Ordered and unordered containers share a single rule: starting from 1, each
// element folds in as acc*31 + hash(element), in the container's iteration
// order. Maps contribute key ^ value for each entry. See Fold, Slice, Seq and
// Entries for the generic forms and Of for dynamic dispatch over arbitrary Go
// values.
package hashcode
