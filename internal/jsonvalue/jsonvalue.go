// Package jsonvalue converts JSON documents into hashable values.
//
// Mapping:
//
//   - null hashes to 0, like an absent optional
//   - true and false use the boolean rule
//   - integer literals within 32 bits use the 32-bit rule, wider integers the
//     64-bit rule, anything else the 64-bit float rule
//   - strings use the scalar string rule, or the UTF-16 rule when requested
//   - arrays fold their elements
//   - objects fold their members in document order, each contributing
//     hash(key) ^ hash(value)
package jsonvalue

import (
	"errors"
	"math"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/louisbranch/jinterop/hashcode"
)

// ErrInvalidJSON indicates the input is not a valid JSON document.
var ErrInvalidJSON = errors.New("invalid json document")

// Options controls how strings are hashed.
type Options struct {
	// UTF16 hashes strings by UTF-16 code unit instead of by scalar value.
	UTF16 bool
}

// Parse converts doc into a hashable value.
func Parse(doc string, opts Options) (hashcode.Hasher, error) {
	if !gjson.Valid(doc) {
		return nil, ErrInvalidJSON
	}
	return convert(gjson.Parse(doc), opts), nil
}

// Hash returns the hash code of doc.
func Hash(doc string, opts Options) (int32, error) {
	v, err := Parse(doc, opts)
	if err != nil {
		return 0, err
	}
	return v.HashCode(), nil
}

type member struct {
	key   hashcode.Hasher
	value hashcode.Hasher
}

type object []member

func (o object) HashCode() int32 {
	acc := int32(1)
	for _, m := range o {
		acc = 31*acc + (m.key.HashCode() ^ m.value.HashCode())
	}
	return acc
}

func convert(r gjson.Result, opts Options) hashcode.Hasher {
	switch r.Type {
	case gjson.Null:
		return hashcode.Unit{}
	case gjson.True:
		return hashcode.Bool(true)
	case gjson.False:
		return hashcode.Bool(false)
	case gjson.Number:
		return number(r)
	case gjson.String:
		return text(r.Str, opts)
	}

	switch {
	case r.IsArray():
		var list hashcode.List[hashcode.Hasher]
		r.ForEach(func(_, value gjson.Result) bool {
			list = append(list, convert(value, opts))
			return true
		})
		return list
	case r.IsObject():
		var obj object
		r.ForEach(func(key, value gjson.Result) bool {
			obj = append(obj, member{key: text(key.Str, opts), value: convert(value, opts)})
			return true
		})
		return obj
	}
	return hashcode.Unit{}
}

func number(r gjson.Result) hashcode.Hasher {
	if n, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
		if n >= math.MinInt32 && n <= math.MaxInt32 {
			return hashcode.Int32(n)
		}
		return hashcode.Int64(n)
	}
	return hashcode.Float64(r.Num)
}

func text(s string, opts Options) hashcode.Hasher {
	if opts.UTF16 {
		return hashcode.UTF16(s)
	}
	return hashcode.String(s)
}
