package hashcode

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// String hashes the Unicode scalar values of a string as
// s[0]*31^(n-1) + s[1]*31^(n-2) + ... + s[n-1]. Invalid UTF-8 decodes as
// U+FFFD. The empty string hashes to 0.
type String string

func (s String) HashCode() int32 {
	var h int32
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(string(s[i:]))
		h = 31*h + int32(r)
		i += size
	}
	return h
}

// Runes hashes a sequence of scalar values with the String rule.
type Runes []rune

func (rs Runes) HashCode() int32 {
	var h int32
	for _, r := range rs {
		h = 31*h + int32(r)
	}
	return h
}

// UTF16 hashes the UTF-16 code units of a string with the String rule. It only
// differs from String for scalars outside the Basic Multilingual Plane, which
// contribute a surrogate pair instead of a single code point.
type UTF16 string

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

func (s UTF16) HashCode() int32 {
	encoded, err := utf16BE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return codeUnits(utf16.Encode([]rune(string(s))))
	}
	var h int32
	for i := 0; i+1 < len(encoded); i += 2 {
		h = 31*h + int32(binary.BigEndian.Uint16(encoded[i:]))
	}
	return h
}

func codeUnits(units []uint16) int32 {
	var h int32
	for _, u := range units {
		h = 31*h + int32(u)
	}
	return h
}

// Bytes folds a byte sequence with the container rule, each byte hashed as a
// Uint8.
type Bytes []byte

func (b Bytes) HashCode() int32 {
	acc := int32(1)
	for _, c := range b {
		acc = 31*acc + Uint8(c).HashCode()
	}
	return acc
}
