package jsonvalue

import (
	"errors"
	"testing"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		opts Options
		want int32
	}{
		{name: "null", doc: `null`, want: 0},
		{name: "true", doc: `true`, want: 1231},
		{name: "false", doc: `false`, want: 1237},
		{name: "small integer", doc: `-7`, want: -7},
		{name: "wide integer", doc: `4294967296`, want: 1},
		{name: "fraction", doc: `1.5`, want: 1073217536},
		{name: "exponent", doc: `1e0`, want: 1072693248},
		{name: "string", doc: `"hello"`, want: 99162322},
		{name: "astral string", doc: `"😀"`, want: 128512},
		{name: "astral string utf16", doc: `"😀"`, opts: Options{UTF16: true}, want: 1772899},
		{name: "array", doc: `[1, 2, 3]`, want: 30817},
		{name: "empty array", doc: `[]`, want: 1},
		{name: "array with null", doc: `[null, false]`, want: 2198},
		{name: "object", doc: `{"a": 1, "b": true}`, want: 5134},
		{name: "nested", doc: `{"x": [1, "y"]}`, want: 1088},
		{name: "empty object", doc: `{}`, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hash(tt.doc, tt.opts)
			if err != nil {
				t.Fatalf("Hash(%s) returned error: %v", tt.doc, err)
			}
			if got != tt.want {
				t.Fatalf("Hash(%s) = %d, want %d", tt.doc, got, tt.want)
			}
		})
	}
}

func TestHashObjectIsOrderSensitive(t *testing.T) {
	a, err := Hash(`{"a": 1, "b": 3}`, Options{})
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := Hash(`{"b": 3, "a": 1}`, Options{})
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("member order did not change the hash: %d", a)
	}
}

func TestHashRejectsInvalidJSON(t *testing.T) {
	for _, doc := range []string{``, `{`, `[1,`, `nope`} {
		if _, err := Hash(doc, Options{}); !errors.Is(err, ErrInvalidJSON) {
			t.Fatalf("Hash(%q) error = %v, want %v", doc, err, ErrInvalidJSON)
		}
	}
}
