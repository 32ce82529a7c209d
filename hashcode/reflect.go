package hashcode

import (
	"cmp"
	"container/list"
	"container/ring"
	"reflect"
	"slices"
)

var hasherType = reflect.TypeFor[Hasher]()

// Of hashes an arbitrary Go value. It never panics.
//
// Values implementing Hasher use their own rule. Otherwise the value's kind
// selects the rule:
//
//   - booleans, integers, floats and strings use the matching named type
//   - pointers and interfaces pass through to the value they hold; nil
//     pointers, interfaces, slices and maps hash to 0 like an absent optional
//   - funcs, channels and unsafe pointers hash their address as a Uintptr
//   - arrays and slices fold their elements
//   - structs fold their exported fields in declaration order; a struct with
//     no exported fields hashes to 0 like Unit
//   - maps fold their entries ordered by key hash, since Go maps have no
//     iteration order of their own
//   - complex numbers fold their real and imaginary parts
//
// A pointer, map or slice reached again while it is still being hashed
// contributes 0 instead of recursing forever.
func Of(v any) int32 {
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		return Bool(x).HashCode()
	case int8:
		return Int8(x).HashCode()
	case uint8:
		return Uint8(x).HashCode()
	case int16:
		return Int16(x).HashCode()
	case uint16:
		return Uint16(x).HashCode()
	case int32:
		return x
	case uint32:
		return Uint32(x).HashCode()
	case int64:
		return Int64(x).HashCode()
	case uint64:
		return Uint64(x).HashCode()
	case int:
		return Int(x).HashCode()
	case uint:
		return Uint(x).HashCode()
	case float32:
		return Float32(x).HashCode()
	case float64:
		return Float64(x).HashCode()
	case string:
		return String(x).HashCode()
	case *list.List:
		if x == nil {
			return 0
		}
		return LinkedList(x)
	case *ring.Ring:
		if x == nil {
			return 0
		}
		return Ring(x)
	}
	w := walker{seen: make(map[visit]bool)}
	return w.hash(reflect.ValueOf(v))
}

type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

type walker struct {
	seen map[visit]bool
}

type entryHash struct {
	key   int32
	entry int32
}

func (w walker) hash(rv reflect.Value) int32 {
	if !rv.IsValid() {
		return 0
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0
		}
	}
	if rv.CanInterface() && rv.Type().Implements(hasherType) {
		if h, ok := rv.Interface().(Hasher); ok {
			return h.HashCode()
		}
	}
	if rv.CanAddr() && rv.Addr().CanInterface() && reflect.PointerTo(rv.Type()).Implements(hasherType) {
		if h, ok := rv.Addr().Interface().(Hasher); ok {
			return h.HashCode()
		}
	}
	if (rv.Kind() == reflect.Map || rv.Kind() == reflect.Slice) && rv.IsNil() {
		return 0
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()).HashCode()
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return int32(rv.Int())
	case reflect.Int64:
		return Int64(rv.Int()).HashCode()
	case reflect.Int:
		return Int(rv.Int()).HashCode()
	case reflect.Uint8:
		return Uint8(rv.Uint()).HashCode()
	case reflect.Uint16:
		return Uint16(rv.Uint()).HashCode()
	case reflect.Uint32:
		return Uint32(rv.Uint()).HashCode()
	case reflect.Uint64:
		return Uint64(rv.Uint()).HashCode()
	case reflect.Uint:
		return Uint(rv.Uint()).HashCode()
	case reflect.Uintptr:
		return Uintptr(rv.Uint()).HashCode()
	case reflect.Float32:
		return Float32(rv.Float()).HashCode()
	case reflect.Float64:
		return Float64(rv.Float()).HashCode()
	case reflect.Complex64:
		c := rv.Complex()
		return 31*(31+Float32(real(c)).HashCode()) + Float32(imag(c)).HashCode()
	case reflect.Complex128:
		c := rv.Complex()
		return 31*(31+Float64(real(c)).HashCode()) + Float64(imag(c)).HashCode()
	case reflect.String:
		return String(rv.String()).HashCode()
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return Uintptr(rv.Pointer()).HashCode()
	case reflect.Interface:
		return w.hash(rv.Elem())
	case reflect.Pointer:
		return w.guarded(rv, 0, func() int32 { return w.hash(rv.Elem()) })
	case reflect.Slice:
		return w.guarded(rv, rv.Len(), func() int32 { return w.elements(rv) })
	case reflect.Array:
		return w.elements(rv)
	case reflect.Map:
		return w.guarded(rv, 0, func() int32 { return w.entries(rv) })
	case reflect.Struct:
		return w.fields(rv)
	}
	return 0
}

func (w walker) guarded(rv reflect.Value, n int, fn func() int32) int32 {
	key := visit{ptr: rv.Pointer(), typ: rv.Type(), len: n}
	if w.seen[key] {
		return 0
	}
	w.seen[key] = true
	defer delete(w.seen, key)
	return fn()
}

func (w walker) elements(rv reflect.Value) int32 {
	acc := int32(1)
	for i := range rv.Len() {
		acc = 31*acc + w.hash(rv.Index(i))
	}
	return acc
}

func (w walker) entries(rv reflect.Value) int32 {
	hashes := make([]entryHash, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := w.hash(iter.Key())
		hashes = append(hashes, entryHash{key: k, entry: k ^ w.hash(iter.Value())})
	}
	slices.SortFunc(hashes, func(a, b entryHash) int {
		if c := cmp.Compare(a.key, b.key); c != 0 {
			return c
		}
		return cmp.Compare(a.entry, b.entry)
	})
	acc := int32(1)
	for _, h := range hashes {
		acc = 31*acc + h.entry
	}
	return acc
}

func (w walker) fields(rv reflect.Value) int32 {
	t := rv.Type()
	acc := int32(1)
	folded := false
	for i := range t.NumField() {
		if !t.Field(i).IsExported() {
			continue
		}
		acc = 31*acc + w.hash(rv.Field(i))
		folded = true
	}
	if !folded {
		return 0
	}
	return acc
}
