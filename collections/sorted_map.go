package collections

import (
	"cmp"
	"iter"

	"github.com/tidwall/btree"
)

type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// SortedMap is a map that iterates in ascending key order.
type SortedMap[K cmp.Ordered, V any] struct {
	tree      *btree.BTreeG[entry[K, V]]
	keyHash   func(K) int32
	valueHash func(V) int32
}

// NewSortedMap returns an empty map. Keys and values are hashed with the given
// functions, or with hashcode.Of when a function is nil.
func NewSortedMap[K cmp.Ordered, V any](keyHash func(K) int32, valueHash func(V) int32) *SortedMap[K, V] {
	if keyHash == nil {
		keyHash = dynamicHash[K]
	}
	if valueHash == nil {
		valueHash = dynamicHash[V]
	}
	return &SortedMap[K, V]{
		tree: btree.NewBTreeG(func(a, b entry[K, V]) bool {
			return cmp.Less(a.key, b.key)
		}),
		keyHash:   keyHash,
		valueHash: valueHash,
	}
}

// Put stores value under key and returns the value it replaced, if any.
func (m *SortedMap[K, V]) Put(key K, value V) (V, bool) {
	prev, replaced := m.tree.Set(entry[K, V]{key: key, value: value})
	return prev.value, replaced
}

// Get returns the value stored under key.
func (m *SortedMap[K, V]) Get(key K) (V, bool) {
	e, ok := m.tree.Get(entry[K, V]{key: key})
	return e.value, ok
}

// Delete removes key and returns the value it held, if any.
func (m *SortedMap[K, V]) Delete(key K) (V, bool) {
	e, ok := m.tree.Delete(entry[K, V]{key: key})
	return e.value, ok
}

// Len returns the number of entries.
func (m *SortedMap[K, V]) Len() int {
	return m.tree.Len()
}

// All yields the entries in ascending key order.
func (m *SortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Scan(func(e entry[K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

// HashCode folds the entries in ascending key order. Each entry contributes
// hash(key) ^ hash(value).
func (m *SortedMap[K, V]) HashCode() int32 {
	acc := int32(1)
	for k, v := range m.All() {
		acc = 31*acc + (m.keyHash(k) ^ m.valueHash(v))
	}
	return acc
}
