// Package collections provides ordered containers backed by a B-tree. Each
// container implements hashcode.Hasher by folding its elements in ascending
// order.
package collections

import (
	"cmp"
	"iter"

	"github.com/tidwall/btree"

	"github.com/louisbranch/jinterop/hashcode"
)

// SortedSet is a set that iterates in ascending order.
type SortedSet[T cmp.Ordered] struct {
	tree *btree.BTreeG[T]
	hash func(T) int32
}

// NewSortedSet returns an empty set. Elements are hashed with hash, or with
// hashcode.Of when hash is nil.
func NewSortedSet[T cmp.Ordered](hash func(T) int32) *SortedSet[T] {
	if hash == nil {
		hash = dynamicHash[T]
	}
	return &SortedSet[T]{
		tree: btree.NewBTreeG(cmp.Less[T]),
		hash: hash,
	}
}

// Add inserts v and reports whether it was not already present.
func (s *SortedSet[T]) Add(v T) bool {
	_, replaced := s.tree.Set(v)
	return !replaced
}

// Remove deletes v and reports whether it was present.
func (s *SortedSet[T]) Remove(v T) bool {
	_, deleted := s.tree.Delete(v)
	return deleted
}

// Contains reports whether v is in the set.
func (s *SortedSet[T]) Contains(v T) bool {
	_, ok := s.tree.Get(v)
	return ok
}

// Len returns the number of elements.
func (s *SortedSet[T]) Len() int {
	return s.tree.Len()
}

// All yields the elements in ascending order.
func (s *SortedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Scan(yield)
	}
}

// HashCode folds the elements in ascending order.
func (s *SortedSet[T]) HashCode() int32 {
	return hashcode.Fold(s.All(), s.hash)
}

func dynamicHash[T any](v T) int32 {
	return hashcode.Of(v)
}
