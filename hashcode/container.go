package hashcode

import (
	"container/list"
	"container/ring"
	"iter"
	"slices"
)

// Fold combines element hashes in iteration order, starting from 1:
// acc = 31*acc + hash(element).
func Fold[T any](seq iter.Seq[T], hash func(T) int32) int32 {
	acc := int32(1)
	if seq == nil {
		return acc
	}
	for v := range seq {
		acc = 31*acc + hash(v)
	}
	return acc
}

// Seq folds a sequence of Hashers.
func Seq[T Hasher](seq iter.Seq[T]) int32 {
	return Fold(seq, hashOf[T])
}

// Slice folds a slice of Hashers in index order.
func Slice[T Hasher](s []T) int32 {
	return Fold(slices.Values(s), hashOf[T])
}

// Entries folds key/value pairs in iteration order. Each entry contributes
// key.HashCode() ^ value.HashCode().
func Entries[K, V Hasher](seq iter.Seq2[K, V]) int32 {
	acc := int32(1)
	if seq == nil {
		return acc
	}
	for k, v := range seq {
		acc = 31*acc + (k.HashCode() ^ v.HashCode())
	}
	return acc
}

// List is a slice that hashes with the container rule.
type List[T Hasher] []T

func (l List[T]) HashCode() int32 { return Slice(l) }

// Pair hashes to First ^ Second. The rule is symmetric, so swapping the
// members does not change the hash.
type Pair[A, B Hasher] struct {
	First  A
	Second B
}

func (p Pair[A, B]) HashCode() int32 {
	return p.First.HashCode() ^ p.Second.HashCode()
}

// Option hashes the value behind v, or 0 when v is nil.
func Option[T Hasher](v *T) int32 {
	if v == nil {
		return 0
	}
	return (*v).HashCode()
}

// LinkedList folds the values of a container/list front to back. Values are
// hashed with Of.
func LinkedList(l *list.List) int32 {
	return Fold(func(yield func(any) bool) {
		if l == nil {
			return
		}
		for e := l.Front(); e != nil; e = e.Next() {
			if !yield(e.Value) {
				return
			}
		}
	}, Of)
}

// Ring folds the values of a container/ring starting at r. Values are hashed
// with Of.
func Ring(r *ring.Ring) int32 {
	return Fold(func(yield func(any) bool) {
		if r == nil {
			return
		}
		if !yield(r.Value) {
			return
		}
		for p := r.Next(); p != r; p = p.Next() {
			if !yield(p.Value) {
				return
			}
		}
	}, Of)
}

func hashOf[T Hasher](v T) int32 { return v.HashCode() }
