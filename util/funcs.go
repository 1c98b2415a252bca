package util

import (
	"github.com/hashicorp/go-set/v3"
	"iter"
)

// MapIter lazily applies f to every element of iter, the way
// frontend/types/constrain.go maps over a conjunction's free variables before
// collecting them.
func MapIter[A, B any](iter iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range iter {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// SetFromSeq drains s into a go-set.Set, the way type_context.go builds a
// class's parent-name set from a sequence of base-class lookups.
func SetFromSeq[V comparable](s iter.Seq[V], size int) *set.Set[V] {
	newSet := set.New[V](size)
	for item := range s {
		newSet.Insert(item)
	}
	return newSet
}
