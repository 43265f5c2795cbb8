package hashset

import (
	"iter"

	mapset "github.com/deckarep/golang-set/v2"
)

// Collection is a countable source of elements
type Collection[E any] interface {
	Len() int
	All() iter.Seq[E]
}

// Set is a Collection that can answer membership queries
type Set[E any] interface {
	Collection[E]
	Contains(e E) bool
}

// Slice adapts a plain slice to a Collection. Duplicates are yielded as-is.
type Slice[E any] []E

// SliceOf creates a Slice with given elements
func SliceOf[E any](e ...E) Slice[E] {
	return e
}

func (s Slice[E]) Len() int {
	return len(s)
}

func (s Slice[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s {
			if !yield(e) {
				return
			}
		}
	}
}

// mapsetView presents a golang-set set as a Set
type mapsetView[E comparable] struct {
	m mapset.Set[E]
}

// FromMapset wraps a golang-set set so that it can be passed to bulk
// operations and Equal
func FromMapset[E comparable](m mapset.Set[E]) Set[E] {
	return mapsetView[E]{m: m}
}

func (v mapsetView[E]) Len() int {
	return v.m.Cardinality()
}

func (v mapsetView[E]) Contains(e E) bool {
	return v.m.Contains(e)
}

func (v mapsetView[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		v.m.Each(func(e E) bool {
			return !yield(e)
		})
	}
}

// ToMapset copies the elements of s into a new thread-unsafe golang-set set.
// Equality in the result is Go's ==, which may be coarser or finer than the
// Hasher s was built with.
func ToMapset[E comparable](s *HashSet[E]) mapset.Set[E] {
	m := mapset.NewThreadUnsafeSetWithSize[E](s.Len())
	for e := range s.All() {
		m.Add(e)
	}
	return m
}

// membership returns a Set view of c, materialising it with h when c cannot
// answer membership queries by itself
func membership[E any](h Hasher[E], c Collection[E]) Set[E] {
	if s, ok := c.(Set[E]); ok {
		return s
	}
	tmp := NewWithCapacity(h, 2*c.Len())
	for e := range c.All() {
		tmp.Add(e)
	}
	return tmp
}
