// Package hashset provides an unordered set backed by a hash table with
// separate chaining.
//
// Elements are hashed and compared through a Hasher, so any type can be
// stored, including types that are not comparable with ==. The bucket array
// doubles when the number of elements reaches three quarters of its length and
// never shrinks. A HashSet is not safe for concurrent use.
package hashset

import (
	"fmt"
	"iter"
	"strings"
)

const (
	defaultCapacity   = 10
	defaultLoadFactor = 0.75
)

// HashSet is a set of elements of type E
type HashSet[E any] struct {
	hasher     Hasher[E]
	buckets    []*bucket[E]
	size       int
	loadFactor float64
	threshold  int
	modCount   uint64
}

// New creates an empty set with the default capacity
func New[E any](h Hasher[E]) *HashSet[E] {
	return NewWithCapacity(h, defaultCapacity)
}

// NewWithCapacity creates an empty set whose bucket array has at least
// capacity buckets. It panics if capacity is negative.
func NewWithCapacity[E any](h Hasher[E], capacity int) *HashSet[E] {
	if capacity < 0 {
		panic(fmt.Sprintf("hashset: negative capacity %d", capacity))
	}
	s := &HashSet[E]{
		hasher:     h,
		loadFactor: defaultLoadFactor,
	}
	s.reset(nextPowerOfTwo(capacity))
	return s
}

// NewFrom creates a set holding the distinct elements of c
func NewFrom[E any](h Hasher[E], c Collection[E]) *HashSet[E] {
	s := NewWithCapacity(h, 2*c.Len())
	s.AddAll(c)
	return s
}

// Of creates a set of strings with given elements
func Of(e ...string) *HashSet[string] {
	return NewFrom(Strings(), SliceOf(e...))
}

func (s *HashSet[E]) reset(capacity int) {
	s.buckets = make([]*bucket[E], capacity)
	s.threshold = int(float64(capacity) * s.loadFactor)
}

// Len returns number of elements in the set
func (s *HashSet[E]) Len() int {
	return s.size
}

// IsEmpty reports whether the set has no elements
func (s *HashSet[E]) IsEmpty() bool {
	return s.size == 0
}

// Contains reports whether e is in the set
func (s *HashSet[E]) Contains(e E) bool {
	hash := s.hasher.Hash(e)
	b := s.buckets[indexFor(hash, len(s.buckets))]
	if b.isEmpty() {
		return false
	}
	return b.find(s.hasher, hash, e) >= 0
}

// Add inserts e, returning false if an equal element was already present
func (s *HashSet[E]) Add(e E) bool {
	if s.Contains(e) {
		return false
	}
	if s.size+1 >= s.threshold {
		s.grow(2 * len(s.buckets))
	}
	hash := s.hasher.Hash(e)
	s.insert(hash, e)
	s.size++
	s.modCount++
	return true
}

func (s *HashSet[E]) insert(hash uint32, e E) {
	i := indexFor(hash, len(s.buckets))
	b := s.buckets[i]
	if b == nil {
		b = &bucket[E]{}
		s.buckets[i] = b
	}
	b.append(hash, e)
}

// Remove deletes e, returning false if it was not present
func (s *HashSet[E]) Remove(e E) bool {
	hash := s.hasher.Hash(e)
	b := s.buckets[indexFor(hash, len(s.buckets))]
	if b.isEmpty() || b.find(s.hasher, hash, e) < 0 {
		return false
	}
	s.size -= b.removeEqual(s.hasher, hash, e)
	s.modCount++
	return true
}

// AddAll adds every element of c. It returns false, without adding anything,
// if the set already contained all of them.
func (s *HashSet[E]) AddAll(c Collection[E]) bool {
	if newSize := s.size + c.Len(); newSize >= s.threshold {
		s.growFor(newSize)
	}
	if s.ContainsAll(c) {
		return false
	}
	for e := range c.All() {
		s.Add(e)
	}
	return true
}

// RemoveAll removes every element of c from the set, but only when the set
// contains all of them. If any element of c is missing the set is left
// untouched and false is returned.
func (s *HashSet[E]) RemoveAll(c Collection[E]) bool {
	if !s.ContainsAll(c) {
		return false
	}
	s.batchRemove(membership(s.hasher, c), true)
	return true
}

// RetainAll removes every element that c does not contain and reports
// whether anything was removed
func (s *HashSet[E]) RetainAll(c Collection[E]) bool {
	return s.batchRemove(membership(s.hasher, c), false) > 0
}

// batchRemove removes the elements whose membership in filter equals
// inFilter. Victims are collected before any removal so that the bucket
// array is not mutated while it is walked.
func (s *HashSet[E]) batchRemove(filter Set[E], inFilter bool) int {
	var victims []E
	for _, b := range s.buckets {
		if b.isEmpty() {
			continue
		}
		for _, en := range b.entries {
			if filter.Contains(en.value) == inFilter {
				victims = append(victims, en.value)
			}
		}
	}
	removed := 0
	for _, e := range victims {
		if s.Remove(e) {
			removed++
		}
	}
	return removed
}

// ContainsAll reports whether every element of c is in the set
func (s *HashSet[E]) ContainsAll(c Collection[E]) bool {
	for e := range c.All() {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// Clear removes all elements. Capacity is kept.
func (s *HashSet[E]) Clear() {
	s.size = 0
	clear(s.buckets)
	s.modCount++
}

// ToSlice returns the elements in iteration order
func (s *HashSet[E]) ToSlice() []E {
	return s.appendTo(make([]E, 0, s.size))
}

// ToSliceInto copies the elements into dst when it is large enough, otherwise
// into a new slice. When dst is longer than the set, dst[Len()] is set to the
// zero value of E to mark the end.
func (s *HashSet[E]) ToSliceInto(dst []E) []E {
	if len(dst) < s.size {
		return s.ToSlice()
	}
	s.appendTo(dst[:0])
	if len(dst) > s.size {
		var zero E
		dst[s.size] = zero
	}
	return dst
}

func (s *HashSet[E]) appendTo(dst []E) []E {
	for _, b := range s.buckets {
		if b.isEmpty() {
			continue
		}
		for _, en := range b.entries {
			dst = append(dst, en.value)
		}
	}
	return dst
}

// Equal reports whether other is a Set holding the same elements. Values that
// are not a Set[E] are never equal. A panic raised by the Hasher while
// comparing is treated as inequality.
func (s *HashSet[E]) Equal(other any) (equal bool) {
	if o, ok := other.(*HashSet[E]); ok && o == s {
		return true
	}
	o, ok := other.(Set[E])
	if !ok {
		return false
	}
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	if o.Len() != s.size {
		return false
	}
	for e := range o.All() {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// HashCode returns the sum of the hashes of the elements. Sets that are Equal
// and built with the same Hasher have the same hash code, since the Hasher
// gives equal elements (nil ones included) equal hashes.
func (s *HashSet[E]) HashCode() uint32 {
	var h uint32
	for _, b := range s.buckets {
		if b.isEmpty() {
			continue
		}
		for _, en := range b.entries {
			h += en.hash
		}
	}
	return h
}

// All returns an iterator over the elements. It panics if the set is
// structurally modified while the iteration is in progress.
func (s *HashSet[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := s.Iterator()
		for it.HasNext() {
			e, err := it.Next()
			if err != nil {
				panic(err)
			}
			if !yield(e) {
				return
			}
			if err := it.checkModification(); err != nil {
				panic(err)
			}
		}
	}
}

// Each calls fn on every element until fn returns true. The returned error is
// non-nil if fn modified the set.
func (s *HashSet[E]) Each(fn func(E) bool) error {
	it := s.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		if fn(e) {
			return nil
		}
		if err := it.checkModification(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a copy of the set with the same Hasher and capacity
func (s *HashSet[E]) Clone() *HashSet[E] {
	c := &HashSet[E]{
		hasher:     s.hasher,
		buckets:    make([]*bucket[E], len(s.buckets)),
		size:       s.size,
		loadFactor: s.loadFactor,
		threshold:  s.threshold,
	}
	for i, b := range s.buckets {
		if b.isEmpty() {
			continue
		}
		c.buckets[i] = &bucket[E]{entries: append([]entry[E](nil), b.entries...)}
	}
	return c
}

func (s *HashSet[E]) String() string {
	items := make([]string, 0, s.size)
	for _, e := range s.ToSlice() {
		items = append(items, fmt.Sprintf("%v", e))
	}
	return fmt.Sprintf("Set{%s}", strings.Join(items, ", "))
}
