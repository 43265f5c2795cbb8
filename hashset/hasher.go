package hashset

import (
	"bytes"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher supplies the hash function and the equality predicate for elements
// of type E. If Equal(a, b) is true then Hash(a) must equal Hash(b), and the
// hash of an element must not change while the element is stored in a set.
type Hasher[E any] interface {
	Hash(e E) uint32
	Equal(a, b E) bool
}

type funcHasher[E any] struct {
	hash  func(E) uint32
	equal func(a, b E) bool
}

func (h funcHasher[E]) Hash(e E) uint32 {
	return h.hash(e)
}

func (h funcHasher[E]) Equal(a, b E) bool {
	return h.equal(a, b)
}

// Funcs builds a Hasher out of a pair of functions
func Funcs[E any](hash func(E) uint32, equal func(a, b E) bool) Hasher[E] {
	return funcHasher[E]{hash: hash, equal: equal}
}

type stringHasher struct{}

func (stringHasher) Hash(s string) uint32 {
	return fold(xxhash.Sum64String(s))
}

func (stringHasher) Equal(a, b string) bool {
	return a == b
}

// Strings returns a Hasher for strings backed by xxhash
func Strings() Hasher[string] {
	return stringHasher{}
}

type bytesHasher struct{}

func (bytesHasher) Hash(b []byte) uint32 {
	return fold(xxhash.Sum64(b))
}

func (bytesHasher) Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Bytes returns a Hasher for byte slices, comparing them by content.
// A slice must not be modified while it is stored in a set.
func Bytes() Hasher[[]byte] {
	return bytesHasher{}
}

// seed is shared by every comparable hasher so that two sets built in the
// same process agree on element hashes (and hence on HashCode).
var seed = maphash.MakeSeed()

type comparableHasher[E comparable] struct{}

func (comparableHasher[E]) Hash(e E) uint32 {
	return fold(maphash.Comparable(seed, e))
}

func (comparableHasher[E]) Equal(a, b E) bool {
	return a == b
}

// Comparable returns a Hasher for any comparable type, using == for equality.
// Hash values are only stable within a single process.
func Comparable[E comparable]() Hasher[E] {
	return comparableHasher[E]{}
}

func fold(h uint64) uint32 {
	return uint32(h ^ (h >> 32))
}
