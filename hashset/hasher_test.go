package hashset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringsHasher(t *testing.T) {
	h := Strings()
	assert.Equal(t, h.Hash("one"), h.Hash("o"+"ne"))
	assert.NotEqual(t, h.Hash("one"), h.Hash("two"))
	assert.True(t, h.Equal("one", "one"))
	assert.False(t, h.Equal("one", "One"))
}

func TestBytesHasher(t *testing.T) {
	h := Bytes()
	assert.Equal(t, h.Hash([]byte("abc")), h.Hash([]byte{'a', 'b', 'c'}))
	assert.True(t, h.Equal([]byte("abc"), []byte("abc")))

	s := New(h)
	assert.True(t, s.Add([]byte("abc")))
	assert.False(t, s.Add([]byte("abc")))
	assert.True(t, s.Contains([]byte("abc")))
}

type point struct {
	x, y int
}

func TestComparableHasher(t *testing.T) {
	h := Comparable[point]()
	assert.Equal(t, h.Hash(point{1, 2}), h.Hash(point{1, 2}))
	assert.True(t, h.Equal(point{1, 2}, point{1, 2}))
	assert.False(t, h.Equal(point{1, 2}, point{2, 1}))

	s := NewFrom(h, SliceOf(point{1, 2}, point{2, 1}, point{1, 2}))
	assert.Equal(t, 2, s.Len())
}

func TestFuncsHasher(t *testing.T) {
	caseless := Funcs(
		func(s string) uint32 { return Strings().Hash(strings.ToLower(s)) },
		func(a, b string) bool { return strings.ToLower(a) == strings.ToLower(b) },
	)
	s := NewFrom(caseless, SliceOf("One", "ONE", "two"))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("one"))
	assert.True(t, s.Remove("TWO"))
}
