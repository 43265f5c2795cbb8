package hashset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkSet(t *testing.T, expected []string, actual *HashSet[string]) {
	t.Helper()
	assert.Equal(t, len(expected), actual.Len())
	for _, e := range expected {
		assert.True(t, actual.Contains(e), "missing %q", e)
	}
}

func TestNewIsEmpty(t *testing.T) {
	s := New(Strings())
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 16, s.Stats().Capacity)
}

func TestNewFromCollection(t *testing.T) {
	s := Of("one", "two")
	checkSet(t, []string{"one", "two"}, s)
	assert.Equal(t, 4, s.Stats().Capacity)
}

func TestNewFromDuplicates(t *testing.T) {
	s := Of("one", "two", "one", "two", "three")
	checkSet(t, []string{"one", "two", "three"}, s)
}

func TestNewWithCapacity(t *testing.T) {
	tests := map[int]int{
		0:  1,
		1:  1,
		3:  4,
		16: 16,
		17: 32,
	}
	for requested, expected := range tests {
		s := NewWithCapacity(Strings(), requested)
		assert.Equal(t, expected, s.Stats().Capacity, "requested %d", requested)
	}
	assert.Panics(t, func() { NewWithCapacity(Strings(), -1) })
}

func TestAdd(t *testing.T) {
	s := New(Strings())
	assert.True(t, s.Add("one"))
	checkSet(t, []string{"one"}, s)
}

func TestAddIsIdempotent(t *testing.T) {
	s := New(Strings())
	assert.True(t, s.Add("one"))
	assert.False(t, s.Add("one"))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains("one"))
}

func TestAddToZeroCapacity(t *testing.T) {
	s := NewWithCapacity(Strings(), 0)
	for _, e := range []string{"a", "b", "c", "d", "e"} {
		assert.True(t, s.Add(e))
	}
	checkSet(t, []string{"a", "b", "c", "d", "e"}, s)
}

func TestRemove(t *testing.T) {
	s := Of("one", "two")
	assert.True(t, s.Remove("two"))
	assert.True(t, s.Equal(Of("one")))
	assert.False(t, s.Remove("two"))
	assert.False(t, s.Remove("never"))
}

func TestAddRemoveRoundTrip(t *testing.T) {
	s := Of("a", "b", "c")
	before := s.Len()
	require.True(t, s.Add("d"))
	require.True(t, s.Remove("d"))
	assert.False(t, s.Contains("d"))
	assert.Equal(t, before, s.Len())
}

func TestAddAll(t *testing.T) {
	s := New(Strings())
	assert.True(t, s.AddAll(SliceOf("two", "three")))
	checkSet(t, []string{"two", "three"}, s)
	assert.False(t, s.AddAll(SliceOf("three", "two")))
	assert.True(t, s.AddAll(SliceOf("three", "four")))
	checkSet(t, []string{"two", "three", "four"}, s)
}

func TestAddAllGrowsUpfront(t *testing.T) {
	s := New(Strings())
	items := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		items = append(items, string(rune('A'+i)))
	}
	assert.True(t, s.AddAll(SliceOf(items...)))
	assert.Equal(t, 40, s.Len())
	assert.Equal(t, 128, s.Stats().Capacity)
}

func TestRemoveAll(t *testing.T) {
	s := Of("one", "two", "three")
	assert.True(t, s.RemoveAll(SliceOf("one", "two")))
	assert.True(t, s.Equal(Of("three")))
}

func TestRemoveAllRequiresSubset(t *testing.T) {
	s := Of("one", "two", "three")
	assert.False(t, s.RemoveAll(SliceOf("one", "four")))
	checkSet(t, []string{"one", "two", "three"}, s)
}

func TestRemoveAllWithSetArgument(t *testing.T) {
	s := Of("one", "two", "three")
	assert.True(t, s.RemoveAll(Of("three")))
	assert.True(t, s.Equal(Of("one", "two")))
}

func TestRetainAll(t *testing.T) {
	s := Of("one", "two", "three")
	assert.True(t, s.RetainAll(SliceOf("one", "two")))
	assert.True(t, s.Equal(Of("one", "two")))
	assert.False(t, s.RetainAll(SliceOf("one", "two", "five")))
	assert.True(t, s.RetainAll(SliceOf[string]()))
	assert.True(t, s.IsEmpty())
}

func TestContainsAll(t *testing.T) {
	s := Of("one", "two", "three")
	assert.True(t, s.ContainsAll(SliceOf(s.ToSlice()...)))
	assert.True(t, s.ContainsAll(SliceOf[string]()))
	assert.False(t, s.ContainsAll(SliceOf("four", "five")))
	assert.False(t, s.ContainsAll(SliceOf("one", "five")))
}

func TestClear(t *testing.T) {
	s := Of("one", "two", "three")
	capacity := s.Stats().Capacity
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("one"))
	assert.Equal(t, capacity, s.Stats().Capacity)
	assert.Empty(t, s.ToSlice())
}

func TestIsEmptyLifecycle(t *testing.T) {
	s := New(Strings())
	assert.True(t, s.IsEmpty())
	s.AddAll(SliceOf("one", "two", "three"))
	assert.False(t, s.IsEmpty())
	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestToSlice(t *testing.T) {
	s := Of("one", "two", "three")
	assert.ElementsMatch(t, []string{"one", "two", "three"}, s.ToSlice())
	assert.Empty(t, New(Strings()).ToSlice())
}

func TestToSliceInto(t *testing.T) {
	s := Of("one", "two")

	dst := []string{"x", "x", "x", "x"}
	got := s.ToSliceInto(dst)
	assert.Len(t, got, 4)
	assert.Same(t, &dst[0], &got[0])
	assert.ElementsMatch(t, []string{"one", "two"}, got[:2])
	assert.Equal(t, "", got[2])
	assert.Equal(t, "x", got[3])

	exact := make([]string, 2)
	got = s.ToSliceInto(exact)
	assert.Same(t, &exact[0], &got[0])
	assert.ElementsMatch(t, []string{"one", "two"}, got)

	got = s.ToSliceInto(make([]string, 1))
	assert.Len(t, got, 2)
	assert.ElementsMatch(t, []string{"one", "two"}, got)
}

func TestEqual(t *testing.T) {
	s1 := Of("one", "two", "three")
	s2 := Of("three", "two", "one")
	assert.True(t, s1.Equal(s1))
	assert.True(t, s1.Equal(s2))
	assert.True(t, s2.Equal(s1))
	assert.False(t, s1.Equal(Of("one", "two")))
	assert.False(t, s1.Equal(Of("one", "two", "four")))
}

func TestEqualRejectsNonSets(t *testing.T) {
	s := Of("one")
	assert.False(t, s.Equal(nil))
	assert.False(t, s.Equal("one"))
	assert.False(t, s.Equal([]string{"one"}))
	assert.False(t, s.Equal(SliceOf("one")))
	assert.False(t, s.Equal(New(Comparable[int]())))
	var missing *HashSet[string]
	assert.False(t, s.Equal(missing))
}

func TestEqualAbsorbsHasherPanics(t *testing.T) {
	fragile := Funcs(
		func(int) uint32 { return 1 },
		func(a, b int) bool {
			if a < 0 || b < 0 {
				panic("negative values are not comparable")
			}
			return a == b
		},
	)
	s1 := NewFrom(fragile, SliceOf(1, 2))
	s2 := NewFrom(Comparable[int](), SliceOf(1, -2))
	assert.NotPanics(t, func() {
		assert.False(t, s1.Equal(s2))
	})
}

func TestHashCode(t *testing.T) {
	s1 := NewWithCapacity(Strings(), 2)
	s2 := NewWithCapacity(Strings(), 64)
	items := []string{"one", "two", "three", "four", "five"}
	for i := range items {
		s1.Add(items[i])
		s2.Add(items[len(items)-1-i])
	}
	assert.True(t, s1.Equal(s2))
	assert.Equal(t, s1.HashCode(), s2.HashCode())
	assert.Equal(t, uint32(0), New(Strings()).HashCode())

	var expected uint32
	for _, e := range items {
		expected += Strings().Hash(e)
	}
	assert.Equal(t, expected, s1.HashCode())
}

func TestHashCodeWithNilElement(t *testing.T) {
	withNil := New(Bytes())
	withNil.Add(nil)
	withEmpty := New(Bytes())
	withEmpty.Add([]byte{})
	assert.True(t, withNil.Equal(withEmpty))
	assert.True(t, withEmpty.Equal(withNil))
	assert.Equal(t, withNil.HashCode(), withEmpty.HashCode())
	assert.Equal(t, Bytes().Hash(nil), withNil.HashCode())
}

func TestClone(t *testing.T) {
	s := Of("one", "two")
	c := s.Clone()
	assert.True(t, s.Equal(c))
	c.Add("three")
	assert.False(t, s.Contains("three"))
	assert.Equal(t, s.Stats().Capacity, c.Stats().Capacity)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Set{}", New(Strings()).String())
	assert.Equal(t, "Set{one}", Of("one").String())
}
