package hashset

// entry is a stored element along with its cached hash
type entry[E any] struct {
	hash  uint32
	value E
}

// bucket holds, in append order, the entries whose hashes landed on the same
// index of the bucket array
type bucket[E any] struct {
	entries []entry[E]
}

func (b *bucket[E]) isEmpty() bool {
	return b == nil || len(b.entries) == 0
}

func (b *bucket[E]) find(h Hasher[E], hash uint32, e E) int {
	for i := range b.entries {
		if b.entries[i].hash == hash && h.Equal(b.entries[i].value, e) {
			return i
		}
	}
	return -1
}

func (b *bucket[E]) append(hash uint32, e E) {
	b.entries = append(b.entries, entry[E]{hash: hash, value: e})
}

// removeEqual drops every entry equal to e, keeping the order of the rest,
// and returns the number of entries dropped
func (b *bucket[E]) removeEqual(h Hasher[E], hash uint32, e E) int {
	kept := b.entries[:0]
	for _, en := range b.entries {
		if en.hash == hash && h.Equal(en.value, e) {
			continue
		}
		kept = append(kept, en)
	}
	removed := len(b.entries) - len(kept)
	var zero entry[E]
	for i := len(kept); i < len(b.entries); i++ {
		b.entries[i] = zero
	}
	b.entries = kept
	return removed
}

// disperse spreads the bits of a primary hash so that hashes differing only
// in their upper bits still land on different buckets once masked
func disperse(h uint32) uint32 {
	h ^= (h >> 20) ^ (h >> 12)
	return h ^ (h >> 7) ^ (h >> 4)
}

func indexFor(hash uint32, capacity int) int {
	return int(disperse(hash) & uint32(capacity-1))
}

func nextPowerOfTwo(n int) int {
	c := 1
	for c < n {
		c <<= 1
	}
	return c
}
