package hashset

// growFor enlarges the bucket array so that it can hold targetSize elements
// with room to spare: the new capacity is the power of two at or above
// 2*targetSize.
func (s *HashSet[E]) growFor(targetSize int) {
	if capacity := nextPowerOfTwo(2 * targetSize); capacity > len(s.buckets) {
		s.grow(capacity)
	}
}

// grow replaces the bucket array with one of the given capacity and re-homes
// every entry using its cached hash. Size is unaffected; the modification
// counter moves once for the whole transfer.
func (s *HashSet[E]) grow(capacity int) {
	old := s.buckets
	s.reset(capacity)
	for _, b := range old {
		if b.isEmpty() {
			continue
		}
		for _, en := range b.entries {
			s.insert(en.hash, en.value)
		}
	}
	s.modCount++
}
