package hashset

// Stats describes how elements are spread over the bucket array
type Stats struct {
	Size          int
	Capacity      int
	Threshold     int
	UsedBuckets   int
	LongestChain  int
	Modifications uint64
}

// Stats returns occupancy figures for the bucket array
func (s *HashSet[E]) Stats() Stats {
	st := Stats{
		Size:          s.size,
		Capacity:      len(s.buckets),
		Threshold:     s.threshold,
		Modifications: s.modCount,
	}
	for _, b := range s.buckets {
		if b.isEmpty() {
			continue
		}
		st.UsedBuckets++
		st.LongestChain = max(st.LongestChain, len(b.entries))
	}
	return st
}

// AverageChain returns the mean chain length over non-empty buckets
func (st Stats) AverageChain() float64 {
	if st.UsedBuckets == 0 {
		return 0
	}
	return float64(st.Size) / float64(st.UsedBuckets)
}
