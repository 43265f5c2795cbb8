package hashset

import "fmt"

// Iterator walks a HashSet bucket by bucket, and within a bucket in the order
// elements were appended. It fails fast: once the set is structurally
// modified by anything other than the iterator, Next returns
// ErrConcurrentModification.
type Iterator[E any] struct {
	set              *HashSet[E]
	cursor           int
	bucketIndex      int
	chainPosition    int
	expectedModCount uint64
}

// Iterator creates a single-pass iterator positioned before the first element
func (s *HashSet[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{set: s, expectedModCount: s.modCount}
}

// HasNext reports whether Next has more elements to return
func (it *Iterator[E]) HasNext() bool {
	return it.cursor != it.set.size
}

// Next returns the next element
func (it *Iterator[E]) Next() (E, error) {
	var zero E
	s := it.set
	if err := it.checkModification(); err != nil {
		return zero, err
	}
	if it.cursor >= s.size {
		return zero, fmt.Errorf("%w: %d of %d elements returned", ErrNoSuchElement, it.cursor, s.size)
	}
	for {
		if it.bucketIndex >= len(s.buckets) {
			return zero, fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, it.bucketIndex, len(s.buckets))
		}
		if !s.buckets[it.bucketIndex].isEmpty() {
			break
		}
		it.bucketIndex++
		it.chainPosition = 0
	}
	entries := s.buckets[it.bucketIndex].entries
	value := entries[it.chainPosition].value
	if it.chainPosition == len(entries)-1 {
		it.bucketIndex++
		it.chainPosition = 0
	} else {
		it.chainPosition++
	}
	it.cursor++
	return value, nil
}

func (it *Iterator[E]) checkModification() error {
	if it.expectedModCount != it.set.modCount {
		return fmt.Errorf("%w: expected modification %d, found %d",
			ErrConcurrentModification, it.expectedModCount, it.set.modCount)
	}
	return nil
}
