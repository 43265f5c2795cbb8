package hashset

import "errors"

var (
	// ErrConcurrentModification is returned by an iterator whose set was
	// structurally modified after the iterator was created
	ErrConcurrentModification = errors.New("set modified during iteration")

	// ErrNoSuchElement is returned when iterating past the last element
	ErrNoSuchElement = errors.New("no more elements")

	// ErrIndexOutOfRange is returned when an iterator walks off the end of
	// the bucket array before yielding Len() elements
	ErrIndexOutOfRange = errors.New("bucket index out of range")
)
