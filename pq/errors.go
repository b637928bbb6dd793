package pq

import "errors"

// Sentinel errors returned by the heaps.
var (
	// ErrEmptyHeap indicates Peek or Pop on an empty heap.
	ErrEmptyHeap = errors.New("pq: heap is empty")

	// ErrInvalidHandle indicates a handle that does not name a live element.
	ErrInvalidHandle = errors.New("pq: invalid handle")

	// ErrNotDecreased indicates that Decrease was given a larger value.
	ErrNotDecreased = errors.New("pq: new value is not smaller")

	// ErrInvalidErrorRate indicates a soft heap error rate outside (0, 1).
	ErrInvalidErrorRate = errors.New("pq: error rate must lie in (0, 1)")
)
