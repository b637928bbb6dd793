// Package pq provides the two priority queues the spanning-forest
// algorithms are built on.
//
//   - FibonacciHeap: exact, addressable min-heap with O(1) amortized
//     Insert and Decrease and O(log n) amortized Pop.
//   - SoftHeap: Kaplan–Zwick soft heap. For an error rate ε it may raise
//     the key of up to ε·n of the n inserted items ("corruption"), in
//     exchange for O(1) amortized Pop and O(log 1/ε) amortized Insert.
//
// Both heaps are ordered by a caller-supplied strict less function and
// are not safe for concurrent use.
//
// Errors:
//
//   - ErrEmptyHeap         Peek or Pop on an empty heap
//   - ErrInvalidHandle     Decrease with a handle that was never issued or already popped
//   - ErrNotDecreased      Decrease with a value that sorts above the current one
//   - ErrInvalidErrorRate  SoftHeap error rate outside (0, 1)
package pq
