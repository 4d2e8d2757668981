// Package pqueue provides a generic binary min-heap.
//
// Heap[T, K] stores arbitrary items and orders them by a key extracted once at
// Push time through a caller-supplied function. It backs the open list of the
// tsp branch-and-bound search, but carries no TSP knowledge.
//
//   - Push:    O(log m)
//   - Pop:     O(log m)
//   - Peek:    O(1)
//   - Len:     O(1)
//
// Storage grows dynamically; the capacity hint passed to New only avoids early
// reallocations. A Heap is not safe for concurrent use.
package pqueue
