package pqueue

import "golang.org/x/exp/constraints"

// entry caches the key so sift operations never call the key function again.
type entry[T any, K constraints.Ordered] struct {
	key  K
	item T
}

// Heap is a 0-indexed binary min-heap keyed by K.
// The zero value is not usable; construct with New.
type Heap[T any, K constraints.Ordered] struct {
	keyOf func(T) K
	data  []entry[T, K]
}

// New returns an empty heap ordering items by keyOf(item).
// capacityHint pre-sizes the backing slice (values < 0 are treated as 0).
func New[T any, K constraints.Ordered](keyOf func(T) K, capacityHint int) *Heap[T, K] {
	if capacityHint < 0 {
		capacityHint = 0
	}

	return &Heap[T, K]{
		keyOf: keyOf,
		data:  make([]entry[T, K], 0, capacityHint),
	}
}

// Len returns the number of items currently held.
func (h *Heap[T, K]) Len() int { return len(h.data) }

// IsEmpty reports whether the heap holds no items.
func (h *Heap[T, K]) IsEmpty() bool { return len(h.data) == 0 }

// Push inserts item; its key is evaluated exactly once, here.
func (h *Heap[T, K]) Push(item T) {
	h.data = append(h.data, entry[T, K]{key: h.keyOf(item), item: item})
	h.up(len(h.data) - 1)
}

// Peek returns the minimum item without removing it.
// ok is false when the heap is empty.
func (h *Heap[T, K]) Peek() (item T, ok bool) {
	if len(h.data) == 0 {
		return item, false
	}

	return h.data[0].item, true
}

// PeekKey returns the key of the minimum item.
func (h *Heap[T, K]) PeekKey() (key K, ok bool) {
	if len(h.data) == 0 {
		return key, false
	}

	return h.data[0].key, true
}

// Pop removes and returns the minimum item.
// ok is false when the heap is empty.
func (h *Heap[T, K]) Pop() (item T, ok bool) {
	n := len(h.data)
	if n == 0 {
		return item, false
	}
	item = h.data[0].item
	last := n - 1
	h.data[0] = h.data[last]
	// Drop the reference held by the vacated slot so popped items can be collected.
	h.data[last] = entry[T, K]{}
	h.data = h.data[:last]
	if last > 0 {
		h.down(0)
	}

	return item, true
}

// Drain removes every item, handing each to fn in heap-array order (not sorted).
func (h *Heap[T, K]) Drain(fn func(T)) {
	for i := range h.data {
		if fn != nil {
			fn(h.data[i].item)
		}
		h.data[i] = entry[T, K]{}
	}
	h.data = h.data[:0]
}

func (h *Heap[T, K]) up(i int) {
	var parent int
	for i > 0 {
		parent = (i - 1) / 2
		if !(h.data[i].key < h.data[parent].key) {
			return
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

func (h *Heap[T, K]) down(i int) {
	var (
		n        = len(h.data)
		smallest int
		l, r     int
	)
	for {
		l = 2*i + 1
		if l >= n {
			return
		}
		smallest = l
		r = l + 1
		if r < n && h.data[r].key < h.data[l].key {
			smallest = r
		}
		if !(h.data[smallest].key < h.data[i].key) {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
