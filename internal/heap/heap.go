// Package heap implements a small generic binary heap used by the hnsw
// package's layer search to maintain a bounded candidate frontier and a
// bounded working result set.
package heap

// Lesser is implemented by elements stored in a Heap.
type Lesser[T any] interface {
	Less(o T) bool
}

// Heap is a binary min-heap over any type implementing Lesser.
// The zero value is not ready to use; call Init first.
type Heap[T Lesser[T]] struct {
	data []T
}

// Init prepares the heap to use s as its backing storage. s must be empty
// or already heap-ordered; callers typically pass make([]T, 0, capacity).
func (h *Heap[T]) Init(s []T) {
	h.data = s
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.data)
}

// Push adds v to the heap.
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.up(len(h.data) - 1)
}

// Pop removes and returns the minimum element.
func (h *Heap[T]) Pop() T {
	n := len(h.data) - 1
	h.data[0], h.data[n] = h.data[n], h.data[0]
	v := h.data[n]
	h.data = h.data[:n]
	if n > 0 {
		h.down(0)
	}
	return v
}

// Min returns the minimum element without removing it.
func (h *Heap[T]) Min() T {
	return h.data[0]
}

// Max returns the largest element without removing it. Heap ordering only
// guarantees the minimum is at index 0, so this scans every element; callers
// that need Max frequently (the bounded result set in layer search) keep
// the heap small (size ef), so this stays cheap.
func (h *Heap[T]) Max() T {
	max := h.data[0]
	for _, v := range h.data[1:] {
		if max.Less(v) {
			max = v
		}
	}
	return max
}

// PopLast removes and returns the largest element.
func (h *Heap[T]) PopLast() T {
	maxIdx := 0
	for i, v := range h.data {
		if h.data[maxIdx].Less(v) {
			maxIdx = i
		}
	}
	n := len(h.data) - 1
	h.data[maxIdx], h.data[n] = h.data[n], h.data[maxIdx]
	v := h.data[n]
	h.data = h.data[:n]
	if maxIdx < len(h.data) {
		h.down(maxIdx)
		h.up(maxIdx)
	}
	return v
}

// Slice returns the heap's backing elements in ascending order, consuming
// the heap in the process.
func (h *Heap[T]) Slice() []T {
	out := make([]T, 0, len(h.data))
	for h.Len() > 0 {
		out = append(out, h.Pop())
	}
	return out
}

func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.data[i].Less(h.data[parent]) {
			break
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.data)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.data[left].Less(h.data[smallest]) {
			smallest = left
		}
		if right < n && h.data[right].Less(h.data[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
