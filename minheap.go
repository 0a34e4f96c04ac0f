// Package minheap provides a priority queue backed by an array-based
// binary min-heap: the minimum element is available in constant time,
// insertion and removal of the minimum cost O(log n).
package minheap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Heap is a min-heap of ordered elements laid out in a slice as a
// complete binary tree: children of the node at index i live at 2i+1
// and 2i+2, its parent at (i-1)/2. For every non-root index i,
// data[parent(i)] <= data[i], hence data[0] is a minimum.
//
// The zero value is an empty heap ready to use.
//
// Heap is not safe for concurrent use. Callers sharing one instance
// across goroutines must serialize every call externally.
type Heap[T constraints.Ordered] struct {
	data []T
}

// New returns a heap holding the given elements.
// It copies xs and establishes heap order bottom-up in O(len(xs)).
func New[T constraints.Ordered](xs ...T) *Heap[T] {
	h := &Heap[T]{
		data: append([]T(nil), xs...),
	}
	p := parent(len(h.data) - 1) // Last parent node.
	for ; p >= 0; p-- {
		h.siftDown(p)
	}
	return h
}

// Push inserts x into the heap.
func (h *Heap[T]) Push(x T) {
	h.data = append(h.data, x)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the minimum element.
// It reports false if the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.data)
	if n == 0 {
		return zero, false
	}

	x := h.data[0]
	h.data[0] = h.data[n-1]
	h.data[n-1] = zero // Do not retain the vacated slot's value.
	h.data = h.data[:n-1]
	h.siftDown(0)

	return x, true
}

// Peek returns the minimum element without removing it.
// It reports false if the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// Size returns the number of elements in the heap.
func (h *Heap[T]) Size() int {
	return len(h.data)
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.data) == 0
}

// Reserve grows the backing store to hold at least n elements without
// further allocation. It never shrinks the store and never changes the
// heap's contents.
func (h *Heap[T]) Reserve(n int) {
	if cap(h.data) < n {
		d := make([]T, len(h.data), n)
		copy(d, h.data)
		h.data = d
	}
}

// Items returns a copy of the backing store in array order, that is,
// the heap layout, not sorted order. It is useful for diagnostics
// only.
func (h *Heap[T]) Items() []T {
	return append([]T(nil), h.data...)
}

// String renders the backing store in array order.
func (h *Heap[T]) String() string {
	return fmt.Sprint(h.data)
}

func (h *Heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if h.data[p] <= h.data[i] {
			return
		}
		h.swap(p, i)
		i = p
	}
}

func (h *Heap[T]) siftDown(i int) {
	for {
		min := i
		i1, i2 := children(i)
		if i1 < len(h.data) && h.data[i1] < h.data[min] {
			min = i1
		}
		if i2 < len(h.data) && h.data[i2] < h.data[min] {
			min = i2
		}
		if min == i {
			break
		}
		h.swap(i, min)
		i = min
	}
}

func parent(x int) int {
	return (x - 1) / 2
}

func children(x int) (int, int) {
	return 2*x + 1, 2*x + 2
}
