// SPDX-License-Identifier: MIT

package minpq

import (
	"fmt"
	"math"
)

// entry pairs an item with its current priority. Entries never leave the package.
type entry[T comparable] struct {
	item     T
	priority float64
}

// IndexedMinPQ is a 1-indexed binary min-heap with an item→slot index.
// Create it with New; the zero value is not usable.
type IndexedMinPQ[T comparable] struct {
	heap   []entry[T] // heap[1..n] occupied, heap[0] unused
	index  map[T]int  // item → slot in heap
	n      int        // number of queued items
	minCap int        // capacity floor for shrinking
}

// New returns an empty queue.
// Complexity: O(InitialCapacity).
func New[T comparable](opts ...Option) *IndexedMinPQ[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &IndexedMinPQ[T]{
		heap:   make([]entry[T], cfg.InitialCapacity+1),
		index:  make(map[T]int, cfg.InitialCapacity),
		minCap: cfg.InitialCapacity,
	}
}

// Add queues item with the given priority.
// Returns ErrNaNPriority for a NaN priority and ErrDuplicateItem if item is
// already queued.
// Complexity: O(log n) amortized.
func (pq *IndexedMinPQ[T]) Add(item T, priority float64) error {
	if math.IsNaN(priority) {
		return fmt.Errorf("%w: %v", ErrNaNPriority, item)
	}
	if _, ok := pq.index[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	if float64(pq.n+1)/float64(pq.capacity()) > growLoadFactor {
		pq.resize(2 * pq.capacity())
	}

	pq.n++
	pq.heap[pq.n] = entry[T]{item: item, priority: priority}
	pq.index[item] = pq.n
	pq.swim(pq.n)

	return nil
}

// Contains reports whether item is queued.
// Complexity: O(1).
func (pq *IndexedMinPQ[T]) Contains(item T) bool {
	_, ok := pq.index[item]

	return ok
}

// Priority returns the current priority of item and whether it is queued.
func (pq *IndexedMinPQ[T]) Priority(item T) (float64, bool) {
	i, ok := pq.index[item]
	if !ok {
		return 0, false
	}

	return pq.heap[i].priority, true
}

// ChangePriority sets a new priority for a queued item and restores heap
// order: the entry sifts up when the priority decreased, down when it
// increased, and stays put when unchanged.
// Returns ErrNaNPriority for a NaN priority, leaving the entry unchanged,
// and ErrItemNotFound if item is not queued.
// Complexity: O(log n).
func (pq *IndexedMinPQ[T]) ChangePriority(item T, priority float64) error {
	if math.IsNaN(priority) {
		return fmt.Errorf("%w: %v", ErrNaNPriority, item)
	}
	i, ok := pq.index[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}

	old := pq.heap[i].priority
	pq.heap[i].priority = priority
	switch {
	case priority < old:
		pq.swim(i)
	case priority > old:
		pq.sink(i)
	}

	return nil
}

// GetSmallest returns the item with the smallest priority without removing it.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(1).
func (pq *IndexedMinPQ[T]) GetSmallest() (T, error) {
	if pq.n == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return pq.heap[1].item, nil
}

// RemoveSmallest removes and returns the item with the smallest priority.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(log n) amortized.
func (pq *IndexedMinPQ[T]) RemoveSmallest() (T, error) {
	if pq.n == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	smallest := pq.heap[1].item
	pq.swap(1, pq.n)
	pq.heap[pq.n] = entry[T]{} // release references held by T
	pq.n--
	delete(pq.index, smallest)
	if pq.n > 1 {
		pq.sink(1)
	}

	if pq.capacity() > pq.minCap && float64(pq.n)/float64(pq.capacity()) < shrinkLoadFactor {
		pq.resize(max(pq.capacity()/2, pq.minCap))
	}

	return smallest, nil
}

// Size returns the number of queued items.
func (pq *IndexedMinPQ[T]) Size() int {
	return pq.n
}

// capacity returns the number of usable slots.
func (pq *IndexedMinPQ[T]) capacity() int {
	return len(pq.heap) - 1
}

// resize moves the occupied slots into a slice of newCap usable slots.
// Slot numbers are preserved, so the index map needs no update.
func (pq *IndexedMinPQ[T]) resize(newCap int) {
	next := make([]entry[T], newCap+1)
	copy(next[1:pq.n+1], pq.heap[1:pq.n+1])
	pq.heap = next
}

// less reports whether slot i has a strictly smaller priority than slot j.
func (pq *IndexedMinPQ[T]) less(i, j int) bool {
	return pq.heap[i].priority < pq.heap[j].priority
}

// swap exchanges slots i and j and updates the index for both items.
// It is the only code path that moves an entry between occupied slots.
func (pq *IndexedMinPQ[T]) swap(i, j int) {
	if i == j {
		return
	}
	pq.heap[i], pq.heap[j] = pq.heap[j], pq.heap[i]
	pq.index[pq.heap[i].item] = i
	pq.index[pq.heap[j].item] = j
}

// swim moves slot i towards the root while it beats its parent.
func (pq *IndexedMinPQ[T]) swim(i int) {
	for i > 1 && pq.less(i, i/2) {
		pq.swap(i, i/2)
		i /= 2
	}
}

// sink moves slot i towards the leaves while a child beats it.
// On equal children the left one is chosen.
func (pq *IndexedMinPQ[T]) sink(i int) {
	for 2*i <= pq.n {
		c := 2 * i
		if c < pq.n && pq.less(c+1, c) {
			c++
		}
		if !pq.less(c, i) {
			return
		}
		pq.swap(i, c)
		i = c
	}
}
