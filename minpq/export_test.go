package minpq

import "fmt"

// White-box bridge for minpq_test: exposes the backing store to invariant checks
// without widening the production API.

// Capacity exposes the number of usable heap slots.
func (pq *IndexedMinPQ[T]) Capacity() int {
	return pq.capacity()
}

// CheckInvariants verifies heap order and index sync. It returns the first
// violation found, or nil.
func (pq *IndexedMinPQ[T]) CheckInvariants() error {
	if len(pq.index) != pq.n {
		return fmt.Errorf("index holds %d items, heap holds %d", len(pq.index), pq.n)
	}
	if pq.n > pq.capacity() {
		return fmt.Errorf("size %d exceeds capacity %d", pq.n, pq.capacity())
	}
	for i := 1; i <= pq.n; i++ {
		if got, ok := pq.index[pq.heap[i].item]; !ok || got != i {
			return fmt.Errorf("slot %d holds %v but index maps it to %d (present=%v)", i, pq.heap[i].item, got, ok)
		}
		if i > 1 && pq.heap[i].priority < pq.heap[i/2].priority {
			return fmt.Errorf("slot %d priority %v below parent %d priority %v",
				i, pq.heap[i].priority, i/2, pq.heap[i/2].priority)
		}
	}

	return nil
}
