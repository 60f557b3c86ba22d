// Package minpq provides IndexedMinPQ, a binary min-heap over comparable
// items with extrinsic float64 priorities and O(log n) decrease-key.
//
// Overview:
//
//   - Items are any comparable Go value (vertex IDs, cells, points).
//   - Priorities are supplied by the caller and may be changed later with
//     ChangePriority, which sifts the entry up or down in place. This is the
//     operation A* relies on to avoid the "lazy" duplicate-push strategy.
//   - Contains and ChangePriority are O(1) lookups through an auxiliary map
//     from item to heap slot.
//
// Storage layout:
//
//	heap:  [ _ | e1 | e2 | e3 | ... | en | free ... ]   slot 0 unused
//	index: item -> slot
//
//	parent(i) = i/2, left(i) = 2i, right(i) = 2i+1
//
// Invariants (hold between any two public calls):
//
//   - Heap order: heap[i].priority >= heap[i/2].priority for every i > 1.
//   - Index sync: index[heap[i].item] == i for every occupied slot and the map
//     holds no other keys. Every slot exchange goes through a single swap
//     primitive that updates the slice and the map together.
//
// Capacity:
//
//   - The backing slice doubles when an Add would push occupancy above 75%
//     and halves when a RemoveSmallest leaves occupancy below 25%, never
//     shrinking below the initial capacity. The two marks differ so that an
//     alternating Add/Remove at a boundary cannot thrash.
//
// Ties:
//
//   - Entries move only on strictly smaller priorities; when both children of
//     a slot carry the same priority, sift-down follows the left child. There
//     is no FIFO or insertion-order guarantee among equal priorities.
//
// Errors (sentinel):
//
//   - ErrDuplicateItem: Add of an item that is already queued.
//   - ErrItemNotFound:  ChangePriority of an item that is not queued.
//   - ErrEmptyQueue:    GetSmallest or RemoveSmallest on an empty queue.
//   - ErrNaNPriority:   Add or ChangePriority with a NaN priority.
//
// Thread safety:
//
//   - IndexedMinPQ is not safe for concurrent use. Give each search its own
//     queue.
//
// Complexity:
//
//   - Add, ChangePriority, RemoveSmallest: O(log n) amortized.
//   - Contains, GetSmallest, Size: O(1).
//   - Space: O(n).
package minpq
