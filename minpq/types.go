package minpq

import "errors"

// Sentinel errors returned by IndexedMinPQ.
var (
	// ErrDuplicateItem indicates Add was called with an item already in the queue.
	ErrDuplicateItem = errors.New("minpq: item already present")

	// ErrItemNotFound indicates ChangePriority was called with an absent item.
	ErrItemNotFound = errors.New("minpq: item not found")

	// ErrEmptyQueue indicates a peek or removal on an empty queue.
	ErrEmptyQueue = errors.New("minpq: queue is empty")

	// ErrNaNPriority indicates a NaN priority, which has no place in a total order.
	ErrNaNPriority = errors.New("minpq: priority is NaN")

	// ErrBadCapacity indicates a non-positive initial capacity.
	ErrBadCapacity = errors.New("minpq: initial capacity must be positive")
)

const (
	// DefaultInitialCapacity is the number of slots allocated by New when no
	// WithInitialCapacity option is given.
	DefaultInitialCapacity = 16

	// growLoadFactor is the occupancy above which Add doubles the slice.
	growLoadFactor = 0.75

	// shrinkLoadFactor is the occupancy below which RemoveSmallest halves the slice.
	shrinkLoadFactor = 0.25
)

// Options configures a new IndexedMinPQ.
type Options struct {
	// InitialCapacity is both the starting slot count and the floor below
	// which the queue never shrinks.
	InitialCapacity int
}

// Option is a functional option for New.
type Option func(*Options)

// WithInitialCapacity sets the starting capacity. Panics with ErrBadCapacity
// if n < 1, since no queue can be built from it.
func WithInitialCapacity(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadCapacity.Error())
		}
		o.InitialCapacity = n
	}
}

// DefaultOptions returns the options used by New when none are supplied.
func DefaultOptions() Options {
	return Options{InitialCapacity: DefaultInitialCapacity}
}
