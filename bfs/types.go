package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/graph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when BFS runs.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks for one BFS run.
type Options[V comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued. A non-nil error aborts.
	OnVisit func(v V, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	MaxDepth int

	// FilterEdge skips edges for which it returns false.
	FilterEdge func(e graph.WeightedEdge[V]) bool

	err error
}

// DefaultOptions returns a background context, no depth limit, no filter
// and a no-op hook.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:        context.Background(),
		OnVisit:    func(V, int) error { return nil },
		FilterEdge: func(graph.WeightedEdge[V]) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit hook; returning an error stops the search.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to d hops. d == 0 means no limit;
// d < 0 is an ErrOptionViolation.
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *Options[V]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge[V comparable](fn func(e graph.WeightedEdge[V]) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a traversal.
type Result[V comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent map[V]V
}

// Reached reports whether v was discovered.
func (r *Result[V]) Reached(v V) bool {
	_, ok := r.Depth[v]
	return ok
}

// PathTo reconstructs the fewest-hop path from the start to dest.
// Returns an error if dest was not reached.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := []V{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
