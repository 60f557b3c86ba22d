// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/graph"
)

// queueItem pairs a vertex with its hop count.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	g     graph.WeightedGraph[V]
	opts  Options[V]
	ctx   context.Context
	queue []queueItem[V]
	head  int
	res   *Result[V]
}

// BFS runs breadth-first search on g from start. The start vertex is always
// visited, even if g does not otherwise know it.
func BFS[V comparable](g graph.WeightedGraph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[V]{
		g:    g,
		opts: o,
		ctx:  o.Ctx,
		res: &Result[V]{
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks v discovered at depth d.
func (w *walker[V]) enqueue(v V, d int) {
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, e := range w.g.Neighbors(item.v) {
			if !w.opts.FilterEdge(e) {
				continue
			}
			if _, seen := w.res.Depth[e.To]; seen {
				continue
			}
			w.res.Parent[e.To] = item.v
			w.enqueue(e.To, next)
		}
	}

	return nil
}
