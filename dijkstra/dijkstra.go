// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/graph"
)

// ShortestPaths computes the minimum distance from source to every vertex
// reachable within MaxDistance.
//
// Returns:
//
//   - dist: vertex → minimal distance. Vertices never reached are absent;
//     use Distance for a +Inf default.
//   - prev: vertex → predecessor on one shortest path, nil unless
//     WithReturnPath was given. The source has no entry.
//   - err:  ErrNilGraph or a wrapped ErrNegativeWeight.
//
// Ties between equal tentative distances keep the first predecessor found.
func ShortestPaths[V comparable](g graph.WeightedGraph[V], source V, opts ...Option) (map[V]float64, map[V]V, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	r := &runner[V]{
		g:       g,
		options: cfg,
		dist:    make(map[V]float64),
		prev:    make(map[V]V),
		visited: make(map[V]bool),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// Distance returns dist[v], or +Inf when v was not reached.
func Distance[V comparable](dist map[V]float64, v V) float64 {
	if d, ok := dist[v]; ok {
		return d
	}

	return math.Inf(1)
}

// PathTo rebuilds the path source → … → target from a predecessor map.
// Returns ErrNoPath if target has no recorded predecessor and is not source.
// Complexity: O(path length).
func PathTo[V comparable](prev map[V]V, source, target V) ([]V, error) {
	path := []V{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNoPath, target)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single ShortestPaths execution.
type runner[V comparable] struct {
	g       graph.WeightedGraph[V]
	options Options
	dist    map[V]float64
	prev    map[V]V
	visited map[V]bool
	pq      nodePQ[V]
}

func (r *runner[V]) init(source V) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[V]{id: source, dist: 0})
}

// process pops the closest unsettled vertex until the heap is empty or the
// smallest distance exceeds MaxDistance.
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[V])
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distance of every neighbor of the settled vertex u.
func (r *runner[V]) relax(u V) error {
	for _, e := range r.g.Neighbors(u) {
		w := e.Weight
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, e.From, e.To, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		v := e.To
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if old, ok := r.dist[v]; ok && newDist >= old {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem[V]{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and the distance it was pushed with.
type nodeItem[V comparable] struct {
	id   V
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ[V comparable] []*nodeItem[V]

func (pq nodePQ[V]) Len() int            { return len(pq) }
func (pq nodePQ[V]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[V]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[V]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[V])) }

func (pq *nodePQ[V]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
