// SPDX-License-Identifier: MIT

package graph

import (
	"math"
	"sync"
)

// AdjacencyGraph is an explicit directed graph stored as per-vertex edge lists.
//
// muVert guards vertices, order and heuristic; muEdgeAdj guards adjacency and
// edgeCount. Lock order is always muVert before muEdgeAdj.
type AdjacencyGraph[V comparable] struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	allowMulti bool
	allowLoops bool

	vertices  map[V]struct{}
	order     []V // insertion order, for deterministic Vertices()
	heuristic Heuristic[V]

	adjacency map[V][]WeightedEdge[V]
	edgeCount int
}

// NewAdjacencyGraph creates an empty graph. By default loops and parallel
// edges are rejected and the heuristic is ZeroHeuristic.
// Complexity: O(1).
func NewAdjacencyGraph[V comparable](opts ...GraphOption) *AdjacencyGraph[V] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &AdjacencyGraph[V]{
		allowMulti: cfg.allowMulti,
		allowLoops: cfg.allowLoops,
		vertices:   make(map[V]struct{}),
		heuristic:  ZeroHeuristic[V],
		adjacency:  make(map[V][]WeightedEdge[V]),
	}
}

// AddVertex registers v. Adding an existing vertex is a no-op.
func (g *AdjacencyGraph[V]) AddVertex(v V) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.addVertexLocked(v)
}

func (g *AdjacencyGraph[V]) addVertexLocked(v V) {
	if _, ok := g.vertices[v]; ok {
		return
	}
	g.vertices[v] = struct{}{}
	g.order = append(g.order, v)
}

// HasVertex reports whether v was added, explicitly or as an edge endpoint.
func (g *AdjacencyGraph[V]) HasVertex(v V) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[v]

	return ok
}

// Vertices returns all vertices in insertion order.
// Complexity: O(V).
func (g *AdjacencyGraph[V]) Vertices() []V {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *AdjacencyGraph[V]) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of directed edges. An undirected edge counts twice.
func (g *AdjacencyGraph[V]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// AddEdge adds the directed edge from→to, creating missing endpoints.
//
// Steps:
//  1. Validate weight and loops.
//  2. Ensure both endpoints exist.
//  3. Under muEdgeAdj, check the multi-edge constraint and append.
func (g *AdjacencyGraph[V]) AddEdge(from, to V, weight float64) error {
	if weight < 0 || math.IsNaN(weight) {
		return ErrNegativeWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.muVert.Lock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	return g.linkLocked(from, to, weight)
}

// AddUndirectedEdge adds from→to and to→from with the same weight. A
// self-loop is stored once. Either both directions are added or neither.
func (g *AdjacencyGraph[V]) AddUndirectedEdge(a, b V, weight float64) error {
	if weight < 0 || math.IsNaN(weight) {
		return ErrNegativeWeight
	}
	if a == b && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.muVert.Lock()
	g.addVertexLocked(a)
	g.addVertexLocked(b)
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if a != b && !g.allowMulti && (g.hasEdgeLocked(a, b) || g.hasEdgeLocked(b, a)) {
		return ErrMultiEdgeNotAllowed
	}
	if err := g.linkLocked(a, b, weight); err != nil {
		return err
	}
	if a != b {
		return g.linkLocked(b, a, weight)
	}

	return nil
}

func (g *AdjacencyGraph[V]) linkLocked(from, to V, weight float64) error {
	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return ErrMultiEdgeNotAllowed
	}
	g.adjacency[from] = append(g.adjacency[from], WeightedEdge[V]{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

func (g *AdjacencyGraph[V]) hasEdgeLocked(from, to V) bool {
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// HasEdge reports whether at least one edge from→to exists.
func (g *AdjacencyGraph[V]) HasEdge(from, to V) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// Neighbors returns a copy of v's outgoing edges in insertion order.
// Unknown vertices yield nil.
func (g *AdjacencyGraph[V]) Neighbors(v V) []WeightedEdge[V] {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	edges := g.adjacency[v]
	if len(edges) == 0 {
		return nil
	}
	out := make([]WeightedEdge[V], len(edges))
	copy(out, edges)

	return out
}

// SetHeuristic replaces the goal estimate. A nil h restores ZeroHeuristic.
func (g *AdjacencyGraph[V]) SetHeuristic(h Heuristic[V]) {
	if h == nil {
		h = ZeroHeuristic[V]
	}
	g.muVert.Lock()
	g.heuristic = h
	g.muVert.Unlock()
}

// EstimatedDistanceToGoal evaluates the current heuristic.
func (g *AdjacencyGraph[V]) EstimatedDistanceToGoal(v, goal V) float64 {
	g.muVert.RLock()
	h := g.heuristic
	g.muVert.RUnlock()

	return h(v, goal)
}
