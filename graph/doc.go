// Package graph defines the weighted-graph contract the route solvers work
// against, plus two ready-made implementations.
//
// Contract:
//
//	type WeightedGraph[V comparable] interface {
//	    Neighbors(v V) []WeightedEdge[V]
//	    EstimatedDistanceToGoal(v, goal V) float64
//	}
//
// Neighbors must return a finite list; self-loops and parallel edges are
// allowed. Weights are expected to be non-negative. EstimatedDistanceToGoal
// is a non-negative estimate of the remaining path weight from v to goal and
// is assumed admissible (never larger than the true remaining distance). No
// solver verifies admissibility unless asked to.
//
// Implementations:
//
//   - AdjacencyGraph: explicit in-memory graph built with AddEdge /
//     AddUndirectedEdge. Vertices and adjacency are guarded by separate
//     sync.RWMutex values (muVert, muEdgeAdj), so many solves may read one
//     graph while another goroutine extends it.
//   - FuncGraph: procedural graph backed by two functions, for implicit
//     state spaces (puzzles, grids generated on the fly).
//   - WithHeuristic: wraps any graph with a different estimate, e.g.
//     ZeroHeuristic to turn A* into uniform-cost search.
//
// Options (GraphOption):
//
//	WithLoops()       self-loops allowed, else ErrLoopNotAllowed
//	WithMultiEdges()  parallel edges allowed, else ErrMultiEdgeNotAllowed
//
// Errors:
//
//	ErrNegativeWeight      - weight < 0 or NaN.
//	ErrLoopNotAllowed      - from == to when loops are disabled.
//	ErrMultiEdgeNotAllowed - second from→to edge when multi-edges are disabled.
//
// Complexity:
//
//	AddVertex, HasVertex   O(1)
//	AddEdge                O(deg(from)) without multi-edges, O(1) amortized with
//	Neighbors              O(deg(v)) (returns a copy)
package graph
