package graph

// FuncGraph is a procedural graph: edges are generated on demand.
// A nil NeighborsFunc yields no edges; a nil HeuristicFunc estimates 0.
type FuncGraph[V comparable] struct {
	NeighborsFunc func(v V) []WeightedEdge[V]
	HeuristicFunc Heuristic[V]
}

// Neighbors calls NeighborsFunc.
func (f FuncGraph[V]) Neighbors(v V) []WeightedEdge[V] {
	if f.NeighborsFunc == nil {
		return nil
	}

	return f.NeighborsFunc(v)
}

// EstimatedDistanceToGoal calls HeuristicFunc.
func (f FuncGraph[V]) EstimatedDistanceToGoal(v, goal V) float64 {
	if f.HeuristicFunc == nil {
		return 0
	}

	return f.HeuristicFunc(v, goal)
}

type heuristicGraph[V comparable] struct {
	WeightedGraph[V]
	h Heuristic[V]
}

func (g heuristicGraph[V]) EstimatedDistanceToGoal(v, goal V) float64 {
	return g.h(v, goal)
}

// WithHeuristic returns g with its estimate replaced by h.
// A nil h means ZeroHeuristic.
func WithHeuristic[V comparable](g WeightedGraph[V], h Heuristic[V]) WeightedGraph[V] {
	if h == nil {
		h = ZeroHeuristic[V]
	}

	return heuristicGraph[V]{WeightedGraph: g, h: h}
}
