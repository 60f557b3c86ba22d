package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvroute/graph"
)

// line is the implicit graph 0 → 1 → 2 → … with unit weights.
func line() graph.FuncGraph[int] {
	return graph.FuncGraph[int]{
		NeighborsFunc: func(v int) []graph.WeightedEdge[int] {
			return []graph.WeightedEdge[int]{{From: v, To: v + 1, Weight: 1}}
		},
		HeuristicFunc: func(v, goal int) float64 { return float64(goal - v) },
	}
}

func TestFuncGraph(t *testing.T) {
	g := line()
	assert.Equal(t, []graph.WeightedEdge[int]{{From: 3, To: 4, Weight: 1}}, g.Neighbors(3))
	assert.Equal(t, 7.0, g.EstimatedDistanceToGoal(3, 10))

	var empty graph.FuncGraph[int]
	assert.Nil(t, empty.Neighbors(1))
	assert.Zero(t, empty.EstimatedDistanceToGoal(1, 5))
}

func TestWithHeuristic(t *testing.T) {
	g := graph.WithHeuristic[int](line(), graph.ZeroHeuristic[int])
	assert.Zero(t, g.EstimatedDistanceToGoal(0, 100))
	assert.Len(t, g.Neighbors(0), 1, "edges come from the wrapped graph")

	doubled := graph.WithHeuristic[int](line(), func(v, goal int) float64 { return 2 * float64(goal-v) })
	assert.Equal(t, 20.0, doubled.EstimatedDistanceToGoal(0, 10))

	assert.Zero(t, graph.WithHeuristic[int](line(), nil).EstimatedDistanceToGoal(0, 10))
}
