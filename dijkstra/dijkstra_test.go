package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/graph"
)

// triangle: A-B(1), B-C(2), A-C(5), undirected.
func triangle(t *testing.T) *graph.AdjacencyGraph[string] {
	t.Helper()
	g := graph.NewAdjacencyGraph[string]()
	require.NoError(t, g.AddUndirectedEdge("A", "B", 1))
	require.NoError(t, g.AddUndirectedEdge("B", "C", 2))
	require.NoError(t, g.AddUndirectedEdge("A", "C", 5))

	return g
}

func TestShortestPaths_NilGraph(t *testing.T) {
	_, _, err := dijkstra.ShortestPaths[string](nil, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPaths_NegativeWeight(t *testing.T) {
	g := graph.FuncGraph[int]{NeighborsFunc: func(v int) []graph.WeightedEdge[int] {
		if v == 0 {
			return []graph.WeightedEdge[int]{{From: 0, To: 1, Weight: -5}}
		}
		return nil
	}}
	_, _, err := dijkstra.ShortestPaths[int](g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestShortestPaths_Triangle(t *testing.T) {
	dist, prev, err := dijkstra.ShortestPaths[string](triangle(t), "A")
	require.NoError(t, err)
	assert.Nil(t, prev, "prev is nil without WithReturnPath")
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3}, dist)
}

func TestShortestPaths_WithPath(t *testing.T) {
	g := graph.NewAdjacencyGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "B", 1))
	require.NoError(t, g.AddEdge("B", "D", 3))
	require.NoError(t, g.AddEdge("C", "D", 5))

	dist, prev, err := dijkstra.ShortestPaths[string](g, "A", dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 5.0, dist["D"])

	path, err := dijkstra.PathTo(prev, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path, "first predecessor wins the 2 == 1+1 tie")

	self, err := dijkstra.PathTo(prev, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, self)
}

func TestShortestPaths_Unreachable(t *testing.T) {
	g := graph.NewAdjacencyGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	g.AddVertex("Z")

	dist, prev, err := dijkstra.ShortestPaths[string](g, "A", dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, math.IsInf(dijkstra.Distance(dist, "Z"), 1))

	_, err = dijkstra.PathTo(prev, "A", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPaths_MaxDistance(t *testing.T) {
	// Chain 0 → 1 → 2 → … with unit weights, unbounded.
	chain := graph.FuncGraph[int]{NeighborsFunc: func(v int) []graph.WeightedEdge[int] {
		return []graph.WeightedEdge[int]{{From: v, To: v + 1, Weight: 1}}
	}}
	dist, _, err := dijkstra.ShortestPaths[int](chain, 0, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{0: 0, 1: 1, 2: 2, 3: 3}, dist)
}

func TestShortestPaths_InfEdgeThreshold(t *testing.T) {
	dist, _, err := dijkstra.ShortestPaths[string](triangle(t), "A", dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist["B"])
	assert.True(t, math.IsInf(dijkstra.Distance(dist, "C"), 1), "both edges into C are walls")
}

func TestShortestPaths_SelfLoop(t *testing.T) {
	g := graph.NewAdjacencyGraph[string](graph.WithLoops())
	require.NoError(t, g.AddEdge("A", "A", 4))
	require.NoError(t, g.AddEdge("A", "B", 1))
	dist, _, err := dijkstra.ShortestPaths[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1}, dist)
}

func TestOptions_Panics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(math.NaN()) })
}
