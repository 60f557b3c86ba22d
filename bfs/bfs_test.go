package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/graph"
)

// diamond builds A→B, A→C, B→D, C→D, D→E plus an isolated Z→A edge.
func diamond(t *testing.T) *graph.AdjacencyGraph[string] {
	t.Helper()
	g := graph.NewAdjacencyGraph[string]()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"Z", "A"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 7))
	}

	return g
}

func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS[string](diamond(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2, "E": 3}, res.Depth)
	assert.Equal(t, "B", res.Parent["D"], "first discoverer wins")
	assert.False(t, res.Reached("Z"), "edges are followed forward only")

	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E"}, path)

	_, err = res.PathTo("Z")
	assert.Error(t, err)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := diamond(t)

	res, err := bfs.BFS[string](g, "A", bfs.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS[string](g, "A", bfs.WithFilterEdge(func(e graph.WeightedEdge[string]) bool {
		return e.To != "B"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "E"}, res.Order)

	_, err = bfs.BFS[string](g, "A", bfs.WithMaxDepth[string](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_UnknownStartIsVisited(t *testing.T) {
	res, err := bfs.BFS[string](diamond(t), "nowhere")
	require.NoError(t, err)
	assert.Equal(t, []string{"nowhere"}, res.Order)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	stop := errors.New("stop")
	res, err := bfs.BFS[string](diamond(t), "A", bfs.WithOnVisit(func(v string, _ int) error {
		if v == "C" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS[string](diamond(t), "A", bfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_InfiniteGraph relies on MaxDepth to stop on a procedural graph.
func TestBFS_InfiniteGraph(t *testing.T) {
	line := graph.FuncGraph[int]{NeighborsFunc: func(v int) []graph.WeightedEdge[int] {
		return []graph.WeightedEdge[int]{{From: v, To: v + 1, Weight: 1}}
	}}
	res, err := bfs.BFS[int](line, 0, bfs.WithMaxDepth[int](10))
	require.NoError(t, err)
	assert.Len(t, res.Order, 11)
	assert.Equal(t, 10, res.Depth[10])
}
