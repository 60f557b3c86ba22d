package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/gridgraph"
)

func sizes(comps [][]gridgraph.Cell) []int {
	out := make([]int, len(comps))
	for i, c := range comps {
		out[i] = len(c)
	}
	sort.Ints(out)

	return out
}

// Grid (1 = land, 0 = water):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
func TestConnectedComponents_Simple4(t *testing.T) {
	gg := newGrid(t, [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.Equal(t, []int{2, 4}, sizes(comps))
	assert.Equal(t, gridgraph.Cell{X: 1, Y: 0}, comps[0][0], "first component starts at the first land cell")
}

func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	assert.Equal(t, []int{9}, sizes(newGrid(t, grid, gridgraph.Conn8).ConnectedComponents()))
	assert.Len(t, newGrid(t, grid, gridgraph.Conn4).ConnectedComponents(), 9)
}

func TestConnectedComponents_Threshold(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{5, 2, 5}}, gridgraph.GridOptions{LandThreshold: 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, sizes(gg.ConnectedComponents()))
}

func TestConnectedComponents_AllWater(t *testing.T) {
	assert.Empty(t, newGrid(t, [][]int{{0, 0}, {0, 0}}, gridgraph.Conn8).ConnectedComponents())
}
