// SPDX-License-Identifier: MIT

package gridgraph

import (
	"math"

	"github.com/katalvlaran/lvroute/graph"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.LandThreshold < 0 {
		return nil, ErrBadLandThreshold
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]int, h)
	minCost := math.Inf(1)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range cells[y] {
			if v >= opts.LandThreshold && float64(v) < minCost {
				minCost = float64(v)
			}
		}
	}
	if math.IsInf(minCost, 1) {
		minCost = 0 // all walls
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		minCost:         minCost,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether c is inside the grid and not a wall.
func (gg *GridGraph) Passable(c Cell) bool {
	return gg.InBounds(c.X, c.Y) && gg.CellValues[c.Y][c.X] >= gg.LandThreshold
}

// Neighbors returns the moves out of c. Walls and out-of-bounds cells have none.
func (gg *GridGraph) Neighbors(c Cell) []graph.WeightedEdge[Cell] {
	if !gg.Passable(c) {
		return nil
	}

	out := make([]graph.WeightedEdge[Cell], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		to := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !gg.Passable(to) {
			continue
		}
		step := 1.0
		if d[0] != 0 && d[1] != 0 {
			// No corner cutting.
			if !gg.Passable(Cell{X: c.X + d[0], Y: c.Y}) || !gg.Passable(Cell{X: c.X, Y: c.Y + d[1]}) {
				continue
			}
			step = math.Sqrt2
		}
		out = append(out, graph.WeightedEdge[Cell]{
			From:   c,
			To:     to,
			Weight: float64(gg.CellValues[to.Y][to.X]) * step,
		})
	}

	return out
}

// EstimatedDistanceToGoal returns the grid distance from c to goal times the
// cheapest passable cell cost.
func (gg *GridGraph) EstimatedDistanceToGoal(c, goal Cell) float64 {
	dx := math.Abs(float64(c.X - goal.X))
	dy := math.Abs(float64(c.Y - goal.Y))
	if gg.Conn == Conn8 {
		return gg.minCost * (dx + dy + (math.Sqrt2-2)*math.Min(dx, dy))
	}

	return gg.minCost * (dx + dy)
}

// ToAdjacencyGraph converts the grid into an explicit directed graph with
// the same moves and heuristic. Every passable cell becomes a vertex.
// Complexity: O(W×H×d).
func (gg *GridGraph) ToAdjacencyGraph() *graph.AdjacencyGraph[Cell] {
	g := graph.NewAdjacencyGraph[Cell]()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := Cell{X: x, Y: y}
			if !gg.Passable(c) {
				continue
			}
			g.AddVertex(c)
			for _, e := range gg.Neighbors(c) {
				_ = g.AddEdge(e.From, e.To, e.Weight) // grid moves are loop-free and unique
			}
		}
	}
	g.SetHeuristic(gg.EstimatedDistanceToGoal)

	return g
}
