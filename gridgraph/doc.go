// Package gridgraph treats a rectangular grid of integer cell costs as a
// weighted graph that route solvers can search directly.
//
// What:
//
//   - GridGraph wraps a [][]int grid. Cells with value < LandThreshold are
//     walls; every other cell is passable and its value is the cost of
//     stepping onto it.
//   - Moves follow Conn4 (N, E, S, W) or Conn8 (plus diagonals). A move
//     weighs value(target) × step length, where diagonal steps have length √2.
//     Diagonal moves may not cut a wall corner: both orthogonal cells beside
//     the diagonal must be passable.
//   - EstimatedDistanceToGoal is the Manhattan (Conn4) or octile (Conn8)
//     distance scaled by the cheapest passable cell, which never overestimates.
//   - ConnectedComponents groups passable cells into islands, useful for
//     picking start/goal pairs that are known to be (un)reachable.
//   - ToAdjacencyGraph materializes the grid as a graph.AdjacencyGraph.
//
// Complexity:
//
//   - Neighbors:              O(d), d = 4 or 8.
//   - ConnectedComponents:    O(W×H×d), Memory: O(W×H).
//   - ToAdjacencyGraph:       O(W×H×d), Memory: O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid:        input grid has no rows or no columns.
//   - ErrNonRectangular:   rows have differing lengths.
//   - ErrBadLandThreshold: LandThreshold < 0 would admit negative costs.
//
// A GridGraph is immutable once built and safe for concurrent readers.
package gridgraph
