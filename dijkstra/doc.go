// Package dijkstra implements uniform-cost single-source shortest paths over
// any graph.WeightedGraph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPaths expands vertices in order of increasing distance from the
//     source and relaxes their outgoing edges. The goal estimate of the graph
//     is ignored, so the result is an exact reference for heuristic searches.
//   - Vertices are discovered through Neighbors, so implicit (procedural)
//     graphs work as long as the reachable part is finite or MaxDistance
//     bounds it.
//
// Options:
//
//   - WithReturnPath():            also return the predecessor map.
//   - WithMaxDistance(d):          do not settle vertices farther than d (d ≥ 0).
//   - WithInfEdgeThreshold(t):     edges with weight ≥ t are impassable (t > 0).
//
// Complexity:
//
//   - Time:  O((V + E) log V). The queue uses lazy decrease-key: an improved
//     distance pushes a fresh entry and stale entries are skipped on pop.
//   - Space: O(V + E) worst case for the heap.
//
// Errors:
//
//   - ErrNilGraph:        g is nil.
//   - ErrNegativeWeight:  a relaxed edge has a negative or NaN weight.
//   - ErrNoPath:          PathTo target was never reached.
//   - ErrBadMaxDistance, ErrBadInfThreshold: raised via panic by the option
//     constructors.
//
// Thread safety:
//
//   - ShortestPaths keeps all state in its own runner; it is safe to run
//     concurrently as long as the graph tolerates concurrent readers.
package dijkstra
