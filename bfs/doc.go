// Package bfs provides breadth-first search over any graph.WeightedGraph,
// ignoring edge weights: it answers "what is reachable, and in how many hops".
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  vertex → hops from start
//   - Parent: vertex → predecessor in the BFS tree
//   - Hooks: OnVisit (may abort with an error).
//   - Edge filtering via WithFilterEdge; depth limiting via WithMaxDepth.
//
// Why
//
//	A* ends UNSOLVABLE only after it has dequeued every vertex reachable from
//	the start, so the reachable set computed here is the reference for that
//	outcome. It also checks street-map connectivity.
//
// Determinism
//
//	Neighbors are enqueued in the order Neighbors returns them, so the visit
//	sequence is reproducible for graphs with deterministic adjacency.
//
// Complexity (V = reachable vertices, E = their outgoing edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()           if the context is cancelled mid-search.
//   - Wrapped OnVisit errors.
package bfs
