// SPDX-License-Identifier: MIT

package graph

import "errors"

// Sentinel errors for AdjacencyGraph mutations.
var (
	// ErrNegativeWeight indicates a negative or NaN edge weight.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")
)

// WeightedEdge is a directed edge From→To carrying a non-negative Weight.
type WeightedEdge[V comparable] struct {
	From   V
	To     V
	Weight float64
}

// WeightedGraph is the read-only view a route solver needs.
type WeightedGraph[V comparable] interface {
	// Neighbors returns the outgoing edges of v. Unknown vertices have none.
	Neighbors(v V) []WeightedEdge[V]

	// EstimatedDistanceToGoal returns a non-negative, admissible estimate of
	// the remaining path weight from v to goal.
	EstimatedDistanceToGoal(v, goal V) float64
}

// Heuristic estimates the remaining path weight from v to goal.
type Heuristic[V comparable] func(v, goal V) float64

// ZeroHeuristic always returns 0. It is admissible for every graph.
func ZeroHeuristic[V comparable](_, _ V) float64 {
	return 0
}

// GraphOption configures an AdjacencyGraph before creation.
type GraphOption func(c *graphConfig)

type graphConfig struct {
	allowMulti bool
	allowLoops bool
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(c *graphConfig) { c.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}
