package astar

import "time"

// Result holds the outcome of one Solve call. Solution and SolutionWeight
// are empty/zero unless Outcome is Solved.
type Result[V comparable] struct {
	outcome    Outcome
	solution   []V
	weight     float64
	explored   int
	elapsed    time.Duration
	violations int
}

var _ ShortestPathsSolver[int] = (*Result[int])(nil)

// Outcome returns Solved, Unsolvable or Timeout.
func (r *Result[V]) Outcome() Outcome { return r.outcome }

// Solution returns the vertices from start to goal, both included.
// The slice is a copy.
func (r *Result[V]) Solution() []V {
	if r.outcome != Solved {
		return []V{}
	}
	out := make([]V, len(r.solution))
	copy(out, r.solution)

	return out
}

// SolutionWeight returns the total path weight, 0 unless Solved.
func (r *Result[V]) SolutionWeight() float64 {
	if r.outcome != Solved {
		return 0
	}

	return r.weight
}

// NumStatesExplored returns how many vertices were popped from the frontier.
func (r *Result[V]) NumStatesExplored() int { return r.explored }

// ExplorationTime returns the wall-clock time spent searching.
func (r *Result[V]) ExplorationTime() time.Duration { return r.elapsed }

// HeuristicViolations returns how many distinct popped vertices had an
// estimate above their reference distance. Always 0 without
// WithAdmissibilityCheck.
func (r *Result[V]) HeuristicViolations() int { return r.violations }
