// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvroute/graph"
	"github.com/katalvlaran/lvroute/minpq"
)

// Solve searches for a shortest path from start to goal in g, giving up once
// timeout has elapsed. It never returns nil.
//
// Solve panics only if the frontier reports an invariant break, or if
// WithAdmissibilityCheck was given a reference for another vertex type.
func Solve[V comparable](g graph.WeightedGraph[V], start, goal V, timeout time.Duration, opts ...Option) *Result[V] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[V]{
		g:        g,
		goal:     goal,
		timeout:  timeout,
		options:  cfg,
		distTo:   make(map[V]float64),
		edgeTo:   make(map[V]V),
		frontier: minpq.New[V](minpq.WithInitialCapacity(cfg.FrontierCapacity)),
	}
	if cfg.reference != nil {
		ref, ok := cfg.reference.(func(V) (float64, bool))
		if !ok {
			panic(fmt.Errorf("%w: %T", ErrBadReference, cfg.reference))
		}
		r.reference = ref
		r.checked = make(map[V]struct{})
	}

	r.started = cfg.Clock()
	r.result.outcome = r.search(start)
	r.result.elapsed = cfg.Clock().Sub(r.started)
	r.log(start)

	return &r.result
}

// runner holds the mutable state for a single Solve execution.
type runner[V comparable] struct {
	g        graph.WeightedGraph[V]
	goal     V
	timeout  time.Duration
	options  Options
	started  time.Time
	distTo   map[V]float64
	edgeTo   map[V]V
	frontier *minpq.IndexedMinPQ[V]

	reference func(V) (float64, bool)
	checked   map[V]struct{}

	result Result[V]
}

func (r *runner[V]) search(start V) Outcome {
	r.distTo[start] = 0
	must(r.frontier.Add(start, r.g.EstimatedDistanceToGoal(start, r.goal)))

	for r.frontier.Size() > 0 {
		p, err := r.frontier.RemoveSmallest()
		must(err)
		r.result.explored++
		r.checkAdmissible(p)

		if p == r.goal {
			r.result.solution = r.pathTo(start)
			r.result.weight = r.distTo[r.goal]
			return Solved
		}
		if r.options.Clock().Sub(r.started) >= r.timeout {
			return Timeout
		}

		r.relax(p)
	}

	return Unsolvable
}

// relax improves distTo for every neighbor of p.
func (r *runner[V]) relax(p V) {
	base := r.distTo[p]
	for _, e := range r.g.Neighbors(p) {
		q := e.To
		candidate := base + e.Weight
		if old, ok := r.distTo[q]; ok && candidate >= old {
			continue
		}
		r.distTo[q] = candidate
		r.edgeTo[q] = p

		priority := candidate + r.g.EstimatedDistanceToGoal(q, r.goal)
		if r.frontier.Contains(q) {
			must(r.frontier.ChangePriority(q, priority))
		} else {
			must(r.frontier.Add(q, priority))
		}
	}
}

// pathTo walks edgeTo back from the goal.
func (r *runner[V]) pathTo(start V) []V {
	path := []V{r.goal}
	for v := r.goal; v != start; {
		v = r.edgeTo[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func (r *runner[V]) checkAdmissible(v V) {
	if r.reference == nil {
		return
	}
	if _, done := r.checked[v]; done {
		return
	}
	r.checked[v] = struct{}{}

	want, ok := r.reference(v)
	if !ok {
		return
	}
	if h := r.g.EstimatedDistanceToGoal(v, r.goal); h > want+admissibilityTolerance {
		r.result.violations++
		if r.options.Logger != nil {
			r.options.Logger.Warn("inadmissible heuristic",
				slog.Any("vertex", v),
				slog.Float64("estimate", h),
				slog.Float64("reference", want))
		}
	}
}

func (r *runner[V]) log(start V) {
	if r.options.Logger == nil {
		return
	}
	r.options.Logger.Debug("astar solve finished",
		slog.Any("start", start),
		slog.Any("goal", r.goal),
		slog.String("outcome", r.result.outcome.String()),
		slog.Int("explored", r.result.explored),
		slog.Duration("elapsed", r.result.elapsed))
}

// must turns a frontier error into a panic. The search loop never violates
// the queue's preconditions, so an error here means its index is corrupt.
func must(err error) {
	if err != nil {
		panic(fmt.Errorf("astar: frontier invariant broken: %w", err))
	}
}
