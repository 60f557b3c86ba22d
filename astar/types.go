package astar

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvroute/minpq"
)

// ErrBadReference indicates that the admissibility reference does not match
// the solver's vertex type.
var ErrBadReference = errors.New("astar: admissibility reference has the wrong vertex type")

// admissibilityTolerance absorbs float rounding when comparing an estimate
// against a reference distance.
const admissibilityTolerance = 1e-9

// Outcome is the terminal state of a search.
type Outcome int

const (
	running Outcome = iota
	// Solved means a shortest path (under an admissible estimate) was found.
	Solved
	// Unsolvable means the goal is not reachable from the start.
	Unsolvable
	// Timeout means the time budget ran out before the goal was popped.
	Timeout
)

// String returns the upper-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "SOLVED"
	case Unsolvable:
		return "UNSOLVABLE"
	case Timeout:
		return "TIMEOUT"
	case running:
		return "RUNNING"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// MarshalText encodes the outcome as its name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ShortestPathsSolver is the read side of a finished search.
type ShortestPathsSolver[V comparable] interface {
	Outcome() Outcome
	Solution() []V
	SolutionWeight() float64
	NumStatesExplored() int
	ExplorationTime() time.Duration
}

// Options configures Solve.
type Options struct {
	Logger           *slog.Logger
	Clock            func() time.Time
	FrontierCapacity int
	// reference is a func(V) (float64, bool); typed in Solve.
	reference any
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithLogger sets the logger. A nil logger keeps the solver silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithClock replaces time.Now. Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("astar: nil clock")
	}

	return func(o *Options) {
		o.Clock = now
	}
}

// WithFrontierCapacity sets the initial frontier capacity.
// Panics with minpq.ErrBadCapacity if n < 1.
func WithFrontierCapacity(n int) Option {
	if n < 1 {
		panic(minpq.ErrBadCapacity.Error())
	}

	return func(o *Options) {
		o.FrontierCapacity = n
	}
}

// WithAdmissibilityCheck compares every popped vertex's estimate against
// ref, which returns the true remaining distance to the goal when known.
// Vertices whose estimate exceeds it are counted in
// Result.HeuristicViolations and logged at warn level.
//
// V must match the vertex type passed to Solve, else Solve panics with
// ErrBadReference.
func WithAdmissibilityCheck[V comparable](ref func(v V) (float64, bool)) Option {
	return func(o *Options) {
		o.reference = ref
	}
}

// DefaultOptions returns a silent solver on the wall clock with the
// frontier's default capacity and no admissibility check.
func DefaultOptions() Options {
	return Options{
		Logger:           nil,
		Clock:            time.Now,
		FrontierCapacity: minpq.DefaultInitialCapacity,
	}
}
