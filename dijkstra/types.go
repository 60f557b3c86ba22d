package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the requested target is unreachable.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures ShortestPaths.
//
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – vertices farther than this are neither settled nor recorded.
// InfEdgeThreshold – edges with weight ≥ this are skipped.
type Options struct {
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration at max. Panics with ErrBadMaxDistance
// if max is negative or NaN.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Panics with ErrBadInfThreshold if threshold is not positive.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns the defaults: no predecessor map, no distance cap,
// no impassable edges.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
