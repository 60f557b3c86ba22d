package streetmap

import (
	"errors"
	"runtime"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvroute/spatial"
)

// Sentinel errors for street-map loading and queries.
var (
	// ErrUnknownFormat indicates a map file extension that is not recognised.
	ErrUnknownFormat = errors.New("streetmap: unknown map file format")

	// ErrNodeNotFound indicates a node ID that is not in the graph.
	ErrNodeNotFound = errors.New("streetmap: node not found")

	// ErrNoRoutableNodes indicates a graph without any edges.
	ErrNoRoutableNodes = errors.New("streetmap: map has no routable nodes")

	// ErrSnapshotNotFound indicates a cache miss in SnapshotStore.
	ErrSnapshotNotFound = errors.New("streetmap: snapshot not found")
)

// Node is one OSM node kept in the graph.
type Node struct {
	ID   int64
	Lon  float64
	Lat  float64
	Name string
}

// Format is an OSM encoding.
type Format int

const (
	// FormatXML is the .osm XML encoding.
	FormatXML Format = iota
	// FormatPBF is the .osm.pbf protocol buffer encoding.
	FormatPBF
)

// String returns "xml" or "pbf".
func (f Format) String() string {
	if f == FormatPBF {
		return "pbf"
	}

	return "xml"
}

// drivableHighways lists the highway=* values that become edges.
var drivableHighways = map[string]struct{}{
	"motorway":       {},
	"trunk":          {},
	"primary":        {},
	"secondary":      {},
	"tertiary":       {},
	"unclassified":   {},
	"residential":    {},
	"living_street":  {},
	"motorway_link":  {},
	"trunk_link":     {},
	"primary_link":   {},
	"secondary_link": {},
	"tertiary_link":  {},
}

// LoadOptions configures Load and Decode.
//
// IndexKind – spatial index used by Closest.
// Procs     – decoder goroutines for PBF input.
// Logger    – receives an info record with the loaded graph size; nil is silent.
type LoadOptions struct {
	IndexKind spatial.Kind
	Procs     int
	Logger    *slog.Logger
}

// LoadOption represents a functional option for configuring Load.
type LoadOption func(*LoadOptions)

// WithIndexKind selects the spatial index behind Closest.
func WithIndexKind(kind spatial.Kind) LoadOption {
	return func(o *LoadOptions) {
		o.IndexKind = kind
	}
}

// WithProcs sets the number of PBF decoder goroutines. Panics if n < 1.
func WithProcs(n int) LoadOption {
	if n < 1 {
		panic("streetmap: procs must be positive")
	}

	return func(o *LoadOptions) {
		o.Procs = n
	}
}

// WithLogger sets the load logger.
func WithLogger(l *slog.Logger) LoadOption {
	return func(o *LoadOptions) {
		o.Logger = l
	}
}

// DefaultLoadOptions returns a KD-tree index, one PBF decoder per CPU and
// no logging.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		IndexKind: spatial.KindKDTree,
		Procs:     runtime.GOMAXPROCS(0),
	}
}
