package spatial

import (
	"errors"

	"github.com/katalvlaran/lvroute/geom"
)

// ErrEmptyPointSet indicates a nearest query against an index with no points.
var ErrEmptyPointSet = errors.New("spatial: point set is empty")

// PointSet answers nearest-neighbor queries by Euclidean distance.
type PointSet interface {
	// Nearest returns the indexed point closest to (x, y).
	Nearest(x, y float64) (geom.Point, error)

	// Len returns the number of indexed points, duplicates included.
	Len() int
}

// Kind selects a PointSet implementation by name, e.g. from configuration.
type Kind string

const (
	// KindKDTree selects NewKDTree.
	KindKDTree Kind = "kdtree"
	// KindNaive selects NewNaivePointSet.
	KindNaive Kind = "naive"
	// KindRTree selects NewRTreePointSet.
	KindRTree Kind = "rtree"
)

// ErrUnknownKind indicates New was given a Kind it does not know.
var ErrUnknownKind = errors.New("spatial: unknown point set kind")

// New builds the PointSet named by kind over points.
func New(kind Kind, points []geom.Point) (PointSet, error) {
	switch kind {
	case KindKDTree:
		return NewKDTree(points), nil
	case KindNaive:
		return NewNaivePointSet(points), nil
	case KindRTree:
		return NewRTreePointSet(points), nil
	default:
		return nil, ErrUnknownKind
	}
}
