package spatial

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/lvroute/geom"
)

const (
	// rtreeTolerance is the half-side of the box stored for each point.
	rtreeTolerance = 1e-9
	// rtreeCandidates is how many boxes are re-ranked by exact distance.
	rtreeCandidates = 8
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
)

// pointEntry adapts a geom.Point to rtreego.Spatial.
type pointEntry struct {
	point    geom.Point
	location rtreego.Point
}

// Bounds returns a tiny box centred on the point.
func (e *pointEntry) Bounds() rtreego.Rect {
	return e.location.ToRect(rtreeTolerance)
}

// RTreePointSet stores each point as a degenerate box in an R-tree.
type RTreePointSet struct {
	tree *rtreego.Rtree
}

// NewRTreePointSet bulk-loads points into a 2D R-tree.
func NewRTreePointSet(points []geom.Point) *RTreePointSet {
	objs := make([]rtreego.Spatial, 0, len(points))
	for _, p := range points {
		objs = append(objs, &pointEntry{point: p, location: rtreego.Point{p.X(), p.Y()}})
	}

	return &RTreePointSet{tree: rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren, objs...)}
}

// Len returns the number of points.
func (s *RTreePointSet) Len() int {
	return s.tree.Size()
}

// Nearest asks the R-tree for the closest boxes and re-ranks them by exact
// point distance, so the box tolerance cannot change the answer.
func (s *RTreePointSet) Nearest(x, y float64) (geom.Point, error) {
	if s.tree.Size() == 0 {
		return geom.Point{}, ErrEmptyPointSet
	}

	goal := geom.NewPoint(x, y)
	k := min(rtreeCandidates, s.tree.Size())
	var (
		best     geom.Point
		bestDist float64
		found    bool
	)
	for _, obj := range s.tree.NearestNeighbors(k, rtreego.Point{x, y}) {
		e, ok := obj.(*pointEntry)
		if !ok || e == nil {
			continue
		}
		if d := geom.SquaredDistance(goal, e.point); !found || d < bestDist {
			best, bestDist, found = e.point, d, true
		}
	}
	if !found {
		return geom.Point{}, ErrEmptyPointSet
	}

	return best, nil
}
