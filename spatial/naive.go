package spatial

import "github.com/katalvlaran/lvroute/geom"

// NaivePointSet compares a query against every point.
type NaivePointSet struct {
	points []geom.Point
}

// NewNaivePointSet copies points into a new linear-scan index.
func NewNaivePointSet(points []geom.Point) *NaivePointSet {
	cp := make([]geom.Point, len(points))
	copy(cp, points)

	return &NaivePointSet{points: cp}
}

// Len returns the number of points.
func (s *NaivePointSet) Len() int {
	return len(s.points)
}

// Nearest returns the first point, in input order, at minimal distance from (x, y).
// Complexity: O(n).
func (s *NaivePointSet) Nearest(x, y float64) (geom.Point, error) {
	if len(s.points) == 0 {
		return geom.Point{}, ErrEmptyPointSet
	}

	goal := geom.NewPoint(x, y)
	best := s.points[0]
	bestDist := geom.SquaredDistance(goal, best)
	for _, p := range s.points[1:] {
		if d := geom.SquaredDistance(goal, p); d < bestDist {
			best, bestDist = p, d
		}
	}

	return best, nil
}
