// SPDX-License-Identifier: MIT

// Package geom provides the immutable 2D Point used by the spatial indexes
// and the distance helpers shared by the routing packages.
//
// Two metrics live here:
//
//   - Distance: plain Euclidean distance in the plane. Used by the KD-tree,
//     the naive point set and any planar graph (grids, synthetic graphs).
//   - GreatCircleDistance: metres on the WGS84 mean sphere between two
//     (lon, lat) pairs. Used by street-map graphs for edge weights and as an
//     admissible A* heuristic.
package geom

import (
	"math"
	"strconv"

	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius used by GreatCircleDistance.
const EarthRadiusMeters = 6371008.8

// Point is an immutable coordinate pair. Fields are unexported so a Point
// can only be produced by NewPoint; the zero value is the origin.
//
// Point is comparable and may be used as a map key.
type Point struct {
	x, y float64
}

// NewPoint returns the Point (x, y).
func NewPoint(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the first coordinate.
func (p Point) X() float64 { return p.x }

// Y returns the second coordinate.
func (p Point) Y() float64 { return p.y }

// String renders the point as "(x, y)".
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.x, 'g', -1, 64) + ", " + strconv.FormatFloat(p.y, 'g', -1, 64) + ")"
}

// Distance returns the Euclidean distance between a and b.
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// Comparisons between candidates may use it to skip the square root.
func SquaredDistance(a, b Point) float64 {
	dx := a.x - b.x
	dy := a.y - b.y

	return dx*dx + dy*dy
}

// GreatCircleDistance returns the distance in metres between two points
// given as (lon, lat) degrees, i.e. X is longitude and Y is latitude.
func GreatCircleDistance(a, b Point) float64 {
	la := s2.LatLngFromDegrees(a.y, a.x)
	lb := s2.LatLngFromDegrees(b.y, b.x)

	return la.Distance(lb).Radians() * EarthRadiusMeters
}
