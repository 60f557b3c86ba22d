// SPDX-License-Identifier: MIT

package spatial

import (
	"github.com/katalvlaran/lvroute/geom"
)

// noChild marks an absent child slot in the node arena.
const noChild int32 = -1

// Split axes, alternating strictly with depth.
const (
	axisX uint8 = 0
	axisY uint8 = 1
)

// kdNode is one arena slot. Children are arena indices; the tree has no
// back-pointers, so each node exclusively owns its two subtrees.
type kdNode struct {
	point       geom.Point
	left, right int32
	axis        uint8
}

// KDTree is a 2D tree over a fixed point set. Build it with NewKDTree.
type KDTree struct {
	nodes []kdNode // nodes[0] is the root when len(nodes) > 0
}

// NewKDTree inserts points one by one in slice order. Duplicates are kept.
// Complexity: O(n·h) where h is the resulting height (O(n log n) for random order).
func NewKDTree(points []geom.Point) *KDTree {
	t := &KDTree{nodes: make([]kdNode, 0, len(points))}
	for _, p := range points {
		t.insert(p)
	}

	return t
}

// Len returns the number of points in the tree.
func (t *KDTree) Len() int {
	return len(t.nodes)
}

// insert walks from the root to a free child slot and links a new node there.
func (t *KDTree) insert(p geom.Point) {
	idx := int32(len(t.nodes))
	if idx == 0 {
		t.nodes = append(t.nodes, kdNode{point: p, left: noChild, right: noChild, axis: axisX})
		return
	}

	cur := int32(0)
	for {
		n := &t.nodes[cur]
		var slot *int32
		if splitValue(n.point, n.axis) > splitValue(p, n.axis) {
			slot = &n.left
		} else {
			slot = &n.right
		}
		if *slot == noChild {
			*slot = idx
			t.nodes = append(t.nodes, kdNode{point: p, left: noChild, right: noChild, axis: n.axis ^ 1})
			return
		}
		cur = *slot
	}
}

// Nearest returns the point closest to (x, y).
// Returns ErrEmptyPointSet if the tree has no points.
// Complexity: O(log n) expected for random insertion order, O(n) worst case.
func (t *KDTree) Nearest(x, y float64) (geom.Point, error) {
	if len(t.nodes) == 0 {
		return geom.Point{}, ErrEmptyPointSet
	}

	goal := geom.NewPoint(x, y)
	best := int32(0)
	bestDist := geom.SquaredDistance(goal, t.nodes[0].point)
	t.nearest(0, goal, &best, &bestDist)

	return t.nodes[best].point, nil
}

// nearest updates best with any closer point in the subtree rooted at cur.
func (t *KDTree) nearest(cur int32, goal geom.Point, best *int32, bestDist *float64) {
	if cur == noChild {
		return
	}
	n := &t.nodes[cur]

	if d := geom.SquaredDistance(goal, n.point); d < *bestDist {
		*best, *bestDist = cur, d
	}

	good, bad := n.right, n.left
	if splitValue(n.point, n.axis) > splitValue(goal, n.axis) {
		good, bad = n.left, n.right
	}

	t.nearest(good, goal, best, bestDist)

	// Closest possible point on the bad side lies on the splitting line,
	// at the query's own value for the other axis.
	if geom.SquaredDistance(goal, projectOntoSplit(goal, n.point, n.axis)) < *bestDist {
		t.nearest(bad, goal, best, bestDist)
	}
}

// splitValue returns the coordinate of p used by a node with the given axis.
func splitValue(p geom.Point, axis uint8) float64 {
	if axis == axisX {
		return p.X()
	}

	return p.Y()
}

// projectOntoSplit fixes goal's split coordinate to the node's value.
func projectOntoSplit(goal, node geom.Point, axis uint8) geom.Point {
	if axis == axisX {
		return geom.NewPoint(node.X(), goal.Y())
	}

	return geom.NewPoint(goal.X(), node.Y())
}
