// SPDX-License-Identifier: MIT

package streetmap

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvroute/geom"
	"github.com/katalvlaran/lvroute/graph"
	"github.com/katalvlaran/lvroute/spatial"
)

// Graph is an immutable street network. It implements graph.WeightedGraph[int64].
type Graph struct {
	nodes     map[int64]Node
	adjacency map[int64][]graph.WeightedEdge[int64]
	edgeCount int

	index   spatial.PointSet
	byPoint map[geom.Point]int64
}

var _ graph.WeightedGraph[int64] = (*Graph)(nil)

// Neighbors returns the outgoing edges of id. The slice is shared and must
// not be modified.
func (g *Graph) Neighbors(id int64) []graph.WeightedEdge[int64] {
	return g.adjacency[id]
}

// EstimatedDistanceToGoal returns the great-circle distance in meters
// between two nodes, or 0 if either is unknown.
func (g *Graph) EstimatedDistanceToGoal(id, goal int64) float64 {
	a, ok := g.nodes[id]
	if !ok {
		return 0
	}
	b, ok := g.nodes[goal]
	if !ok {
		return 0
	}

	return distance(a, b)
}

// Node returns the node with the given ID.
func (g *Graph) Node(id int64) (Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n, nil
}

// NodeCount returns the number of nodes, routable or named.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// RoutableCount returns how many distinct coordinates Closest can return.
func (g *Graph) RoutableCount() int { return g.index.Len() }

// Closest returns the ID of the routable node nearest to (lon, lat).
// Complexity: that of the configured spatial index.
func (g *Graph) Closest(lon, lat float64) (int64, error) {
	if g.index.Len() == 0 {
		return 0, ErrNoRoutableNodes
	}
	p, err := g.index.Nearest(lon, lat)
	if err != nil {
		return 0, err
	}

	return g.byPoint[p], nil
}

// sortedIDs returns all node IDs in ascending order.
func (g *Graph) sortedIDs() []int64 {
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

func distance(a, b Node) float64 {
	return geom.GreatCircleDistance(geom.NewPoint(a.Lon, a.Lat), geom.NewPoint(b.Lon, b.Lat))
}

// Builder accumulates nodes and ways before Build freezes them into a Graph.
type Builder struct {
	nodes map[int64]Node
	edges []graph.WeightedEdge[int64]
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{nodes: make(map[int64]Node)}
}

// AddNode records n. A later node with the same ID replaces it.
func (b *Builder) AddNode(n Node) {
	b.nodes[n.ID] = n
}

// AddWay links consecutive node IDs. Segments touching an unknown node are
// skipped. forward and backward select the directions that get an edge.
func (b *Builder) AddWay(ids []int64, forward, backward bool) {
	for i := 1; i < len(ids); i++ {
		from, okFrom := b.nodes[ids[i-1]]
		to, okTo := b.nodes[ids[i]]
		if !okFrom || !okTo || from.ID == to.ID {
			continue
		}
		w := distance(from, to)
		if forward {
			b.edges = append(b.edges, graph.WeightedEdge[int64]{From: from.ID, To: to.ID, Weight: w})
		}
		if backward {
			b.edges = append(b.edges, graph.WeightedEdge[int64]{From: to.ID, To: from.ID, Weight: w})
		}
	}
}

// addEdge records a pre-weighted edge, as read back from a snapshot.
func (b *Builder) addEdge(e graph.WeightedEdge[int64]) {
	b.edges = append(b.edges, e)
}

// Build drops nodes that are neither on an edge nor named, indexes every
// node with an outgoing edge and returns the frozen Graph.
func (b *Builder) Build(kind spatial.Kind) (*Graph, error) {
	g := &Graph{
		nodes:     make(map[int64]Node),
		adjacency: make(map[int64][]graph.WeightedEdge[int64]),
		byPoint:   make(map[geom.Point]int64),
		edgeCount: len(b.edges),
	}

	onEdge := make(map[int64]struct{}, len(b.edges))
	for _, e := range b.edges {
		g.adjacency[e.From] = append(g.adjacency[e.From], e)
		onEdge[e.From] = struct{}{}
		onEdge[e.To] = struct{}{}
	}
	for id, n := range b.nodes {
		if _, ok := onEdge[id]; ok || n.Name != "" {
			g.nodes[id] = n
		}
	}

	var points []geom.Point
	for _, id := range g.sortedIDs() {
		if len(g.adjacency[id]) == 0 {
			continue
		}
		n := g.nodes[id]
		p := geom.NewPoint(n.Lon, n.Lat)
		if _, taken := g.byPoint[p]; taken {
			continue
		}
		g.byPoint[p] = id
		points = append(points, p)
	}

	index, err := spatial.New(kind, points)
	if err != nil {
		return nil, err
	}
	g.index = index

	return g, nil
}
