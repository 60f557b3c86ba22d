package streetmap

import (
	"time"

	polyline "github.com/twpayne/go-polyline"

	"github.com/katalvlaran/lvroute/astar"
)

// Route snaps both coordinates to their closest routable nodes and runs A*
// between them. The returned error is only ever a snapping error; search
// outcomes are reported by the Result.
func (g *Graph) Route(startLon, startLat, goalLon, goalLat float64, timeout time.Duration, opts ...astar.Option) (*astar.Result[int64], error) {
	start, err := g.Closest(startLon, startLat)
	if err != nil {
		return nil, err
	}
	goal, err := g.Closest(goalLon, goalLat)
	if err != nil {
		return nil, err
	}

	return astar.Solve[int64](g, start, goal, timeout, opts...), nil
}

// Coordinates returns [lon, lat] pairs for the given node IDs.
func (g *Graph) Coordinates(ids []int64) ([][2]float64, error) {
	out := make([][2]float64, 0, len(ids))
	for _, id := range ids {
		n, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		out = append(out, [2]float64{n.Lon, n.Lat})
	}

	return out, nil
}

// EncodeRoute renders the nodes as a Google encoded polyline (lat, lon order,
// five decimal places).
func (g *Graph) EncodeRoute(ids []int64) (string, error) {
	coords := make([][]float64, 0, len(ids))
	for _, id := range ids {
		n, err := g.Node(id)
		if err != nil {
			return "", err
		}
		coords = append(coords, []float64{n.Lat, n.Lon})
	}

	return string(polyline.EncodeCoords(coords)), nil
}
