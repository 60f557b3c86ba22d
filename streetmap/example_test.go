package streetmap_test

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lvroute/streetmap"
)

func ExampleGraph_Route() {
	g, err := streetmap.Load(context.Background(), "testdata/campus.osm")
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := g.Route(-122.2580, 37.8711, -122.2580, 37.8699, time.Second)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Outcome(), res.Solution())
	// Output: SOLVED [4 5 1 2 3]
}

func ExampleBuilder() {
	b := streetmap.NewBuilder()
	b.AddNode(streetmap.Node{ID: 1, Lon: 13.40, Lat: 52.52})
	b.AddNode(streetmap.Node{ID: 2, Lon: 13.41, Lat: 52.52})
	b.AddWay([]int64{1, 2}, true, false)

	g, _ := b.Build("kdtree")
	id, _ := g.Closest(13.409, 52.521)
	fmt.Println(g.EdgeCount(), id, len(g.Neighbors(2)))
	// Output: 1 1 0
}
