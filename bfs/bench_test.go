package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/gridgraph"
)

func BenchmarkBFSGrid(b *testing.B) {
	const n = 300
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			values[y][x] = 1
		}
	}
	g, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.Conn8})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS[gridgraph.Cell](g, gridgraph.Cell{}); err != nil {
			b.Fatal(err)
		}
	}
}
