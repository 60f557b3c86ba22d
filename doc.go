// Package lvroute is an A* routing toolkit: an indexed priority queue, a
// nearest-point index and a best-first solver over any weighted graph, plus
// the street-map, grid and HTTP layers that put them to work.
//
// Packages
//
//	geom/        immutable 2D points, Euclidean and great-circle distance
//	minpq/       IndexedMinPQ: min-priority queue with Contains and ChangePriority
//	spatial/     PointSet: KD-tree, linear scan and R-tree nearest-point indexes
//	graph/       WeightedGraph contract, AdjacencyGraph and FuncGraph
//	astar/       Solve: A* with timeout, outcome and exploration statistics
//	dijkstra/    uniform-cost reference search
//	bfs/         hop-count reachability
//	gridgraph/   cost grids as graphs with octile/Manhattan heuristics
//	streetmap/   OpenStreetMap road graphs, Closest, Route, snapshot cache
//	config/      YAML configuration of the command
//	logging/     line-oriented slog handler
//	server/      chi REST API with Prometheus metrics
//	cmd/lvroute  cobra command: serve and route
//
// Quick start
//
//	g, _ := streetmap.Load(ctx, "berkeley.osm.pbf")
//	res, _ := g.Route(-122.2580, 37.8711, -122.2420, 37.8750, 5*time.Second)
//	fmt.Println(res.Outcome(), res.SolutionWeight(), res.NumStatesExplored())
//
// Library packages never log unless handed a *slog.Logger, and never start
// goroutines; the PBF decoder and the HTTP server are the only concurrent parts.
package lvroute
