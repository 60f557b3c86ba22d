// Package streetmap turns an OpenStreetMap extract into a routable
// graph.WeightedGraph keyed by OSM node ID.
//
// Overview:
//
//   - Load / Decode read .osm XML (osmxml) or .osm.pbf (osmpbf) data. Nodes
//     are kept when they lie on a drivable highway way or carry a name.
//   - Every pair of consecutive way nodes becomes an edge in both
//     directions, or forward only for oneway=yes (backward for oneway=-1).
//     Weights are great-circle distances in meters.
//   - EstimatedDistanceToGoal is the great-circle distance between the two
//     nodes, which never exceeds the length of any road path.
//   - Closest maps a (lon, lat) query to the nearest node that has at least
//     one outgoing edge, through a spatial.PointSet chosen at build time.
//   - Route combines Closest and astar.Solve; EncodeRoute renders a path as
//     a Google encoded polyline.
//   - SnapshotStore caches parsed graphs in pebble, gob-encoded and
//     zstd-compressed, keyed by source file name, size and mtime.
//
// Coordinates:
//
//   - Points in the spatial index are (lon, lat): X is longitude, Y is
//     latitude, matching geom.GreatCircleDistance. Planar nearest-neighbor
//     over degrees is an approximation that is good enough for snapping.
//   - When several routable nodes share one coordinate, the lowest ID owns it.
//
// Errors:
//
//   - ErrUnknownFormat:    file extension is neither .osm/.xml nor .pbf.
//   - ErrNodeNotFound:     Node was asked for an ID the graph does not hold.
//   - ErrNoRoutableNodes:  Closest on a graph without edges.
//   - ErrSnapshotNotFound: no cached snapshot under the key.
//
// Thread safety:
//
//   - A Graph is immutable after Build and safe for concurrent solves.
//     Builder is not safe for concurrent use.
package streetmap
