// Package spatial answers nearest-point queries over a static set of 2D points.
//
// Every index implements PointSet:
//
//	type PointSet interface {
//	    Nearest(x, y float64) (geom.Point, error)
//	    Len() int
//	}
//
// Implementations:
//
//   - KDTree: binary space partition built by sequential insertion. Even
//     depths split on X, odd depths on Y. Nearest descends the "good" side
//     first and visits the "bad" side only when the splitting line is closer
//     to the query than the best candidate so far. This pruning is what makes
//     the tree beat a linear scan.
//   - NaivePointSet: linear scan over every point. It is the correctness
//     oracle for the tree and the performance baseline, not the production path.
//   - RTreePointSet: R-tree backed index (github.com/dhconnelly/rtreego) for
//     callers that already work with rectangle trees.
//
// Tree shape:
//
//	The KD-tree is not median-balanced. Its shape, and therefore query cost,
//	depends on insertion order: sorted input degenerates into a list. Shuffle
//	points first if the source order is sorted.
//
// Ties (deterministic for a fixed tree shape):
//
//   - Insertion sends a point whose split coordinate equals the node's to the right.
//   - A query coordinate equal to the node's split coordinate searches right first.
//   - A candidate replaces the best only when strictly closer.
//
// Thread safety:
//
//	All indexes are immutable after construction and safe for concurrent readers.
//
// Errors:
//
//   - ErrEmptyPointSet: Nearest on an index built from zero points.
package spatial
