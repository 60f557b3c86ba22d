package streetmap

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/DataDog/zstd"
	"github.com/cockroachdb/pebble"

	"github.com/katalvlaran/lvroute/graph"
	"github.com/katalvlaran/lvroute/spatial"
)

// snapshot is the gob payload: the frozen node and edge lists.
type snapshot struct {
	Nodes []Node
	Edges []graph.WeightedEdge[int64]
}

// SnapshotStore caches parsed street graphs in a pebble database.
// It stores only graphs, never routes.
type SnapshotStore struct {
	db *pebble.DB
}

// OpenSnapshotStore opens (or creates) the store in dir. A nil opts uses
// pebble's defaults.
func OpenSnapshotStore(dir string, opts *pebble.Options) (*SnapshotStore, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("streetmap: open snapshot store: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

// Close releases the database.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// SnapshotKey identifies one version of a map file by absolute path, size
// and modification time.
func SnapshotKey(path string, info os.FileInfo) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	return abs + "|" + strconv.FormatInt(info.Size(), 10) + "|" + strconv.FormatInt(info.ModTime().UnixNano(), 10)
}

// Save stores g under key, replacing any previous snapshot.
func (s *SnapshotStore) Save(key string, g *Graph) error {
	snap := snapshot{Nodes: make([]Node, 0, len(g.nodes))}
	for _, id := range g.sortedIDs() {
		snap.Nodes = append(snap.Nodes, g.nodes[id])
		snap.Edges = append(snap.Edges, g.adjacency[id]...)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&snap); err != nil {
		return fmt.Errorf("streetmap: encode snapshot: %w", err)
	}
	compressed, err := zstd.Compress(nil, buf.Bytes())
	if err != nil {
		return fmt.Errorf("streetmap: compress snapshot: %w", err)
	}
	if err := s.db.Set([]byte(key), compressed, pebble.Sync); err != nil {
		return fmt.Errorf("streetmap: write snapshot: %w", err)
	}

	return nil
}

// Load restores the graph stored under key and rebuilds its spatial index.
// Returns ErrSnapshotNotFound on a miss.
func (s *SnapshotStore) Load(key string, kind spatial.Kind) (*Graph, error) {
	val, closer, err := s.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("streetmap: read snapshot: %w", err)
	}
	raw, err := zstd.Decompress(nil, val)
	closer.Close()
	if err != nil {
		return nil, fmt.Errorf("streetmap: decompress snapshot: %w", err)
	}

	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("streetmap: decode snapshot: %w", err)
	}

	b := NewBuilder()
	for _, n := range snap.Nodes {
		b.AddNode(n)
	}
	for _, e := range snap.Edges {
		b.addEdge(e)
	}

	return b.Build(kind)
}

// LoadCached returns the snapshot for path if one exists, else decodes the
// file with load and stores the result. The boolean reports a cache hit.
func (s *SnapshotStore) LoadCached(path string, kind spatial.Kind, load func() (*Graph, error)) (*Graph, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, fmt.Errorf("streetmap: stat map: %w", err)
	}
	key := SnapshotKey(path, info)

	g, err := s.Load(key, kind)
	if err == nil {
		return g, true, nil
	}
	if !errors.Is(err, ErrSnapshotNotFound) {
		return nil, false, err
	}

	if g, err = load(); err != nil {
		return nil, false, err
	}
	if err := s.Save(key, g); err != nil {
		return nil, false, err
	}

	return g, false, nil
}
