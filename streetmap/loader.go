package streetmap

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"golang.org/x/exp/slog"
)

// FormatFromPath picks the encoding from the file extension:
// .pbf → FormatPBF, .osm or .xml → FormatXML.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pbf":
		return FormatPBF, nil
	case ".osm", ".xml":
		return FormatXML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load opens path and decodes it with the format implied by its extension.
func Load(ctx context.Context, path string, opts ...LoadOption) (*Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("streetmap: open map: %w", err)
	}
	defer f.Close()

	return Decode(ctx, f, format, opts...)
}

// Decode reads one OSM stream. Nodes must precede the ways that use them,
// which holds for both standard encodings.
func Decode(ctx context.Context, r io.Reader, format Format, opts ...LoadOption) (*Graph, error) {
	cfg := DefaultLoadOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var scanner osm.Scanner
	switch format {
	case FormatPBF:
		s := osmpbf.New(ctx, r, cfg.Procs)
		s.SkipRelations = true
		scanner = s
	case FormatXML:
		scanner = osmxml.New(ctx, r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
	defer scanner.Close()

	b := NewBuilder()
	var ways int
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			b.AddNode(Node{
				ID:   int64(o.ID),
				Lon:  o.Lon,
				Lat:  o.Lat,
				Name: o.Tags.Find("name"),
			})
		case *osm.Way:
			if _, ok := drivableHighways[o.Tags.Find("highway")]; !ok {
				continue
			}
			ids := make([]int64, len(o.Nodes))
			for i, wn := range o.Nodes {
				ids[i] = int64(wn.ID)
			}
			forward, backward := directions(o.Tags.Find("oneway"))
			b.AddWay(ids, forward, backward)
			ways++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("streetmap: decode %s: %w", format, err)
	}

	g, err := b.Build(cfg.IndexKind)
	if err != nil {
		return nil, err
	}
	if cfg.Logger != nil {
		cfg.Logger.Info("street map loaded",
			slog.String("format", format.String()),
			slog.Int("ways", ways),
			slog.Int("nodes", g.NodeCount()),
			slog.Int("edges", g.EdgeCount()))
	}

	return g, nil
}

// directions interprets the oneway tag.
func directions(oneway string) (forward, backward bool) {
	switch oneway {
	case "yes", "true", "1":
		return true, false
	case "-1", "reverse":
		return false, true
	default:
		return true, true
	}
}
