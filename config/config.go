// Package config reads the lvroute command's YAML configuration.
//
//	server:
//	  listen: ":5000"
//	map:
//	  file: berkeley.osm.pbf
//	  index: kdtree        # kdtree | naive | rtree
//	  cache-dir: .lvroute  # empty disables the snapshot cache
//	solve:
//	  timeout: 5s
//	log:
//	  level: info
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/logging"
	"github.com/katalvlaran/lvroute/spatial"
)

// Sentinel errors returned by Validate.
var (
	ErrMissingMapFile = errors.New("config: map.file is required")
	ErrBadListen      = errors.New("config: server.listen is required")
	ErrBadTimeout     = errors.New("config: solve.timeout must not be negative")
	ErrBadIndex       = errors.New("config: map.index must be kdtree, naive or rtree")
)

// Config is the full command configuration.
type Config struct {
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	Map struct {
		File     string       `yaml:"file"`
		Index    spatial.Kind `yaml:"index"`
		CacheDir string       `yaml:"cache-dir"`
	} `yaml:"map"`
	Solve struct {
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"solve"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns a configuration listening on :5000 with a KD-tree index,
// a five second solve timeout, info logging and no snapshot cache.
// The map file is left empty.
func Default() Config {
	var c Config
	c.Server.Listen = ":5000"
	c.Map.Index = spatial.KindKDTree
	c.Solve.Timeout = 5 * time.Second
	c.Log.Level = "info"

	return c
}

// Load reads path and validates the result.
func Load(path string) (Config, error) {
	c, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Read parses path over Default without validating, so callers can apply
// overrides first. Keys absent from the file keep their default values.
func Read(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return c, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Server.Listen == "" {
		return ErrBadListen
	}
	if c.Map.File == "" {
		return ErrMissingMapFile
	}
	switch c.Map.Index {
	case spatial.KindKDTree, spatial.KindNaive, spatial.KindRTree:
	default:
		return fmt.Errorf("%w: %q", ErrBadIndex, c.Map.Index)
	}
	if c.Solve.Timeout < 0 {
		return ErrBadTimeout
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}

	return nil
}
