package main

import (
	"context"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/logging"
	"github.com/katalvlaran/lvroute/streetmap"
)

const (
	flagConfig   = "config"
	flagMap      = "map"
	flagProgress = "progress"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:              "lvroute",
		Short:            "lvroute answers A* shortest-route queries over an OpenStreetMap extract.",
		TraverseChildren: true,
		SilenceUsage:     true,
	}
	root.PersistentFlags().StringP(flagConfig, "c", "lvroute.yaml", "path to the YAML configuration")
	root.PersistentFlags().String(flagMap, "", "map file; overrides map.file from the configuration")
	root.PersistentFlags().Bool(flagProgress, true, "show a progress bar while parsing the map")

	root.AddCommand(newServeCommand(), newRouteCommand())

	return root
}

// env is what every subcommand needs after flag parsing.
type env struct {
	cfg    config.Config
	logger *slog.Logger
}

func setup(cmd *cobra.Command) (*env, error) {
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(cmd, path)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logger}, nil
}

// loadConfig reads path and applies --map. A missing default config file is
// not an error; an explicit --config must exist.
func loadConfig(cmd *cobra.Command, path string) (config.Config, error) {
	override, err := cmd.Flags().GetString(flagMap)
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if _, statErr := os.Stat(path); statErr == nil || cmd.Flags().Changed(flagConfig) {
		if cfg, err = config.Read(path); err != nil {
			return config.Config{}, err
		}
	}
	if override != "" {
		cfg.Map.File = override
	}

	return cfg, cfg.Validate()
}

// loadMap parses the configured map, going through the snapshot cache when
// map.cache-dir is set.
func loadMap(ctx context.Context, cmd *cobra.Command, e *env) (*streetmap.Graph, error) {
	showProgress, err := cmd.Flags().GetBool(flagProgress)
	if err != nil {
		return nil, err
	}
	decode := func() (*streetmap.Graph, error) {
		return decodeMap(ctx, e, showProgress, cmd.ErrOrStderr())
	}
	if e.cfg.Map.CacheDir == "" {
		return decode()
	}

	store, err := streetmap.OpenSnapshotStore(e.cfg.Map.CacheDir, nil)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	g, hit, err := store.LoadCached(e.cfg.Map.File, e.cfg.Map.Index, decode)
	if err != nil {
		return nil, err
	}
	e.logger.Info("street map ready", slog.Bool("snapshot", hit), slog.Int("nodes", g.NodeCount()))

	return g, nil
}

func decodeMap(ctx context.Context, e *env, showProgress bool, progressOut io.Writer) (*streetmap.Graph, error) {
	path := e.cfg.Map.File
	format, err := streetmap.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if showProgress {
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		bar := progressbar.NewOptions64(info.Size(),
			progressbar.OptionSetWriter(progressOut),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(15),
			progressbar.OptionSetDescription("parsing "+info.Name()),
			progressbar.OptionOnCompletion(func() { _, _ = io.WriteString(progressOut, "\n") }),
		)
		pr := progressbar.NewReader(f, bar)
		r = &pr
		defer bar.Finish()
	}

	return streetmap.Decode(ctx, r, format,
		streetmap.WithIndexKind(e.cfg.Map.Index),
		streetmap.WithLogger(e.logger))
}
