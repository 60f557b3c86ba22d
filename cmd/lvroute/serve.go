package main

import (
	"net"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvroute/server"
)

const flagGrace = "grace"

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the map and serve the HTTP API until interrupted.",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().Duration(flagGrace, 0, "shutdown grace period for in-flight requests (default: solve.timeout)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	g, err := loadMap(ctx, cmd, e)
	if err != nil {
		return err
	}

	grace, err := cmd.Flags().GetDuration(flagGrace)
	if err != nil {
		return err
	}
	if grace <= 0 {
		grace = e.cfg.Solve.Timeout
	}

	ln, err := net.Listen("tcp", e.cfg.Server.Listen)
	if err != nil {
		return err
	}
	e.logger.Info("server started", slog.String("addr", ln.Addr().String()))

	h := server.NewHandler(g,
		server.WithTimeout(e.cfg.Solve.Timeout),
		server.WithLogger(e.logger))
	if err := server.Serve(ctx, ln, h, grace); err != nil {
		return err
	}
	e.logger.Info("server stopped")

	return nil
}
