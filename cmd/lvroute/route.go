package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/astar"
)

func newRouteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "route START_LON START_LAT GOAL_LON GOAL_LAT",
		Short: "Print one route between two coordinates.",
		Long: "Snaps both coordinates to the closest routable nodes, runs A* with the\n" +
			"configured timeout and prints the outcome. Negative longitudes need a\n" +
			"preceding -- so they are not read as flags.",
		Args: cobra.ExactArgs(4),
		RunE: runRoute,
	}
}

func runRoute(cmd *cobra.Command, args []string) error {
	coords := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		coords[i] = v
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	g, err := loadMap(cmd.Context(), cmd, e)
	if err != nil {
		return err
	}

	res, err := g.Route(coords[0], coords[1], coords[2], coords[3], e.cfg.Solve.Timeout,
		astar.WithLogger(e.logger))
	if err != nil {
		return err
	}

	cmd.Printf("outcome: %s\n", res.Outcome())
	cmd.Printf("explored: %d\n", res.NumStatesExplored())
	if res.Outcome() != astar.Solved {
		return nil
	}
	line, err := g.EncodeRoute(res.Solution())
	if err != nil {
		return err
	}
	cmd.Printf("weight: %.1f m\n", res.SolutionWeight())
	cmd.Printf("nodes: %v\n", res.Solution())
	cmd.Printf("polyline: %s\n", line)

	return nil
}
