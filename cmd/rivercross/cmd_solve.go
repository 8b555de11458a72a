package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/metrics"
	"github.com/katalvlaran/rivercross/render"
	"github.com/katalvlaran/rivercross/solver"
)

type solveFlags struct {
	format      string
	prune       bool
	dumpMetrics bool
}

func newSolveCmd(g *globalFlags) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a shortest crossing sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, g, f)
		},
	}
	cmd.Flags().StringVarP(&f.format, "format", "f", string(render.FormatText), "output format ("+formatNames()+")")
	cmd.Flags().BoolVar(&f.prune, "prune", false, "skip already-visited states when enqueueing (same result, smaller frontier)")
	cmd.Flags().BoolVar(&f.dumpMetrics, "metrics", false, "print Prometheus metrics to stderr after solving")
	return cmd
}

func runSolve(cmd *cobra.Command, g *globalFlags, f *solveFlags) error {
	format, err := render.ParseFormat(f.format)
	if err != nil {
		return err
	}
	log, err := g.logger(cmd)
	if err != nil {
		return err
	}
	p, err := g.puzzle(cmd)
	if err != nil {
		return err
	}
	model, err := p.Model()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	s := solver.New(
		solver.WithLogger(log),
		solver.WithMetrics(metrics.NewSearch(reg)),
		solver.WithPruneOnEnqueue(p.PruneOnEnqueue || f.prune),
	)
	sol, err := s.Solve(cmd.Context(), model)
	if err != nil {
		return err
	}
	if err := render.Write(cmd.OutOrStdout(), sol, format); err != nil {
		return err
	}
	if f.dumpMetrics {
		return metrics.WriteText(cmd.ErrOrStderr(), reg)
	}
	return nil
}
