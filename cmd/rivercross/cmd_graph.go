package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/river"
	"github.com/katalvlaran/rivercross/solver"
	"github.com/katalvlaran/rivercross/statespace"
)

type graphFlags struct {
	summary   bool
	highlight bool
}

func newGraphCmd(g *globalFlags) *cobra.Command {
	f := &graphFlags{}
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the reachable state graph in Graphviz DOT format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGraph(cmd, g, f)
		},
	}
	cmd.Flags().BoolVar(&f.summary, "summary", false, "print vertex and edge counts instead of DOT")
	cmd.Flags().BoolVar(&f.highlight, "highlight", false, "draw the shortest solution in bold")
	return cmd
}

func runGraph(cmd *cobra.Command, g *globalFlags, f *graphFlags) error {
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

	space, err := statespace.Build(cmd.Context(), model)
	if err != nil {
		return err
	}
	log.Info("state space built", "n", model.N(), "vertices", space.VertexCount(), "edges", space.EdgeCount())

	out := cmd.OutOrStdout()
	if f.summary {
		depth, err := space.Depth(model.Goal())
		if err != nil {
			fmt.Fprintf(out, "vertices: %d\nedges: %d\ngoal: unreachable\n", space.VertexCount(), space.EdgeCount())
			return nil
		}
		fmt.Fprintf(out, "vertices: %d\nedges: %d\ngoal depth: %d\n", space.VertexCount(), space.EdgeCount(), depth)
		return nil
	}

	var path []river.State
	if f.highlight {
		sol, err := solver.New(solver.WithLogger(log)).Solve(cmd.Context(), model)
		if err != nil {
			return err
		}
		path = sol.Path
	}
	return space.WriteDOT(out, path)
}
