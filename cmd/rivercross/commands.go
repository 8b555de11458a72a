package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/config"
	"github.com/katalvlaran/rivercross/render"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	n          int
	capacity   int
	logLevel   string
	logFormat  string
}

// newRootCmd builds a fresh command tree so tests can run it in isolation.
func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "rivercross",
		Short: "Solve the Missionaries and Cannibals river-crossing puzzle",
		Long: `rivercross finds a shortest sequence of boat crossings that moves
N missionaries and N cannibals from the left bank to the right bank
without cannibals ever outnumbering missionaries on either bank.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "YAML puzzle file (n, capacity, moves, prune_on_enqueue)")
	pf.IntVarP(&g.n, "population", "n", config.DefaultN, "missionaries and cannibals per side")
	pf.IntVarP(&g.capacity, "capacity", "k", config.DefaultCapacity, "boat capacity, used when no explicit moves are configured")
	pf.StringVar(&g.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&g.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(newSolveCmd(g), newGraphCmd(g))
	return root
}

// puzzle loads the configured puzzle file, if any, and applies explicitly
// set flags on top of it.
func (g *globalFlags) puzzle(cmd *cobra.Command) (config.Puzzle, error) {
	p := config.Default()
	if g.configPath != "" {
		loaded, err := config.Load(g.configPath)
		if err != nil {
			return config.Puzzle{}, err
		}
		p = loaded
	}
	if cmd.Flags().Changed("population") {
		p.N = g.n
	}
	if cmd.Flags().Changed("capacity") {
		p.Capacity = g.capacity
		p.Moves = nil
	}
	return p, nil
}

// logger builds the stderr logger selected by --log-level and --log-format.
func (g *globalFlags) logger(cmd *cobra.Command) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", g.logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	w := cmd.ErrOrStderr()

	switch strings.ToLower(g.logFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", g.logFormat)
	}
}

func formatNames() string {
	names := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
