// Package render formats solver results for people and machines.
package render

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rivercross/river"
	"github.com/katalvlaran/rivercross/solver"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("render: unknown format")

// NoSolution is printed by the text formats when the goal is unreachable.
const NoSolution = "No solution found."

// Format selects an output layout.
type Format string

// Supported formats.
const (
	FormatText  Format = "text"
	FormatBanks Format = "banks"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported format in help order.
func Formats() []Format {
	return []Format{FormatText, FormatBanks, FormatJSON, FormatYAML}
}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Write renders sol to w in the given format.
func Write(w io.Writer, sol *solver.Solution, format Format) error {
	switch format {
	case FormatText:
		return writeText(w, sol)
	case FormatBanks:
		return writeBanks(w, sol)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document(sol))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document(sol)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// writeText prints one state tuple per line.
func writeText(w io.Writer, sol *solver.Solution) error {
	bw := bufio.NewWriter(w)
	if !sol.Found {
		fmt.Fprintln(bw, NoSolution)
		return bw.Flush()
	}
	fmt.Fprintln(bw, "Solution found! Steps:")
	for _, s := range sol.Path {
		fmt.Fprintln(bw, s)
	}
	return bw.Flush()
}

// writeBanks draws both banks for every state, people on each side packed
// against the river, followed by the load that just crossed:
//
//	 0  MMM CCC |b~~~~|          (3, 3, 1)
//	 1  MMM   C |~~~~b|     CC   (3, 1, 0)  -> 2C
func writeBanks(w io.Writer, sol *solver.Solution) error {
	bw := bufio.NewWriter(w)
	if !sol.Found {
		fmt.Fprintln(bw, NoSolution)
		return bw.Flush()
	}
	n := sol.N
	fmt.Fprintf(bw, "Solved in %d crossings.\n", sol.Crossings())
	for i, s := range sol.Path {
		rm, rc := s.Right(n)
		boat := "|~~~~b|"
		if s.BoatOnLeft() {
			boat = "|b~~~~|"
		}
		line := fmt.Sprintf("%2d  %*s %*s %s %-*s %-*s  %s",
			i,
			n, strings.Repeat("M", s.M), n, strings.Repeat("C", s.C),
			boat,
			n, strings.Repeat("M", rm), n, strings.Repeat("C", rc),
			s,
		)
		if i > 0 {
			line += "  " + describe(sol.Path[i-1], s)
		}
		fmt.Fprintln(bw, line)
	}
	return bw.Flush()
}

// describe names the load carried from a to b, e.g. "-> 1M 1C" or "<- 1C".
func describe(a, b river.State) string {
	mv, ok := river.MoveBetween(a, b)
	if !ok {
		return "?"
	}
	var parts []string
	if a.BoatOnLeft() {
		parts = append(parts, "->")
	} else {
		parts = append(parts, "<-")
	}
	if mv.M > 0 {
		parts = append(parts, fmt.Sprintf("%dM", mv.M))
	}
	if mv.C > 0 {
		parts = append(parts, fmt.Sprintf("%dC", mv.C))
	}
	return strings.Join(parts, " ")
}

// report is the machine-readable shape shared by the JSON and YAML formats.
type report struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	N         int           `json:"n" yaml:"n"`
	Moves     []river.Move  `json:"moves" yaml:"moves"`
	Found     bool          `json:"found" yaml:"found"`
	Crossings int           `json:"crossings" yaml:"crossings"`
	Path      []river.State `json:"path" yaml:"path"`
	Steps     []solver.Step `json:"steps" yaml:"steps"`
	Visited   int           `json:"visited" yaml:"visited"`
	Enqueued  int           `json:"enqueued" yaml:"enqueued"`
	Discarded int           `json:"discarded" yaml:"discarded"`
}

func document(sol *solver.Solution) report {
	return report{
		RunID:     sol.RunID,
		N:         sol.N,
		Moves:     sol.Moves,
		Found:     sol.Found,
		Crossings: sol.Crossings(),
		Path:      sol.Path,
		Steps:     sol.Steps(),
		Visited:   sol.Visited,
		Enqueued:  sol.Stats.Enqueued,
		Discarded: sol.Stats.Discarded,
	}
}
