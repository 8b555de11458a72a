package solver

import (
	"time"

	"github.com/katalvlaran/rivercross/bfs"
	"github.com/katalvlaran/rivercross/river"
)

// Solution is the immutable outcome of one search. It carries no encoding
// tags; render builds the JSON and YAML documents from it.
type Solution struct {
	RunID   string
	N       int
	Moves   []river.Move
	Found   bool
	Path    []river.State
	Stats   bfs.Stats
	Visited int
	Elapsed time.Duration
}

// Step is one crossing of a solution.
type Step struct {
	From river.State `json:"from" yaml:"from"`
	Load river.Move  `json:"load" yaml:"load"`
	To   river.State `json:"to" yaml:"to"`
}

// Crossings returns the number of boat trips, or 0 when not found.
func (s *Solution) Crossings() int {
	if !s.Found {
		return 0
	}
	return len(s.Path) - 1
}

// Steps pairs each consecutive pair of states with the load that links
// them.
func (s *Solution) Steps() []Step {
	if len(s.Path) < 2 {
		return nil
	}
	steps := make([]Step, 0, len(s.Path)-1)
	for i := 1; i < len(s.Path); i++ {
		from, to := s.Path[i-1], s.Path[i]
		load, _ := river.MoveBetween(from, to)
		steps = append(steps, Step{From: from, Load: load, To: to})
	}
	return steps
}
