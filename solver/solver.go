// Package solver finds shortest solutions to river-crossing puzzles by
// running breadth-first search over a river.Model.
package solver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/rivercross/bfs"
	"github.com/katalvlaran/rivercross/metrics"
	"github.com/katalvlaran/rivercross/river"
)

// Solve finds a shortest solution for n missionaries and n cannibals with
// the two-seat catalog. found is false, with a nil error, when no solution
// exists. An invalid n yields river.ErrInvalidConfiguration.
func Solve(n int) (path []river.State, found bool, err error) {
	m, err := river.NewModel(n, river.DefaultMoves())
	if err != nil {
		return nil, false, err
	}
	sol, err := New().Solve(context.Background(), m)
	if err != nil {
		return nil, false, err
	}
	return sol.Path, sol.Found, nil
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics records every run on m.
func WithMetrics(m *metrics.Search) Option {
	return func(s *Solver) { s.metrics = m }
}

// WithPruneOnEnqueue drops already-visited successors when they are
// generated. Results are identical; only the frontier is smaller.
func WithPruneOnEnqueue(on bool) Option {
	return func(s *Solver) { s.prune = on }
}

// Solver runs searches. It holds no per-run state and is safe for
// concurrent use.
type Solver struct {
	log     *slog.Logger
	metrics *metrics.Search
	prune   bool
}

// New returns a Solver that logs nowhere and records no metrics unless
// configured otherwise.
func New(opts ...Option) *Solver {
	s := &Solver{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve searches m from m.Initial() to m.Goal(). An unreachable goal is
// reported through Solution.Found; errors are reserved for a nil model and
// cancellation.
func (s *Solver) Solve(ctx context.Context, m *river.Model) (*Solution, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: model is nil", river.ErrInvalidConfiguration)
	}
	runID := uuid.NewString()
	log := s.log.With("run_id", runID, "n", m.N(), "capacity", m.Capacity())
	log.Debug("search started", "initial", m.Initial().String(), "goal", m.Goal().String(), "moves", len(m.Moves()))

	start := time.Now()
	res, err := bfs.Search(m.Initial(), m.Goal(), m.Successors,
		bfs.WithContext[river.State](ctx),
		bfs.WithPruneOnEnqueue[river.State](s.prune),
	)
	elapsed := time.Since(start)
	if err != nil {
		s.metrics.Observe(metrics.OutcomeError, bfs.Stats{}, 0, elapsed)
		log.Error("search aborted", "error", err)
		return nil, err
	}

	sol := &Solution{
		RunID:   runID,
		N:       m.N(),
		Moves:   m.Moves(),
		Found:   res.Found,
		Path:    res.Path,
		Stats:   res.Stats,
		Visited: len(res.Order),
		Elapsed: elapsed,
	}

	outcome := metrics.OutcomeNoSolution
	if sol.Found {
		outcome = metrics.OutcomeSolved
	}
	s.metrics.Observe(outcome, sol.Stats, sol.Crossings(), elapsed)

	log.Info("search finished",
		"outcome", outcome,
		"crossings", sol.Crossings(),
		"visited", sol.Visited,
		"enqueued", sol.Stats.Enqueued,
		"discarded", sol.Stats.Discarded,
		"elapsed", elapsed,
	)
	return sol, nil
}
