package solver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rivercross/metrics"
	"github.com/katalvlaran/rivercross/river"
	"github.com/katalvlaran/rivercross/solver"
)

func st(m, c, b int) river.State { return river.State{M: m, C: c, B: b} }

// classic is the shortest N=3 solution under the default catalog order.
var classic = []river.State{
	st(3, 3, 1), st(3, 1, 0), st(3, 2, 1), st(3, 0, 0),
	st(3, 1, 1), st(1, 1, 0), st(2, 2, 1), st(0, 2, 0),
	st(0, 3, 1), st(0, 1, 0), st(1, 1, 1), st(0, 0, 0),
}

func TestSolve_Classic(t *testing.T) {
	path, found, err := solver.Solve(3)
	require.NoError(t, err)
	require.True(t, found)

	assert.Len(t, path, 12, "11 crossings, start and goal included")
	assert.Equal(t, classic, path)
}

// TestSolve_PathProperties checks safety, range and connectivity for every
// solvable N with the two-seat boat.
func TestSolve_PathProperties(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		path, found, err := solver.Solve(n)
		require.NoError(t, err)
		require.True(t, found, "n=%d", n)

		assert.Equal(t, river.Initial(n), path[0])
		assert.Equal(t, river.Goal(), path[len(path)-1])
		for i, s := range path {
			assert.True(t, s.M >= 0 && s.M <= n && s.C >= 0 && s.C <= n, "n=%d out of range: %v", n, s)
			assert.True(t, river.IsSafe(s.M, s.C, n), "n=%d unsafe: %v", n, s)
			if i > 0 {
				assert.Contains(t, river.Successors(path[i-1], n), s, "n=%d %v -> %v", n, path[i-1], s)
			}
		}
	}
}

func TestSolve_KnownLengths(t *testing.T) {
	cases := []struct {
		n, capacity int
		states      int // 0 means no solution
	}{
		{0, 2, 1},
		{1, 2, 2},
		{2, 2, 6},
		{3, 2, 12},
		{4, 2, 0},
		{5, 2, 0},
		{4, 3, 10},
		{5, 3, 12},
		{6, 3, 0},
	}
	for _, tc := range cases {
		moves, err := river.MovesForCapacity(tc.capacity)
		require.NoError(t, err)
		m, err := river.NewModel(tc.n, moves)
		require.NoError(t, err)

		sol, err := solver.New().Solve(context.Background(), m)
		require.NoError(t, err)
		if tc.states == 0 {
			assert.False(t, sol.Found, "n=%d k=%d", tc.n, tc.capacity)
			assert.Nil(t, sol.Path)
			assert.Zero(t, sol.Crossings())
			continue
		}
		require.True(t, sol.Found, "n=%d k=%d", tc.n, tc.capacity)
		assert.Len(t, sol.Path, tc.states, "n=%d k=%d", tc.n, tc.capacity)
		assert.Equal(t, tc.states-1, sol.Crossings())
	}
}

// TestSolve_Zero returns the single-state path: nobody has to cross.
func TestSolve_Zero(t *testing.T) {
	path, found, err := solver.Solve(0)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []river.State{st(0, 0, 0)}, path)
}

func TestSolve_NoSolutionIsNotAnError(t *testing.T) {
	path, found, err := solver.Solve(4)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, path)
}

func TestSolve_InvalidConfiguration(t *testing.T) {
	_, _, err := solver.Solve(-1)
	assert.ErrorIs(t, err, river.ErrInvalidConfiguration)

	_, err = solver.New().Solve(context.Background(), nil)
	assert.ErrorIs(t, err, river.ErrInvalidConfiguration)
}

func TestSolve_Deterministic(t *testing.T) {
	first, _, err := solver.Solve(3)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, _, err := solver.Solve(3)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestSolver_PruneOnEnqueue yields the same path with a smaller frontier.
func TestSolver_PruneOnEnqueue(t *testing.T) {
	m, err := river.NewModel(3, river.DefaultMoves())
	require.NoError(t, err)

	plain, err := solver.New().Solve(context.Background(), m)
	require.NoError(t, err)
	pruned, err := solver.New(solver.WithPruneOnEnqueue(true)).Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, plain.Path, pruned.Path)
	assert.Equal(t, plain.Visited, pruned.Visited)
	assert.Less(t, pruned.Stats.Enqueued, plain.Stats.Enqueued)
	assert.Equal(t, 31, plain.Stats.Enqueued)
	assert.Equal(t, 29, plain.Stats.Dequeued)
	assert.Equal(t, 14, plain.Stats.Discarded)
	assert.Equal(t, 15, plain.Visited)
}

func TestSolver_Cancelled(t *testing.T) {
	m, err := river.NewModel(3, river.DefaultMoves())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = solver.New().Solve(ctx, m)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSolver_LogsAndMetrics wires a JSON logger and a private registry.
func TestSolver_LogsAndMetrics(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg := prometheus.NewRegistry()

	s := solver.New(solver.WithLogger(logger), solver.WithMetrics(metrics.NewSearch(reg)))
	m, err := river.NewModel(3, river.DefaultMoves())
	require.NoError(t, err)

	sol, err := s.Solve(context.Background(), m)
	require.NoError(t, err)
	_, err = uuid.Parse(sol.RunID)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)
	var finished map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &finished))
	assert.Equal(t, "search finished", finished["msg"])
	assert.Equal(t, sol.RunID, finished["run_id"])
	assert.Equal(t, "solved", finished["outcome"])
	assert.EqualValues(t, 11, finished["crossings"])

	var exposition bytes.Buffer
	require.NoError(t, metrics.WriteText(&exposition, reg))
	assert.Contains(t, exposition.String(), `rivercross_search_runs_total{outcome="solved"} 1`)
}

func TestSolution_Steps(t *testing.T) {
	path, _, err := solver.Solve(3)
	require.NoError(t, err)
	sol := &solver.Solution{Found: true, Path: path}

	steps := sol.Steps()
	require.Len(t, steps, 11)
	assert.Equal(t, river.Move{C: 2}, steps[0].Load)
	assert.Equal(t, river.Move{C: 1}, steps[1].Load)
	assert.Equal(t, river.Move{M: 2}, steps[4].Load)
	for i, step := range steps {
		assert.Equal(t, path[i], step.From)
		assert.Equal(t, path[i+1], step.To)
		assert.Contains(t, river.DefaultMoves(), step.Load)
	}

	assert.Nil(t, (&solver.Solution{}).Steps())
}
