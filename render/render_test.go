package render_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rivercross/render"
	"github.com/katalvlaran/rivercross/river"
	"github.com/katalvlaran/rivercross/solver"
)

func solve(t *testing.T, n int) *solver.Solution {
	t.Helper()
	m, err := river.NewModel(n, river.DefaultMoves())
	require.NoError(t, err)
	sol, err := solver.New().Solve(context.Background(), m)
	require.NoError(t, err)
	return sol
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, solve(t, 3), render.FormatText))

	want := `Solution found! Steps:
(3, 3, 1)
(3, 1, 0)
(3, 2, 1)
(3, 0, 0)
(3, 1, 1)
(1, 1, 0)
(2, 2, 1)
(0, 2, 0)
(0, 3, 1)
(0, 1, 0)
(1, 1, 1)
(0, 0, 0)
`
	assert.Equal(t, want, buf.String())
}

func TestWrite_NoSolution(t *testing.T) {
	sol := solve(t, 4)
	for _, f := range []render.Format{render.FormatText, render.FormatBanks} {
		var buf bytes.Buffer
		require.NoError(t, render.Write(&buf, sol, f))
		assert.Equal(t, "No solution found.\n", buf.String(), "format %s", f)
	}
}

func TestWrite_Banks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, solve(t, 3), render.FormatBanks))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "Solved in 11 crossings.", lines[0])
	assert.Equal(t, " 0  MMM CCC |b~~~~|          (3, 3, 1)", lines[1])
	assert.Equal(t, " 1  MMM   C |~~~~b|     CC   (3, 1, 0)  -> 2C", lines[2])
	assert.Equal(t, " 2  MMM  CC |b~~~~|     C    (3, 2, 1)  <- 1C", lines[3])
	assert.Equal(t, "11          |~~~~b| MMM CCC  (0, 0, 0)  -> 1M 1C", lines[12])
}

func TestWrite_JSON(t *testing.T) {
	sol := solve(t, 3)
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, sol, render.FormatJSON))

	var doc struct {
		RunID     string        `json:"run_id"`
		N         int           `json:"n"`
		Found     bool          `json:"found"`
		Crossings int           `json:"crossings"`
		Path      []river.State `json:"path"`
		Steps     []solver.Step `json:"steps"`
		Visited   int           `json:"visited"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, sol.RunID, doc.RunID)
	assert.Equal(t, 3, doc.N)
	assert.True(t, doc.Found)
	assert.Equal(t, 11, doc.Crossings)
	assert.Equal(t, sol.Path, doc.Path)
	assert.Len(t, doc.Steps, 11)
	assert.Equal(t, 15, doc.Visited)
}

func TestWrite_YAML(t *testing.T) {
	sol := solve(t, 2)
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, sol, render.FormatYAML))

	var doc struct {
		Found     bool          `yaml:"found"`
		Crossings int           `yaml:"crossings"`
		Moves     []river.Move  `yaml:"moves"`
		Path      []river.State `yaml:"path"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.True(t, doc.Found)
	assert.Equal(t, 5, doc.Crossings)
	assert.Equal(t, river.DefaultMoves(), doc.Moves)
	assert.Equal(t, sol.Path, doc.Path)
}

func TestWrite_JSONAndYAMLKeysAgree(t *testing.T) {
	sol := solve(t, 3)
	var js, ys bytes.Buffer
	require.NoError(t, render.Write(&js, sol, render.FormatJSON))
	require.NoError(t, render.Write(&ys, sol, render.FormatYAML))

	var fromJSON, fromYAML map[string]any
	require.NoError(t, json.Unmarshal(js.Bytes(), &fromJSON))
	require.NoError(t, yaml.Unmarshal(ys.Bytes(), &fromYAML))

	keys := func(m map[string]any) []string {
		out := make([]string, 0, len(m))
		for k := range m {
			out = append(out, k)
		}
		return out
	}
	assert.ElementsMatch(t, keys(fromJSON), keys(fromYAML))
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "BANKS", " json ", "yaml"} {
		f, err := render.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Contains(t, render.Formats(), f)
	}

	_, err := render.ParseFormat("xml")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)

	err = render.Write(&bytes.Buffer{}, &solver.Solution{}, render.Format("xml"))
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}
