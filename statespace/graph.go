// Package statespace materializes the reachable part of a puzzle's state
// graph as an explicit, immutable directed graph.
//
// Vertices are the states reachable from the model's initial state; there is
// one edge per feasible crossing, labelled with its boat load. The search
// itself never needs this graph; it exists for inspection, export and
// cross-checking the implicit search.
//
// Determinism:
//   - Vertices() is sorted by M, then C, then B, all descending, so the
//     initial state (n, n, 1) comes first and the goal (0, 0, 0) last.
//   - Neighbors() preserves the model's catalog order.
package statespace

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/rivercross/bfs"
	"github.com/katalvlaran/rivercross/river"
)

// Sentinel errors for state-space queries.
var (
	// ErrModelNil is returned if a nil model is passed to Build.
	ErrModelNil = errors.New("statespace: model is nil")

	// ErrVertexNotFound indicates a state that is not reachable from the
	// initial state.
	ErrVertexNotFound = errors.New("statespace: vertex not found")
)

// Edge is one feasible crossing.
type Edge struct {
	From river.State
	To   river.State
	Load river.Move
}

// Graph is the reachable state graph of one model. It is read-only after
// Build and safe for concurrent use.
type Graph struct {
	model    *river.Model
	vertices []river.State
	depth    map[river.State]int
	adj      map[river.State][]Edge
	edges    int
}

// Build explores every state reachable from m.Initial() and records all
// feasible crossings between them.
//
// Complexity: O(V·K) time and O(V·K) space, where K is the catalog size.
func Build(ctx context.Context, m *river.Model) (*Graph, error) {
	if m == nil {
		return nil, ErrModelNil
	}
	res, err := bfs.Traverse(m.Initial(), m.Successors, bfs.WithContext[river.State](ctx))
	if err != nil {
		return nil, fmt.Errorf("statespace: traverse: %w", err)
	}

	g := &Graph{
		model:    m,
		vertices: append([]river.State(nil), res.Order...),
		depth:    res.Depth,
		adj:      make(map[river.State][]Edge, len(res.Order)),
	}
	moves := m.Moves()
	for _, from := range res.Order {
		for _, mv := range moves {
			to, ok := m.Apply(from, mv)
			if !ok {
				continue
			}
			g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Load: mv})
			g.edges++
		}
	}
	sort.Slice(g.vertices, func(i, j int) bool { return less(g.vertices[j], g.vertices[i]) })

	return g, nil
}

// Model returns the model the graph was built from.
func (g *Graph) Model() *river.Model { return g.model }

// Vertices returns a copy of all reachable states in deterministic order.
func (g *Graph) Vertices() []river.State {
	out := make([]river.State, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// VertexCount returns the number of reachable states.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of feasible crossings between reachable states.
func (g *Graph) EdgeCount() int { return g.edges }

// HasVertex reports whether s is reachable from the initial state.
func (g *Graph) HasVertex(s river.State) bool {
	_, ok := g.depth[s]
	return ok
}

// Depth returns the minimum number of crossings from the initial state to s.
func (g *Graph) Depth(s river.State) (int, error) {
	d, ok := g.depth[s]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, s)
	}
	return d, nil
}

// Edges returns the outgoing crossings of s in catalog order.
func (g *Graph) Edges(s river.State) ([]Edge, error) {
	if !g.HasVertex(s) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, s)
	}
	out := make([]Edge, len(g.adj[s]))
	copy(out, g.adj[s])
	return out, nil
}

// Neighbors returns the states one crossing away from s in catalog order.
func (g *Graph) Neighbors(s river.State) ([]river.State, error) {
	edges, err := g.Edges(s)
	if err != nil {
		return nil, err
	}
	out := make([]river.State, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}
	return out, nil
}

// OutDegree returns the number of feasible crossings leaving s.
func (g *Graph) OutDegree(s river.State) (int, error) {
	if !g.HasVertex(s) {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, s)
	}
	return len(g.adj[s]), nil
}

// less orders states by M, then C, then B.
func less(a, b river.State) bool {
	if a.M != b.M {
		return a.M < b.M
	}
	if a.C != b.C {
		return a.C < b.C
	}
	return a.B < b.B
}
