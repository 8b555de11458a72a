// Package bfs provides tunable options, results and error definitions
// for breadth-first search over an implicit state graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilExpander is returned if no successor function is supplied.
	ErrNilExpander = errors.New("bfs: successor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize BFS execution.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is appended to the frontier.
	// Receives the state and its depth from the start.
	OnEnqueue func(s S, depth int)

	// OnDequeue is called for every frontier entry removed, including
	// entries discarded because their state was already visited.
	OnDequeue func(s S, depth int)

	// OnVisit is called the first time a state is dequeued. If it returns
	// an error, the search aborts and propagates that error.
	OnVisit func(s S, depth int) error

	// MaxDepth, if > 0, stops expanding beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// PruneOnEnqueue skips successors that are already visited at the
	// moment they are generated. The discovered path is unchanged; only
	// frontier growth is reduced.
	PruneOnEnqueue bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - successors enqueued unconditionally (PruneOnEnqueue == false)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:       context.Background(),
		OnEnqueue: func(S, int) {},
		OnDequeue: func(S, int) {},
		OnVisit:   func(S, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expanding at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithPruneOnEnqueue toggles the visited check at enqueue time.
func WithPruneOnEnqueue[S comparable](on bool) Option[S] {
	return func(o *Options[S]) { o.PruneOnEnqueue = on }
}

// Stats counts frontier traffic for one search.
//
// Enqueued includes the seed entry. Discarded counts dequeued entries whose
// state had already been visited, so Dequeued - Discarded == len(Order).
type Stats struct {
	Enqueued  int `json:"enqueued" yaml:"enqueued"`
	Dequeued  int `json:"dequeued" yaml:"dequeued"`
	Discarded int `json:"discarded" yaml:"discarded"`
}

// Result holds the outcome of a search:
//   - Found: whether the goal was dequeued (always false for Traverse).
//   - Path: start → goal inclusive when Found, nil otherwise.
//   - Order: states in visit sequence.
//   - Depth: map from state to its distance (in crossings) from the start.
//   - Parent: map from state to its predecessor on its shortest path.
//   - Stats: frontier counters.
type Result[S comparable] struct {
	Found  bool
	Path   []S
	Order  []S
	Depth  map[S]int
	Parent map[S]S
	Stats  Stats
}

// PathTo reconstructs the path from the start state to dest.
// Returns an error if dest was not visited.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := make([]S, d+1)
	cur := dest
	for i := d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
