// Package bfs provides breadth-first search over an implicit graph whose
// edges are produced on demand by a successor function.
//
// Search explores states in non-decreasing distance from a start state and
// stops at the first dequeued goal, which therefore lies at minimum distance.
package bfs

import (
	"context"
	"fmt"
)

// trail is an immutable, shared path prefix: each node points at the node
// it was reached from.
type trail[S comparable] struct {
	state S
	prev  *trail[S]
}

// queueItem pairs a state with its depth and the path that led to it,
// excluding the state itself.
type queueItem[S comparable] struct {
	state S
	depth int
	path  *trail[S] // nil for the seed
}

// walker encapsulates mutable search state for a single invocation.
type walker[S comparable] struct {
	next    func(S) []S
	goal    S
	hasGoal bool
	opts    Options[S]
	ctx     context.Context
	queue   []queueItem[S]
	visited map[S]bool
	res     *Result[S]
}

// Search runs breadth-first search from start until goal is dequeued,
// applying any number of functional Options.
//
// The frontier is a FIFO queue of (state, path) entries seeded with
// (start, empty path). A dequeued state that was already visited is
// discarded; otherwise it is marked visited, compared to goal, and expanded
// in the order next returns successors. Successors are enqueued even if
// already visited unless WithPruneOnEnqueue is set.
//
// When the frontier empties without reaching goal, Search returns a Result
// with Found == false and a nil error: an unreachable goal is not a fault.
// Returns ErrNilExpander for a nil successor function, ErrOptionViolation
// for bad options, context errors on cancellation, or a wrapped OnVisit error.
func Search[S comparable](start, goal S, next func(S) []S, opts ...Option[S]) (*Result[S], error) {
	return run(start, goal, true, next, opts)
}

// Traverse runs breadth-first search from start over every reachable state.
// Result.Found is always false; use Order, Depth and PathTo to inspect the
// explored space.
func Traverse[S comparable](start S, next func(S) []S, opts ...Option[S]) (*Result[S], error) {
	var zero S
	return run(start, zero, false, next, opts)
}

func run[S comparable](start, goal S, hasGoal bool, next func(S) []S, opts []Option[S]) (*Result[S], error) {
	if next == nil {
		return nil, ErrNilExpander
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next:    next,
		goal:    goal,
		hasGoal: hasGoal,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[S]bool),
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}

	// Seed queue with start (empty path)
	w.enqueue(queueItem[S]{state: start})

	return w.res, w.loop()
}

// enqueue calls OnEnqueue and appends item to the frontier.
func (w *walker[S]) enqueue(item queueItem[S]) {
	w.res.Stats.Enqueued++
	w.opts.OnEnqueue(item.state, item.depth)
	w.queue = append(w.queue, item)
}

// loop processes the queue until empty, goal, error, or cancellation.
func (w *walker[S]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if w.visited[item.state] {
			w.res.Stats.Discarded++
			continue
		}

		node, err := w.visit(item)
		if err != nil {
			return err
		}
		if w.hasGoal && item.state == w.goal {
			w.res.Found = true
			w.res.Path = materialize(node, item.depth)
			return nil
		}
		w.expand(item, node)
	}
	return nil
}

// dequeue pops the oldest item, invokes OnDequeue, and returns it.
func (w *walker[S]) dequeue() queueItem[S] {
	item := w.queue[0]
	w.queue[0] = queueItem[S]{} // release the trail reference
	w.queue = w.queue[1:]
	w.res.Stats.Dequeued++
	w.opts.OnDequeue(item.state, item.depth)
	return item
}

// visit marks the state visited at its shortest depth, records its parent
// and calls OnVisit. It returns the trail node ending at the state.
func (w *walker[S]) visit(item queueItem[S]) (*trail[S], error) {
	w.visited[item.state] = true
	w.res.Order = append(w.res.Order, item.state)
	w.res.Depth[item.state] = item.depth
	if item.path != nil {
		w.res.Parent[item.state] = item.path.state
	}
	if err := w.opts.OnVisit(item.state, item.depth); err != nil {
		return nil, fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
	}
	return &trail[S]{state: item.state, prev: item.path}, nil
}

// expand enqueues every successor of item in generation order, extending
// the path with node. MaxDepth and PruneOnEnqueue are applied here.
func (w *walker[S]) expand(item queueItem[S], node *trail[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, s := range w.next(item.state) {
		if w.opts.PruneOnEnqueue && w.visited[s] {
			continue
		}
		w.enqueue(queueItem[S]{state: s, depth: nextDepth, path: node})
	}
}

// materialize copies the trail ending at node into a start → node slice.
func materialize[S comparable](node *trail[S], depth int) []S {
	path := make([]S, depth+1)
	for i := depth; i >= 0; i-- {
		path[i] = node.state
		node = node.prev
	}
	return path
}
