// Package bfs provides breadth-first search over an implicit graph, returning
// a shortest path to a goal state together with visit order, depths, parent
// links and frontier statistics.
//
// What
//
//   - Explore states in non-decreasing distance (edge count) from a start state.
//   - States are any comparable type; edges come from a successor function
//     func(S) []S, so the graph never has to be materialized.
//   - Search stops at the first dequeued goal; Traverse explores everything
//     reachable.
//   - Returns a Result containing:
//   - Found / Path: whether the goal was reached and the start → goal path
//   - Order: visit sequence
//   - Depth: map from state → distance from start
//   - Parent: map from state → its predecessor on a shortest path
//   - Stats: enqueued, dequeued and discarded frontier entries
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a state joins the frontier)
//   - OnDequeue (every frontier removal, duplicates included)
//   - OnVisit   (first dequeue of a state; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Visited on dequeue
//
//	A state is marked visited when it is dequeued, not when it is enqueued.
//	The frontier may therefore hold duplicates of states that are already
//	visited; they are discarded when they reach the head of the queue. Every
//	state is first dequeued at its minimum distance, so the first dequeued
//	goal carries a shortest path. WithPruneOnEnqueue additionally drops
//	already-visited successors at generation time; the returned path does
//	not change, only Stats.Enqueued shrinks.
//
// Paths
//
//	Each frontier entry carries the path that reached it as an immutable
//	trail shared with its siblings, so extending a path is O(1) and the
//	final slice is materialized once, at the goal.
//
// Determinism
//
//	Successors are enqueued in the order the successor function returns
//	them, so for a deterministic successor function the visit sequence and
//	the returned path are fully reproducible.
//
// Complexity (V = reachable states, E = generated successor edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) worst case for the frontier, O(V) for the maps
//
// Usage
//
//	res, err := bfs.Search(start, goal, successors)
//	if err != nil {
//		// ErrNilExpander, ErrOptionViolation, context error, or hook error
//	}
//	if !res.Found {
//		// goal unreachable: a normal outcome, not an error
//	}
//
//	res, err = bfs.Search(start, goal, successors,
//		bfs.WithContext[State](ctx),
//		bfs.WithMaxDepth[State](20),
//		bfs.WithOnVisit(func(s State, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrNilExpander      if the successor function is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()           if the context is cancelled mid-search.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
