// Package rivercross solves the Missionaries and Cannibals river-crossing
// puzzle by breadth-first search over its state graph.
//
// What is in the box?
//
//	river/       State, Move, the safety rule and successor generation
//	bfs/         generic breadth-first search over implicit graphs
//	solver/      Solve(n) and a configurable Solver with logging and metrics
//	statespace/  the reachable state graph, materialized, with DOT export
//	config/      YAML puzzle files (N, boat capacity, move catalog)
//	render/      text, bank-diagram, JSON and YAML output
//	metrics/     Prometheus collectors for searches
//	cmd/         the rivercross CLI
//
// Quick example:
//
//	path, found, err := solver.Solve(3)
//	// found == true, len(path) == 12: eleven crossings from (3, 3, 1) to (0, 0, 0)
//
// The classic instance, three of each and a two-seat boat:
//
//	  left bank        river        right bank
//	  M M M C C C    |b~~~~~|
//	                 |~~~~~b|      M M M C C C
//
//	go install github.com/katalvlaran/rivercross/cmd/rivercross@latest
package rivercross
