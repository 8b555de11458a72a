// Package river models the Missionaries and Cannibals river-crossing puzzle
// as an implicit state graph.
//
// What
//
//   - State is an immutable (M, C, B) triple: missionaries and cannibals on
//     the left bank, and the boat position (1 = left, 0 = right).
//   - Move is a boat load (m, c) drawn from a fixed, ordered catalog.
//   - IsSafe reports whether neither bank lets cannibals outnumber a
//     non-empty group of missionaries.
//   - Successors enumerates every feasible state reachable in one crossing,
//     in catalog order.
//
// Model
//
//	A Model binds N (people per population) to a validated move catalog.
//	The package-level IsSafe and Successors use the classic two-seat catalog
//
//	    (1,0) (2,0) (0,1) (0,2) (1,1)
//
//	and are what most callers want. NewModel and MovesForCapacity cover
//	larger boats and custom catalogs.
//
// Determinism
//
//	Successors are produced strictly in catalog order and are never
//	deduplicated here; duplicate elimination belongs to the search.
//
// Errors
//
//   - ErrInvalidConfiguration if N < 0, the catalog is empty, or a load is
//     negative, empty, or duplicated.
//
// Usage
//
//	m, err := river.NewModel(3, river.DefaultMoves())
//	if err != nil {
//		// errors.Is(err, river.ErrInvalidConfiguration)
//	}
//	for _, next := range m.Successors(m.Initial()) {
//		fmt.Println(next)
//	}
package river
