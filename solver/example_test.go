package solver_test

import (
	"fmt"

	"github.com/katalvlaran/rivercross/solver"
)

// ExampleSolve prints the shortest crossing sequence for the classic puzzle.
func ExampleSolve() {
	path, found, err := solver.Solve(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !found {
		fmt.Println("No solution found.")
		return
	}
	fmt.Println(len(path)-1, "crossings")
	for _, s := range path {
		fmt.Println(s)
	}
	// Output:
	// 11 crossings
	// (3, 3, 1)
	// (3, 1, 0)
	// (3, 2, 1)
	// (3, 0, 0)
	// (3, 1, 1)
	// (1, 1, 0)
	// (2, 2, 1)
	// (0, 2, 0)
	// (0, 3, 1)
	// (0, 1, 0)
	// (1, 1, 1)
	// (0, 0, 0)
}

// ExampleSolve_unsolvable shows that four of each cannot cross in a
// two-seat boat; this is a result, not an error.
func ExampleSolve_unsolvable() {
	_, found, err := solver.Solve(4)
	fmt.Println(found, err)
	// Output:
	// false <nil>
}
