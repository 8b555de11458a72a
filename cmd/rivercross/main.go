// Command rivercross solves the Missionaries and Cannibals puzzle.
//
//	rivercross solve                   # classic 3/3 puzzle, reference output
//	rivercross solve -n 5 -k 3 -f banks
//	rivercross graph --highlight | dot -Tsvg > space.svg
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
