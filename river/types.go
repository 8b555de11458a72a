// Package river declares the puzzle value types, the default move catalog,
// and sentinel errors.
package river

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a Model cannot be built from the
// supplied N or move catalog. It is distinct from "no solution", which is a
// normal search outcome.
var ErrInvalidConfiguration = errors.New("river: invalid configuration")

// Boat positions.
const (
	BoatRight = 0
	BoatLeft  = 1
)

// State is one configuration of the puzzle, described from the left bank.
//
// M and C count missionaries and cannibals on the left bank; the right bank
// holds the remainder. B is BoatLeft or BoatRight. State is comparable and
// is used directly as a map key by the search.
type State struct {
	M int `json:"m" yaml:"m"`
	C int `json:"c" yaml:"c"`
	B int `json:"b" yaml:"b"`
}

// String formats s as "(M, C, B)".
func (s State) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.M, s.C, s.B)
}

// BoatOnLeft reports whether the boat is moored on the left bank.
func (s State) BoatOnLeft() bool { return s.B == BoatLeft }

// Right returns the missionary and cannibal counts on the right bank for a
// puzzle of n people per population.
func (s State) Right(n int) (m, c int) {
	return n - s.M, n - s.C
}

// Move is a boat load: M missionaries and C cannibals cross together.
type Move struct {
	M int `json:"m" yaml:"m"`
	C int `json:"c" yaml:"c"`
}

// Size is the number of passengers in the load.
func (mv Move) Size() int { return mv.M + mv.C }

// String formats mv as "(m, c)".
func (mv Move) String() string {
	return fmt.Sprintf("(%d, %d)", mv.M, mv.C)
}

// defaultMoves is the two-seat catalog in its fixed enumeration order.
var defaultMoves = [...]Move{{1, 0}, {2, 0}, {0, 1}, {0, 2}, {1, 1}}

// DefaultMoves returns a fresh copy of the two-seat catalog
// (1,0) (2,0) (0,1) (0,2) (1,1).
func DefaultMoves() []Move {
	out := make([]Move, len(defaultMoves))
	copy(out, defaultMoves[:])
	return out
}

// MaxCapacity bounds the boat capacity accepted by MovesForCapacity. The
// catalog grows quadratically with capacity.
const MaxCapacity = 64

// MovesForCapacity builds the catalog for a boat carrying 1..k people:
// missionary-only loads (1,0)..(k,0), cannibal-only loads (0,1)..(0,k),
// then mixed loads ordered by missionaries, then cannibals.
// For k == 2 the result equals DefaultMoves. k must lie in [1, MaxCapacity].
func MovesForCapacity(k int) ([]Move, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: boat capacity must be positive (%d)", ErrInvalidConfiguration, k)
	}
	if k > MaxCapacity {
		return nil, fmt.Errorf("%w: boat capacity %d exceeds %d", ErrInvalidConfiguration, k, MaxCapacity)
	}
	moves := make([]Move, 0, k*(k+3)/2)
	for m := 1; m <= k; m++ {
		moves = append(moves, Move{M: m})
	}
	for c := 1; c <= k; c++ {
		moves = append(moves, Move{C: c})
	}
	for m := 1; m < k; m++ {
		for c := 1; m+c <= k; c++ {
			moves = append(moves, Move{M: m, C: c})
		}
	}
	return moves, nil
}
