package river

import "fmt"

// Model is a validated puzzle instance: n people per population and an
// ordered catalog of boat loads. A Model is immutable after construction
// and safe for concurrent use.
type Model struct {
	n        int
	moves    []Move
	capacity int
}

// NewModel validates n and moves and returns a Model.
//
// Errors (all wrap ErrInvalidConfiguration):
//   - n < 0
//   - empty catalog
//   - a load with a negative count or no passengers
//   - the same load listed twice
func NewModel(n int, moves []Move) (*Model, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: population must be non-negative (%d)", ErrInvalidConfiguration, n)
	}
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: move catalog is empty", ErrInvalidConfiguration)
	}

	seen := make(map[Move]struct{}, len(moves))
	capacity := 0
	for i, mv := range moves {
		if mv.M < 0 || mv.C < 0 {
			return nil, fmt.Errorf("%w: move %d %v has a negative count", ErrInvalidConfiguration, i, mv)
		}
		if mv.Size() == 0 {
			return nil, fmt.Errorf("%w: move %d carries nobody", ErrInvalidConfiguration, i)
		}
		if _, dup := seen[mv]; dup {
			return nil, fmt.Errorf("%w: move %v listed twice", ErrInvalidConfiguration, mv)
		}
		seen[mv] = struct{}{}
		capacity = max(capacity, mv.Size())
	}

	own := make([]Move, len(moves))
	copy(own, moves)

	return &Model{n: n, moves: own, capacity: capacity}, nil
}

// N returns the number of missionaries (and of cannibals).
func (m *Model) N() int { return m.n }

// Capacity returns the largest load in the catalog.
func (m *Model) Capacity() int { return m.capacity }

// Moves returns a copy of the catalog in enumeration order.
func (m *Model) Moves() []Move {
	out := make([]Move, len(m.moves))
	copy(out, m.moves)
	return out
}

// Initial returns the start state: everyone and the boat on the left bank.
// With n == 0 there is nobody to ferry, so the start is the goal itself.
func (m *Model) Initial() State { return Initial(m.n) }

// Goal returns (0, 0, 0): everyone and the boat on the right bank.
func (m *Model) Goal() State { return Goal() }

// IsSafe applies the bank safety rule to this model's n.
func (m *Model) IsSafe(leftM, leftC int) bool { return IsSafe(leftM, leftC, m.n) }

// Valid reports whether s lies within range, has a well-formed boat flag,
// and is safe.
func (m *Model) Valid(s State) bool {
	if s.B != BoatLeft && s.B != BoatRight {
		return false
	}
	return inRange(s.M, m.n) && inRange(s.C, m.n) && IsSafe(s.M, s.C, m.n)
}

// Apply sends mv across from the bank holding the boat.
// ok is false when the load is not available on that bank or the resulting
// state is unsafe.
func (m *Model) Apply(s State, mv Move) (next State, ok bool) {
	return apply(s, mv, m.n)
}

// Successors returns every feasible state one crossing away from s, in
// catalog order. Duplicates are not filtered.
func (m *Model) Successors(s State) []State {
	return successors(s, m.moves, m.n)
}

// Initial returns the start state for n people per population.
func Initial(n int) State {
	if n == 0 {
		return State{B: BoatRight}
	}
	return State{M: n, C: n, B: BoatLeft}
}

// Goal returns the target state (0, 0, 0).
func Goal() State { return State{B: BoatRight} }

// IsSafe reports whether both banks are safe when the left bank holds leftM
// missionaries and leftC cannibals out of n each. A bank is unsafe iff
// 0 < missionaries < cannibals on it.
func IsSafe(leftM, leftC, n int) bool {
	rightM, rightC := n-leftM, n-leftC
	return bankSafe(leftM, leftC) && bankSafe(rightM, rightC)
}

// Successors expands s with the default two-seat catalog.
func Successors(s State, n int) []State {
	return successors(s, defaultMoves[:], n)
}

// MoveBetween returns the load that carries a to b in one crossing.
// ok is false when b is not a single crossing away from a.
func MoveBetween(a, b State) (mv Move, ok bool) {
	if a.B == b.B {
		return Move{}, false
	}
	dm, dc := a.M-b.M, a.C-b.C
	if !a.BoatOnLeft() {
		dm, dc = -dm, -dc
	}
	if dm < 0 || dc < 0 || dm+dc == 0 {
		return Move{}, false
	}
	return Move{M: dm, C: dc}, true
}

func bankSafe(m, c int) bool { return m == 0 || m >= c }

func inRange(v, n int) bool { return v >= 0 && v <= n }

func successors(s State, moves []Move, n int) []State {
	out := make([]State, 0, len(moves))
	for _, mv := range moves {
		if next, ok := apply(s, mv, n); ok {
			out = append(out, next)
		}
	}
	return out
}

// apply leaves negative or overflowing intermediate counts to the range
// test rather than special-casing an empty bank.
func apply(s State, mv Move, n int) (State, bool) {
	dir := 1
	if s.BoatOnLeft() {
		dir = -1
	}
	next := State{
		M: s.M + dir*mv.M,
		C: s.C + dir*mv.C,
		B: 1 - s.B,
	}
	if !inRange(next.M, n) || !inRange(next.C, n) || !IsSafe(next.M, next.C, n) {
		return State{}, false
	}
	return next, true
}
