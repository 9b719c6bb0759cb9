package domain

import "slices"

// AcceptingSet is the set of states in which halting means acceptance.
// Duplicate declarations are harmless.
type AcceptingSet map[int]struct{}

// NewAcceptingSet builds a set from the given states.
func NewAcceptingSet(states ...int) AcceptingSet {
	s := make(AcceptingSet, len(states))
	for _, st := range states {
		s.Add(st)
	}
	return s
}

// Add inserts a state.
func (s AcceptingSet) Add(state int) {
	s[state] = struct{}{}
}

// Contains reports whether state is accepting.
func (s AcceptingSet) Contains(state int) bool {
	_, ok := s[state]
	return ok
}

// States returns the members in ascending order.
func (s AcceptingSet) States() []int {
	out := make([]int, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	slices.Sort(out)
	return out
}

// Description is the parsed form of a machine configuration.
type Description struct {
	// States is the declared number of states; valid states are [0, States).
	States int

	// Accepting holds the accepting states.
	Accepting AcceptingSet

	// Offset is the initial head index. The positive tape is pre-padded with Offset+1 cells
	// when HasOffset is set.
	Offset    int
	HasOffset bool

	// Table is the transition table.
	Table *Table
}

// InitialState is the state every machine starts in.
const InitialState = 0

// Result is the outcome of a halted run.
type Result struct {
	FinalState int  `json:"final_state"`
	Accepted   bool `json:"accepted"`
	Steps      int  `json:"steps"`
	Head       int  `json:"head"`
}

// Verdict returns "accepted" or "rejected".
func (r Result) Verdict() string {
	if r.Accepted {
		return "accepted"
	}
	return "rejected"
}
