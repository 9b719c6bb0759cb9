package runtime

import (
	"github.com/aretw0/turing/internal/tape"
	"github.com/aretw0/turing/pkg/domain"
)

// ExecutionState is the mutable part of a machine: tape, head and current state.
// The transition table lives in the immutable domain.Description.
type ExecutionState struct {
	Tape  *tape.Tape
	Head  int
	State int
	Steps int
}

// NewExecutionState starts in domain.InitialState with the head at index head.
func NewExecutionState(t *tape.Tape, head int) *ExecutionState {
	return &ExecutionState{
		Tape:  t,
		Head:  head,
		State: domain.InitialState,
	}
}

// Move shifts the head by one cell.
func (s *ExecutionState) Move(d domain.Direction) {
	s.Head += d.Delta()
}

// PrepareTape builds the initial tape of desc: one zero cell, padded to Offset+1 cells when
// an offset is declared, then overlaid with values (which may be nil).
func PrepareTape(desc *domain.Description, values []int) *tape.Tape {
	t := tape.New()
	if desc.HasOffset {
		t.Pad(desc.Offset + 1)
	}
	if values != nil {
		t.Overlay(values)
	}
	return t
}
