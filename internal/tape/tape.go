// Package tape implements the bi-infinite, zero-initialized tape of the machine.
//
// Cells are materialized lazily. Non-negative indices live in one slice (index i at
// position i) and negative indices in another (index -k at position k-1), so index 0
// belongs to the positive side only.
package tape

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
)

// Tape is the machine memory. The zero value is an empty tape ready for use.
type Tape struct {
	pos []int
	neg []int
}

// New creates a tape with a single zero cell at index 0.
func New() *Tape {
	return &Tape{pos: []int{0}}
}

// Pad materializes the positive side up to n cells, all zero.
func (t *Tape) Pad(n int) {
	for len(t.pos) < n {
		t.pos = append(t.pos, 0)
	}
}

// Overlay writes values onto the positive side starting at index 0.
// Existing cells are overwritten in place and values past the current bound are appended.
func (t *Tape) Overlay(values []int) {
	for i, v := range values {
		if i < len(t.pos) {
			t.pos[i] = v
			continue
		}
		t.pos = append(t.pos, v)
	}
}

// Read returns the value at index, materializing it as 0 when it sits exactly one cell past
// the current bound. The head never moves more than one cell between reads, so reading
// further away is a caller bug and panics.
func (t *Tape) Read(index int) int {
	side, i := t.locate(index)
	switch {
	case i < len(*side):
	case i == len(*side):
		*side = append(*side, 0)
	default:
		panic(fmt.Sprintf("tape: read at %d skips unmaterialized cells", index))
	}
	return (*side)[i]
}

// Peek returns the value at index without materializing it. Unmaterialized cells read as 0.
func (t *Tape) Peek(index int) int {
	side, i := t.locate(index)
	if i < len(*side) {
		return (*side)[i]
	}
	return 0
}

// Write overwrites a materialized cell. Writing a cell that was never read panics.
func (t *Tape) Write(index, value int) {
	side, i := t.locate(index)
	if i >= len(*side) {
		panic(fmt.Sprintf("tape: write at %d before read", index))
	}
	(*side)[i] = value
}

// Bounds returns the lowest and highest materialized indices.
// An empty tape returns (0, -1).
func (t *Tape) Bounds() (lo, hi int) {
	return -len(t.neg), len(t.pos) - 1
}

// Len returns the number of materialized cells.
func (t *Tape) Len() int {
	return len(t.neg) + len(t.pos)
}

// Cells returns every materialized cell in index order.
func (t *Tape) Cells() []domain.Cell {
	out := make([]domain.Cell, 0, t.Len())
	for k := len(t.neg); k >= 1; k-- {
		out = append(out, domain.Cell{Index: -k, Value: t.neg[k-1]})
	}
	for i, v := range t.pos {
		out = append(out, domain.Cell{Index: i, Value: v})
	}
	return out
}

func (t *Tape) locate(index int) (*[]int, int) {
	if index >= 0 {
		return &t.pos, index
	}
	return &t.neg, -index - 1
}
