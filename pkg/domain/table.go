package domain

import (
	"cmp"
	"slices"
)

// Table maps (state, symbol) pairs to transitions.
// A later registration for the same key replaces the earlier one.
// Tables are populated by the compiler and treated as read-only afterwards.
type Table struct {
	entries map[Key]Transition
}

// NewTable creates an empty transition table.
func NewTable() *Table {
	return &Table{entries: make(map[Key]Transition)}
}

// Register records t for key k, overwriting any previous definition.
func (t *Table) Register(k Key, tr Transition) {
	t.entries[k] = tr
}

// Lookup returns the transition registered for (state, symbol).
// The boolean is false when the machine has nowhere to go, which is the halting condition.
func (t *Table) Lookup(state, symbol int) (Transition, bool) {
	tr, ok := t.entries[Key{State: state, Symbol: symbol}]
	return tr, ok
}

// Len returns the number of registered transitions.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns every transition sorted by state then symbol.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for k, tr := range t.entries {
		out = append(out, Entry{Key: k, Transition: tr})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(a.State, b.State); c != 0 {
			return c
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})
	return out
}
