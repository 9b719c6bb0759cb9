package domain

import "fmt"

// Key identifies a transition by the current state and the symbol under the head.
type Key struct {
	State  int `json:"state"`
	Symbol int `json:"symbol"`
}

// Transition defines what the machine does once its Key matched.
type Transition struct {
	Next  int       `json:"next"`
	Write int       `json:"write"`
	Move  Direction `json:"move"`
}

// String renders the transition the way the trace prints it.
func (t Transition) String() string {
	return fmt.Sprintf("(%d, %d, %s)", t.Next, t.Write, t.Move)
}

// Entry is a registered transition together with its key.
type Entry struct {
	Key
	Transition
}
