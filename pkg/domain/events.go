package domain

// EventType defines the category of an engine event.
type EventType string

const (
	EventStep EventType = "step"
	EventHalt EventType = "halt"
)

// StepEvent is emitted before a transition is applied.
type StepEvent struct {
	Type       EventType  `json:"type"`
	Step       int        `json:"step"`
	Head       int        `json:"head"` // index the symbol was read from
	State      int        `json:"state"`
	Read       int        `json:"read"`
	Transition Transition `json:"transition"`
}

// Cell is a materialized tape cell.
type Cell struct {
	Index int `json:"index"`
	Value int `json:"value"`
}

// HaltEvent is emitted once, when no transition matches.
type HaltEvent struct {
	Type     EventType `json:"type"`
	Steps    int       `json:"steps"`
	Head     int       `json:"head"`
	State    int       `json:"state"`
	Read     int       `json:"read"`
	Accepted bool      `json:"accepted"`
	Cells    []Cell    `json:"cells"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks are side effects only and never alter control flow.
type LifecycleHooks struct {
	OnStep func(*StepEvent)
	OnHalt func(*HaltEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStep: chain(h.OnStep, other.OnStep),
		OnHalt: chain(h.OnHalt, other.OnHalt),
	}
}

func chain[E any](a, b func(*E)) func(*E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e *E) {
		a(e)
		b(e)
	}
}
