package ports

import "github.com/aretw0/turing/pkg/domain"

// Stepper is a machine driven one transition at a time.
// *turing.Machine satisfies it; wrappers use it to bound runs from the outside.
type Stepper interface {
	// Step applies one transition and reports whether the machine has halted.
	Step() bool

	// WillHalt reports, without side effects, whether the next Step halts instead of
	// applying a transition.
	WillHalt() bool

	// Steps returns the number of transitions applied so far.
	Steps() int

	// Result returns the outcome, or domain.ErrNotYetRun before halt.
	Result() (domain.Result, error)
}
