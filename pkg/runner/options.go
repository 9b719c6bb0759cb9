package runner

import (
	"log/slog"
	"time"

	"github.com/aretw0/turing/pkg/ports"
)

// DefaultCheckInterval is the number of steps between two context checks.
const DefaultCheckInterval = 1024

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithMaxSteps caps the number of transitions. Zero means no limit.
func WithMaxSteps(n int) Option {
	return func(r *Runner) {
		r.MaxSteps = n
	}
}

// WithStore configures the ResultStore used to record finished runs.
func WithStore(store ports.ResultStore) Option {
	return func(r *Runner) {
		r.Store = store
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithRunID sets the identifier of the run record. A random ID is used otherwise.
func WithRunID(id string) Option {
	return func(r *Runner) {
		r.RunID = id
	}
}

// WithLabels records the configuration and tape names in the run record.
func WithLabels(machine, tape string) Option {
	return func(r *Runner) {
		r.Machine = machine
		r.Tape = tape
	}
}

// WithCheckInterval sets how many steps run between two context checks.
func WithCheckInterval(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.CheckInterval = n
		}
	}
}

// WithClock overrides the time source used for run records.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.Now = now
	}
}
