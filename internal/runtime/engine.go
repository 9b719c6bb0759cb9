package runtime

import (
	"io"
	"log/slog"

	"github.com/aretw0/turing/internal/tape"
	"github.com/aretw0/turing/pkg/domain"
)

// Status is the state of the execution loop itself, not of the emulated machine.
type Status int

const (
	Running Status = iota
	Halted
)

// Engine is the fetch-decode-execute loop of a single-tape machine.
// An Engine is single-use and not safe for concurrent use.
type Engine struct {
	desc   *domain.Description
	exec   *ExecutionState
	status Status
	result domain.Result

	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine binds a parsed description to a prepared tape.
// The head starts at desc.Offset and the machine in domain.InitialState.
func NewEngine(desc *domain.Description, t *tape.Tape, opts ...EngineOption) *Engine {
	e := &Engine{
		desc:   desc,
		exec:   NewExecutionState(t, desc.Offset),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Step performs one cycle and reports whether the machine has halted.
// Calling Step on a halted engine does nothing.
func (e *Engine) Step() bool {
	if e.status == Halted {
		return true
	}

	s := e.exec
	read := s.Tape.Read(s.Head)
	tr, ok := e.desc.Table.Lookup(s.State, read)
	if !ok {
		e.halt(read)
		return true
	}

	if e.hooks.OnStep != nil {
		e.hooks.OnStep(&domain.StepEvent{
			Type:       domain.EventStep,
			Step:       s.Steps,
			Head:       s.Head,
			State:      s.State,
			Read:       read,
			Transition: tr,
		})
	}

	s.Tape.Write(s.Head, tr.Write)
	s.State = tr.Next
	s.Move(tr.Move)
	s.Steps++
	return false
}

// Run loops until no transition applies. A machine that never halts never returns.
func (e *Engine) Run() domain.Result {
	e.logger.Debug("run started", "state", e.exec.State, "head", e.exec.Head)
	for !e.Step() {
	}
	return e.result
}

func (e *Engine) halt(read int) {
	s := e.exec
	e.status = Halted
	e.result = domain.Result{
		FinalState: s.State,
		Accepted:   e.desc.Accepting.Contains(s.State),
		Steps:      s.Steps,
		Head:       s.Head,
	}

	e.logger.Debug("machine halted",
		"state", s.State,
		"read", read,
		"head", s.Head,
		"steps", s.Steps,
		"accepted", e.result.Accepted,
	)

	if e.hooks.OnHalt != nil {
		e.hooks.OnHalt(&domain.HaltEvent{
			Type:     domain.EventHalt,
			Steps:    s.Steps,
			Head:     s.Head,
			State:    s.State,
			Read:     read,
			Accepted: e.result.Accepted,
			Cells:    s.Tape.Cells(),
		})
	}
}

// Halted reports whether the loop has terminated.
func (e *Engine) Halted() bool {
	return e.status == Halted
}

// WillHalt reports whether the next Step halts instead of applying a transition.
// It leaves the tape untouched.
func (e *Engine) WillHalt() bool {
	if e.status == Halted {
		return true
	}
	s := e.exec
	_, ok := e.desc.Table.Lookup(s.State, s.Tape.Peek(s.Head))
	return !ok
}

// Result returns the outcome of the run, or domain.ErrNotYetRun before halt.
func (e *Engine) Result() (domain.Result, error) {
	if e.status != Halted {
		return domain.Result{}, domain.ErrNotYetRun
	}
	return e.result, nil
}

// FinalState returns the state the machine halted in.
func (e *Engine) FinalState() (int, error) {
	r, err := e.Result()
	return r.FinalState, err
}

// Accepted reports whether the machine halted in an accepting state.
func (e *Engine) Accepted() (bool, error) {
	r, err := e.Result()
	return r.Accepted, err
}

// State returns the current machine state.
func (e *Engine) State() int { return e.exec.State }

// Head returns the current head index.
func (e *Engine) Head() int { return e.exec.Head }

// Steps returns the number of transitions applied so far.
func (e *Engine) Steps() int { return e.exec.Steps }

// Cells returns the materialized tape.
func (e *Engine) Cells() []domain.Cell { return e.exec.Tape.Cells() }
