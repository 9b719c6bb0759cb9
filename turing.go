package turing

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
)

// Machine is the high-level entry point for the library.
// It wraps the internal runtime and provides a simplified API for consumers.
// A Machine is intended for a single run.
type Machine struct {
	engine *runtime.Engine
	desc   *domain.Description

	tapePath string
	maxCells int
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	Name     string
}

// Option defines a functional option for configuring the Machine.
type Option func(*Machine)

// WithTapeFile loads the initial tape from path. An empty path means no tape file.
func WithTapeFile(path string) Option {
	return func(m *Machine) {
		m.tapePath = path
	}
}

// WithMaxTapeCells rejects machines whose initial tape, offset padding included, needs more
// than n cells. Zero means no limit.
func WithMaxTapeCells(n int) Option {
	return func(m *Machine) {
		m.maxCells = n
	}
}

// WithLifecycleHooks registers observability hooks (trace, metrics).
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = m.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithName labels the machine in logs and run records.
func WithName(name string) Option {
	return func(m *Machine) {
		m.Name = name
	}
}

// New builds a machine from a configuration file.
// Construction is all-or-nothing: any parse error returns a nil Machine.
func New(configPath string, opts ...Option) (*Machine, error) {
	m := newMachine(opts, configPath)

	m.logger.Debug("loading machine", "config", configPath, "tape", m.tapePath)

	desc, err := withFile(configPath, compiler.ParseConfig)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}
	m.logger.Debug("config parsed", "states", desc.States, "transitions", desc.Table.Len())

	var values []int
	if m.tapePath != "" {
		values, err = withFile(m.tapePath, compiler.ParseTape)
		if err != nil {
			return nil, fmt.Errorf("tape %s: %w", m.tapePath, err)
		}
		m.logger.Debug("tape parsed", "cells", len(values))
	}

	if err := m.bind(desc, values); err != nil {
		return nil, err
	}
	return m, nil
}

// Load builds a machine from in-memory readers. tape may be nil.
func Load(config io.Reader, tape io.Reader, opts ...Option) (*Machine, error) {
	m := newMachine(opts, "")

	desc, err := compiler.ParseConfig(config)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var values []int
	if tape != nil {
		values, err = compiler.ParseTape(tape)
		if err != nil {
			return nil, fmt.Errorf("tape: %w", err)
		}
	}

	if err := m.bind(desc, values); err != nil {
		return nil, err
	}
	return m, nil
}

func newMachine(opts []Option, name string) *Machine {
	m := &Machine{Name: name}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.Name != "" {
		m.logger = m.logger.With("machine", m.Name)
	}
	return m
}

func (m *Machine) bind(desc *domain.Description, values []int) error {
	if m.maxCells > 0 {
		cells := max(len(values), 1)
		if desc.HasOffset {
			cells = max(cells, desc.Offset+1)
		}
		if cells > m.maxCells {
			return &domain.TapeLimitError{Cells: cells, Max: m.maxCells}
		}
	}

	m.desc = desc
	m.engine = runtime.NewEngine(desc, runtime.PrepareTape(desc, values),
		runtime.WithLifecycleHooks(m.hooks),
		runtime.WithLogger(m.logger),
	)
	m.logger.Debug("ready to run", "head", m.engine.Head())
	return nil
}

// withFile opens path, hands it to parse and always closes it.
func withFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, &domain.MissingFileError{Path: path}
		}
		return zero, err
	}
	defer f.Close()
	return parse(f)
}

// Step applies one transition and reports whether the machine has halted.
func (m *Machine) Step() bool {
	return m.engine.Step()
}

// Run executes the machine until no transition matches.
// It never returns if the machine does not halt; see pkg/runner for bounded runs.
func (m *Machine) Run() domain.Result {
	return m.engine.Run()
}

// Result returns the outcome, or domain.ErrNotYetRun before halt.
func (m *Machine) Result() (domain.Result, error) {
	return m.engine.Result()
}

// FinalState returns the halting state, or domain.ErrNotYetRun.
func (m *Machine) FinalState() (int, error) {
	return m.engine.FinalState()
}

// Accepted reports acceptance, or domain.ErrNotYetRun.
func (m *Machine) Accepted() (bool, error) {
	return m.engine.Accepted()
}

// WillHalt reports whether the next Step halts without applying a transition.
func (m *Machine) WillHalt() bool { return m.engine.WillHalt() }

// Halted reports whether the machine has stopped.
func (m *Machine) Halted() bool { return m.engine.Halted() }

// Steps returns the number of transitions applied so far.
func (m *Machine) Steps() int { return m.engine.Steps() }

// Head returns the current head index.
func (m *Machine) Head() int { return m.engine.Head() }

// State returns the current state.
func (m *Machine) State() int { return m.engine.State() }

// Cells returns the materialized tape.
func (m *Machine) Cells() []domain.Cell { return m.engine.Cells() }

// Description returns the parsed configuration.
func (m *Machine) Description() *domain.Description { return m.desc }
