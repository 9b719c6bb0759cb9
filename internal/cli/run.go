package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/presentation/trace"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/runner"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	MachinePath string
	TapePath    string
	Display     bool
	Debug       bool
	MaxSteps    int
	JSON        bool
	RedisURL    string
	RunID       string

	Stdout io.Writer
	Stderr io.Writer
}

// RunOutput is printed by `run --json`.
type RunOutput struct {
	RunID string `json:"run_id"`
	domain.Result
	Verdict string        `json:"verdict"`
	Trace   []string      `json:"trace"`
	Tape    []domain.Cell `json:"tape"`
}

// Execute builds the machine, runs it to completion and prints the outcome.
func Execute(ctx context.Context, opts RunOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.MachinePath == "" {
		return fmt.Errorf("no machine configuration given (use --machine or a profile)")
	}

	logger := logging.NewWithWriter(opts.Stderr, logging.LevelFor(opts.Debug))

	machineOpts := []turing.Option{
		turing.WithTapeFile(opts.TapePath),
		turing.WithLogger(logger),
	}
	recorder := &trace.Recorder{}
	if opts.JSON {
		machineOpts = append(machineOpts, turing.WithLifecycleHooks(recorder.Hooks()))
	} else if opts.Display || opts.Debug {
		printer := trace.NewPrinter(opts.Stdout, trace.WithProfile(ColorProfile(opts.Stdout)))
		machineOpts = append(machineOpts, turing.WithLifecycleHooks(printer.Hooks()))
	}

	m, err := turing.New(opts.MachinePath, machineOpts...)
	if err != nil {
		return err
	}

	runOpts := []runner.Option{
		runner.WithMaxSteps(opts.MaxSteps),
		runner.WithLogger(logger),
		runner.WithLabels(opts.MachinePath, opts.TapePath),
	}
	if opts.RunID != "" {
		runOpts = append(runOpts, runner.WithRunID(opts.RunID))
	}
	if opts.RedisURL != "" {
		store, err := redis.NewFromURL(opts.RedisURL)
		if err != nil {
			return err
		}
		defer store.Close()
		runOpts = append(runOpts, runner.WithStore(store))
	}

	r := runner.NewRunner(runOpts...)
	result, err := r.Run(ctx, m)
	if err != nil {
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(opts.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(RunOutput{
			RunID:   r.RunID,
			Result:  result,
			Verdict: result.Verdict(),
			Trace:   recorder.Lines(),
			Tape:    m.Cells(),
		})
	}

	fmt.Fprintf(opts.Stdout, "The Turing machine ended in state: s%d\n", result.FinalState)
	fmt.Fprintf(opts.Stdout, "The input is %s\n", result.Verdict())
	return nil
}

// Overlay turns a recorded run into graph highlights.
func Overlay(rec *trace.Recorder) *graph.GraphOverlay {
	overlay := &graph.GraphOverlay{}
	seen := make(map[int]bool)
	visit := func(state int) {
		if !seen[state] {
			seen[state] = true
			overlay.VisitedStates = append(overlay.VisitedStates, state)
		}
	}
	for _, e := range rec.Steps {
		visit(e.State)
		visit(e.Transition.Next)
	}
	if rec.Halt != nil {
		visit(rec.Halt.State)
		overlay.CurrentState = rec.Halt.State
		overlay.Halted = true
	}
	return overlay
}
