package runner_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.Stepper = (*turing.Machine)(nil)

const (
	threeSteps = "state_number:4;\naccepting_states:3;\ntransitions:\n(0,0):(1,1,RIGHT);\n(1,0):(2,1,RIGHT);\n(2,0):(3,1,RIGHT);\n"
	forever    = "state_number:1;\naccepting_states:0;\ntransitions:\n(0,0):(0,0,RIGHT);\n"
)

func load(t *testing.T, config string) *turing.Machine {
	t.Helper()
	m, err := turing.Load(strings.NewReader(config), nil)
	require.NoError(t, err)
	return m
}

func TestRunner_HaltingMachine(t *testing.T) {
	r := runner.NewRunner()
	result, err := r.Run(context.Background(), load(t, threeSteps))
	require.NoError(t, err)
	assert.Equal(t, domain.Result{FinalState: 3, Accepted: true, Steps: 3, Head: 3}, result)
}

func TestRunner_StepLimit(t *testing.T) {
	r := runner.NewRunner(runner.WithMaxSteps(500))
	m := load(t, forever)

	_, err := r.Run(context.Background(), m)
	assert.ErrorIs(t, err, runner.ErrStepLimit)
	assert.False(t, m.Halted())
	assert.Equal(t, 500, m.Steps())

	_, err = m.Result()
	assert.ErrorIs(t, err, domain.ErrNotYetRun)
}

func TestRunner_LimitEqualToStepsStillHalts(t *testing.T) {
	r := runner.NewRunner(runner.WithMaxSteps(3))
	result, err := r.Run(context.Background(), load(t, threeSteps))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Steps)
}

func TestRunner_LimitBelowStepsFails(t *testing.T) {
	r := runner.NewRunner(runner.WithMaxSteps(2))
	m := load(t, threeSteps)

	_, err := r.Run(context.Background(), m)
	assert.ErrorIs(t, err, runner.ErrStepLimit)
	assert.Equal(t, 2, m.Steps())
	assert.Equal(t, 2, m.State())
}

func TestRunner_LimitOfOneAppliesOneTransition(t *testing.T) {
	r := runner.NewRunner(runner.WithMaxSteps(1))
	m := load(t, forever)

	_, err := r.Run(context.Background(), m)
	assert.ErrorIs(t, err, runner.ErrStepLimit)
	assert.Equal(t, 1, m.Steps())
	assert.Equal(t, 1, m.Head())
}

func TestRunner_Cancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	r := runner.NewRunner(runner.WithCheckInterval(64))
	_, err := r.Run(ctx, load(t, forever))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunner_RecordsResult(t *testing.T) {
	store := memory.NewStore()
	clock := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	r := runner.NewRunner(
		runner.WithStore(store),
		runner.WithRunID("run-1"),
		runner.WithLabels("machine.txt", "tape.txt"),
		runner.WithClock(func() time.Time { return clock }),
	)
	result, err := r.Run(context.Background(), load(t, threeSteps))
	require.NoError(t, err)

	record, err := store.Load(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, result, record.Result)
	assert.Equal(t, "machine.txt", record.Machine)
	assert.Equal(t, "tape.txt", record.Tape)
	assert.Equal(t, clock, record.StartedAt)
}

func TestRunner_DoesNotRecordUnfinishedRuns(t *testing.T) {
	store := memory.NewStore()
	r := runner.NewRunner(runner.WithStore(store), runner.WithMaxSteps(10))

	_, err := r.Run(context.Background(), load(t, forever))
	require.ErrorIs(t, err, runner.ErrStepLimit)

	runs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestNewRunner_GeneratesRunID(t *testing.T) {
	a := runner.NewRunner()
	b := runner.NewRunner()
	assert.NotEmpty(t, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
}
