package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/google/uuid"
)

// ErrStepLimit is returned when the machine is still running after MaxSteps transitions.
var ErrStepLimit = errors.New("step limit reached")

// Runner bounds the execution of a machine.
type Runner struct {
	// MaxSteps caps the number of transitions; zero means unlimited.
	MaxSteps int

	// CheckInterval is the number of steps between context checks.
	CheckInterval int

	// Store records finished runs. If nil, nothing is recorded.
	Store ports.ResultStore

	// RunID, Machine and Tape label the run record.
	RunID   string
	Machine string
	Tape    string

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	Now func() time.Time
}

// NewRunner creates a Runner with no step limit.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		CheckInterval: DefaultCheckInterval,
		Now:           time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	return r
}

// Run advances m until it halts, the step limit is hit, or ctx is done.
// On halt the result is recorded in the Store (when configured) and returned.
func (r *Runner) Run(ctx context.Context, m ports.Stepper) (domain.Result, error) {
	started := r.Now()
	logger := r.Logger.With("run_id", r.RunID)
	logger.Debug("run started", "max_steps", r.MaxSteps)

	interval := r.CheckInterval
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	for i := 0; ; i++ {
		if i%interval == 0 {
			if err := ctx.Err(); err != nil {
				logger.Debug("run canceled", "steps", m.Steps())
				return domain.Result{}, fmt.Errorf("run canceled after %d steps: %w", m.Steps(), err)
			}
		}
		// A machine that halts right at the limit still finishes.
		if r.MaxSteps > 0 && m.Steps() >= r.MaxSteps && !m.WillHalt() {
			logger.Debug("step limit reached", "steps", r.MaxSteps)
			return domain.Result{}, fmt.Errorf("%w: still running after %d steps", ErrStepLimit, r.MaxSteps)
		}
		if m.Step() {
			break
		}
	}

	result, err := m.Result()
	if err != nil {
		return domain.Result{}, err
	}
	logger.Debug("run finished", "final_state", result.FinalState, "accepted", result.Accepted, "steps", result.Steps)

	if err := r.record(ctx, result, started); err != nil {
		return result, fmt.Errorf("critical persistence error: %w", err)
	}
	return result, nil
}

func (r *Runner) record(ctx context.Context, result domain.Result, started time.Time) error {
	if r.Store == nil {
		return nil
	}
	record := &domain.RunRecord{
		ID:         r.RunID,
		Machine:    r.Machine,
		Tape:       r.Tape,
		Result:     result,
		StartedAt:  started,
		FinishedAt: r.Now(),
	}
	if err := r.Store.Save(ctx, record); err != nil {
		return err
	}
	r.Logger.Debug("run recorded", "run_id", r.RunID)
	return nil
}
