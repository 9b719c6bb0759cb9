package observability

import (
	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the emulator collectors.
type Metrics struct {
	Steps     prometheus.Counter
	Runs      *prometheus.CounterVec
	RunSteps  prometheus.Histogram
	TapeCells prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// Passing nil registers nothing, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "turing_steps_total",
			Help: "Total number of transitions applied across all runs",
		}),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_runs_total",
				Help: "Total number of halted runs by verdict",
			},
			[]string{"verdict"},
		),
		RunSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "turing_run_steps",
			Help:    "Number of transitions applied per halted run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		TapeCells: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "turing_tape_cells",
			Help:    "Materialized tape cells at halt",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Steps, m.Runs, m.RunSteps, m.TapeCells)
	}
	return m
}

// Hooks returns lifecycle hooks recording into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(*domain.StepEvent) {
			m.Steps.Inc()
		},
		OnHalt: func(e *domain.HaltEvent) {
			verdict := "rejected"
			if e.Accepted {
				verdict = "accepted"
			}
			m.Runs.WithLabelValues(verdict).Inc()
			m.RunSteps.Observe(float64(e.Steps))
			m.TapeCells.Observe(float64(len(e.Cells)))
		},
	}
}
