// Package trace renders the per-step execution trace and the halt diagnostics.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/muesli/termenv"
)

// Printer writes a human readable trace. It is driven by engine lifecycle hooks.
type Printer struct {
	out     *termenv.Output
	started bool
}

// Option configures a Printer.
type Option func(*printerConfig)

type printerConfig struct {
	profile termenv.Profile
	set     bool
}

// WithProfile forces a color profile. termenv.Ascii disables styling.
func WithProfile(p termenv.Profile) Option {
	return func(c *printerConfig) {
		c.profile = p
		c.set = true
	}
}

// NewPrinter creates a trace printer writing to w.
// Without WithProfile the profile is detected from w.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	var cfg printerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	var outOpts []termenv.OutputOption
	if cfg.set {
		outOpts = append(outOpts, termenv.WithProfile(cfg.profile))
	}
	return &Printer{out: termenv.NewOutput(w, outOpts...)}
}

// Hooks returns the lifecycle hooks feeding the printer.
func (p *Printer) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: p.Step,
		OnHalt: p.Halt,
	}
}

func (p *Printer) header() {
	if p.started {
		return
	}
	p.started = true
	fmt.Fprintln(p.out, p.out.String("Execution :").Bold())
	fmt.Fprintln(p.out, "  Step  |  Tape Pos  |  Transition")
}

// Step prints one executed transition.
func (p *Printer) Step(e *domain.StepEvent) {
	p.header()
	fmt.Fprintf(p.out, "  %4d  |  %-+8d  |  %s\n", e.Step, e.Head, FormatStep(e.State, e.Read, e.Transition))
}

// Halt prints the unmatched pair and the materialized tape.
func (p *Printer) Halt(e *domain.HaltEvent) {
	p.header()
	verdict := p.out.String("rejected").Foreground(p.out.Color("#fb7185"))
	if e.Accepted {
		verdict = p.out.String("accepted").Foreground(p.out.Color("#4ade80"))
	}
	fmt.Fprintf(p.out, "No transition for (state: %d ; read: %d), %s\n", e.State, e.Read, verdict)
	fmt.Fprintf(p.out, "  Current Tape position: %d\n", e.Head)
	fmt.Fprint(p.out, TapeTable(e.Cells, e.Head))
	fmt.Fprintln(p.out, "Done")
	fmt.Fprintln(p.out)
}

// FormatStep renders "( state ; read ) => (next, write, MOVE)".
func FormatStep(state, read int, tr domain.Transition) string {
	return fmt.Sprintf("( %d ; %d ) => %s", state, read, tr)
}

// TapeTable renders cells as an aligned two-row table: indices above values.
// Every column is six characters wide; the column under the head is marked with '^'.
func TapeTable(cells []domain.Cell, head int) string {
	var idx, val, mark strings.Builder
	idx.WriteString("    ")
	val.WriteString("    ")
	mark.WriteString("    ")
	for _, c := range cells {
		if c.Index < 0 {
			fmt.Fprintf(&idx, " %+4d ", c.Index)
			fmt.Fprintf(&val, " %3d  ", c.Value)
		} else {
			fmt.Fprintf(&idx, " %-+4d ", c.Index)
			fmt.Fprintf(&val, "  %-3d ", c.Value)
		}
		if c.Index == head {
			mark.WriteString("  ^   ")
		} else {
			mark.WriteString("      ")
		}
	}
	return idx.String() + "\n" + val.String() + "\n" + strings.TrimRight(mark.String(), " ") + "\n"
}

// Recorder collects events for structured output (JSON, HTTP, MCP).
type Recorder struct {
	Steps []domain.StepEvent `json:"steps"`
	Halt  *domain.HaltEvent  `json:"halt,omitempty"`
}

// Hooks returns the lifecycle hooks feeding the recorder.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(e *domain.StepEvent) { r.Steps = append(r.Steps, *e) },
		OnHalt: func(e *domain.HaltEvent) { r.Halt = e },
	}
}

// Lines returns the recorded steps formatted like the printer does.
func (r *Recorder) Lines() []string {
	out := make([]string, 0, len(r.Steps))
	for _, e := range r.Steps {
		out = append(out, FormatStep(e.State, e.Read, e.Transition))
	}
	return out
}
