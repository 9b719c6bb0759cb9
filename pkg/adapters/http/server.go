package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/trace"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// DefaultMaxSteps caps runs whose request does not set max_steps.
	DefaultMaxSteps = 100_000

	// DefaultMaxTapeCells caps the initial tape, tape_offset padding included.
	DefaultMaxTapeCells = 1 << 20

	maxBodyBytes = 8 << 20
)

// RunRequest is the body of POST /run.
type RunRequest struct {
	Config   string `json:"config"`
	Tape     string `json:"tape,omitempty"`
	MaxSteps int    `json:"max_steps,omitempty"`
}

// RunResponse is returned when the machine halted.
type RunResponse struct {
	RunID string `json:"run_id"`
	domain.Result
	Trace []string `json:"trace,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
	Line  int    `json:"line,omitempty"`
	Cell  *int   `json:"cell,omitempty"`
}

// Server runs machines on behalf of HTTP clients.
// Every request builds a fresh machine, so the server is safe for concurrent use.
type Server struct {
	maxSteps int
	maxCells int
	store    ports.ResultStore
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *observability.Metrics
}

// Option configures the Server.
type Option func(*Server)

// WithMaxSteps sets the step cap applied to every run. Requests may lower it, never raise it.
func WithMaxSteps(n int) Option {
	return func(s *Server) {
		s.maxSteps = n
	}
}

// WithMaxTapeCells sets the largest initial tape a request may build. Zero means no limit.
func WithMaxTapeCells(n int) Option {
	return func(s *Server) {
		s.maxCells = n
	}
}

// WithStore records finished runs and enables GET /runs/{runId}.
func WithStore(store ports.ResultStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler. The embedded OpenAPI document is validated here.
func NewHandler(ctx context.Context, opts ...Option) (http.Handler, error) {
	s := &Server{
		maxSteps: DefaultMaxSteps,
		maxCells: DefaultMaxTapeCells,
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.metrics = observability.NewMetrics(s.registry)

	doc, err := LoadSpec(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := newRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(rawSpec)
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequestSize(maxBodyBytes))
		r.Use(validator.Middleware)
		r.Get("/healthz", s.GetHealth)
		r.Post("/run", s.Run)
		r.Get("/runs/{runId}", s.GetRun)
	})
	return r, nil
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": strings.TrimSpace(turing.Version),
	})
}

// Run handles POST /run.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		s.logger.Warn("run: invalid request body", "err", err)
		return
	}

	var tape io.Reader
	if body.Tape != "" {
		tape = strings.NewReader(body.Tape)
	}
	recorder := &trace.Recorder{}
	m, err := turing.Load(strings.NewReader(body.Config), tape,
		turing.WithLifecycleHooks(recorder.Hooks()),
		turing.WithLifecycleHooks(s.metrics.Hooks()),
		turing.WithLogger(s.logger),
		turing.WithMaxTapeCells(s.maxCells),
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, formatError(err))
		return
	}

	limit := s.maxSteps
	if body.MaxSteps > 0 && (limit == 0 || body.MaxSteps < limit) {
		limit = body.MaxSteps
	}
	run := runner.NewRunner(
		runner.WithMaxSteps(limit),
		runner.WithStore(s.store),
		runner.WithLogger(s.logger),
		runner.WithLabels("http", ""),
	)

	result, err := run.Run(r.Context(), m)
	switch {
	case errors.Is(err, runner.ErrStepLimit):
		writeError(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
		return
	case err != nil:
		s.logger.Error("run failed", "run_id", run.RunID, "err", err)
		writeError(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, RunResponse{
		RunID:  run.RunID,
		Result: result,
		Trace:  recorder.Lines(),
	})
}

// GetRun handles GET /runs/{runId}.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "runId")
	if s.store == nil {
		writeError(w, http.StatusNotFound, errorBody{Error: domain.ErrRunNotFound.Error()})
		return
	}
	record, err := s.store.Load(r.Context(), id)
	if errors.Is(err, domain.ErrRunNotFound) {
		writeError(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}
	if err != nil {
		s.logger.Error("load run failed", "run_id", id, "err", err)
		writeError(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func formatError(err error) errorBody {
	body := errorBody{Error: err.Error()}
	var cfgErr *domain.ConfigFormatError
	if errors.As(err, &cfgErr) {
		body.Line = cfgErr.Line
	}
	var tapeErr *domain.TapeFormatError
	if errors.As(err, &tapeErr) {
		body.Cell = &tapeErr.Cell
	}
	return body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, body errorBody) {
	writeJSON(w, status, body)
}
