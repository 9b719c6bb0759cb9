package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/trace"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	// DefaultMaxSteps caps tool runs that do not set max_steps.
	DefaultMaxSteps = 100_000

	// DefaultMaxTapeCells caps the initial tape, tape_offset padding included.
	DefaultMaxTapeCells = 1 << 20
)

// RunResponse is the structured result of the run_machine tool.
type RunResponse struct {
	FinalState int           `json:"final_state" jsonschema_description:"State the machine halted in"`
	Accepted   bool          `json:"accepted" jsonschema_description:"Whether the final state is accepting"`
	Steps      int           `json:"steps" jsonschema_description:"Number of transitions applied"`
	Head       int           `json:"head" jsonschema_description:"Final head position"`
	Trace      []string      `json:"trace" jsonschema_description:"Applied transitions in order"`
	Tape       []domain.Cell `json:"tape" jsonschema_description:"Materialized tape cells from lowest to highest index"`
}

// DescribeResponse is the structured result of the describe_machine tool.
type DescribeResponse struct {
	States      int      `json:"states" jsonschema_description:"Declared number of states"`
	Accepting   []int    `json:"accepting" jsonschema_description:"Accepting states in ascending order"`
	Offset      int      `json:"offset" jsonschema_description:"Initial head position"`
	Transitions []string `json:"transitions" jsonschema_description:"Transitions sorted by state then symbol"`
}

// Server exposes the machine runner as MCP tools.
type Server struct {
	maxSteps  int
	maxCells  int
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithMaxSteps sets the step cap. Tool calls may lower it, never raise it.
func WithMaxSteps(n int) Option {
	return func(s *Server) {
		s.maxSteps = n
	}
}

// WithMaxTapeCells sets the largest initial tape a tool call may build. Zero means no limit.
func WithMaxTapeCells(n int) Option {
	return func(s *Server) {
		s.maxCells = n
	}
}

// WithLogger sets the logger. Logs must never go to stdout in stdio mode.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(opts ...Option) *Server {
	s := &Server{
		maxSteps:  DefaultMaxSteps,
		maxCells:  DefaultMaxTapeCells,
		mcpServer: server.NewMCPServer("turing-mcp", strings.TrimSpace(turing.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.registerTools()
	return s
}

// Serve speaks MCP over in and out until in is exhausted or ctx is done.
// Cancellation is a clean shutdown and returns nil.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	s.logger.Debug("mcp server listening")
	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		s.logger.Debug("mcp server stopped")
		return nil
	}
	return err
}

// MCPServer returns the underlying server, mainly for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	runTool := mcp.NewTool("run_machine",
		mcp.WithDescription("Run a Turing machine until it halts and report the final state and verdict."),
		mcp.WithString("config", mcp.Required(), mcp.Description("Machine configuration text")),
		mcp.WithString("tape", mcp.Description("Tape cells separated by ';' (optional)")),
		mcp.WithNumber("max_steps", mcp.Description("Step cap (optional)")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRun))

	describeTool := mcp.NewTool("describe_machine",
		mcp.WithDescription("Parse a machine configuration and list its transitions."),
		mcp.WithString("config", mcp.Required(), mcp.Description("Machine configuration text")),
		mcp.WithOutputSchema[DescribeResponse](),
	)
	s.mcpServer.AddTool(describeTool, mcp.NewStructuredToolHandler(s.handleDescribe))
}

func (s *Server) handleRun(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (RunResponse, error) {
	config, _ := args["config"].(string)

	var tape io.Reader
	if t, ok := args["tape"].(string); ok && t != "" {
		tape = strings.NewReader(t)
	}

	limit := s.maxSteps
	if n, ok := args["max_steps"].(float64); ok && n > 0 && (limit == 0 || int(n) < limit) {
		limit = int(n)
	}

	recorder := &trace.Recorder{}
	m, err := turing.Load(strings.NewReader(config), tape,
		turing.WithLifecycleHooks(recorder.Hooks()),
		turing.WithLogger(s.logger),
		turing.WithMaxTapeCells(s.maxCells),
	)
	if err != nil {
		return RunResponse{}, err
	}

	result, err := runner.NewRunner(runner.WithMaxSteps(limit), runner.WithLogger(s.logger)).Run(ctx, m)
	if err != nil {
		s.logger.Warn("mcp run failed", "err", err)
		return RunResponse{}, err
	}

	return RunResponse{
		FinalState: result.FinalState,
		Accepted:   result.Accepted,
		Steps:      result.Steps,
		Head:       result.Head,
		Trace:      recorder.Lines(),
		Tape:       recorder.Halt.Cells,
	}, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (DescribeResponse, error) {
	config, _ := args["config"].(string)
	m, err := turing.Load(strings.NewReader(config), nil)
	if err != nil {
		return DescribeResponse{}, err
	}
	desc := m.Description()

	entries := desc.Table.Entries()
	transitions := make([]string, 0, len(entries))
	for _, e := range entries {
		transitions = append(transitions, fmt.Sprintf("(%d, %d) => %s", e.Key.State, e.Key.Symbol, e.Transition))
	}
	return DescribeResponse{
		States:      desc.States,
		Accepting:   desc.Accepting.States(),
		Offset:      desc.Offset,
		Transitions: transitions,
	}, nil
}
