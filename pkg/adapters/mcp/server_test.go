package mcp

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flip = `state_number:2;
accepting_states:1;
tape_offset:1;
transitions:
(0,0):(0,1,RIGHT);
(0,1):(1,0,LEFT);
`

func TestHandleRun(t *testing.T) {
	s := NewServer()

	resp, err := s.handleRun(context.Background(), mcp.CallToolRequest{}, map[string]any{
		"config": flip,
		"tape":   "0;0;1",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.FinalState)
	assert.True(t, resp.Accepted)
	assert.Equal(t, 2, resp.Steps)
	assert.Equal(t, 1, resp.Head)
	assert.Equal(t, []string{
		"( 0 ; 0 ) => (0, 1, RIGHT)",
		"( 0 ; 1 ) => (1, 0, LEFT)",
	}, resp.Trace)
	assert.Equal(t, []domain.Cell{
		{Index: 0, Value: 0}, {Index: 1, Value: 1}, {Index: 2, Value: 0},
	}, resp.Tape)
}

func TestHandleRun_StepLimit(t *testing.T) {
	s := NewServer(WithMaxSteps(1000))
	forever := "state_number:1;\naccepting_states:0;\ntransitions:\n(0,0):(0,0,LEFT);\n"

	_, err := s.handleRun(context.Background(), mcp.CallToolRequest{}, map[string]any{
		"config":    forever,
		"max_steps": float64(10),
	})
	assert.ErrorIs(t, err, runner.ErrStepLimit)
}

func TestHandleRun_TapeCellsKeepTheirIndex(t *testing.T) {
	s := NewServer()
	// Two writes to the left put cells at negative indices.
	left := "state_number:3;\naccepting_states:2;\ntransitions:\n(0,0):(1,5,LEFT);\n(1,0):(2,6,LEFT);\n"

	resp, err := s.handleRun(context.Background(), mcp.CallToolRequest{}, map[string]any{"config": left})
	require.NoError(t, err)
	assert.Equal(t, []domain.Cell{
		{Index: -2, Value: 0}, {Index: -1, Value: 6}, {Index: 0, Value: 5},
	}, resp.Tape)
}

func TestHandleRun_TapeTooLarge(t *testing.T) {
	s := NewServer(WithMaxTapeCells(16))
	wide := "state_number:1;\naccepting_states:0;\ntape_offset:4000000000;\ntransitions:\n"

	_, err := s.handleRun(context.Background(), mcp.CallToolRequest{}, map[string]any{"config": wide})
	assert.ErrorIs(t, err, domain.ErrTapeTooLarge)
}

func TestHandleRun_InvalidConfig(t *testing.T) {
	s := NewServer()

	_, err := s.handleRun(context.Background(), mcp.CallToolRequest{}, map[string]any{
		"config": "state_number:2;\ntransitions:\n",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestHandleDescribe(t *testing.T) {
	s := NewServer()

	resp, err := s.handleDescribe(context.Background(), mcp.CallToolRequest{}, map[string]any{"config": flip})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.States)
	assert.Equal(t, []int{1}, resp.Accepting)
	assert.Equal(t, 1, resp.Offset)
	assert.Equal(t, []string{
		"(0, 0) => (0, 1, RIGHT)",
		"(0, 1) => (1, 0, LEFT)",
	}, resp.Transitions)
}

func TestServe_EndOfInput(t *testing.T) {
	s := NewServer()
	var out bytes.Buffer

	err := s.Serve(context.Background(), strings.NewReader(""), &out)
	assert.NoError(t, err)
}

func TestServe_CancelIsCleanShutdown(t *testing.T) {
	s := NewServer()
	in, w := io.Pipe()
	t.Cleanup(func() { w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, in, io.Discard) }()
	cancel()

	assert.NoError(t, <-done)
}
