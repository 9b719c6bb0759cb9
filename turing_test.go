package turing_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneStepConfig = "state_number:2;\naccepting_states:1;\ntransitions:\n(0,0):(1,1,RIGHT);\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNew_RunsFromFiles(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "machine.txt", oneStepConfig)
	tape := writeFile(t, dir, "tape.txt", "0")

	m, err := turing.New(config, turing.WithTapeFile(tape))
	require.NoError(t, err)
	assert.Equal(t, config, m.Name)

	_, err = m.Result()
	assert.ErrorIs(t, err, domain.ErrNotYetRun)

	result := m.Run()
	assert.Equal(t, 1, result.FinalState)
	assert.True(t, result.Accepted)
	assert.Equal(t, 1, result.Steps)
	assert.Equal(t, 1, m.Head())
	assert.Equal(t, "accepted", result.Verdict())
}

func TestNew_RejectsWithoutMatchingTransition(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "machine.txt", oneStepConfig)
	tape := writeFile(t, dir, "tape.txt", "1")

	m, err := turing.New(config, turing.WithTapeFile(tape))
	require.NoError(t, err)

	result := m.Run()
	assert.Equal(t, 0, result.Steps)
	assert.Equal(t, 0, result.FinalState)
	assert.False(t, result.Accepted)
	assert.Equal(t, "rejected", result.Verdict())
}

func TestNew_WithoutTapeFile(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "machine.txt", "state_number:1;\naccepting_states:0;\ntape_offset:3;\ntransitions:\n")

	m, err := turing.New(config)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Head())
	assert.Len(t, m.Cells(), 4)
}

func TestNew_MalformedConfigIsAllOrNothing(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "machine.txt", "state_number:2;\naccepting_states:1,2\ntransitions:\n")

	m, err := turing.New(config)
	require.Error(t, err)
	assert.Nil(t, m)

	var formatErr *domain.ConfigFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, 2, formatErr.Line)
	assert.Equal(t, "accepting_states:1,2", formatErr.Text)
}

func TestNew_MissingFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := turing.New(filepath.Join(dir, "absent.txt"))
	assert.ErrorIs(t, err, domain.ErrMissingFile)

	config := writeFile(t, dir, "machine.txt", oneStepConfig)
	_, err = turing.New(config, turing.WithTapeFile(filepath.Join(dir, "absent-tape.txt")))
	assert.ErrorIs(t, err, domain.ErrMissingFile)

	var missing *domain.MissingFileError
	require.True(t, errors.As(err, &missing))
	assert.Contains(t, missing.Path, "absent-tape.txt")
}

func TestNew_EmptyFiles(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.txt", "")

	_, err := turing.New(empty)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	config := writeFile(t, dir, "machine.txt", oneStepConfig)
	_, err = turing.New(config, turing.WithTapeFile(empty))
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestNew_BadTape(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "machine.txt", oneStepConfig)
	tape := writeFile(t, dir, "tape.txt", "0;1;x")

	m, err := turing.New(config, turing.WithTapeFile(tape))
	assert.Nil(t, m)

	var formatErr *domain.TapeFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, 2, formatErr.Cell)
	assert.Equal(t, "x", formatErr.Text)
}

func TestLoad_HooksAndStepping(t *testing.T) {
	var steps int
	var halted bool
	hooks := domain.LifecycleHooks{
		OnStep: func(*domain.StepEvent) { steps++ },
		OnHalt: func(*domain.HaltEvent) { halted = true },
	}

	m, err := turing.Load(strings.NewReader(oneStepConfig), strings.NewReader("0"), turing.WithLifecycleHooks(hooks))
	require.NoError(t, err)

	assert.False(t, m.Step())
	assert.True(t, m.Step())
	assert.True(t, m.Halted())
	assert.Equal(t, 1, steps)
	assert.True(t, halted)

	state, err := m.FinalState()
	require.NoError(t, err)
	assert.Equal(t, 1, state)
	accepted, err := m.Accepted()
	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestLoad_Description(t *testing.T) {
	m, err := turing.Load(strings.NewReader(oneStepConfig), nil)
	require.NoError(t, err)

	desc := m.Description()
	assert.Equal(t, 2, desc.States)
	assert.True(t, desc.Accepting.Contains(1))
	assert.Equal(t, 1, desc.Table.Len())
}

func TestLoad_MaxTapeCells(t *testing.T) {
	offset := "state_number:1;\naccepting_states:0;\ntape_offset:4000000000;\ntransitions:\n"

	m, err := turing.Load(strings.NewReader(offset), nil, turing.WithMaxTapeCells(1<<20))
	assert.Nil(t, m)
	assert.ErrorIs(t, err, domain.ErrTapeTooLarge)
	var limitErr *domain.TapeLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, 4000000001, limitErr.Cells)

	_, err = turing.Load(strings.NewReader(oneStepConfig), strings.NewReader("1;2;3;4"), turing.WithMaxTapeCells(3))
	assert.ErrorIs(t, err, domain.ErrTapeTooLarge)

	m, err = turing.Load(strings.NewReader(oneStepConfig), strings.NewReader("1;2;3"), turing.WithMaxTapeCells(3))
	require.NoError(t, err)
	assert.Len(t, m.Cells(), 3)
}

func TestLoad_WillHaltHasNoSideEffects(t *testing.T) {
	m, err := turing.Load(strings.NewReader(oneStepConfig), nil)
	require.NoError(t, err)

	assert.False(t, m.WillHalt())
	assert.False(t, m.Step())
	assert.True(t, m.WillHalt())
	assert.Len(t, m.Cells(), 1)
	assert.Equal(t, 1, m.Steps())
}
