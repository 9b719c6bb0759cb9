package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/turing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const binaryIncrement = `state_number:3;
accepting_states:2;
tape_offset:0;
transitions:
(0,0):(0,0,RIGHT);
(0,1):(0,1,RIGHT);
(0,2):(1,2,LEFT);
(1,1):(1,0,LEFT);
(1,0):(2,1,LEFT);
(1,2):(2,1,LEFT);
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeMachine(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "turing version "+strings.TrimSpace(turing.Version)+"\n", out)
}

func TestRunCommand(t *testing.T) {
	cfg := writeMachine(t, "inc.tm", binaryIncrement)
	tape := writeMachine(t, "inc.tape", "1;0;1;1;2")

	out, err := execute(t, "run", "-m", cfg, "-t", tape)
	require.NoError(t, err)
	assert.Equal(t, "The Turing machine ended in state: s2\nThe input is accepted\n", out)
}

func TestValidateCommand(t *testing.T) {
	cfg := writeMachine(t, "inc.tm", binaryIncrement)

	out, err := execute(t, "validate", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Machine is valid!")
}

func TestValidateCommand_ParseError(t *testing.T) {
	cfg := writeMachine(t, "bad.tm", "state_number:3\n")

	_, err := execute(t, "validate", cfg)
	assert.ErrorContains(t, err, "line 1 is invalid")
}

func TestGraphCommand(t *testing.T) {
	cfg := writeMachine(t, "inc.tm", binaryIncrement)

	out, err := execute(t, "graph", cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `s1 -- "0 / 1 LEFT" --> s2`)
}
