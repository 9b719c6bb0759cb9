package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/turing/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	p, err := cli.ParseProfile([]byte(`
machine: inc.tm
tape: inc.tape
display: true
max_steps: "500"
redis: redis://localhost:6379/0
`))
	require.NoError(t, err)
	assert.Equal(t, &cli.Profile{
		Machine:  "inc.tm",
		Tape:     "inc.tape",
		Display:  true,
		MaxSteps: 500,
		Redis:    "redis://localhost:6379/0",
	}, p)
}

func TestParseProfile_UnknownKey(t *testing.T) {
	_, err := cli.ParseProfile([]byte("machine: a.tm\nspeed: 3\n"))
	assert.ErrorContains(t, err, "speed")
}

func TestLoadProfile_Missing(t *testing.T) {
	_, err := cli.LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProfile_ApplyKeepsExplicitFlags(t *testing.T) {
	p := &cli.Profile{Machine: "profile.tm", Tape: "profile.tape", Display: true, MaxSteps: 10, JSON: true}
	opts := cli.RunOptions{MachinePath: "flag.tm", MaxSteps: 99}

	changed := map[string]bool{"machine": true, "max-steps": true}
	p.Apply(&opts, func(flag string) bool { return changed[flag] })

	assert.Equal(t, "flag.tm", opts.MachinePath)
	assert.Equal(t, "profile.tape", opts.TapePath)
	assert.Equal(t, 99, opts.MaxSteps)
	assert.True(t, opts.Display)
	assert.True(t, opts.JSON)
	assert.False(t, opts.Debug)
}
