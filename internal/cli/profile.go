package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Profile is a saved set of run options.
//
//	machine: examples/machines/binary-increment.tm
//	tape: examples/machines/binary-increment.tape
//	display: true
//	max_steps: 100000
type Profile struct {
	Machine  string `mapstructure:"machine"`
	Tape     string `mapstructure:"tape"`
	Display  bool   `mapstructure:"display"`
	Debug    bool   `mapstructure:"debug"`
	MaxSteps int    `mapstructure:"max_steps"`
	Redis    string `mapstructure:"redis"`
	JSON     bool   `mapstructure:"json"`
}

// LoadProfile reads a YAML run profile. Unknown keys are rejected.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes a YAML run profile.
func ParseProfile(data []byte) (*Profile, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	var p Profile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// Apply fills the options the user did not set explicitly.
// changed reports whether a flag was set on the command line.
func (p *Profile) Apply(opts *RunOptions, changed func(flag string) bool) {
	if !changed("machine") && p.Machine != "" {
		opts.MachinePath = p.Machine
	}
	if !changed("tape") && p.Tape != "" {
		opts.TapePath = p.Tape
	}
	if !changed("display") {
		opts.Display = p.Display
	}
	if !changed("debug") {
		opts.Debug = p.Debug
	}
	if !changed("max-steps") && p.MaxSteps != 0 {
		opts.MaxSteps = p.MaxSteps
	}
	if !changed("redis") && p.Redis != "" {
		opts.RedisURL = p.Redis
	}
	if !changed("json") {
		opts.JSON = p.JSON
	}
}
