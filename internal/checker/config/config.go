package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the checker's policy and output settings. The checker
// section covers grammar dialect questions that different versions of the
// language disagree on; the defaults are the strict readings.
type Config struct {
	Checker CheckerConfig `toml:"checker"`
	Output  OutputConfig  `toml:"output"`
}

// CheckerConfig holds parser policy settings.
type CheckerConfig struct {
	AllowBareExpressions bool `toml:"allow_bare_expressions"`
	AllowGlobals         bool `toml:"allow_globals"`
}

// OutputConfig holds report formatting settings.
type OutputConfig struct {
	Color     bool `toml:"color"`
	LinesOnly bool `toml:"lines_only"`
}

// Default returns the configuration used when no file is given: strict
// parsing, styled full-message output.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Color: true,
		},
	}
}

// Load reads a TOML configuration file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}
