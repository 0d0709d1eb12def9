// Package config loads the settings of the cfrac command-line tool from a
// TOML file.
//
// Every key is optional; missing keys take the values of Default:
//
//	max_terms = 20       # term limit for float, sqrt, e and pi
//	epsilon   = 1e-12    # tolerance of the "~" comparison in calc
//	output    = "text"   # "text" or "yaml"
//	log_level = "warn"   # "debug", "info", "warn" or "error"
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable consulted when no path is given.
const EnvVar = "CFRAC_CONFIG"

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Defaults.
const (
	DefaultMaxTerms = 20
	DefaultEpsilon  = 1e-12
	DefaultOutput   = OutputText
	DefaultLogLevel = "warn"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the tool settings.
type Config struct {
	MaxTerms int     `toml:"max_terms"`
	Epsilon  float64 `toml:"epsilon"`
	Output   string  `toml:"output"`
	LogLevel string  `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads the TOML file at path, fills missing keys with defaults and
// validates the result. Environment variables in path are expanded.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &cfg, nil
}

// Resolve loads path when it is not empty, else the file named by EnvVar,
// else returns Default.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.MaxTerms == 0 {
		c.MaxTerms = DefaultMaxTerms
	}
	if c.Epsilon == 0 {
		c.Epsilon = DefaultEpsilon
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	if c.MaxTerms < 1 {
		return fmt.Errorf("%w: max_terms must be positive, got %d", ErrInvalid, c.MaxTerms)
	}
	if c.Epsilon <= 0 {
		return fmt.Errorf("%w: epsilon must be positive, got %g", ErrInvalid, c.Epsilon)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalid, OutputText, OutputYAML, c.Output)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level converts LogLevel to a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return lvl, nil
}
