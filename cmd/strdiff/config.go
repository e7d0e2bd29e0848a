package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"unicode/utf8"

	"github.com/katalvlaran/strdiff/align"
	"github.com/katalvlaran/strdiff/report"
	"gopkg.in/yaml.v3"
)

// Config holds the driver settings. It is read from an optional YAML file
// and then overridden by explicitly set flags.
type Config struct {
	Policy     string        `yaml:"policy"`
	IgnoreCase bool          `yaml:"ignore_case"`
	Details    bool          `yaml:"details"`
	Format     string        `yaml:"format"`
	Workers    int           `yaml:"workers"`
	MaxCells   int           `yaml:"max_cells"`
	LogLevel   string        `yaml:"log_level"`
	Markers    *MarkerConfig `yaml:"markers,omitempty"`
}

// MarkerConfig overrides the diff span delimiters; each value is one character.
type MarkerConfig struct {
	RemoveOpen  string `yaml:"remove_open"`
	RemoveClose string `yaml:"remove_close"`
	AddOpen     string `yaml:"add_open"`
	AddClose    string `yaml:"add_close"`
}

func defaultConfig() *Config {
	return &Config{
		Policy:   "levenshtein",
		Format:   string(report.Text),
		Workers:  runtime.GOMAXPROCS(0),
		LogLevel: "info",
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// settings is the validated, resolved form of Config.
type settings struct {
	policy     align.Policy
	ignoreCase bool
	workers    int
	maxCells   int
	report     report.Options
}

func (c *Config) resolve() (*settings, error) {
	p, err := align.PolicyByName(c.Policy)
	if err != nil {
		return nil, err
	}
	f, err := report.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	if c.Workers < 1 {
		return nil, fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.MaxCells < 0 {
		return nil, fmt.Errorf("max-cells must be >= 0, got %d", c.MaxCells)
	}
	mk, err := c.Markers.markers()
	if err != nil {
		return nil, err
	}

	return &settings{
		policy:     p,
		ignoreCase: c.IgnoreCase,
		workers:    c.Workers,
		maxCells:   c.MaxCells,
		report: report.Options{
			Format:  f,
			Details: c.Details,
			Markers: mk,
		},
	}, nil
}

func (m *MarkerConfig) markers() (align.Markers, error) {
	mk := align.DefaultMarkers
	if m == nil {
		return mk, nil
	}

	for _, f := range []struct {
		name string
		val  string
		dst  *rune
	}{
		{"remove_open", m.RemoveOpen, &mk.RemoveOpen},
		{"remove_close", m.RemoveClose, &mk.RemoveClose},
		{"add_open", m.AddOpen, &mk.AddOpen},
		{"add_close", m.AddClose, &mk.AddClose},
	} {
		if f.val == "" {
			continue
		}
		if utf8.RuneCountInString(f.val) != 1 {
			return mk, fmt.Errorf("marker %s: %w", f.name, errBadMarker)
		}
		r, _ := utf8.DecodeRuneInString(f.val)
		*f.dst = r
	}

	return mk, nil
}

var errBadMarker = errors.New("must be exactly one character")
