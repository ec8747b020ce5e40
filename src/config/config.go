package config

import (
	"fmt"
	"strings"
)

// Config describes a complete sink setup: an optional filter spec
// override, one terminal sink and any number of file sinks.
type Config struct {
	// Filter overrides the ALTO_FILTER environment spec when non-empty
	Filter string `toml:"filter"`

	Terminal TerminalConfig `toml:"terminal"`
	Files    []FileConfig   `toml:"file"`
}

type TerminalConfig struct {
	Enabled    bool    `toml:"enabled"`
	Style      string  `toml:"style"`  // "multi" or "single"
	Time       string  `toml:"time"`   // "none", "unix", "relative", "delta", "datetime"
	TimeLayout string  `toml:"time_layout"`
	Colors     string  `toml:"colors"` // "default", "levels", "monochrome"
	RateLimit  float64 `toml:"rate_limit"`
	RateBurst  int     `toml:"rate_burst"`
}

type FileConfig struct {
	Path       string  `toml:"path"`
	Mode       string  `toml:"mode"` // "truncate", "append", "timestamp"
	Style      string  `toml:"style"`
	Time       string  `toml:"time"`
	TimeLayout string  `toml:"time_layout"`
	RateLimit  float64 `toml:"rate_limit"`
	RateBurst  int     `toml:"rate_burst"`
}

func defaults() *Config {
	return &Config{
		Terminal: TerminalConfig{
			Enabled: true,
			Style:   "multi",
			Time:    "none",
			Colors:  "default",
		},
	}
}

func (c *Config) validate() error {
	if err := validateRender(c.Terminal.Style, c.Terminal.Time, c.Terminal.RateLimit); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	switch strings.ToLower(c.Terminal.Colors) {
	case "", "default", "levels", "monochrome":
	default:
		return fmt.Errorf("terminal: unknown colors %q", c.Terminal.Colors)
	}

	for i, f := range c.Files {
		if f.Path == "" {
			return fmt.Errorf("file[%d]: path is required", i)
		}
		switch strings.ToLower(f.Mode) {
		case "", "truncate", "append", "timestamp":
		default:
			return fmt.Errorf("file[%d]: unknown mode %q", i, f.Mode)
		}
		if err := validateRender(f.Style, f.Time, f.RateLimit); err != nil {
			return fmt.Errorf("file[%d]: %w", i, err)
		}
	}

	return nil
}

func validateRender(style, timeMode string, rateLimit float64) error {
	switch strings.ToLower(style) {
	case "", "multi", "single":
	default:
		return fmt.Errorf("unknown style %q", style)
	}

	switch strings.ToLower(timeMode) {
	case "", "none", "unix", "relative", "delta", "datetime":
	default:
		return fmt.Errorf("unknown time mode %q", timeMode)
	}

	if rateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative")
	}

	return nil
}
