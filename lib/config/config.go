// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/usbtree/lib/render"
)

// Style presets selectable in the render section.
const (
	StyleUnicode = "unicode"
	StyleASCII   = "ascii"
)

// Color modes selectable in the render section.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the usbtree configuration.
type Config struct {
	// Render configures tree output.
	Render RenderConfig `yaml:"render"`

	// Watch configures the live-view command.
	Watch WatchConfig `yaml:"watch"`
}

// RenderConfig configures how trees are drawn.
type RenderConfig struct {
	// Style selects the connector set: "unicode" (box drawing) or
	// "ascii".
	Style string `yaml:"style"`

	// Color selects when output is colored: "auto" (when stdout is a
	// terminal), "always", or "never".
	Color string `yaml:"color"`

	// ShowHeader controls the "Bus NNN" line above each bus.
	ShowHeader bool `yaml:"show_header"`

	// Indent is the per-level indent used beneath last siblings.
	Indent string `yaml:"indent"`
}

// WatchConfig configures periodic re-enumeration in watch mode.
type WatchConfig struct {
	// Interval is the time between enumeration passes, as a Go
	// duration string.
	Interval string `yaml:"interval"`
}

// Default returns the built-in configuration: unicode connectors,
// color when talking to a terminal, headers on, and a two-second
// watch interval.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Style:      StyleUnicode,
			Color:      ColorAuto,
			ShowHeader: true,
			Indent:     "    ",
		},
		Watch: WatchConfig{
			Interval: "2s",
		},
	}
}

// Load loads configuration from the file named by the USBTREE_CONFIG
// environment variable. Fails when the variable is unset; callers
// that want defaults in that case use LoadActive.
func Load() (*Config, error) {
	configPath := os.Getenv("USBTREE_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("USBTREE_CONFIG environment variable not set; " +
			"set it to the path of your usbtree.yaml config file, or use --config flag")
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Values not
// present in the file keep their defaults; the file must exist,
// parse, and validate.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return cfg, nil
}

// LoadActive resolves the configuration a command should run with:
// the explicit path when given, else the USBTREE_CONFIG file when the
// variable is set, else the defaults. Only the configless case is
// lenient; a named file that is missing or invalid is an error.
func LoadActive(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	if os.Getenv("USBTREE_CONFIG") != "" {
		return Load()
	}
	return Default(), nil
}

// Validate checks the configuration for errors. All problems are
// reported at once.
func (c *Config) Validate() error {
	var errs []error

	styles := []string{StyleUnicode, StyleASCII}
	if !slices.Contains(styles, c.Render.Style) {
		errs = append(errs, fmt.Errorf("render.style must be one of: %v", styles))
	}

	colorModes := []string{ColorAuto, ColorAlways, ColorNever}
	if !slices.Contains(colorModes, c.Render.Color) {
		errs = append(errs, fmt.Errorf("render.color must be one of: %v", colorModes))
	}

	if _, err := c.Watch.IntervalDuration(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// TreeStyle maps the render section to a concrete style. The colored
// argument is the resolved color decision: the config layer cannot
// answer "auto" because whether stdout is a terminal is the command's
// knowledge.
func (r RenderConfig) TreeStyle(colored bool) render.Style {
	style := render.DefaultStyle()
	if r.Style == StyleASCII {
		style = render.ASCIIStyle()
	}
	style.Colored = colored
	style.ShowHeader = r.ShowHeader
	if r.Indent != "" {
		style.Indent = r.Indent
	}
	return style
}

// IntervalDuration parses the watch interval. The interval must be
// positive: watch re-enumerates on a timer, and a zero timer would
// spin.
func (w WatchConfig) IntervalDuration() (time.Duration, error) {
	interval, err := time.ParseDuration(w.Interval)
	if err != nil {
		return 0, fmt.Errorf("parsing watch.interval: %w", err)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("watch.interval must be positive, got %s", interval)
	}
	return interval, nil
}
