// Package config provides YAML-based configuration loading for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
)

// Minimum console dimensions the game screen layout fits in.
const (
	MinWidth  = 40
	MinHeight = 20
)

//go:embed default.yaml
var defaultYAML []byte

// Config holds every setting of a run.
type Config struct {
	Console   ConsoleConfig     `yaml:"console"`
	FPS       int               `yaml:"fps"`
	Log       LogConfig         `yaml:"log"`
	Map       MapConfig         `yaml:"map"`
	Rules     RulesConfig       `yaml:"rules"`
	Palette   map[string]string `yaml:"palette"`
	Telemetry TelemetryConfig   `yaml:"telemetry"`
}

// ConsoleConfig defines the logical console size in cells.
type ConsoleConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig defines the in-game message log and the diagnostic log file.
type LogConfig struct {
	Capacity int    `yaml:"capacity"` // Messages kept in the message panel history
	File     string `yaml:"file"`     // Diagnostic log file; empty discards
	Level    string `yaml:"level"`    // debug, info, warn, error
}

// MapConfig selects the map to play.
type MapConfig struct {
	Path string `yaml:"path"` // Text map file; empty uses the built-in map
}

// RulesConfig toggles world rules.
type RulesConfig struct {
	Collision bool `yaml:"collision"`
}

// TelemetryConfig controls OpenTelemetry tracing.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the hardcoded defaults, matching default.yaml.
func Default() Config {
	return Config{
		Console: ConsoleConfig{Width: 80, Height: 50},
		FPS:     60,
		Log:     LogConfig{Capacity: 100, File: "verbonia.log", Level: "info"},
		Palette: map[string]string{
			"empty": "#000000",
			"wall":  "#404040",
			"floor": "#3f3222",
			"grass": "#73a055",
		},
	}
}

// Validate reports the first setting the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Console.Width < MinWidth || c.Console.Height < MinHeight {
		errs = append(errs, fmt.Errorf("console %dx%d is smaller than %dx%d",
			c.Console.Width, c.Console.Height, MinWidth, MinHeight))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.Log.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("log capacity must be positive, got %d", c.Log.Capacity))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
