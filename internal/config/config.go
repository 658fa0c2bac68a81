// Package config loads tool configuration from YAML files, overlaying
// them on built-in defaults.
package config

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when a config field holds a value outside
// its allowed set.
var ErrValidation = errors.New("config: invalid value")

// Config holds all tool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Mirror  MirrorConfig  `yaml:"mirror"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`    // debug, info, warn, error
	LogFile string `yaml:"log_file"` // empty disables file output
}

// MirrorConfig holds defaults for the mirror command.
type MirrorConfig struct {
	Mode        string `yaml:"mode"`  // mirror, flip, average
	Space       string `yaml:"space"` // vertex, uv
	Axis        string `yaml:"axis"`  // x, y, z, u, v, auto
	LeftToRight bool   `yaml:"left_to_right"`
	TopToBottom bool   `yaml:"top_to_bottom"`
}

// Default returns a Config with built-in defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Mirror: MirrorConfig{
			Mode:        "mirror",
			Space:       "vertex",
			Axis:        "auto",
			LeftToRight: true,
			TopToBottom: true,
		},
	}
}

// Validate checks every enumerated field against its allowed set.
func (c *Config) Validate() error {
	if !oneOf(c.Logging.Level, "debug", "info", "warn", "error") {
		return fmt.Errorf("%w: logging.level %q (want debug|info|warn|error)",
			ErrValidation, c.Logging.Level)
	}
	if !oneOf(c.Mirror.Mode, "mirror", "flip", "average") {
		return fmt.Errorf("%w: mirror.mode %q (want mirror|flip|average)",
			ErrValidation, c.Mirror.Mode)
	}
	if !oneOf(c.Mirror.Space, "vertex", "uv") {
		return fmt.Errorf("%w: mirror.space %q (want vertex|uv)",
			ErrValidation, c.Mirror.Space)
	}
	if !oneOf(c.Mirror.Axis, "x", "y", "z", "u", "v", "auto") {
		return fmt.Errorf("%w: mirror.axis %q (want x|y|z|u|v|auto)",
			ErrValidation, c.Mirror.Axis)
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
