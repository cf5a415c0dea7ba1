package config

import (
	"time"
)

// Config represents the swatchy configuration document.
type Config struct {
	Color   string      `yaml:"color" validate:"required,swatch_hex"`
	Opacity float64     `yaml:"opacity" validate:"gte=0,lte=1"`
	Log     LogSettings `yaml:"log,omitempty"`
	UI      UISettings  `yaml:"ui,omitempty"`
}

// LogSettings controls the zerolog-backed logger.
type LogSettings struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error disabled"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
	File          string `yaml:"file,omitempty"`
}

// UISettings tunes the interactive shell.
type UISettings struct {
	StatusTimeout time.Duration `yaml:"status_timeout,omitempty" validate:"min=100ms,max=1m"`
	OpacityStep   float64       `yaml:"opacity_step,omitempty" validate:"gt=0,lte=0.5"`
	Unicode       bool          `yaml:"unicode"`
}

const (
	// DefaultColor matches the initial swatch shown before any selection.
	DefaultColor         = "#FFFFFF"
	DefaultOpacity       = 1.0
	DefaultStatusTimeout = 2 * time.Second
	DefaultOpacityStep   = 0.05
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Color:   DefaultColor,
		Opacity: DefaultOpacity,
		Log: LogSettings{
			Level: "info",
		},
		UI: UISettings{
			StatusTimeout: DefaultStatusTimeout,
			OpacityStep:   DefaultOpacityStep,
			Unicode:       true,
		},
	}
}
