// Package config holds the picker's start-up settings and loads them from the
// environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/contrastpick/internal/colour"
)

// Environment variables read by WithEnvConfig.
const (
	EnvBackground = "CONTRASTPICK_BACKGROUND"
	EnvAlgorithm  = "CONTRASTPICK_ALGORITHM"
	EnvWidth      = "CONTRASTPICK_WIDTH"
	EnvNoColour   = "NO_COLOR"
)

const (
	// DefaultBackground is the background the picker starts on.
	DefaultBackground = "#FFF"
	// DefaultWidth is the preview width used when the terminal size is unknown.
	DefaultWidth = 80
	// MinWidth is the narrowest preview that still fits the border and padding.
	MinWidth = 12
)

// Config holds picker settings.
type Config struct {
	// Background is the initial background colour as a hex string.
	Background string
	// Algorithm is the initial foreground algorithm.
	Algorithm colour.Algorithm
	// Width is the preview width in columns; 0 means detect from the terminal.
	Width int
	// Colour enables ANSI colour output.
	Colour bool
}

// Default returns the settings a fresh picker starts with: a white
// background and the simple algorithm.
func Default() Config {
	return Config{
		Background: DefaultBackground,
		Algorithm:  colour.AlgorithmSimple,
		Width:      0,
		Colour:     true,
	}
}

// Validate checks that the configured values can be used.
func (c Config) Validate() error {
	if _, err := colour.ParseHex(strings.TrimSpace(c.Background)); err != nil {
		return err
	}
	if _, err := colour.ParseAlgorithm(c.Algorithm.String()); err != nil {
		return err
	}
	return nil
}

// Builder constructs a Config from defaults and the environment.
type Builder struct {
	config Config
	useEnv bool
	lookup func(string) (string, bool)
	logger hclog.Logger
}

// NewBuilder creates a new Config builder with default settings.
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		lookup: os.LookupEnv,
		logger: hclog.NewNullLogger(),
	}
}

// WithConfig sets the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig loads configuration from environment variables.
// Reads CONTRASTPICK_BACKGROUND, CONTRASTPICK_ALGORITHM, CONTRASTPICK_WIDTH and NO_COLOR.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces os.LookupEnv (useful for testing).
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// WithLogger sets the logger used to report ignored environment values.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Build constructs the Config. Invalid environment values are logged and
// ignored so a bad variable never prevents start-up.
func (b *Builder) Build() Config {
	config := b.config
	if !b.useEnv {
		return config
	}

	if v, ok := b.lookup(EnvBackground); ok && v != "" {
		if _, err := colour.ParseHex(strings.TrimSpace(v)); err != nil {
			b.logger.Warn("ignoring environment value", "var", EnvBackground, "error", err)
		} else {
			config.Background = strings.TrimSpace(v)
		}
	}

	if v, ok := b.lookup(EnvAlgorithm); ok && v != "" {
		alg, err := colour.ParseAlgorithm(v)
		if err != nil {
			b.logger.Warn("ignoring environment value", "var", EnvAlgorithm, "error", err)
		} else {
			config.Algorithm = alg
		}
	}

	if v, ok := b.lookup(EnvWidth); ok && v != "" {
		width, err := strconv.Atoi(strings.TrimSpace(v))
		switch {
		case err != nil:
			b.logger.Warn("ignoring environment value", "var", EnvWidth, "error", err)
		case width < MinWidth:
			b.logger.Warn("ignoring environment value", "var", EnvWidth, "width", width, "min", MinWidth)
		default:
			config.Width = width
		}
	}

	// https://no-color.org: any non-empty value disables colour.
	if v, ok := b.lookup(EnvNoColour); ok && v != "" {
		config.Colour = false
	}

	return config
}
