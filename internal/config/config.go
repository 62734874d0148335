package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ColorMode controls whether report output carries ANSI escape sequences
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses a color mode name, case-insensitively
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return DefaultColorMode, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Config holds all configuration for a runner
type Config struct {
	// Output receives the report, standard output (resolved at write time) when nil
	Output io.Writer

	// Color selects colored or plain output
	Color ColorMode

	// RecoverPanics evaluates each check behind its own recovery boundary
	RecoverPanics bool
}

// Flags holds command-line flags applied by Load
type Flags struct {
	Color   string
	Recover bool
	EnvFile string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Color:         DefaultColorMode,
		RecoverPanics: DefaultRecoverPanics,
	}
}

// Load creates a config from the environment and applies flags on top
func Load(flags Flags) (*Config, error) {
	envFile := flags.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	cfg, err := LoadEnv(envFile)
	if err != nil {
		return nil, err
	}
	// Apply flag overrides
	if flags.Color != "" {
		mode, err := ParseColorMode(flags.Color)
		if err != nil {
			return nil, err
		}
		cfg.Color = mode
	}
	if flags.Recover {
		cfg.RecoverPanics = true
	}

	return cfg, nil
}

// LoadEnv creates a config with defaults, then applies the dotenv file at path
// (if it exists) and the CHECKGROUP_* environment variables.
func LoadEnv(path string) (*Config, error) {
	cfg := New()

	// A missing .env file is fine, variables may come from the process environment
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
			}
		}
	}

	if v, ok := os.LookupEnv(EnvColor); ok {
		mode, err := ParseColorMode(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvColor, err)
		}
		cfg.Color = mode
	}

	if v, ok := os.LookupEnv(EnvRecover); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvRecover, err)
		}
		cfg.RecoverPanics = enabled
	}

	return cfg, nil
}

// Writer returns the configured output, falling back to standard output
func (c *Config) Writer() io.Writer {
	if c.Output == nil {
		return os.Stdout
	}
	return c.Output
}
