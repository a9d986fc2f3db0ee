// Package config resolves application settings from defaults, a YAML file
// and INTEGRALS_* environment variables. Command-line flags are applied on
// top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/integrals/internal/plot"
	"github.com/abhisek/integrals/internal/session"
)

// Log levels accepted by LogLevel.
const (
	LogLevelDebug   string = "debug"
	LogLevelInfo    string = "info"
	LogLevelWarning string = "warn"
	LogLevelError   string = "error"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all application settings.
type Config struct {
	// ExerciseCount is the initial batch size (1-10). Default: 3.
	ExerciseCount int `yaml:"exercise_count"`

	// Seed seeds the exercise generator. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	// LogLevel is one of debug, info, warn, error. Default: info.
	LogLevel string `yaml:"log_level"`

	// LogFile receives log output. Empty discards logs, since the terminal
	// UI owns stdout.
	LogFile string `yaml:"log_file"`

	// VerifyWithOracle cross-checks every generated exercise against the
	// symbolic oracle. Default: true.
	VerifyWithOracle bool `yaml:"verify_with_oracle"`

	Plot PlotConfig `yaml:"plot"`
}

// PlotConfig sizes the integrand plot.
type PlotConfig struct {
	Samples int `yaml:"samples"`
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ExerciseCount:    session.DefaultExercises,
		LogLevel:         LogLevelInfo,
		VerifyWithOracle: true,
		Plot: PlotConfig{
			Samples: plot.DefaultSamples,
			Width:   plot.DefaultWidth,
			Height:  plot.DefaultHeight,
		},
	}
}

// DefaultPath resolves the config file path in priority order:
// 1. INTEGRALS_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/integrals/config.yaml
// 3. ~/.config/integrals/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("INTEGRALS_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "integrals", "config.yaml"), nil
}

// Load builds a Config from defaults, the YAML file at path (skipped if it
// does not exist) and the environment, in that order of precedence.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("INTEGRALS_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("INTEGRALS_COUNT %q: %w", v, ErrInvalidConfig)
		}
		c.ExerciseCount = n
	}
	if v := os.Getenv("INTEGRALS_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("INTEGRALS_SEED %q: %w", v, ErrInvalidConfig)
		}
		c.Seed = n
	}
	if v := os.Getenv("INTEGRALS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("INTEGRALS_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	return nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if err := session.ValidateCount(c.ExerciseCount); err != nil {
		return fmt.Errorf("exercise_count: %w: %w", ErrInvalidConfig, err)
	}
	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
	default:
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	if c.Plot.Samples < 2 {
		return fmt.Errorf("plot.samples %d: %w", c.Plot.Samples, ErrInvalidConfig)
	}
	if c.Plot.Width < 10 || c.Plot.Height < 4 {
		return fmt.Errorf("plot size %dx%d: %w", c.Plot.Width, c.Plot.Height, ErrInvalidConfig)
	}
	return nil
}
