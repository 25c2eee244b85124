// Package config loads gridpath settings from the environment.
//
// Variables use the GRIDPATH_ prefix. A .env file in the working directory,
// or the files passed to Load, is read first; variables already set in the
// environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/logging"
)

// Prefix is the environment variable prefix.
const Prefix = "GRIDPATH"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable of the CLI and the daemon.
type Config struct {
	// GridSize is the side of the default grid built when none is supplied
	GridSize int `envconfig:"GRID_SIZE" default:"30"`
	// Algorithm is the default selector: bfs, dfs or astar
	Algorithm string `envconfig:"ALGORITHM" default:"astar"`
	// StepDelay paces animated runs
	StepDelay time.Duration `envconfig:"STEP_DELAY" default:"20ms"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// ListenAddr is the daemon's HTTP address
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	// MaxGridSize bounds grids accepted over HTTP
	MaxGridSize int `envconfig:"MAX_GRID_SIZE" default:"200"`
	// MaxStepDelay bounds delay_ms accepted over HTTP
	MaxStepDelay time.Duration `envconfig:"MAX_STEP_DELAY" default:"1s"`

	RateLimitRPS   int `envconfig:"RATE_LIMIT_RPS" default:"0"`   // 0 means disabled
	RateLimitBurst int `envconfig:"RATE_LIMIT_BURST" default:"0"` // 0 means use RPS
}

// Load reads the optional dotenv files, then the environment, and validates
// the result. With no arguments it tries ./.env and ignores its absence.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			files = []string{".env"}
		}
	}
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, fmt.Errorf("config: load dotenv: %w", err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.GridSize < 4:
		return fmt.Errorf("%w: GRID_SIZE must be at least 4, got %d", ErrInvalidConfig, c.GridSize)
	case c.MaxGridSize < c.GridSize:
		return fmt.Errorf("%w: MAX_GRID_SIZE %d is below GRID_SIZE %d", ErrInvalidConfig, c.MaxGridSize, c.GridSize)
	case c.StepDelay < 0:
		return fmt.Errorf("%w: STEP_DELAY cannot be negative (%s)", ErrInvalidConfig, c.StepDelay)
	case c.MaxStepDelay < 0:
		return fmt.Errorf("%w: MAX_STEP_DELAY cannot be negative (%s)", ErrInvalidConfig, c.MaxStepDelay)
	case c.RateLimitRPS < 0 || c.RateLimitBurst < 0:
		return fmt.Errorf("%w: rate limits cannot be negative", ErrInvalidConfig)
	case c.ListenAddr == "":
		return fmt.Errorf("%w: LISTEN_ADDR is empty", ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.LogFormat {
	case "json", "console", "text":
	default:
		return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, logging.ErrInvalidFormat, c.LogFormat)
	}
	return nil
}

// Kind maps Algorithm to a frontier kind; unknown selectors map to A*.
func (c Config) Kind() frontier.Kind { return frontier.ParseKind(c.Algorithm) }

// Logging returns the logger settings.
func (c Config) Logging() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.LogLevel
	lc.Format = c.LogFormat
	return lc
}
