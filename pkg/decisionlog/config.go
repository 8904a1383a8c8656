package decisionlog

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the environment-driven recorder settings.
type Config struct {
	Enabled     bool   `env:"AUTHZLOG_ENABLED" envDefault:"false"`
	Format      string `env:"AUTHZLOG_FORMAT" envDefault:"text"`
	Level       string `env:"AUTHZLOG_LEVEL" envDefault:"info"`
	DenialsOnly bool   `env:"AUTHZLOG_DENIALS_ONLY" envDefault:"false"`
}

var loadDotEnv sync.Once

// NewFromEnv builds a recorder from environment variables. A default .env
// file, when present, is loaded once per process before parsing. When
// AUTHZLOG_ENABLED is unset or false the returned recorder is a no-op, so
// installing it unconditionally is safe.
func NewFromEnv() (*Recorder, error) {
	loadDotEnv.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("decisionlog: parse env: %w", err)
	}
	return NewFromConfig(cfg)
}

// NewFromConfig builds a recorder from an explicit configuration.
func NewFromConfig(cfg Config) (*Recorder, error) {
	if !cfg.Enabled {
		return New(nil), nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("decisionlog: invalid level %q: %w", cfg.Level, err)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	case "text":
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	default:
		return nil, fmt.Errorf("decisionlog: invalid format %q: must be \"json\" or \"text\"", cfg.Format)
	}

	var opts []Option
	if cfg.DenialsOnly {
		opts = append(opts, WithDenialsOnly())
	}
	return New(slog.New(handler), opts...), nil
}
