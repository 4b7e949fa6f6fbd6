package app

import (
	"log/slog"

	"github.com/thenoetrevino/notely/internal/labels"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	ids    labels.IDGenerator
	logger *slog.Logger
}

// WithIDGenerator sets the id source for new labels and notes
func WithIDGenerator(ids labels.IDGenerator) Option {
	return func(cfg *appConfig) {
		cfg.ids = ids
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
