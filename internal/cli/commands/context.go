// Package commands implements the tablefile subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/tablefile/internal/cli/config"
)

// ConfigKey is used by the root command to store the loaded config in the
// command context.
type ConfigKey struct{}

// LoggerKey is used by the root command to store the logger in the
// command context.
type LoggerKey struct{}

func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(ConfigKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{Delimiter: config.DefaultDelimiter, Output: config.DefaultOutput}
}

func loggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(LoggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.New(slog.DiscardHandler)
}
