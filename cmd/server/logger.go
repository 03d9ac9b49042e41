package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ehatamm/project/internal/config"
	"github.com/ehatamm/project/internal/platform/logger"
)

// setupAppLogger configures and initializes the application logger based on config settings.
// The returned closer releases the rotating log file, if one is configured.
func setupAppLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	l, closer, err := logger.Setup(logger.LoggerConfig{
		Level:      cfg.Server.LogLevel,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return l, closer, nil
}
