package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/dateshift/internal/app"
	"github.com/JonMunkholm/dateshift/internal/config"
	"github.com/JonMunkholm/dateshift/internal/logging"
)

func main() {
	// Load .env file if it exists; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not read .env file", "error", err)
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config; stderr keeps stdout free for piping
	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	logger.Debug("configuration loaded", "config", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg, logger).ExecuteContext(ctx); err != nil {
		logger.Error("date shift failed",
			"error", err,
			"hint", app.FormatUserError(err),
		)
		stop()
		os.Exit(1)
	}
}
