// Package cli consolidates the initialization shared by cmd/voicespend and
// cmd/voicespend-mirror.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"voicespend/internal/config"
	"voicespend/internal/ledger"
	"voicespend/internal/ledger/csvfile"
	"voicespend/internal/ledger/memory"
	"voicespend/internal/storage"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure; a missing
// bot token is a startup error, not something the pipeline handles.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// OpenLedger builds the ledger backend selected by the config.
// Returns the ledger, a close function, or exits the process on failure.
func OpenLedger(logger *slog.Logger, cfg *config.Config) (ledger.Ledger, func()) {
	switch cfg.LedgerBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite ledger", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		logger.Info("Initialized sqlite ledger", "path", cfg.SQLiteDBPath)
		return repo, func() { repo.Close() }
	case "memory":
		logger.Info("Initialized memory ledger")
		return memory.New(), func() {}
	default:
		store, err := csvfile.New(cfg.LedgerPath)
		if err != nil {
			logger.Error("Failed to initialize CSV ledger", "error", err, "path", cfg.LedgerPath)
			os.Exit(1)
		}
		logger.Info("Initialized csv ledger", "path", cfg.LedgerPath)
		return store, func() {}
	}
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	}()

	return ctx, cancel
}
