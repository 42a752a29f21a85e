// Package cli provides the initialization steps shared by the expenses
// subcommands: logging, environment, configuration and signal handling,
// and the assembly of a shell session from the configuration.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"expenses/internal/config"
	"expenses/internal/ledger"
	applog "expenses/internal/log"
	"expenses/internal/render"
	"expenses/internal/services"
	"expenses/internal/shell"
)

// SetupLogger initializes structured logging on stderr at the given level
// and sets it as the default logger. An unknown level falls back to info.
func SetupLogger(level string) *applog.Logger {
	cfg := applog.DefaultConfig()
	if lvl, err := applog.ParseLevel(level); err == nil {
		cfg.Level = lvl
	}
	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file of the working directory if there is one.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it.
func LoadAndValidateConfig(logger *applog.Logger) (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		applog.NewStructuredLogger(logger).LogError(context.Background(), "Configuration validation failed", err,
			applog.ComponentConfig, applog.OpValidate, applog.NewFields().WithErrorType(applog.ErrorTypeConfiguration))
		return nil, err
	}
	return cfg, nil
}

// NewSession builds a ledger, its service, a renderer and a shell session
// writing to out, all configured from cfg.
func NewSession(cfg *config.Config, logger *applog.Logger, out io.Writer) (*shell.Session, error) {
	match, err := ledger.ParseUndoMatch(cfg.UndoMatch)
	if err != nil {
		return nil, err
	}
	book := ledger.New(
		ledger.WithRecentWindow(cfg.RecentWindow),
		ledger.WithUndoMatch(match),
	)

	r, err := render.New(cfg.Currency, render.Mode(cfg.RenderMode))
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	svc := services.NewExpenseService(book, logger)
	logger.Debug("Session ready",
		applog.FieldOperation, applog.OpStartup,
		"currency", cfg.Currency,
		"recent_window", cfg.RecentWindow,
		"undo_match", match.String(),
		"render_mode", cfg.RenderMode,
	)
	return shell.New(svc, r, out, shell.WithPrompt(cfg.Prompt), shell.WithLogger(logger)), nil
}

// GracefulShutdown returns a context that is cancelled on SIGINT or
// SIGTERM, or when the returned stop function is called.
func GracefulShutdown(parent context.Context, logger *applog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String(), applog.FieldOperation, applog.OpShutdown)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
