package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/etim-tools/bmecat-xchange/internal/config"
	"github.com/etim-tools/bmecat-xchange/internal/convert"
	"github.com/etim-tools/bmecat-xchange/internal/logging"
	"github.com/etim-tools/bmecat-xchange/internal/validate"
	"github.com/etim-tools/bmecat-xchange/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"upload_max_file_size", cfg.Upload.MaxFileSize,
		"convert_max_concurrent", cfg.Convert.MaxConcurrent,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	limiter := convert.NewLimiter(cfg.Convert.MaxConcurrent, cfg.Convert.MaxWaitTime)

	var validator *validate.Validator
	if cfg.Convert.SchemaPath != "" {
		validator, err = validate.New(cfg.Convert.SchemaPath)
		if err != nil {
			slog.Error("failed to load schema", "error", err)
			os.Exit(1)
		}
		slog.Info("output validation enabled", "schema", cfg.Convert.SchemaPath)
	} else {
		slog.Info("output validation disabled, no schema configured")
	}

	server := web.NewServer(cfg, limiter, validator)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Wait for active conversions to complete (with timeout)
		status := limiter.Status()
		if status.Active > 0 {
			slog.Info("waiting for conversions to complete", "active", status.Active)
			if err := limiter.WaitForDrain(shutdownCtx); err != nil {
				slog.Warn("conversions did not complete in time", "error", err)
			} else {
				slog.Info("all conversions completed")
			}
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
