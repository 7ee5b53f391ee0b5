// Package main runs the taskflow API: it loads the profile's config, wires
// the object graph with samber/do, serves HTTP, and shuts down in order on
// SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/taskflow-service/internal/adapters/http"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/config"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "taskflow: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is required (local, dev, qa, or prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	tel, err := setupTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("set up telemetry: %w", err)
	}

	injector := newContainer(cfg, logger, tel.metrics)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = tel.flush(context.Background())
		return fmt.Errorf("wire server: %w", err)
	}
	store := do.MustInvoke[*sqlite.Store](injector)

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))

	// Bind synchronously so a taken port fails startup.
	if err := server.Listen(); err != nil {
		_ = store.Close()
		_ = tel.flush(context.Background())
		return err
	}
	served := make(chan error, 1)
	go func() {
		served <- server.Start()
		close(served)
	}()

	logger.Info("taskflow started",
		slog.String("profile", profile),
		slog.String("addr", server.Addr()),
	)

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown requested", slog.Any("cause", context.Cause(ctx)))
	case serveErr = <-served:
		logger.Error("http server stopped", slog.Any("error", serveErr))
	}

	return errors.Join(serveErr, shutdown(cfg, logger, server, served, store, tel))
}

// shutdown drains HTTP, closes the database, and flushes telemetry last so
// spans from the drain are exported. Each step runs even if an earlier one
// failed.
func shutdown(
	cfg *config.Config,
	logger *slog.Logger,
	server *adapthttp.Server,
	served <-chan error,
	store *sqlite.Store,
	tel *telemetryProviders,
) error {
	var errs []error

	drainCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		errs = append(errs, err)
	}
	select {
	case <-served:
	case <-drainCtx.Done():
	}

	if err := store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}

	flushCtx, cancelFlush := context.WithTimeout(context.Background(), telemetryFlushTimeout)
	defer cancelFlush()
	if err := tel.flush(flushCtx); err != nil {
		errs = append(errs, err)
	}

	err := errors.Join(errs...)
	if err != nil {
		logger.Error("shutdown incomplete", slog.Any("error", err))
	} else {
		logger.Info("shutdown complete")
	}
	return err
}
