// Package main is the entry point for the movie quote service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jsamuelsen/movie-quotes/internal/adapters/corpus"
	"github.com/jsamuelsen/movie-quotes/internal/adapters/http"
	"github.com/jsamuelsen/movie-quotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/movie-quotes/internal/adapters/memory"
	"github.com/jsamuelsen/movie-quotes/internal/app"
	"github.com/jsamuelsen/movie-quotes/internal/platform/config"
	"github.com/jsamuelsen/movie-quotes/internal/platform/logging"
	"github.com/jsamuelsen/movie-quotes/internal/platform/telemetry"
	"github.com/jsamuelsen/movie-quotes/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	tel, err := telemetry.New(ctx, telemetry.FromConfig(cfg))
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := tel.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	store := memory.NewQuoteStore()

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	metrics := prometheus.NewRegistry()
	metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		store.Collector(),
	)

	quoteService, err := app.NewQuoteService(app.QuoteServiceConfig{
		Store:      store,
		Logger:     logger,
		Registerer: metrics,
	})
	if err != nil {
		return fmt.Errorf("creating quote service: %w", err)
	}

	if err := loadCorpora(ctx, cfg, logger, quoteService); err != nil {
		return err
	}

	server := http.New(http.ServerConfig{
		Server:    cfg.Server,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
	}, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		ServiceName:   telemetry.FromConfig(cfg).ServiceName,
		QuoteHandler:  handlers.NewQuoteHandler(quoteService),
		HealthHandler: handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime), metrics),
		Timeout:       cfg.Server.RequestTimeout,
	})

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// loadCorpora fills the store before the server starts listening.
func loadCorpora(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *app.QuoteService) error {
	sources, err := corpus.FromConfig(cfg.Corpus, cfg.Client, logger)
	if err != nil {
		return fmt.Errorf("configuring corpora: %w", err)
	}

	ctx = logging.WithContext(ctx, logger)

	report, err := svc.LoadCorpora(ctx, sources, app.LoadPolicy(cfg.Corpus.OnError))
	if err != nil {
		return fmt.Errorf("loading corpora: %w", err)
	}

	logger.Info("corpora loaded",
		slog.Int("sources", len(report.Sources)),
		slog.Int("failed", len(report.Failed())),
		slog.Int("quotes", report.Total),
	)

	return nil
}

// waitForShutdown blocks until a signal or a server error, then drains the
// server within shutdownTimeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
