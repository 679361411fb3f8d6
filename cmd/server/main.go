// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/database"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
	"github.com/tomtom215/marquee/internal/upload"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 10 * time.Second
	indexBuildTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		stop()
		os.Exit(1)
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config) error {
	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Str("database", cfg.Database.Name).
		Bool("upload_configured", cfg.Upload.URL != "").
		Msg("Starting Marquee")

	metrics.SetAppInfo(version)

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin")
	}
	if cfg.Upload.URL == "" {
		logging.Warn().Msg("Upload URL not configured; POST /api/upload will fail")
	}
	if cfg.Server.StaticDir != "" && !api.StaticDirUsable(cfg.Server.StaticDir) {
		logging.Warn().Str("static_dir", cfg.Server.StaticDir).Msg("Static directory has no index.html; client routes will 404")
	}

	watchLogLevel()

	db, err := database.New(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	relay := upload.NewRelay(&cfg.Upload, nil)
	handler := api.NewHandler(db.Movies(), relay, db)
	router := api.NewRouter(handler, cfg)

	server := newHTTPServer(cfg, router.SetupChi())

	// sutureslog needs slog; the adapter forwards to zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewIndexService(db.Movies(), indexBuildTimeout))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("supervisor tree stopped: %w", err)
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}
	return nil
}

// newHTTPServer applies the configured request timeout to reads and writes.
func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       idleTimeout,
	}
}

// watchLogLevel re-reads the config file on change and applies a new
// logging.level. Other settings need a restart.
func watchLogLevel() {
	path := config.ConfigFile()
	if path == "" {
		return
	}
	if err := config.WatchConfigFile(path, reloadLogLevel); err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watch disabled")
		return
	}
	logging.Info().Str("path", path).Msg("Watching config file for log level changes")
}

func reloadLogLevel() {
	cfg, err := config.Load()
	if err != nil {
		logging.Warn().Err(err).Msg("Ignoring invalid config file change")
		return
	}
	logging.SetLevelString(cfg.Logging.Level)
	logging.Info().Str("level", cfg.Logging.Level).Msg("Log level reloaded")
}
