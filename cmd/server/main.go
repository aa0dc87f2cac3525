// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinematch/internal/api"
	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/recommend/storage"
	"github.com/tomtom215/cinematch/internal/supervisor"
	"github.com/tomtom215/cinematch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configPath := config.FindConfigFile()
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("config_file", configPath).
		Str("config", cfg.String()).
		Msg("Starting CineMatch")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows every origin in production; set CORS_ORIGINS")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := loadEngine(ctx, cfg)

	handler := api.NewHandler(engine, cfg, version)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFrom(cfg.Supervisor))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	logger := logging.Logger()

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	if c := handler.Cache(); c != nil {
		tree.AddMaintenanceService(services.NewCacheCleanupService(c, services.DefaultCleanupInterval,
			func(stats cache.Stats) { metrics.ObserveCacheStats(metrics.CacheTypeResponses, stats) }, logger))
	}

	tree.AddMaintenanceService(services.NewConfigWatchService(configPath, config.WatchConfigFile,
		func() { reloadConfig(configPath) }, logger))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("CineMatch stopped")
}

// loadEngine reads the model artifacts and builds the engine. A missing or
// inconsistent artifact set is fatal: the service has nothing to serve.
func loadEngine(ctx context.Context, cfg *config.Config) *recommend.Engine {
	logger := logging.WithComponent("recommend")

	start := time.Now()
	snap, err := storage.NewLoader(cfg.Models.Dir, logger).Load(ctx)
	if err != nil {
		logging.Fatal().Err(err).Str("models_dir", cfg.Models.Dir).Msg("Failed to load model artifacts")
	}

	engine, err := recommend.NewEngine(snap, cfg.Recommend.EngineConfig(), logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}
	engine.SetObserver(metrics.NewEngineObserver())

	stats := engine.Stats()
	metrics.SetSnapshotInfo(stats)

	logging.Info().
		Int("movies", stats.TotalMovies).
		Int("genres", stats.TotalGenres).
		Dur("took", time.Since(start)).
		Msg("Model artifacts loaded")

	return engine
}

// reloadConfig re-reads the config file and applies the settings that can
// change at runtime. Everything else needs a restart.
func reloadConfig(path string) {
	cfg, err := config.LoadFrom(path)
	metrics.RecordConfigReload(err)
	if err != nil {
		logging.Error().Err(err).Str("path", path).Msg("Config reload failed, keeping previous settings")
		return
	}

	logging.SetLevelString(cfg.Logging.Level)
	logging.Info().Str("path", path).Str("level", cfg.Logging.Level).Msg("Config reloaded")
}
