// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	engine, err := recommend.NewEngine(snap, cfg.Recommend.EngineConfig(), logger)
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Models     ModelsConfig     `koanf:"models"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Cache      CacheConfig      `koanf:"cache"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_PORT: Listen port (default: 8000)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
//   - REQUEST_TIMEOUT: Per-request engine deadline (default: 10s)
//   - SHUTDOWN_TIMEOUT: Graceful shutdown deadline (default: 10s)
//   - ENVIRONMENT: development or production (default: development)
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ModelsConfig points at the artifact directory.
//
// Environment Variables:
//   - MODELS_DIR: Directory holding preprocessed_data.json and the
//     similarity and hybrid artifacts (default: models)
type ModelsConfig struct {
	Dir string `koanf:"dir"`
}

// RecommendConfig holds engine and request-bound settings.
type RecommendConfig struct {
	DefaultK          int    `koanf:"default_k"`
	MaxK              int    `koanf:"max_k"`
	MaxBatch          int    `koanf:"max_batch"`
	BatchWorkers      int    `koanf:"batch_workers"`
	RatingVoteFloor   int    `koanf:"rating_vote_floor"`
	PosterURLTemplate string `koanf:"poster_url_template"`
	OverviewMaxLen    int    `koanf:"overview_max_len"`
	TitleIndex        bool   `koanf:"title_index"`
}

// EngineConfig converts the section into the engine's runtime settings.
func (r RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		RatingVoteFloor:   r.RatingVoteFloor,
		PosterURLTemplate: r.PosterURLTemplate,
		OverviewMaxLen:    r.OverviewMaxLen,
		BatchWorkers:      r.BatchWorkers,
		TitleIndex:        r.TitleIndex,
	}
}

// CacheConfig configures the API response cache.
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	Size    int           `koanf:"size"`
	TTL     time.Duration `koanf:"ttl"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// SupervisorConfig mirrors the suture restart policy.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// String returns a one-line summary for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("addr=%s models=%s env=%s cache=%t metrics=%t",
		c.Server.Addr(), c.Models.Dir, c.Server.Environment, c.Cache.Enabled, c.Metrics.Enabled)
}
