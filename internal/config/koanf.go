// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinematch/config.yaml",
	"/etc/cinematch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Defaults returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func Defaults() *Config {
	engine := recommend.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			Timeout:         30 * time.Second,
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Models: ModelsConfig{
			Dir: "models",
		},
		Recommend: RecommendConfig{
			DefaultK:          10,
			MaxK:              50,
			MaxBatch:          100,
			BatchWorkers:      engine.BatchWorkers,
			RatingVoteFloor:   engine.RatingVoteFloor,
			PosterURLTemplate: engine.PosterURLTemplate,
			OverviewMaxLen:    engine.OverviewMaxLen,
			TitleIndex:        engine.TitleIndex,
		},
		Cache: CacheConfig{
			Enabled: true,
			Size:    1000,
			TTL:     5 * time.Minute,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Supervisor: SupervisorConfig{
			FailureThreshold: 5,
			FailureDecay:     30,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
	}
}

// Load loads configuration from the first config file found and the
// environment.
func Load() (*Config, error) {
	return LoadFrom(FindConfigFile())
}

// LoadFrom loads configuration using Koanf with layered sources:
//  1. Struct defaults
//  2. YAML file at path (skipped when path is empty)
//  3. Environment variables (highest priority)
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Layer 3: Environment variables
	// MODELS_DIR -> models.dir, HTTP_PORT -> server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// FindConfigFile returns the config file to load, or "" when none exists.
// CONFIG_PATH wins over DefaultConfigPaths.
func FindConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are koanf paths that accept comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated strings from environment
// variables into string slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	"http_host":        "server.host",
	"http_port":        "server.port",
	"http_timeout":     "server.timeout",
	"request_timeout":  "server.request_timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	"models_dir": "models.dir",

	"default_recommendations": "recommend.default_k",
	"max_recommendations":     "recommend.max_k",
	"max_batch_size":          "recommend.max_batch",
	"batch_workers":           "recommend.batch_workers",
	"rating_vote_floor":       "recommend.rating_vote_floor",
	"poster_url_template":     "recommend.poster_url_template",
	"overview_max_length":     "recommend.overview_max_len",
	"title_index":             "recommend.title_index",

	"cache_enabled": "cache.enabled",
	"cache_size":    "cache.size",
	"cache_ttl":     "cache.ttl",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"metrics_enabled": "metrics.enabled",
	"metrics_path":    "metrics.path",

	"supervisor_failure_threshold": "supervisor.failure_threshold",
	"supervisor_failure_decay":     "supervisor.failure_decay",
	"supervisor_failure_backoff":   "supervisor.failure_backoff",
	"supervisor_shutdown_timeout":  "supervisor.shutdown_timeout",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - MODELS_DIR -> models.dir
//   - HTTP_PORT -> server.port
//   - CACHE_TTL -> cache.ttl
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped variables are skipped so unrelated environment does not
	// leak into the configuration.
	return ""
}

// WatchConfigFile calls callback whenever the file at path changes.
// The caller is responsible for reloading and applying the new values.
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)
	return provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
