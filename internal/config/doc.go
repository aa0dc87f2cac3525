// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config provides configuration management for CineMatch.

# Configuration Sources

Values are layered with Koanf v2, later sources winning:
  - Struct defaults (Defaults)
  - An optional YAML file: CONFIG_PATH, else config.yaml, config.yml,
    /etc/cinematch/config.yaml or /etc/cinematch/config.yml
  - Environment variables through an explicit mapping (envTransformFunc);
    unmapped variables are ignored

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8000)
  - HTTP_TIMEOUT (default: 30s), REQUEST_TIMEOUT (default: 10s)
  - SHUTDOWN_TIMEOUT (default: 10s)
  - ENVIRONMENT: development or production

Models and engine:
  - MODELS_DIR (default: models)
  - DEFAULT_RECOMMENDATIONS (10), MAX_RECOMMENDATIONS (50), MAX_BATCH_SIZE (100)
  - BATCH_WORKERS (4), RATING_VOTE_FLOOR (50), OVERVIEW_MAX_LENGTH (200)
  - POSTER_URL_TEMPLATE: fmt template with one %d for movie_id
  - TITLE_INDEX: resolve exact titles through the title trie (default: true)

Cache:
  - CACHE_ENABLED (true), CACHE_SIZE (1000 entries), CACHE_TTL (5m)

Security:
  - CORS_ORIGINS: comma-separated (default: *)
  - RATE_LIMIT_REQUESTS (100), RATE_LIMIT_WINDOW (1m), DISABLE_RATE_LIMIT

Logging and metrics:
  - LOG_LEVEL, LOG_FORMAT (json or console), LOG_CALLER
  - METRICS_ENABLED, METRICS_PATH (default: /metrics)

Supervisor:
  - SUPERVISOR_FAILURE_THRESHOLD (5), SUPERVISOR_FAILURE_DECAY (30)
  - SUPERVISOR_FAILURE_BACKOFF (15s), SUPERVISOR_SHUTDOWN_TIMEOUT (10s)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	engine, err := recommend.NewEngine(snap, cfg.Recommend.EngineConfig(), logger)

Load validates the result; an invalid value aborts startup with a message
naming the environment variable.
*/
package config
