// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package main is the entry point for the CineMatch HTTP server.

CineMatch serves content-based and hybrid movie recommendations from
precomputed model artifacts. The server loads the artifacts once at
startup and answers every request from memory.

# Startup

 1. Configuration: Koanf v2 layers defaults, an optional YAML file and
    environment variables
 2. Logging: the global zerolog logger is rebuilt from the logging section
 3. Artifacts: preprocessed_data.json plus the similarity and hybrid
    artifacts are read from MODELS_DIR; failure here is fatal
 4. HTTP: chi router with CORS, rate limiting, gzip and Prometheus metrics
 5. Supervision: suture v4 tree running the HTTP server, the response cache
    sweeper and the config file watcher

# Supervisor Tree

	cinematch
	├── api-layer
	│   └── http-server
	└── maintenance-layer
	    ├── cache-cleanup
	    └── config-watch

# Configuration

Commonly used environment variables:
  - CONFIG_PATH: YAML config file (default: ./config.yaml if present)
  - MODELS_DIR: artifact directory (default: models)
  - HTTP_HOST, HTTP_PORT: listen address (default: 0.0.0.0:8000)
  - CACHE_ENABLED, CACHE_TTL: response cache
  - CORS_ORIGINS: comma-separated allowed origins
  - LOG_LEVEL, LOG_FORMAT: zerolog level and json/console output

Editing the config file while the server runs reloads the log level.
Other settings take effect on restart.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops
accepting connections and drains in-flight requests for up to
SHUTDOWN_TIMEOUT before the process exits.

# Example

	export MODELS_DIR=/srv/cinematch/models
	export LOG_FORMAT=console
	./cinematch-server
*/
package main
