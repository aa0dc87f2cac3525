// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateModels(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateMetrics(); err != nil {
		return err
	}

	if err := c.validateSupervisor(); err != nil {
		return err
	}

	return c.validateLogging()
}

var validEnvironments = map[string]bool{
	"development": true,
	"production":  true,
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, production")
	}
	return nil
}

func (c *Config) validateModels() error {
	if strings.TrimSpace(c.Models.Dir) == "" {
		return fmt.Errorf("MODELS_DIR is required")
	}
	return nil
}

// validateRecommend validates request bounds and the engine settings.
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxK < 1 {
		return fmt.Errorf("MAX_RECOMMENDATIONS must be positive")
	}
	if r.DefaultK < 1 || r.DefaultK > r.MaxK {
		return fmt.Errorf("DEFAULT_RECOMMENDATIONS must be between 1 and %d", r.MaxK)
	}
	if r.MaxBatch < 1 {
		return fmt.Errorf("MAX_BATCH_SIZE must be positive")
	}
	if err := r.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return validatePosterTemplate(r.PosterURLTemplate)
}

func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if c.Cache.Size < 1 {
		return fmt.Errorf("CACHE_SIZE must be positive when the cache is enabled")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when the cache is enabled")
	}
	return nil
}

// validateSecurity validates CORS and rate limiting.
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return c.validateRateLimits()
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS reports a wildcard origin list in production, which
// is logged at startup.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateMetrics() error {
	if !c.Metrics.Enabled {
		return nil
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("METRICS_PATH must start with /")
	}
	return nil
}

func (c *Config) validateSupervisor() error {
	s := c.Supervisor
	if s.FailureThreshold <= 0 {
		return fmt.Errorf("SUPERVISOR_FAILURE_THRESHOLD must be positive")
	}
	if s.FailureDecay <= 0 {
		return fmt.Errorf("SUPERVISOR_FAILURE_DECAY must be positive")
	}
	if s.FailureBackoff < 0 || s.ShutdownTimeout < 0 {
		return fmt.Errorf("supervisor durations must not be negative")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
