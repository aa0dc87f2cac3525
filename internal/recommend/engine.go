// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Operation names reported to the Observer.
const (
	OpContent = "content"
	OpHybrid  = "hybrid"
	OpGenre   = "genre"
	OpBatch   = "batch"
	OpSearch  = "search"
	OpInfo    = "info"
	OpSuggest = "suggest"
)

// Outcome labels reported to the Observer.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Observer receives one callback per engine operation. Implementations
// must be safe for concurrent use.
type Observer interface {
	ObserveOperation(op, outcome string, duration time.Duration)
}

// Engine answers recommendation queries over an immutable Snapshot.
// Every method is a pure read of the snapshot, so the engine is safe for
// concurrent use.
type Engine struct {
	snap     *Snapshot
	config   *Config
	logger   zerolog.Logger
	observer Observer

	requestCount  atomic.Int64
	notFoundCount atomic.Int64
	errorCount    atomic.Int64
}

// Metrics is a point-in-time view of engine counters.
type Metrics struct {
	// RequestCount is the total number of operations served.
	RequestCount int64 `json:"request_count"`

	// NotFoundCount is the number of operations that ended in a not-found.
	NotFoundCount int64 `json:"not_found_count"`

	// ErrorCount is the number of operations that failed otherwise.
	ErrorCount int64 `json:"error_count"`
}

// NewEngine creates an engine over snap.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(snap *Snapshot, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if snap == nil {
		return nil, errors.New("snapshot is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		snap:   snap,
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// SetObserver installs an operation observer. Call before serving.
func (e *Engine) SetObserver(o Observer) {
	e.observer = o
}

// Snapshot returns the snapshot the engine serves.
func (e *Engine) Snapshot() *Snapshot {
	return e.snap
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// GetMetrics returns the current counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount:  e.requestCount.Load(),
		NotFoundCount: e.notFoundCount.Load(),
		ErrorCount:    e.errorCount.Load(),
	}
}

// Resolve maps a query to a catalog row using the configured lookup.
func (e *Engine) Resolve(query string) (int, error) {
	return e.snap.resolve(query, e.config.TitleIndex)
}

// observe records the outcome of one operation.
func (e *Engine) observe(op string, start time.Time, err error) {
	e.requestCount.Add(1)

	outcome := OutcomeSuccess
	switch {
	case err == nil:
	case IsNotFound(err):
		outcome = OutcomeNotFound
		e.notFoundCount.Add(1)
	default:
		outcome = OutcomeError
		e.errorCount.Add(1)
	}

	duration := time.Since(start)
	if e.observer != nil {
		e.observer.ObserveOperation(op, outcome, duration)
	}

	e.logger.Debug().
		Str("op", op).
		Str("outcome", outcome).
		Dur("duration", duration).
		Msg("recommend operation complete")
}

// posterURL formats the external poster link for a movie.
func (e *Engine) posterURL(movieID int) string {
	return fmt.Sprintf(e.config.PosterURLTemplate, movieID)
}
