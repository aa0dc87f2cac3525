// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// WatchFunc starts watching path and calls onChange after every change.
// config.WatchConfigFile satisfies it.
type WatchFunc func(path string, onChange func()) error

// ConfigWatchService watches the config file and calls reload when it
// changes. With no config file in use there is nothing to watch and the
// service asks suture not to restart it.
type ConfigWatchService struct {
	path   string
	watch  WatchFunc
	reload func()
	logger zerolog.Logger
	name   string
}

// NewConfigWatchService creates the watcher service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewConfigWatchService(path string, watch WatchFunc, reload func(), logger zerolog.Logger) *ConfigWatchService {
	return &ConfigWatchService{
		path:   path,
		watch:  watch,
		reload: reload,
		logger: logger.With().Str("service", "config-watch").Logger(),
		name:   "config-watch",
	}
}

// Serve implements suture.Service.
func (s *ConfigWatchService) Serve(ctx context.Context) error {
	if s.path == "" {
		s.logger.Debug().Msg("no config file in use, not watching")
		return suture.ErrDoNotRestart
	}

	if err := s.watch(s.path, s.reload); err != nil {
		return fmt.Errorf("watch %s: %w", s.path, err)
	}
	s.logger.Info().Str("path", s.path).Msg("watching config file for changes")

	<-ctx.Done()
	return ctx.Err()
}

// String returns the service name for logging.
func (s *ConfigWatchService) String() string {
	return s.name
}
