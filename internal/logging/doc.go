// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package logging provides the zerolog-based logging used across CineMatch.

# Quick Start

	logging.Init(logging.Config{
	    Level:     cfg.Logging.Level,
	    Format:    cfg.Logging.Format,
	    Caller:    cfg.Logging.Caller,
	    Timestamp: true,
	})

	logging.Info().Str("addr", addr).Msg("HTTP server listening")

Components take a child logger:

	log := logging.WithComponent("model_loader")

# Request Context

The API middleware stores a request ID in the request context. Ctx adds
it to every entry:

	logging.Ctx(r.Context()).Warn().Err(err).Msg("Recommendation failed")
	// {"level":"warn","request_id":"2f1c...","error":"...","message":"..."}

# slog Bridge

SlogHandler lets slog consumers such as sutureslog write through zerolog:

	eventHook := (&sutureslog.Handler{Logger: logging.NewSlogLogger()}).MustHook()

Always terminate an entry with Msg or Send; an unterminated event is
never written.
*/
package logging
