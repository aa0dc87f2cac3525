// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package services adapts CineMatch components to suture.Service.
//
//   - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
//   - CacheCleanupService: periodic sweep of expired response cache entries
//   - ConfigWatchService: reloads settings when the config file changes
//
// Every service returns ctx.Err() when its context ends so the supervisor
// treats the stop as clean.
package services
