// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine. Callers match them with errors.Is.
var (
	// ErrLoad indicates a missing or structurally incompatible artifact.
	// It is fatal: no snapshot is produced.
	ErrLoad = errors.New("load failed")

	// ErrNotFound indicates a query title resolved to no catalog row.
	ErrNotFound = errors.New("movie not found")

	// ErrGenreNotFound indicates no catalog row carries the requested genre.
	ErrGenreNotFound = errors.New("no movies found for genre")

	// ErrMalformedWeights indicates the hybrid weights record matches
	// neither the ensemble nor the component schema.
	ErrMalformedWeights = errors.New("malformed hybrid weights")

	// ErrInvalidSort indicates an unknown genre sort order.
	ErrInvalidSort = errors.New("invalid sort order")

	// ErrInvalidMode indicates an unknown scoring mode.
	ErrInvalidMode = errors.New("invalid model type")
)

// LoadError describes why a snapshot could not be built.
type LoadError struct {
	// Artifact is the logical artifact name (catalog, similarity, hybrid).
	Artifact string

	// Path is the file that failed, if any.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements error.
func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("load %s (%s): %v", e.Artifact, e.Path, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Artifact, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrLoad.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// newLoadError builds a LoadError for an artifact without a file path.
func newLoadError(artifact string, format string, args ...any) *LoadError {
	return &LoadError{Artifact: artifact, Err: fmt.Errorf(format, args...)}
}

// IsNotFound reports whether err is a recoverable not-found condition
// (unknown title or unknown genre).
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrGenreNotFound)
}

// errNotFound wraps ErrNotFound with the query that failed.
func errNotFound(query string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, query)
}
