// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPosterURLTemplate formats a movie_id into an external poster URL.
const DefaultPosterURLTemplate = "https://img.omdbapi.com/?i=tt%d&apikey=placeholder"

// Config contains the engine's runtime settings. The model itself lives in
// the Snapshot.
type Config struct {
	// RatingVoteFloor is the minimum vote_count for the "rating" genre sort.
	// Rows below it are excluded from that ordering entirely.
	RatingVoteFloor int `json:"rating_vote_floor"`

	// PosterURLTemplate is a fmt template with a single %d for movie_id.
	PosterURLTemplate string `json:"poster_url_template"`

	// OverviewMaxLen truncates MovieInfo overviews. Longer text gets "...".
	OverviewMaxLen int `json:"overview_max_len"`

	// BatchWorkers bounds concurrent items in Batch.
	BatchWorkers int `json:"batch_workers"`

	// TitleIndex resolves exact titles through the title trie instead of
	// a linear scan. Results are identical either way.
	TitleIndex bool `json:"title_index"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	return &Config{
		RatingVoteFloor:   50,
		PosterURLTemplate: DefaultPosterURLTemplate,
		OverviewMaxLen:    200,
		BatchWorkers:      4,
		TitleIndex:        true,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []error

	if c.RatingVoteFloor < 0 {
		errs = append(errs, fmt.Errorf("rating_vote_floor must be non-negative, got %d", c.RatingVoteFloor))
	}
	if strings.Count(c.PosterURLTemplate, "%d") != 1 {
		errs = append(errs, fmt.Errorf("poster_url_template must contain exactly one %%d, got %q", c.PosterURLTemplate))
	}
	if c.OverviewMaxLen < 1 {
		errs = append(errs, fmt.Errorf("overview_max_len must be positive, got %d", c.OverviewMaxLen))
	}
	if c.BatchWorkers < 1 {
		errs = append(errs, fmt.Errorf("batch_workers must be positive, got %d", c.BatchWorkers))
	}

	return errors.Join(errs...)
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
