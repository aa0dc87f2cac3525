// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"net/url"
)

// validatePosterTemplate checks that the poster template renders to an
// absolute http or https URL. The %d count is checked by the engine config.
func validatePosterTemplate(template string) error {
	rendered := fmt.Sprintf(template, 862)

	parsedURL, err := url.Parse(rendered)
	if err != nil {
		return fmt.Errorf("POSTER_URL_TEMPLATE failed to parse URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("POSTER_URL_TEMPLATE scheme must be http or https, got: %s", parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("POSTER_URL_TEMPLATE host is required")
	}

	return nil
}
