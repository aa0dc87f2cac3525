// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
)

// Weight record keys.
const (
	WeightEnsemble   = "ensemble"
	WeightContent    = "content"
	WeightPopularity = "popularity"
	WeightRating     = "rating"
)

// Defaults for component weights that are absent from the record.
const (
	DefaultContentWeight    = 0.6
	DefaultPopularityWeight = 0.2
	DefaultRatingWeight     = 0.2
)

// WeightsSchema names the shape of a hybrid weights record.
type WeightsSchema string

const (
	SchemaEnsemble  WeightsSchema = "ensemble"
	SchemaComponent WeightsSchema = "component"
)

// HybridWeights is the resolved weights record. It is implemented only by
// EnsembleWeights and ComponentWeights.
type HybridWeights interface {
	// Schema reports which record shape was loaded.
	Schema() WeightsSchema

	// Coefficients returns the content, popularity and rating multipliers.
	Coefficients() (content, popularity, rating float64)

	// Echo returns the active weights keyed by their record names.
	Echo() map[string]float64

	sealed()
}

// EnsembleWeights is the record shape keyed by "ensemble". All three
// fields are required.
type EnsembleWeights struct {
	Ensemble   float64
	Popularity float64
	Rating     float64
}

// Schema implements HybridWeights.
func (EnsembleWeights) Schema() WeightsSchema { return SchemaEnsemble }

// Coefficients implements HybridWeights.
func (w EnsembleWeights) Coefficients() (content, popularity, rating float64) {
	return w.Ensemble, w.Popularity, w.Rating
}

// Echo implements HybridWeights.
func (w EnsembleWeights) Echo() map[string]float64 {
	return map[string]float64{
		WeightEnsemble:   w.Ensemble,
		WeightPopularity: w.Popularity,
		WeightRating:     w.Rating,
	}
}

func (EnsembleWeights) sealed() {}

// ComponentWeights is the record shape keyed by "content". Each field is
// optional and falls back to 0.6/0.2/0.2.
type ComponentWeights struct {
	Content    *float64
	Popularity *float64
	Rating     *float64
}

// Schema implements HybridWeights.
func (ComponentWeights) Schema() WeightsSchema { return SchemaComponent }

// Coefficients implements HybridWeights.
func (w ComponentWeights) Coefficients() (content, popularity, rating float64) {
	return valueOr(w.Content, DefaultContentWeight),
		valueOr(w.Popularity, DefaultPopularityWeight),
		valueOr(w.Rating, DefaultRatingWeight)
}

// Echo implements HybridWeights. Absent fields are reported with their
// defaults.
func (w ComponentWeights) Echo() map[string]float64 {
	c, p, r := w.Coefficients()
	return map[string]float64{
		WeightContent:    c,
		WeightPopularity: p,
		WeightRating:     r,
	}
}

func (ComponentWeights) sealed() {}

// ParseWeights resolves a raw weights record into one of the two schemas.
// The presence of "ensemble" selects EnsembleWeights. Otherwise any of
// "content", "popularity" or "rating" selects ComponentWeights. A record
// matching neither returns ErrMalformedWeights.
func ParseWeights(raw map[string]float64) (HybridWeights, error) {
	if ens, ok := raw[WeightEnsemble]; ok {
		pop, okPop := raw[WeightPopularity]
		rat, okRat := raw[WeightRating]
		if !okPop || !okRat {
			return nil, fmt.Errorf("%w: ensemble record requires %q and %q", ErrMalformedWeights, WeightPopularity, WeightRating)
		}
		return EnsembleWeights{Ensemble: ens, Popularity: pop, Rating: rat}, nil
	}

	w := ComponentWeights{
		Content:    lookup(raw, WeightContent),
		Popularity: lookup(raw, WeightPopularity),
		Rating:     lookup(raw, WeightRating),
	}
	if w.Content == nil && w.Popularity == nil && w.Rating == nil {
		return nil, fmt.Errorf("%w: no recognized keys", ErrMalformedWeights)
	}
	return w, nil
}

func lookup(raw map[string]float64, key string) *float64 {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	return &v
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
