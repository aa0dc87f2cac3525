// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Batch runs every query through the scorer selected by mode and returns
// one result per distinct query. A failing query records its error in its
// own entry and never affects the others. Each entry equals what the
// single-query call would return.
//
// Items run on at most BatchWorkers goroutines. Once ctx is done no new
// items start, and the remaining entries carry ctx.Err().
func (e *Engine) Batch(ctx context.Context, queries []string, mode Mode, k int) (map[string]BatchResult, error) {
	start := time.Now()

	if _, err := ParseMode(string(mode)); err != nil {
		e.observe(OpBatch, start, err)
		return nil, err
	}

	unique := dedupe(queries)
	results := make([]BatchResult, len(unique))

	var g errgroup.Group
	g.SetLimit(e.config.BatchWorkers)

	for i, q := range unique {
		if err := ctx.Err(); err != nil {
			results[i] = BatchResult{Err: err}
			continue
		}
		g.Go(func() error {
			results[i] = e.runBatchItem(q, mode, k)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // items never return errors; failures are stored per entry

	out := make(map[string]BatchResult, len(unique))
	failed := 0
	for i, q := range unique {
		out[q] = results[i]
		if results[i].Err != nil {
			failed++
		}
	}

	e.observe(OpBatch, start, nil)
	e.logger.Debug().
		Int("queries", len(unique)).
		Int("failed", failed).
		Str("mode", string(mode)).
		Msg("batch complete")

	return out, nil
}

// runBatchItem scores one query.
func (e *Engine) runBatchItem(query string, mode Mode, k int) BatchResult {
	if mode == ModeContent {
		resp, err := e.ContentBased(query, k)
		if err != nil {
			return BatchResult{Err: err}
		}
		return BatchResult{Content: resp}
	}

	resp, err := e.Hybrid(query, k)
	if err != nil {
		return BatchResult{Err: err}
	}
	return BatchResult{Hybrid: resp}
}

// dedupe drops repeated queries, keeping first occurrence order.
func dedupe(queries []string) []string {
	seen := make(map[string]struct{}, len(queries))
	out := make([]string, 0, len(queries))
	for _, q := range queries {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	return out
}
