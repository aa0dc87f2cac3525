// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestGenerateIDs(t *testing.T) {
	t.Parallel()

	a, b := GenerateRequestID(), GenerateRequestID()
	if len(a) != 36 || a == b {
		t.Errorf("GenerateRequestID() = %q, %q", a, b)
	}
	if id := GenerateCorrelationID(); len(id) != 8 {
		t.Errorf("GenerateCorrelationID() length = %d, want 8", len(id))
	}
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if RequestIDFromContext(ctx) != "" || CorrelationIDFromContext(ctx) != "" {
		t.Error("empty context should carry no IDs")
	}

	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q", got)
	}
	if got := CorrelationIDFromContext(ctx); got != "corr-1" {
		t.Errorf("CorrelationIDFromContext() = %q", got)
	}

	ctx = ContextWithNewCorrelationID(ctx)
	if got := CorrelationIDFromContext(ctx); got == "corr-1" || got == "" {
		t.Errorf("ContextWithNewCorrelationID() kept %q", got)
	}
}

func TestCtx(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "abc-123")

	Ctx(ctx).Info().Msg("served")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"abc-123"`) {
		t.Errorf("request_id missing: %s", out)
	}
	if strings.Contains(out, "correlation_id") {
		t.Errorf("unexpected correlation_id: %s", out)
	}
}

func TestCtxWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithCorrelationID(ctx, "batch-7")

	logger := CtxWith(ctx).Str("title", "Heat").Logger()
	logger.Info().Msg("item")

	out := buf.String()
	if !strings.Contains(out, `"correlation_id":"batch-7"`) || !strings.Contains(out, `"title":"Heat"`) {
		t.Errorf("unexpected output: %s", out)
	}
}
