// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/recommend"
)

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Toy Story", "Toy Story"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
	}

	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	a := generateETag([]byte(`{"a":1}`))
	b := generateETag([]byte(`{"a":1}`))
	c := generateETag([]byte(`{"a":2}`))

	if a != b {
		t.Errorf("same data produced different ETags: %s %s", a, b)
	}
	if a == c {
		t.Errorf("different data produced the same ETag: %s", a)
	}
	if a[0] != '"' || a[len(a)-1] != '"' {
		t.Errorf("ETag %s should be quoted", a)
	}
}

func TestGetIntParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		want    int
		wantErr bool
	}{
		{"missing uses default", "", 7, false},
		{"valid", "n=3", 3, false},
		{"negative passes through", "n=-2", -2, false},
		{"not a number", "n=abc", 0, true},
		{"float", "n=2.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			got, apiErr := getIntParam(req, "n", 7)
			if (apiErr != nil) != tt.wantErr {
				t.Fatalf("getIntParam() error = %v, wantErr %v", apiErr, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("getIntParam() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRespondEngineError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"movie not found", fmt.Errorf("%w: %q", recommend.ErrNotFound, "x"), http.StatusNotFound, "MOVIE_NOT_FOUND"},
		{"genre not found", recommend.ErrGenreNotFound, http.StatusNotFound, "GENRE_NOT_FOUND"},
		{"invalid sort", recommend.ErrInvalidSort, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"invalid mode", recommend.ErrInvalidMode, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout, "REQUEST_TIMEOUT"},
		{"malformed weights", recommend.ErrMalformedWeights, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			respondEngineError(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if code := errorCode(t, decodeResponse(t, w)); code != tt.wantCode {
				t.Errorf("code = %s, want %s", code, tt.wantCode)
			}
			if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
				t.Errorf("Cache-Control = %q, want no-store", cc)
			}
		})
	}
}

func TestRunWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("completes", func(t *testing.T) {
		t.Parallel()

		got, err := runWithTimeout(context.Background(), func() (int, error) { return 42, nil })
		if err != nil || got != 42 {
			t.Errorf("runWithTimeout() = %d, %v; want 42, nil", got, err)
		}
	})

	t.Run("deadline", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		release := make(chan struct{})
		defer close(release)

		_, err := runWithTimeout(ctx, func() (int, error) {
			<-release
			return 1, nil
		})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("runWithTimeout() error = %v, want DeadlineExceeded", err)
		}
	})
}

func TestServeCached_Timeout(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, func(cfg *config.Config) {
		cfg.Server.RequestTimeout = 10 * time.Millisecond
	})

	release := make(chan struct{})
	defer close(release)

	w := httptest.NewRecorder()
	serveCached(h, w, httptest.NewRequest(http.MethodGet, "/", nil), "slow", "params", func() (string, error) {
		<-release
		return "late", nil
	})

	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504", w.Code)
	}
	if h.Cache().Len() != 0 {
		t.Error("timed out result must not be cached")
	}
}

func TestRespondJSON_Headers(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondSuccess(w, map[string]int{"n": 1}, time.Millisecond, false)

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if w.Header().Get("ETag") == "" {
		t.Error("ETag should be set on 200 responses")
	}
	body := decodeResponse(t, w)
	if body["status"] != "success" {
		t.Errorf("status = %v, want success", body["status"])
	}
}
