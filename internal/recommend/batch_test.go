// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestEngine_Batch(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	ctx := context.Background()

	t.Run("hybrid mixes successes and failures", func(t *testing.T) {
		out, err := engine.Batch(ctx, []string{"Toy Story", "Nonexistent"}, ModeHybrid, 2)
		if err != nil {
			t.Fatalf("Batch() error = %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("len = %d, want 2", len(out))
		}

		ok := out["Toy Story"]
		if ok.Err != nil || ok.Hybrid == nil {
			t.Fatalf("Toy Story entry = %+v, want hybrid success", ok)
		}
		single, _ := engine.Hybrid("Toy Story", 2)
		for i := range single.Recommendations {
			if ok.Hybrid.Recommendations[i].MovieID != single.Recommendations[i].MovieID {
				t.Errorf("batch entry differs from single call at %d", i)
			}
		}

		miss := out["Nonexistent"]
		if !errors.Is(miss.Err, ErrNotFound) {
			t.Errorf("Nonexistent error = %v, want ErrNotFound", miss.Err)
		}
	})

	t.Run("content mode", func(t *testing.T) {
		out, err := engine.Batch(ctx, []string{"jumanji"}, ModeContent, 1)
		if err != nil {
			t.Fatalf("Batch() error = %v", err)
		}
		entry := out["jumanji"]
		if entry.Content == nil || entry.Hybrid != nil {
			t.Fatalf("entry = %+v, want content response", entry)
		}
		if entry.Content.Recommendations[0].MovieID != 862 {
			t.Errorf("top = %d, want 862", entry.Content.Recommendations[0].MovieID)
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		out, err := engine.Batch(ctx, []string{"heat", "heat", "heat"}, ModeContent, 1)
		if err != nil {
			t.Fatalf("Batch() error = %v", err)
		}
		if len(out) != 1 {
			t.Errorf("len = %d, want 1", len(out))
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		out, err := engine.Batch(ctx, nil, ModeHybrid, 5)
		if err != nil {
			t.Fatalf("Batch() error = %v", err)
		}
		if len(out) != 0 {
			t.Errorf("len = %d, want 0", len(out))
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		if _, err := engine.Batch(ctx, []string{"heat"}, Mode("knn"), 5); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("error = %v, want ErrInvalidMode", err)
		}
	})
}

func TestEngine_BatchMalformedWeights(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, func(cfg *SnapshotConfig) {
		cfg.Weights = nil
	})

	out, err := engine.Batch(context.Background(), []string{"Toy Story", "Jumanji"}, ModeHybrid, 2)
	if err != nil {
		t.Fatalf("Batch() error = %v", err)
	}
	for q, entry := range out {
		if !errors.Is(entry.Err, ErrMalformedWeights) {
			t.Errorf("%s error = %v, want ErrMalformedWeights", q, entry.Err)
		}
	}
}

func TestEngine_BatchCanceled(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := engine.Batch(ctx, []string{"Toy Story", "Heat"}, ModeContent, 2)
	if err != nil {
		t.Fatalf("Batch() error = %v", err)
	}
	for q, entry := range out {
		if !errors.Is(entry.Err, context.Canceled) {
			t.Errorf("%s error = %v, want context.Canceled", q, entry.Err)
		}
	}
}

func TestBatchResult_MarshalJSON(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	out, err := engine.Batch(context.Background(), []string{"Heat", "Alien"}, ModeContent, 1)
	if err != nil {
		t.Fatalf("Batch() error = %v", err)
	}

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if _, ok := decoded["Heat"]["recommendations"]; !ok {
		t.Errorf("Heat entry = %v, want recommendations", decoded["Heat"])
	}
	msg, _ := decoded["Alien"]["error"].(string)
	if !strings.Contains(msg, "not found") {
		t.Errorf("Alien error = %q, want not found message", msg)
	}
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	got := dedupe([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("dedupe() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dedupe() = %v, want %v", got, want)
		}
	}
}
