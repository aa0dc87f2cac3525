// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"math"
	"testing"
)

func TestNewMatrix(t *testing.T) {
	t.Parallel()

	if _, err := NewMatrix(2, []float64{1, 2, 3}); err == nil {
		t.Error("NewMatrix() should reject wrong value count")
	}
	if _, err := NewMatrix(-1, nil); err == nil {
		t.Error("NewMatrix() should reject negative size")
	}

	values := []float64{1, 2, 3, 4}
	m, err := NewMatrix(2, values)
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	values[0] = 99
	if m.At(0, 0) != 1 {
		t.Error("NewMatrix() should copy its input")
	}
	if m.At(1, 0) != 3 {
		t.Errorf("At(1,0) = %v, want 3", m.At(1, 0))
	}

	row := m.Row(1)
	row[0] = 42
	if m.At(1, 0) != 3 {
		t.Error("Row() should return a copy")
	}
}

func TestMatrixFromRows(t *testing.T) {
	t.Parallel()

	if _, err := MatrixFromRows([][]float64{{1, 2}, {3}}); err == nil {
		t.Error("MatrixFromRows() should reject ragged rows")
	}
	if _, err := MatrixFromRows([][]float64{{1, 2, 3}, {4, 5, 6}}); err == nil {
		t.Error("MatrixFromRows() should reject non-square input")
	}

	m, err := MatrixFromRows(nil)
	if err != nil || m.Size() != 0 {
		t.Errorf("MatrixFromRows(nil) = %v, %v", m, err)
	}
}

func TestMinMaxScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{name: "empty", in: nil, want: []float64{}},
		{name: "range", in: []float64{10, 20, 30}, want: []float64{0, 0.5, 1}},
		{name: "constant column", in: []float64{5, 5, 5}, want: []float64{0, 0, 0}},
		{name: "negative values", in: []float64{-1, 1}, want: []float64{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MinMaxScale(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-6 {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
				}
				if got[i] < 0 || got[i] > 1 {
					t.Errorf("[%d] = %v outside [0,1]", i, got[i])
				}
			}
		})
	}
}

func TestTopK(t *testing.T) {
	t.Parallel()

	scores := []float64{selfScore, 0.9, 0.9, 0.2}

	if got := topK(scores, 0, 2); !equalInts(got, []int{1, 2}) {
		t.Errorf("topK() = %v, want [1 2]", got)
	}
	if got := topK(scores, 0, 10); !equalInts(got, []int{1, 2, 3}) {
		t.Errorf("topK() = %v, want [1 2 3]", got)
	}
	if got := topK(scores, 0, 0); len(got) != 0 {
		t.Errorf("topK(k=0) = %v, want empty", got)
	}
	if got := topK(scores, 0, -3); len(got) != 0 {
		t.Errorf("topK(k<0) = %v, want empty", got)
	}
}
