// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
)

// normEpsilon keeps min-max scaling finite when every value is equal.
const normEpsilon = 1e-8

// Matrix is a dense square similarity matrix stored row-major.
type Matrix struct {
	n      int
	values []float64
}

// NewMatrix wraps n*n row-major values. The slice is copied.
func NewMatrix(n int, values []float64) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative matrix size %d", n)
	}
	if len(values) != n*n {
		return nil, fmt.Errorf("matrix size %d needs %d values, got %d", n, n*n, len(values))
	}
	return &Matrix{n: n, values: append([]float64(nil), values...)}, nil
}

// MatrixFromRows builds a matrix from a slice of equal-length rows.
func MatrixFromRows(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	values := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(row), n)
		}
		values = append(values, row...)
	}
	return &Matrix{n: n, values: values}, nil
}

// Size returns N.
func (m *Matrix) Size() int {
	return m.n
}

// At returns entry (i, j).
func (m *Matrix) At(i, j int) float64 {
	return m.values[i*m.n+j]
}

// row returns a read-only view of row i.
func (m *Matrix) row(i int) []float64 {
	return m.values[i*m.n : (i+1)*m.n]
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	return append([]float64(nil), m.row(i)...)
}

// Values returns a copy of the row-major values.
func (m *Matrix) Values() []float64 {
	return append([]float64(nil), m.values...)
}

// MinMaxScale maps values onto [0,1] with (x-min)/(max-min+1e-8).
func MinMaxScale(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	span := hi - lo + normEpsilon
	for i, v := range values {
		out[i] = (v - lo) / span
	}
	return out
}
