// SPDX-License-Identifier: MIT
// Package matops_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matops_test

import (
	"math"
	"testing"

	"github.com/psymetlab/psymet/matops"
)

// hide WRAPS any Matrix to mask its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths in kernels.
type hide struct {
	matops.Matrix
}

// NewFilledDense builds an r×c Dense from a flat row-major value slice.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matops.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: %d values for %dx%d", len(vals), r, c)
	}
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = vals[i*c : (i+1)*c]
	}
	d, err := matops.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return d
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matops.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// CompareClose asserts two matrices agree element-wise within absTol.
func CompareClose(t *testing.T, a, b matops.Matrix, absTol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > absTol {
				t.Fatalf("mismatch at (%d,%d): %g vs %g", i, j, av, bv)
			}
		}
	}
}

// sliceClose asserts two float slices agree element-wise within absTol.
func sliceClose(t *testing.T, got, want []float64, absTol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: %d vs %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > absTol {
			t.Fatalf("mismatch at %d: got=%g want=%g", i, got[i], want[i])
		}
	}
}
