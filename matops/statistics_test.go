// SPDX-License-Identifier: MIT

package matops_test

import (
	"errors"
	"math"
	"testing"

	"github.com/psymetlab/psymet/matops"
)

// anchored responses: x2 = 2*x1 (r=1), x3 = -x1 (r=-1), x4 constant.
func responseFixture(t *testing.T) *matops.Dense {
	t.Helper()
	return NewFilledDense(t, 4, 4, []float64{
		1, 2, -1, 7,
		2, 4, -2, 7,
		3, 6, -3, 7,
		4, 8, -4, 7,
	})
}

func TestCorrelation_SignsAndDiagonal(t *testing.T) {
	t.Parallel()

	r, err := matops.Correlation(responseFixture(t))
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	if r.Rows() != 4 || r.Cols() != 4 {
		t.Fatalf("shape: got %dx%d, want 4x4", r.Rows(), r.Cols())
	}
	// Perfect positive and negative correlation between scaled copies.
	if got := MustAt(t, r, 0, 1); math.Abs(got-1) > 1e-12 {
		t.Fatalf("r(0,1): got %g, want 1", got)
	}
	if got := MustAt(t, r, 0, 2); math.Abs(got+1) > 1e-12 {
		t.Fatalf("r(0,2): got %g, want -1", got)
	}
	// Zero-variance item: off-diagonals 0, diagonal still 1.
	for j := 0; j < 3; j++ {
		if got := MustAt(t, r, j, 3); got != 0 {
			t.Fatalf("r(%d,3): got %g, want 0", j, got)
		}
	}
	for j := 0; j < 4; j++ {
		if got := MustAt(t, r, j, j); got != 1 {
			t.Fatalf("r(%d,%d): got %g, want 1", j, j, got)
		}
	}
	// Symmetry.
	for j := 0; j < 4; j++ {
		for k := 0; k < 4; k++ {
			if MustAt(t, r, j, k) != MustAt(t, r, k, j) {
				t.Fatalf("asymmetry at (%d,%d)", j, k)
			}
		}
	}
}

func TestCorrelation_InterfaceFallback(t *testing.T) {
	t.Parallel()

	fast, err := matops.Correlation(responseFixture(t))
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	slow, err := matops.Correlation(hide{responseFixture(t)})
	if err != nil {
		t.Fatalf("slow: %v", err)
	}
	CompareClose(t, slow, fast, 1e-14)
}

func TestCorrelation_RejectsDegenerateShapes(t *testing.T) {
	t.Parallel()

	one := NewFilledDense(t, 1, 3, []float64{1, 2, 3})
	if _, err := matops.Correlation(one); !errors.Is(err, matops.ErrTooFewRows) {
		t.Fatalf("single row: want ErrTooFewRows, got %v", err)
	}
	if _, err := matops.Correlation(nil); !errors.Is(err, matops.ErrNilMatrix) {
		t.Fatalf("nil: want ErrNilMatrix, got %v", err)
	}
}

func TestCovariance_PopulationVarianceDiagonal(t *testing.T) {
	t.Parallel()

	// Column {1,2,3,4}: mean 2.5, population variance 1.25.
	cov, err := matops.Covariance(responseFixture(t))
	if err != nil {
		t.Fatalf("Covariance: %v", err)
	}
	if got := MustAt(t, cov, 0, 0); math.Abs(got-1.25) > 1e-12 {
		t.Fatalf("var(x1): got %g, want 1.25", got)
	}
	// Doubled column quadruples the variance; cross term scales by 2.
	if got := MustAt(t, cov, 1, 1); math.Abs(got-5.0) > 1e-12 {
		t.Fatalf("var(x2): got %g, want 5", got)
	}
	if got := MustAt(t, cov, 0, 1); math.Abs(got-2.5) > 1e-12 {
		t.Fatalf("cov(x1,x2): got %g, want 2.5", got)
	}
	// Constant column is flat zero across the board.
	if got := MustAt(t, cov, 3, 3); got != 0 {
		t.Fatalf("var(x4): got %g, want 0", got)
	}
}

func TestPearsonR_CoreCases(t *testing.T) {
	t.Parallel()

	r, err := matops.PearsonR([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	if err != nil {
		t.Fatalf("PearsonR: %v", err)
	}
	if math.Abs(r-1) > 1e-12 {
		t.Fatalf("scaled copy: got %g, want 1", r)
	}

	r, err = matops.PearsonR([]float64{1, 2, 3}, []float64{3, 2, 1})
	if err != nil {
		t.Fatalf("PearsonR: %v", err)
	}
	if math.Abs(r+1) > 1e-12 {
		t.Fatalf("reversed: got %g, want -1", r)
	}

	// Degenerate inputs are defined as 0, never NaN.
	r, err = matops.PearsonR([]float64{5, 5, 5}, []float64{1, 2, 3})
	if err != nil || r != 0 {
		t.Fatalf("constant x: got (%g, %v), want (0, nil)", r, err)
	}
	r, err = matops.PearsonR([]float64{1}, []float64{2})
	if err != nil || r != 0 {
		t.Fatalf("single point: got (%g, %v), want (0, nil)", r, err)
	}

	if _, err = matops.PearsonR(nil, []float64{1}); !errors.Is(err, matops.ErrNilMatrix) {
		t.Fatalf("nil x: want ErrNilMatrix, got %v", err)
	}
	if _, err = matops.PearsonR([]float64{1, 2}, []float64{1}); !errors.Is(err, matops.ErrDimensionMismatch) {
		t.Fatalf("length mismatch: want ErrDimensionMismatch, got %v", err)
	}
}
