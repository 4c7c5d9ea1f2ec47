// SPDX-License-Identifier: MIT

package matops_test

import (
	"errors"
	"testing"

	"github.com/psymetlab/psymet/matops"
)

const epsTight = 1e-12

func TestMul_KnownProduct_FastAndFallback(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})
	want := NewFilledDense(t, 2, 2, []float64{58, 64, 139, 154})

	fast, err := matops.Mul(a, b)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	CompareClose(t, fast, want, 0)

	slow, err := matops.Mul(hide{a}, hide{b})
	if err != nil {
		t.Fatalf("slow: %v", err)
	}
	CompareClose(t, slow, want, 0)
}

func TestMul_InnerMismatch_Error(t *testing.T) {
	t.Parallel()

	a, _ := matops.NewDense(2, 3)
	b, _ := matops.NewDense(2, 2)
	if _, err := matops.Mul(a, b); !errors.Is(err, matops.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
	if _, err := matops.Mul(nil, b); !errors.Is(err, matops.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix, got %v", err)
	}
}

func TestTranspose_RoundTrip(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	at, err := matops.Transpose(a)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	if at.Rows() != 3 || at.Cols() != 2 {
		t.Fatalf("shape: got %dx%d, want 3x2", at.Rows(), at.Cols())
	}
	if MustAt(t, at, 2, 1) != 6 {
		t.Fatalf("at(2,1): got %g, want 6", MustAt(t, at, 2, 1))
	}

	back, err := matops.Transpose(hide{at})
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	CompareClose(t, back, a, 0)
}

func TestScale_FlatAndFallback(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, -2, 3, -4})
	want := NewFilledDense(t, 2, 2, []float64{2.5, -5, 7.5, -10})

	fast, err := matops.Scale(a, 2.5)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	CompareClose(t, fast, want, epsTight)

	slow, err := matops.Scale(hide{a}, 2.5)
	if err != nil {
		t.Fatalf("slow: %v", err)
	}
	CompareClose(t, slow, want, epsTight)
}

func TestMatVec_KnownAndErrors(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 0, 2, -1, 3, 1})
	x := []float64{3, -1, 2}

	y, err := matops.MatVec(a, x)
	if err != nil {
		t.Fatalf("MatVec: %v", err)
	}
	sliceClose(t, y, []float64{7, -4}, epsTight)

	ys, err := matops.MatVec(hide{a}, x)
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	sliceClose(t, ys, y, 0)

	if _, err = matops.MatVec(a, []float64{1, 2}); !errors.Is(err, matops.ErrDimensionMismatch) {
		t.Fatalf("short x: want ErrDimensionMismatch, got %v", err)
	}
	if _, err = matops.MatVec(a, nil); !errors.Is(err, matops.ErrNilMatrix) {
		t.Fatalf("nil x: want ErrNilMatrix, got %v", err)
	}
}
