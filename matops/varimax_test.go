// SPDX-License-Identifier: MIT

package matops_test

import (
	"errors"
	"math"
	"testing"

	"github.com/psymetlab/psymet/matops"
)

// communalities returns per-item Σ loadings² for the invariance checks.
func communalities(loadings [][]float64) []float64 {
	h := make([]float64, len(loadings))
	for i, row := range loadings {
		for _, l := range row {
			h[i] += l * l
		}
	}
	return h
}

func TestVarimax_PreservesCommunalities(t *testing.T) {
	t.Parallel()

	// Deliberately muddled two-factor structure.
	loadings := [][]float64{
		{0.6, 0.6},
		{0.7, 0.5},
		{0.5, -0.7},
		{0.6, -0.6},
		{0.4, 0.3},
		{-0.3, 0.5},
	}
	before := communalities(loadings)

	res, err := matops.Varimax(loadings, matops.DefaultVarimaxOptions())
	if err != nil {
		t.Fatalf("Varimax: %v", err)
	}
	after := communalities(res.Loadings)
	sliceClose(t, after, before, 1e-10)

	// The input must stay untouched.
	if loadings[0][0] != 0.6 || loadings[2][1] != -0.7 {
		t.Fatalf("input mutated: %v", loadings)
	}
	if res.Sweeps < 1 {
		t.Fatalf("sweeps: got %d, want >=1", res.Sweeps)
	}
}

func TestVarimax_CommunalityInvariantOverRandomLoadings(t *testing.T) {
	t.Parallel()

	// Orthogonality of every pairwise rotation must hold for arbitrary
	// loadings, not only tidy fixtures.
	for seed := int64(1); seed <= 5; seed++ {
		rng := matops.RNGFromSeed(seed)
		loadings := make([][]float64, 8)
		for i := range loadings {
			loadings[i] = make([]float64, 3)
			for j := range loadings[i] {
				loadings[i][j] = rng.Float64()*2 - 1
			}
		}
		before := communalities(loadings)

		res, err := matops.Varimax(loadings, matops.DefaultVarimaxOptions())
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		after := communalities(res.Loadings)
		for i := range before {
			if math.Abs(after[i]-before[i]) > 1e-9 {
				t.Fatalf("seed %d item %d: communality %g -> %g", seed, i, before[i], after[i])
			}
		}
	}
}

func TestVarimax_ImprovesCriterionOnMixedStructure(t *testing.T) {
	t.Parallel()

	// Two clean clusters rotated 45 degrees: varimax should separate them so
	// each item loads mostly on one factor.
	s := math.Sqrt2 / 2
	loadings := [][]float64{
		{0.8 * s, 0.8 * s},
		{0.7 * s, 0.7 * s},
		{0.9 * s, 0.9 * s},
		{0.8 * s, -0.8 * s},
		{0.7 * s, -0.7 * s},
		{0.9 * s, -0.9 * s},
	}
	res, err := matops.Varimax(loadings, matops.DefaultVarimaxOptions())
	if err != nil {
		t.Fatalf("Varimax: %v", err)
	}
	for i, row := range res.Loadings {
		hi, lo := math.Abs(row[0]), math.Abs(row[1])
		if lo > hi {
			hi, lo = lo, hi
		}
		if lo > 0.1*hi {
			t.Fatalf("item %d not simple structure: %v", i, row)
		}
	}
}

func TestVarimax_SingleFactorIsCopy(t *testing.T) {
	t.Parallel()

	loadings := [][]float64{{0.5}, {0.7}, {0.9}}
	res, err := matops.Varimax(loadings, matops.DefaultVarimaxOptions())
	if err != nil {
		t.Fatalf("Varimax: %v", err)
	}
	if res.Sweeps != 0 {
		t.Fatalf("sweeps: got %d, want 0", res.Sweeps)
	}
	for i := range loadings {
		if res.Loadings[i][0] != loadings[i][0] {
			t.Fatalf("copy mismatch at item %d", i)
		}
	}
	// Independent copy, not an alias.
	res.Loadings[0][0] = 99
	if loadings[0][0] != 0.5 {
		t.Fatal("result aliases input")
	}
}

func TestVarimax_RejectsMalformedLoadings(t *testing.T) {
	t.Parallel()

	if _, err := matops.Varimax(nil, matops.DefaultVarimaxOptions()); !errors.Is(err, matops.ErrEmptyLoadings) {
		t.Fatalf("nil: want ErrEmptyLoadings, got %v", err)
	}
	if _, err := matops.Varimax([][]float64{{}}, matops.DefaultVarimaxOptions()); !errors.Is(err, matops.ErrEmptyLoadings) {
		t.Fatalf("empty row: want ErrEmptyLoadings, got %v", err)
	}
	ragged := [][]float64{{0.5, 0.4}, {0.3}}
	if _, err := matops.Varimax(ragged, matops.DefaultVarimaxOptions()); !errors.Is(err, matops.ErrRaggedRows) {
		t.Fatalf("ragged: want ErrRaggedRows, got %v", err)
	}

	var zero matops.IterOptions
	if _, err := matops.Varimax([][]float64{{0.5, 0.4}, {0.3, 0.6}}, zero); !errors.Is(err, matops.ErrBadIterOptions) {
		t.Fatalf("zero options: want ErrBadIterOptions, got %v", err)
	}
}
