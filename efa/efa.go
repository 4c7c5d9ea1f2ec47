// SPDX-License-Identifier: MIT
// Package efa: factor extraction.
//
// EFA follows the classical principal-axis recipe on the correlation matrix:
// extract the top-k eigenpairs, scale eigenvectors into loadings by the
// square root of their eigenvalue magnitude, then optionally rotate. Item
// bookkeeping (communality, primary factor) happens after rotation so that
// the reported communalities describe the loadings actually returned.

package efa

import (
	"math"

	"github.com/psymetlab/psymet/matops"
)

// EFA runs one exploratory factor analysis over an n×p response matrix.
//
// Implementation:
//   - Stage 1: Validate numFactors (≥1; clamped to p) — data shape is
//     validated by matops.Correlation.
//   - Stage 2: Correlation → EigenDecompose(top numFactors pairs).
//   - Stage 3: Unrotated loading l_ij = v_ij · √|λ_j|.
//   - Stage 4: Varimax when requested and more than one pair was extracted.
//   - Stage 5: Per item: communality Σ l² and primary factor argmax |l|.
//
// Behavior highlights:
//   - Deflation may truncate the extraction below numFactors; the Result
//     reports exactly the pairs that were extracted (silent truncation per
//     the engine contract).
//   - The input matrix is never mutated.
//
// Errors:
//   - ErrBadFactorCount; matops sentinels from correlation/eigen extraction
//     (ErrNilMatrix, ErrTooFewRows, ErrBadShape, ErrBadIterOptions), matched
//     via errors.Is.
//
// Complexity: Time O(n·p² + k·MaxIter·p²), Space O(p²).
func EFA(data matops.Matrix, numFactors int, opts Options) (Result, error) {
	// Stage 1 (Validate): factor count first; shape checks live in matops.
	if numFactors < 1 {
		return Result{}, ErrBadFactorCount
	}

	// Stage 2 (Correlate + Extract).
	corr, err := matops.Correlation(data)
	if err != nil {
		return Result{}, err
	}
	p := corr.Cols()
	if numFactors > p {
		numFactors = p // cannot extract more factors than items
	}
	eig, err := matops.EigenDecompose(corr, numFactors, opts.RNG, opts.Iter)
	if err != nil {
		return Result{}, err
	}
	k := len(eig.Values) // possibly < numFactors after the floor cutoff

	// Stage 3 (Loadings): l_ij = v_ij · √|λ_j| over the extracted pairs.
	loadings := make([][]float64, p)
	var i, j int
	for i = 0; i < p; i++ {
		loadings[i] = make([]float64, k)
	}
	for j = 0; j < k; j++ {
		scale := math.Sqrt(math.Abs(eig.Values[j]))
		for i = 0; i < p; i++ {
			loadings[i][j] = eig.Vectors[j][i] * scale
		}
	}

	// Stage 4 (Rotate): varimax only makes sense across 2+ factors.
	rotated := false
	if opts.Rotation == RotationVarimax && k > 1 {
		vr, verr := matops.Varimax(loadings, matops.DefaultVarimaxOptions())
		if verr != nil {
			return Result{}, verr
		}
		loadings = vr.Loadings
		rotated = true
	}

	// Stage 5 (Bookkeeping): communality and primary factor per item.
	items := make([]ItemLoading, p)
	var comm, absL, best float64
	var primary int
	for i = 0; i < p; i++ {
		comm, best, primary = 0, -1, 0
		for j = 0; j < k; j++ {
			comm += loadings[i][j] * loadings[i][j]
			absL = math.Abs(loadings[i][j])
			if absL > best {
				best = absL
				primary = j
			}
		}
		items[i] = ItemLoading{
			Item:        i,
			Loadings:    loadings[i],
			Communality: comm,
			Primary:     primary,
		}
	}

	// Variance explained per factor: λ / p × 100.
	varExp := make([]float64, k)
	for j = 0; j < k; j++ {
		varExp[j] = eig.Values[j] / float64(p) * 100.0
	}

	return Result{
		Eigenvalues:       eig.Values,
		VarianceExplained: varExp,
		Items:             items,
		Rotated:           rotated,
		Rotation:          opts.Rotation,
	}, nil
}

// KaiserCriterion counts eigenvalues strictly greater than 1.0 — the
// classical retain-if-λ>1 heuristic, kept alongside parallel analysis for
// comparison and reporting.
// Complexity: O(len(eigenvalues)).
func KaiserCriterion(eigenvalues []float64) int {
	count := 0
	for _, ev := range eigenvalues {
		if ev > 1.0 {
			count++
		}
	}

	return count
}
