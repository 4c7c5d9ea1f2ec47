// SPDX-License-Identifier: MIT

package reliability

import "github.com/psymetlab/psymet/matops"

// clamp01 clamps a proportion-like estimate into [0,1]. Floating-point and
// simplified-formula artifacts can push the raw ratios slightly outside the
// range; the engine contract is an explicit clamp after every estimator.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CronbachAlpha computes Cronbach's alpha for an n×p response matrix:
//
//	α = (p/(p−1)) × (1 − Σ item variances / total-score variance)
//
// Population variance (divide by n) is used consistently, which yields
// exactly α = 1.0 for perfectly correlated items. Zero total-score variance
// returns 0 rather than dividing by zero.
//
// Errors:
//   - ErrTooFewItems when p < 2.
//   - matops sentinels (ErrNilMatrix, ErrTooFewRows, ErrBadShape) for a
//     malformed response matrix.
//
// Complexity: Time O(n·p), Space O(n+p).
func CronbachAlpha(data matops.Matrix) (float64, error) {
	// Validate the response matrix through the canonical matops check.
	if err := matops.ValidateResponseMatrix(data); err != nil {
		return 0, err
	}
	n, p := data.Rows(), data.Cols()
	if p < 2 {
		return 0, ErrTooFewItems
	}

	// One pass for item sums and per-subject totals.
	itemMeans := make([]float64, p)
	totals := make([]float64, n)
	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			v, err = data.At(i, j)
			if err != nil {
				return 0, err
			}
			itemMeans[j] += v
			totals[i] += v
		}
	}
	for j = 0; j < p; j++ {
		itemMeans[j] /= float64(n)
	}

	// Item variances (population).
	var sumItemVars, d float64
	for j = 0; j < p; j++ {
		var sq float64
		for i = 0; i < n; i++ {
			v, err = data.At(i, j)
			if err != nil {
				return 0, err
			}
			d = v - itemMeans[j]
			sq += d * d
		}
		sumItemVars += sq / float64(n)
	}

	// Total-score variance (population).
	var totalMean float64
	for i = 0; i < n; i++ {
		totalMean += totals[i]
	}
	totalMean /= float64(n)
	var totalVar float64
	for i = 0; i < n; i++ {
		d = totals[i] - totalMean
		totalVar += d * d
	}
	totalVar /= float64(n)

	// Degenerate scale: no variance to be consistent about.
	if totalVar == 0 {
		return 0, nil
	}

	pf := float64(p)
	alpha := (pf / (pf - 1.0)) * (1.0 - sumItemVars/totalVar)

	return clamp01(alpha), nil
}
