// SPDX-License-Identifier: MIT

package reliability

import "github.com/psymetlab/psymet/matops"

// SplitHalf estimates reliability by correlating odd- and even-indexed item
// half-scores and applying the Spearman–Brown correction 2r/(1+r).
//
// Halving is positional (items 0,2,4,… vs 1,3,5,…), matching the engine
// contract; content-balanced halving is the caller's responsibility through
// item ordering. A half with zero variance yields r = 0 by the shared
// degenerate-correlation policy, and the corrected value is clamped to [0,1].
//
// Errors:
//   - ErrTooFewItems when p < 2 (both halves need at least one item).
//   - matops sentinels for a malformed response matrix.
//
// Complexity: Time O(n·p), Space O(n).
func SplitHalf(data matops.Matrix) (float64, error) {
	// Validate via the canonical matops response-matrix check.
	if err := matops.ValidateResponseMatrix(data); err != nil {
		return 0, err
	}
	n, p := data.Rows(), data.Cols()
	if p < 2 {
		return 0, ErrTooFewItems
	}

	// Accumulate per-subject half scores.
	odd := make([]float64, n)  // items 1,3,5,… (odd positional index)
	even := make([]float64, n) // items 0,2,4,…
	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			v, err = data.At(i, j)
			if err != nil {
				return 0, err
			}
			if j%2 == 0 {
				even[i] += v
			} else {
				odd[i] += v
			}
		}
	}

	// Pearson r between the halves; degenerate halves give 0.
	r, err := matops.PearsonR(even, odd)
	if err != nil {
		return 0, err
	}
	if r == -1 {
		return 0, nil // Spearman–Brown denominator would vanish
	}

	// Spearman–Brown step-up to full test length.
	return clamp01(2.0 * r / (1.0 + r)), nil
}
