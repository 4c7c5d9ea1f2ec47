// SPDX-License-Identifier: MIT

package reliability

import "github.com/psymetlab/psymet/matops"

// GuttmanLambda6 computes Guttman's λ6 from an item correlation matrix.
//
// The true λ6 uses each item's squared multiple correlation (SMC) with the
// remaining items. This implementation keeps the engine's documented
// simplification: each item's SMC is PROXIED by its maximum squared
// correlation with any other item. The proxy underestimates SMC when an item
// is predicted jointly by several others; it is preserved as compatible
// behavior rather than "fixed", since true SMC (via inverting R) would change
// output values.
//
//	λ6 = 1 − Σ(1 − smc_i) / totalVar
//
// where totalVar is the total correlation-matrix mass Σ_jk R[j,k] (the
// variance of the unit-weighted total score in correlation metric). Returns 0
// when totalVar is 0; result clamped into [0,1].
//
// Errors:
//   - matops.ErrNilMatrix / matops.ErrNonSquare for a malformed matrix.
//   - ErrTooFewItems when the matrix order is < 2.
//
// Complexity: Time O(p²), Space O(p).
func GuttmanLambda6(r matops.Matrix) (float64, error) {
	// Validate square correlation input.
	if err := matops.ValidateNotNil(r); err != nil {
		return 0, err
	}
	if err := matops.ValidateSquare(r); err != nil {
		return 0, err
	}
	p := r.Rows()
	if p < 2 {
		return 0, ErrTooFewItems
	}

	var i, j int
	var v, sq, maxSq, totalVar, sumUnexplained float64
	var err error
	for i = 0; i < p; i++ {
		maxSq = 0
		for j = 0; j < p; j++ {
			v, err = r.At(i, j)
			if err != nil {
				return 0, err
			}
			totalVar += v // full matrix mass, diagonal included
			if i == j {
				continue // self-correlation is not a predictor
			}
			sq = v * v
			if sq > maxSq {
				maxSq = sq
			}
		}
		sumUnexplained += 1.0 - maxSq // uniqueness under the max-r² SMC proxy
	}

	// Degenerate mass: nothing to attribute.
	if totalVar == 0 {
		return 0, nil
	}

	return clamp01(1.0 - sumUnexplained/totalVar), nil
}
