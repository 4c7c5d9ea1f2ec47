// SPDX-License-Identifier: MIT

package reliability

// McDonaldOmega computes omega-total from per-item primary-factor loadings:
//
//	ω = (Σλ)² / ((Σλ)² + Σ(1−λ²))
//
// The residual term Σ(1−λ²) treats each item's non-factor variance as
// uniqueness under a unit-variance (correlation-metric) model. Negative
// uniqueness from |λ|>1 artifacts is floored at 0 per item so the ratio stays
// meaningful; the final value is clamped into [0,1].
//
// Errors: ErrNoLoadings for an empty loading vector.
// Complexity: O(p).
func McDonaldOmega(loadings []float64) (float64, error) {
	if len(loadings) == 0 {
		return 0, ErrNoLoadings
	}

	var sumL, sumResid, u float64
	for _, l := range loadings {
		sumL += l
		u = 1.0 - l*l
		if u < 0 {
			u = 0 // |λ|>1 artifact: uniqueness cannot be negative
		}
		sumResid += u
	}

	denom := sumL*sumL + sumResid
	if denom == 0 {
		return 0, nil
	}

	return clamp01(sumL * sumL / denom), nil
}

// OmegaHierarchical computes the general-factor saturation ω_h from a
// bifactor-style decomposition: general loadings g and per-item group
// loadings s.
//
//	ω_h = (Σg)² / ((Σg)² + Σs² + Σ max(0, 1−g²−s²))
//
// The denominator partitions unit item variance into general, group and
// residual mass; group variance counts against the general factor, which is
// what distinguishes ω_h from omega-total. Same clamping discipline.
//
// Errors:
//   - ErrNoLoadings for empty inputs.
//   - ErrLoadingLenMismatch when len(general) != len(group).
//
// Complexity: O(p).
func OmegaHierarchical(general, group []float64) (float64, error) {
	if len(general) == 0 {
		return 0, ErrNoLoadings
	}
	if len(general) != len(group) {
		return 0, ErrLoadingLenMismatch
	}

	var sumG, sumS2, sumResid, resid float64
	for i := range general {
		sumG += general[i]
		sumS2 += group[i] * group[i]
		resid = 1.0 - general[i]*general[i] - group[i]*group[i]
		if resid < 0 {
			resid = 0 // over-explained item: no residual mass left
		}
		sumResid += resid
	}

	denom := sumG*sumG + sumS2 + sumResid
	if denom == 0 {
		return 0, nil
	}

	return clamp01(sumG * sumG / denom), nil
}
