// SPDX-License-Identifier: MIT

package validity

// clamp01 clamps a proportion-like estimate into [0,1] per the engine-wide
// numeric policy.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// AVE computes the average variance extracted from a construct's item
// loadings:
//
//	AVE = Σλ² / (Σλ² + Σ(1−λ²))
//
// Item uniqueness 1−λ² is floored at 0 (|λ|>1 artifacts), and the result is
// clamped into [0,1].
//
// Errors: ErrNoLoadings for an empty loading vector.
// Complexity: O(p).
func AVE(loadings []float64) (float64, error) {
	if len(loadings) == 0 {
		return 0, ErrNoLoadings
	}

	var sumSq, sumResid, u float64
	for _, l := range loadings {
		sumSq += l * l
		u = 1.0 - l*l
		if u < 0 {
			u = 0
		}
		sumResid += u
	}

	denom := sumSq + sumResid
	if denom == 0 {
		return 0, nil
	}

	return clamp01(sumSq / denom), nil
}

// CompositeReliability computes CR from a construct's item loadings:
//
//	CR = (Σλ)² / ((Σλ)² + Σ(1−λ²))
//
// Numerically the same formula family as McDonald's omega, applied at the
// construct level; clamped into [0,1].
//
// Errors: ErrNoLoadings for an empty loading vector.
// Complexity: O(p).
func CompositeReliability(loadings []float64) (float64, error) {
	if len(loadings) == 0 {
		return 0, ErrNoLoadings
	}

	var sumL, sumResid, u float64
	for _, l := range loadings {
		sumL += l
		u = 1.0 - l*l
		if u < 0 {
			u = 0
		}
		sumResid += u
	}

	denom := sumL*sumL + sumResid
	if denom == 0 {
		return 0, nil
	}

	return clamp01(sumL * sumL / denom), nil
}
