// SPDX-License-Identifier: MIT
// Package matops: varimax rotation of a factor loading matrix.
//
// Purpose:
//   - Sharpen the interpretability of extracted loadings by maximizing the
//     variance of squared loadings per factor through orthogonal pairwise
//     rotations with closed-form angles.
//
// Invariant (required correctness property, not an implementation detail):
//   - Every pairwise rotation is orthogonal, so per-item communality
//     (Σ loadings² across factors) is unchanged by the whole procedure.
//
// Convergence contract:
//   - Sweeps stop when the total squared-loading variance stabilizes within
//     opts.Tol or after opts.MaxIter sweeps; no error on non-convergence —
//     the result reports Sweeps and the final Delta.

package matops

import "math"

// varimaxCriterion computes the total variance of squared loadings across all
// factor columns: Σ_j [ Σ_i l⁴ / p − (Σ_i l² / p)² ]. This is the quantity
// the rotation maximizes and the sweep-level convergence measure.
// Complexity: Time O(p·k), Space O(1).
func varimaxCriterion(loadings [][]float64, items, factors int) float64 {
	var total float64
	var i, j int
	var sq, sum2, sum4 float64

	invP := 1.0 / float64(items)
	for j = 0; j < factors; j++ {
		sum2, sum4 = 0, 0
		for i = 0; i < items; i++ {
			sq = loadings[i][j] * loadings[i][j]
			sum2 += sq
			sum4 += sq * sq
		}
		total += sum4*invP - (sum2*invP)*(sum2*invP)
	}

	return total
}

// Varimax rotates a loading matrix (items × factors) to simple structure.
//
// Implementation:
//   - Stage 1: Validate the loading matrix (rectangular, non-empty) and copy
//     it — the input is never mutated.
//   - Stage 2: Repeat full sweeps over all column pairs (a<b). For each pair,
//     compute the closed-form quartimax/varimax angle
//     φ = atan2(D − 2AB/p, C − (A²−B²)/p) / 4
//     from u_i = l_ia² − l_ib², v_i = 2·l_ia·l_ib, A=Σu, B=Σv,
//     C=Σ(u²−v²), D=Σ(2uv), and apply the 2D rotation to the pair.
//   - Stage 3: After each sweep, compare the varimax criterion against the
//     previous sweep; stop when the change drops below opts.Tol.
//
// Behavior highlights:
//   - A single-factor matrix is returned as an unrotated copy (Sweeps=0).
//   - Tiny angles (|φ| below machine noise) skip the pair update to avoid
//     churning the matrix with no-op rotations.
//
// Inputs:
//   - loadings: items × factors, caller-owned, read-only here.
//   - opts:     MaxIter caps SWEEPS; Tol bounds the criterion delta.
//     Use DefaultVarimaxOptions() unless tuning.
//
// Errors:
//   - ErrEmptyLoadings, ErrRaggedRows (from ValidateLoadings).
//   - ErrBadIterOptions when opts.MaxIter < 1.
//
// Complexity: Time O(MaxIter·k²·p), Space O(p·k) for the rotated copy.
func Varimax(loadings [][]float64, opts IterOptions) (VarimaxResult, error) {
	// Stage 1 (Validate + Copy).
	items, factors, err := ValidateLoadings(loadings)
	if err != nil {
		return VarimaxResult{}, opsErrorf(opVarimax, err)
	}
	if err = ValidateIterOptions(opts); err != nil {
		return VarimaxResult{}, opsErrorf(opVarimax, err)
	}
	rot := make([][]float64, items)
	for i := 0; i < items; i++ {
		rot[i] = make([]float64, factors)
		copy(rot[i], loadings[i])
	}

	// Nothing to rotate with a single factor.
	if factors < 2 {
		return VarimaxResult{Loadings: rot, Sweeps: 0, Delta: 0}, nil
	}

	var (
		sweep, a, b, i int
		u, v           float64
		sumU, sumV     float64
		sumC, sumD     float64
		num, den, phi  float64
		cosP, sinP     float64
		la, lb         float64
		crit, prevCrit float64
		delta          float64
	)
	invP := 1.0 / float64(items)
	prevCrit = varimaxCriterion(rot, items, factors)
	delta = math.Inf(1)

	for sweep = 0; sweep < opts.MaxIter; sweep++ {
		// One full sweep over all ordered column pairs.
		for a = 0; a < factors-1; a++ {
			for b = a + 1; b < factors; b++ {
				// Accumulate the four rotation sums for this pair.
				sumU, sumV, sumC, sumD = 0, 0, 0, 0
				for i = 0; i < items; i++ {
					la = rot[i][a]
					lb = rot[i][b]
					u = la*la - lb*lb
					v = 2 * la * lb
					sumU += u
					sumV += v
					sumC += u*u - v*v
					sumD += 2 * u * v
				}

				// Closed-form angle from the sums-of-squares criterion.
				num = sumD - 2*sumU*sumV*invP
				den = sumC - (sumU*sumU-sumV*sumV)*invP
				phi = math.Atan2(num, den) / 4.0
				if math.Abs(phi) < 1e-12 {
					continue // effectively converged for this pair
				}

				// Apply the orthogonal 2D rotation to the column pair.
				cosP = math.Cos(phi)
				sinP = math.Sin(phi)
				for i = 0; i < items; i++ {
					la = rot[i][a]
					lb = rot[i][b]
					rot[i][a] = cosP*la + sinP*lb
					rot[i][b] = -sinP*la + cosP*lb
				}
			}
		}

		// Sweep-level convergence on the criterion.
		crit = varimaxCriterion(rot, items, factors)
		delta = math.Abs(crit - prevCrit)
		if delta < opts.Tol {
			return VarimaxResult{Loadings: rot, Sweeps: sweep + 1, Delta: delta}, nil
		}
		prevCrit = crit
	}

	// Best-effort result after MaxIter sweeps; silent by contract.
	return VarimaxResult{Loadings: rot, Sweeps: opts.MaxIter, Delta: delta}, nil
}
