// SPDX-License-Identifier: MIT

package validity

import (
	"math"

	"github.com/psymetlab/psymet/matops"
)

// HTMT computes the heterotrait-monotrait ratio matrix for a factor solution.
//
// For every pair of distinct factors (a,b):
//
//	HTMT[a,b] = mean |r_ij|  (i in a's items, j in b's items)
//	            ─────────────────────────────────────────────
//	            √( mono(a) · mono(b) )
//
// where mono(f) is the mean absolute within-factor (monotrait-heteromethod)
// correlation of f's items. A factor with fewer than two items contributes a
// neutral mono(f)=1 so single-item constructs do not blow up the geometric
// mean. Each ratio is capped at 1.0; the diagonal is 1 and the lower triangle
// is copied from the upper, so the result is symmetric by construction.
//
// Inputs:
//   - corr:        p×p item correlation matrix (symmetric, unit diagonal).
//   - assignments: length-p vector mapping each item to its factor index;
//     the number of factors is max(assignments)+1.
//
// Errors:
//   - matops.ErrNilMatrix / matops.ErrNonSquare for a malformed matrix.
//   - ErrAssignmentMismatch, ErrBadAssignment for a malformed assignment.
//
// Complexity: Time O(p²), Space O(k²).
func HTMT(corr matops.Matrix, assignments []int) (matops.Matrix, error) {
	// Validate the correlation matrix shape.
	if err := matops.ValidateNotNil(corr); err != nil {
		return nil, err
	}
	if err := matops.ValidateSquare(corr); err != nil {
		return nil, err
	}
	p := corr.Rows()
	if len(assignments) != p {
		return nil, ErrAssignmentMismatch
	}

	// Group items by factor; factor count is the max index + 1.
	k := 0
	for _, f := range assignments {
		if f < 0 {
			return nil, ErrBadAssignment
		}
		if f+1 > k {
			k = f + 1
		}
	}
	groups := make([][]int, k)
	for i, f := range assignments {
		groups[f] = append(groups[f], i)
	}

	// Within-factor mean absolute correlation per factor.
	mono := make([]float64, k)
	var f, x, y int
	var v, sum float64
	var cnt int
	var err error
	for f = 0; f < k; f++ {
		if len(groups[f]) < 2 {
			mono[f] = 1.0 // neutral for single-item constructs
			continue
		}
		sum, cnt = 0, 0
		for x = 0; x < len(groups[f]); x++ {
			for y = x + 1; y < len(groups[f]); y++ {
				v, err = corr.At(groups[f][x], groups[f][y])
				if err != nil {
					return nil, err
				}
				sum += math.Abs(v)
				cnt++
			}
		}
		mono[f] = sum / float64(cnt)
	}

	// Assemble the k×k ratio matrix: unit diagonal, upper triangle computed,
	// lower triangle mirrored.
	out, err := matops.NewDense(k, k)
	if err != nil {
		return nil, err
	}
	var a, b int
	var hetero, denom, ratio float64
	for a = 0; a < k; a++ {
		if err = out.Set(a, a, 1.0); err != nil {
			return nil, err
		}
		for b = a + 1; b < k; b++ {
			// Mean absolute heterotrait correlation across the two item sets.
			sum, cnt = 0, 0
			for x = 0; x < len(groups[a]); x++ {
				for y = 0; y < len(groups[b]); y++ {
					v, err = corr.At(groups[a][x], groups[b][y])
					if err != nil {
						return nil, err
					}
					sum += math.Abs(v)
					cnt++
				}
			}
			if cnt == 0 {
				hetero = 0 // an empty factor has no heterotrait signal
			} else {
				hetero = sum / float64(cnt)
			}

			denom = math.Sqrt(mono[a] * mono[b])
			if denom == 0 {
				ratio = 0
			} else {
				ratio = hetero / denom
			}
			if ratio > 1.0 {
				ratio = 1.0 // capped by contract
			}

			if err = out.Set(a, b, ratio); err != nil {
				return nil, err
			}
			if err = out.Set(b, a, ratio); err != nil { // mirror lower triangle
				return nil, err
			}
		}
	}

	return out, nil
}
