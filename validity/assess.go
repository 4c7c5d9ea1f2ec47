// SPDX-License-Identifier: MIT

package validity

import (
	"math"

	"github.com/psymetlab/psymet/efa"
	"github.com/psymetlab/psymet/matops"
)

// Assess runs the combined convergent/discriminant assessment for one factor
// solution.
//
// Implementation:
//   - Stage 1: Validate inputs; group each item's representative loading
//     (the absolute loading on its assigned factor) by construct.
//   - Stage 2: AVE and composite reliability per construct; a construct with
//     no items keeps AVE=CR=0 and therefore fails the convergent check.
//   - Stage 3: HTMT across constructs.
//   - Stage 4: Simplified Fornell–Larcker — observed construct correlations
//     are not available without CFA model-fitting, so each pair's correlation
//     is approximated as HTMT[a,b] × √(√AVE_a · √AVE_b) before the √AVE
//     comparison. The coarser √(AVE_a · AVE_b) attenuation is a defensible
//     alternative; the fourth-root form is kept so the scaling stays on the
//     same √AVE scale the criterion compares against.
//   - Stage 5: Verdicts. ConvergentOK ⇔ every construct has AVE ≥ 0.50 and
//     CR ≥ 0.70. DiscriminantOK ⇔ every pairwise HTMT < 0.85 and the
//     Fornell–Larcker check passes. A single-construct solution is
//     discriminant-valid vacuously.
//
// Errors:
//   - ErrNoItems, ErrAssignmentMismatch, ErrBadAssignment; matops sentinels
//     from the HTMT layer.
//
// Complexity: Time O(p²), Space O(p + k²).
func Assess(items []efa.ItemLoading, corr matops.Matrix, assignments []int) (Assessment, error) {
	// Stage 1 (Validate + Group).
	if len(items) == 0 {
		return Assessment{}, ErrNoItems
	}
	if len(assignments) != len(items) {
		return Assessment{}, ErrAssignmentMismatch
	}

	k := 0
	for _, f := range assignments {
		if f < 0 {
			return Assessment{}, ErrBadAssignment
		}
		if f+1 > k {
			k = f + 1
		}
	}

	byFactor := make([][]float64, k)
	for i, it := range items {
		f := assignments[i]
		if f < len(it.Loadings) {
			byFactor[f] = append(byFactor[f], math.Abs(it.Loadings[f]))
		}
	}

	// Stage 2 (Convergent metrics per construct).
	aves := make([]float64, k)
	crs := make([]float64, k)
	convergentOK := true
	for f := 0; f < k; f++ {
		if len(byFactor[f]) == 0 {
			convergentOK = false // empty construct: nothing extracted
			continue
		}
		ave, err := AVE(byFactor[f])
		if err != nil {
			return Assessment{}, err
		}
		cr, err := CompositeReliability(byFactor[f])
		if err != nil {
			return Assessment{}, err
		}
		aves[f] = ave
		crs[f] = cr
		if ave < ThresholdAVE || cr < ThresholdCR {
			convergentOK = false
		}
	}

	// Stage 3 (HTMT).
	htmt, err := HTMT(corr, assignments)
	if err != nil {
		return Assessment{}, err
	}

	// Stage 4 (Simplified Fornell–Larcker on approximated construct correlations).
	approx, err := matops.NewDense(k, k)
	if err != nil {
		return Assessment{}, err
	}
	var a, b int
	var h, est float64
	for a = 0; a < k; a++ {
		if err = approx.Set(a, a, 1.0); err != nil {
			return Assessment{}, err
		}
		for b = a + 1; b < k; b++ {
			h, err = htmt.At(a, b)
			if err != nil {
				return Assessment{}, err
			}
			est = h * math.Sqrt(math.Sqrt(aves[a])*math.Sqrt(aves[b]))
			if err = approx.Set(a, b, est); err != nil {
				return Assessment{}, err
			}
			if err = approx.Set(b, a, est); err != nil {
				return Assessment{}, err
			}
		}
	}
	fl, err := FornellLarcker(aves, approx)
	if err != nil {
		return Assessment{}, err
	}

	// Stage 5 (Discriminant verdict): all pairwise HTMT below threshold.
	htmtOK := true
	for a = 0; a < k; a++ {
		for b = a + 1; b < k; b++ {
			h, err = htmt.At(a, b)
			if err != nil {
				return Assessment{}, err
			}
			if h >= ThresholdHTMT {
				htmtOK = false
			}
		}
	}

	return Assessment{
		AVE:            aves,
		CR:             crs,
		HTMT:           htmt,
		FornellLarcker: fl,
		ConvergentOK:   convergentOK,
		DiscriminantOK: htmtOK && fl.Pass,
	}, nil
}
