// SPDX-License-Identifier: MIT

package validity

import (
	"math"

	"github.com/psymetlab/psymet/matops"
)

// FornellLarcker checks the Fornell–Larcker discriminant criterion: for every
// construct pair, the square root of EACH construct's AVE must exceed the
// absolute correlation between the two constructs (a construct should share
// more variance with its own items than with any other construct).
//
// Returns a pass/fail flag plus every violating pair with the offending
// values; Violations is nil when the criterion holds.
//
// Inputs:
//   - aves:          AVE per construct, length k.
//   - constructCorr: k×k construct correlation matrix.
//
// Errors:
//   - matops.ErrNilMatrix / matops.ErrNonSquare for a malformed matrix.
//   - ErrAVECountMismatch when len(aves) != k.
//
// Complexity: Time O(k²), Space O(violations).
func FornellLarcker(aves []float64, constructCorr matops.Matrix) (FLResult, error) {
	// Validate shapes.
	if err := matops.ValidateNotNil(constructCorr); err != nil {
		return FLResult{}, err
	}
	if err := matops.ValidateSquare(constructCorr); err != nil {
		return FLResult{}, err
	}
	k := constructCorr.Rows()
	if len(aves) != k {
		return FLResult{}, ErrAVECountMismatch
	}

	res := FLResult{Pass: true}
	var a, b int
	var r, absR, sqrtA, sqrtB float64
	var err error
	for a = 0; a < k; a++ {
		sqrtA = math.Sqrt(aves[a])
		for b = a + 1; b < k; b++ {
			r, err = constructCorr.At(a, b)
			if err != nil {
				return FLResult{}, err
			}
			absR = math.Abs(r)
			sqrtB = math.Sqrt(aves[b])

			// Both directions must hold; record each failing side once.
			if sqrtA <= absR {
				res.Pass = false
				res.Violations = append(res.Violations, Violation{A: a, B: b, SqrtAVE: sqrtA, Correlation: r})
			}
			if sqrtB <= absR {
				res.Pass = false
				res.Violations = append(res.Violations, Violation{A: b, B: a, SqrtAVE: sqrtB, Correlation: r})
			}
		}
	}

	return res, nil
}
