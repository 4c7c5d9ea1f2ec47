// SPDX-License-Identifier: MIT

// Package validity: thresholds and result records.
package validity

import "github.com/psymetlab/psymet/matops"

// Conventional validity thresholds (single source of truth).
const (
	// ThresholdAVE — average variance extracted at or above 0.50 supports
	// convergent validity (the construct explains most item variance).
	ThresholdAVE = 0.50

	// ThresholdCR — composite reliability at or above 0.70 supports
	// convergent validity.
	ThresholdCR = 0.70

	// ThresholdHTMT — every pairwise HTMT strictly below 0.85 supports
	// discriminant validity.
	ThresholdHTMT = 0.85
)

// Violation names one construct pair that fails the Fornell–Larcker
// criterion: construct A's √AVE does not exceed its correlation with B.
type Violation struct {
	A, B        int
	SqrtAVE     float64
	Correlation float64
}

// FLResult is the outcome of a Fornell–Larcker check: a global pass flag and
// the list of violating pairs with the offending values.
type FLResult struct {
	Pass       bool
	Violations []Violation
}

// Assessment combines the convergent and discriminant diagnostics for one
// factor solution. AVE and CR are indexed by factor; HTMT is the k×k ratio
// matrix (unit diagonal, symmetric).
type Assessment struct {
	AVE            []float64
	CR             []float64
	HTMT           matops.Matrix
	FornellLarcker FLResult
	ConvergentOK   bool
	DiscriminantOK bool
}
