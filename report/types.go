// SPDX-License-Identifier: MIT

// Package report: options and the comprehensive report record.
package report

import (
	"errors"

	"github.com/psymetlab/psymet/efa"
)

// Report-level tuning constants (single source of truth).
const (
	// MinParallelIterations is the floor on simulated matrices for the
	// factor-count decision; fewer makes the 95th-percentile baseline too
	// noisy to trust in a headline report.
	MinParallelIterations = 50

	// AlphaTooHigh flags possible item redundancy: an alpha above this bound
	// usually means near-duplicate items rather than a better scale.
	AlphaTooHigh = 0.95

	// MinPrimaryLoading is the floor below which an item's primary-factor
	// loading triggers a review recommendation.
	MinPrimaryLoading = 0.40
)

// ErrIDCountMismatch is returned when Options.ItemIDs is non-empty but its
// length differs from the number of item columns.
var ErrIDCountMismatch = errors.New("report: item ID count mismatch")

// ItemLoading is the per-item factor-analysis record surfaced to report
// consumers: identifier, loadings on every extracted factor, communality and
// the primary (maximum-absolute-loading) factor index.
type ItemLoading struct {
	ItemID        string
	Loadings      []float64
	Communality   float64
	PrimaryFactor int
}

// Reliability is the internal-consistency block of the report.
type Reliability struct {
	CronbachAlpha  float64
	McDonaldOmega  float64
	SplitHalf      float64
	Interpretation string
}

// FactorAnalysis is the structure block of the report. Eigenvalues and
// VarianceExplained are indexed by extraction order and may be shorter than
// SuggestedFactors when the eigen spectrum degenerates early.
type FactorAnalysis struct {
	SuggestedFactors  int
	Eigenvalues       []float64
	VarianceExplained []float64
	Loadings          []ItemLoading
}

// Validity is the construct-validity block of the report. AVE and
// CompositeReliability summarize the whole scale through each item's
// representative (primary-factor) loading.
type Validity struct {
	AVE                  float64
	CompositeReliability float64
	ConvergentOK         bool
	DiscriminantOK       bool
}

// Report aggregates one full analysis run. It is a plain value: freshly
// allocated per call, immutable by convention, no lifecycle beyond the call
// that produced it.
type Report struct {
	Reliability     Reliability
	FactorAnalysis  FactorAnalysis
	Validity        Validity
	Recommendations []string
}

// Options configures Generate.
//
// Fields:
//   - ItemIDs  — optional identifiers of length p; empty defaults to
//     positional IDs item_1 … item_p.
//   - Parallel — parallel-analysis tuning; Iterations below
//     MinParallelIterations is raised to the floor.
//   - EFA      — factor-extraction tuning (rotation, power iteration, RNG).
type Options struct {
	ItemIDs  []string
	Parallel efa.ParallelOptions
	EFA      efa.Options
}

// DefaultOptions returns the canonical report configuration: positional item
// IDs, 100-iteration parallel analysis, varimax EFA, deterministic RNG.
func DefaultOptions() Options {
	return Options{
		ItemIDs:  nil,
		Parallel: efa.DefaultParallelOptions(),
		EFA:      efa.DefaultOptions(),
	}
}
