// SPDX-License-Identifier: MIT

// Package efa: options and result records for factor extraction.
package efa

import (
	"math/rand"

	"github.com/psymetlab/psymet/matops"
)

// RotationMethod selects the post-extraction rotation.
//
//   - RotationNone    — report unrotated principal-axis loadings.
//   - RotationVarimax — orthogonal varimax rotation (the default); preserves
//     per-item communalities by construction.
type RotationMethod int

const (
	// RotationNone leaves the extracted loadings unrotated.
	RotationNone RotationMethod = iota

	// RotationVarimax applies orthogonal varimax rotation when more than one
	// factor was extracted.
	RotationVarimax
)

// Defaults for the Monte-Carlo layer (single source of truth).
const (
	// DefaultParallelIterations is the number of simulated random matrices.
	// Fifty is the floor the report orchestrator relies on; one hundred keeps
	// the 95th-percentile baseline stable.
	DefaultParallelIterations = 100

	// DefaultPercentile is the simulated-eigenvalue quantile each real
	// eigenvalue must strictly exceed to count as a retained factor.
	DefaultPercentile = 0.95
)

// ItemLoading is the per-item outcome of one EFA run: the loading on every
// extracted factor, the communality (sum of squared loadings), and the index
// of the primary (maximum-absolute-loading) factor. Created once per run,
// read-only afterwards.
type ItemLoading struct {
	Item        int
	Loadings    []float64
	Communality float64
	Primary     int
}

// Result aggregates one EFA run. Eigenvalues and VarianceExplained are
// indexed by extraction order (descending magnitude); both may be SHORTER
// than the requested factor count when deflation hits the numeric floor.
type Result struct {
	Eigenvalues       []float64
	VarianceExplained []float64 // eigenvalue / p × 100, per factor
	Items             []ItemLoading
	Rotated           bool
	Rotation          RotationMethod
}

// Options configures EFA.
//
// Fields:
//   - Rotation — rotation method; varimax only applies when >1 factor.
//   - Iter     — power-iteration tuning forwarded to matops.
//   - RNG      — explicit random source for power-iteration start vectors;
//     nil uses the deterministic default stream.
//
// Example:
//
//	opts := efa.DefaultOptions()
//	opts.RNG = matops.RNGFromSeed(42)
//	res, err := efa.EFA(data, 2, opts)
type Options struct {
	Rotation RotationMethod
	Iter     matops.IterOptions
	RNG      *rand.Rand
}

// DefaultOptions returns the canonical EFA configuration: varimax rotation
// with the matops iteration defaults and the deterministic default RNG.
func DefaultOptions() Options {
	return Options{
		Rotation: RotationVarimax,
		Iter:     matops.DefaultIterOptions(),
		RNG:      nil,
	}
}

// ParallelOptions configures parallel analysis.
//
// Fields:
//   - Iterations — number of simulated standard-normal matrices (≥1).
//   - Percentile — baseline quantile in (0,1]; 0.95 by convention.
//   - RNG        — base random source; each simulated matrix derives its own
//     independent substream from it.
type ParallelOptions struct {
	Iterations int
	Percentile float64
	RNG        *rand.Rand
}

// DefaultParallelOptions returns Iterations=100, Percentile=0.95 and the
// deterministic default RNG.
func DefaultParallelOptions() ParallelOptions {
	return ParallelOptions{
		Iterations: DefaultParallelIterations,
		Percentile: DefaultPercentile,
		RNG:        nil,
	}
}
