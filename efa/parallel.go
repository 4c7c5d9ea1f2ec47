// SPDX-License-Identifier: MIT
// Package efa: Monte-Carlo parallel analysis.
//
// Parallel analysis answers "how many factors are non-trivial?" by comparing
// the real eigenvalue spectrum against the spectrum of pure noise with the
// same shape: a real factor must explain more variance than the 95th
// percentile of what random data explains at the same rank.
//
// Determinism:
//   - Every simulated matrix draws from an independent substream derived from
//     the caller's base RNG (SplitMix64 mixing in matops.DeriveRNG), so a
//     fixed seed reproduces the exact baseline across runs and platforms.

package efa

import (
	"math"
	"sort"

	"github.com/psymetlab/psymet/matops"
)

// ParallelAnalysis determines the number of non-trivial factors in data.
//
// Implementation:
//   - Stage 1: Validate options; compute the observed eigenvalue spectrum from
//     the correlation matrix of data.
//   - Stage 2: For each of opts.Iterations simulated matrices: fill an n×p
//     matrix with standard-normal Box–Muller draws, build its correlation
//     matrix and extract its eigenvalues (ranks missing after the numeric
//     floor count as 0).
//   - Stage 3: Per rank, take the opts.Percentile quantile of the simulated
//     eigenvalues as the baseline.
//   - Stage 4: Count leading observed eigenvalues STRICTLY above their baseline,
//     stopping at the first failure (not merely counting eligible ranks);
//     the returned count is floored at 1.
//
// Errors:
//   - ErrBadIterations, ErrBadPercentile; matops sentinels from the
//     correlation/eigen layer.
//
// Complexity: Time O(Iterations · (n·p² + p·MaxIter·p²)), Space O(Iterations·p).
func ParallelAnalysis(data matops.Matrix, opts ParallelOptions) (int, error) {
	// Stage 1 (Validate options).
	if opts.Iterations < 1 {
		return 0, ErrBadIterations
	}
	if opts.Percentile <= 0 || opts.Percentile > 1 {
		return 0, ErrBadPercentile
	}

	// Stage 1 (Real spectrum).
	corr, err := matops.Correlation(data)
	if err != nil {
		return 0, err
	}
	n, p := data.Rows(), data.Cols()
	iterOpts := matops.DefaultIterOptions()
	observed, err := matops.EigenDecompose(corr, p, opts.RNG, iterOpts)
	if err != nil {
		return 0, err
	}
	if len(observed.Values) == 0 {
		return 1, nil // nothing extracted: minimum one factor by contract
	}

	// Stage 2 (Simulate): simulated[rank] collects one eigenvalue per iteration.
	simulated := make([][]float64, p)
	for rank := 0; rank < p; rank++ {
		simulated[rank] = make([]float64, opts.Iterations)
	}

	var it, i, j, rank int
	for it = 0; it < opts.Iterations; it++ {
		// Independent substream per simulated matrix.
		rng := matops.DeriveRNG(opts.RNG, uint64(it))

		noise, derr := matops.NewDense(n, p)
		if derr != nil {
			return 0, derr
		}
		for i = 0; i < n; i++ {
			for j = 0; j < p; j++ {
				if serr := noise.Set(i, j, matops.BoxMuller(rng)); serr != nil {
					return 0, serr
				}
			}
		}

		noiseCorr, cerr := matops.Correlation(noise)
		if cerr != nil {
			return 0, cerr
		}
		sim, eerr := matops.EigenDecompose(noiseCorr, p, rng, iterOpts)
		if eerr != nil {
			return 0, eerr
		}
		for rank = 0; rank < p; rank++ {
			if rank < len(sim.Values) {
				simulated[rank][it] = sim.Values[rank]
			} // else stays 0: truncated ranks explain nothing
		}
	}

	// Stage 3 (Baseline): per-rank percentile of the simulated spectra.
	baseline := make([]float64, p)
	for rank = 0; rank < p; rank++ {
		sort.Float64s(simulated[rank])
		baseline[rank] = quantile(simulated[rank], opts.Percentile)
	}

	// Stage 4 (Count): leading strict exceedances, stop at first failure.
	count := 0
	for rank = 0; rank < len(observed.Values); rank++ {
		if observed.Values[rank] > baseline[rank] {
			count++
		} else {
			break // the first non-exceeding rank ends the run
		}
	}
	if count < 1 {
		count = 1 // minimum returned value by contract
	}

	return count, nil
}

// quantile returns the q-quantile of an ASCENDING-sorted slice using the
// ceil(q·n)-th order statistic (the conventional conservative choice for
// parallel-analysis baselines).
// Complexity: O(1).
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := int(math.Ceil(q*float64(n))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}

	return sorted[idx]
}
