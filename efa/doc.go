// SPDX-License-Identifier: MIT

// Package efa implements exploratory factor analysis over a multi-item
// response matrix: eigen-based factor extraction with optional varimax
// rotation, Monte-Carlo parallel analysis for factor-count determination, and
// the Kaiser eigenvalue-greater-than-one heuristic kept for comparison.
//
// Pipeline: correlation matrix → top-k eigenpairs (power iteration with
// deflation) → unrotated loadings l_ij = v_ij·√|λ_j| → varimax → per-item
// communality and primary factor.
//
// Randomness (parallel analysis matrices, power-iteration start vectors) is
// explicit: pass a seeded *rand.Rand through Options/ParallelOptions for
// reproducible output; nil falls back to a fixed deterministic stream.
package efa
