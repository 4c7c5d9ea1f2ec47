// SPDX-License-Identifier: MIT

// Package matops provides the deterministic linear-algebra primitives that the
// psychometric engine is built on: a row-major dense matrix, correlation and
// covariance construction over an n×p response matrix, canonical kernels
// (Mul, Transpose, Scale, MatVec), power-iteration eigen-extraction with
// deflation, and varimax rotation.
//
// Conventions (shared by every kernel in this package):
//
//   - Fail-fast validation through the central validators; sentinel errors
//     only, matched via errors.Is — no panics on user-triggered conditions.
//   - Deterministic fixed i→j traversal orders; identical inputs and seeds
//     produce identical outputs on every platform.
//   - *Dense fast paths operate on the flat backing slice; every kernel also
//     carries an interface fallback via At/Set.
//   - Iterative kernels (PowerIteration, EigenDecompose, Varimax) never fail
//     on non-convergence: they return the best estimate found together with
//     the iteration count and the final delta, and the caller decides whether
//     that precision is acceptable.
//   - Randomness is explicit: any routine that consumes randomness takes a
//     *rand.Rand built via RNGFromSeed/DeriveRNG; there is no global source.
package matops
