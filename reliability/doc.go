// SPDX-License-Identifier: MIT

// Package reliability implements the classical-test-theory internal
// consistency estimators used by the psychometric engine: Cronbach's alpha,
// McDonald's omega (total and hierarchical), Spearman–Brown-corrected
// split-half reliability, and Guttman's lambda-6.
//
// Numeric policy (shared with the rest of the engine): every estimator
// returns a value clamped into [0,1]; degenerate inputs — zero total
// variance, zero half-score variance — yield 0, never NaN or Inf.
//
// Inputs are either raw response matrices (alpha, split-half), item
// correlation matrices (lambda-6), or per-item factor loadings taken from an
// EFA run (omega family).
package reliability
