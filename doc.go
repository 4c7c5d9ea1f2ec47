// Package psymet is an in-memory engine for the psychometric analysis of
// multi-item rating-scale data — from linear-algebra primitives to factor
// extraction, reliability and validity estimation.
//
// 🚀 What is psymet?
//
//	A pure, deterministic library that brings together:
//		• Matrix primitives: dense storage, correlation/covariance, multiply, transpose
//		• Eigen extraction: power iteration with deflation for the top-k factors
//		• Rotation: varimax with closed-form pairwise angles
//		• Factor analysis: EFA, Monte-Carlo parallel analysis, Kaiser criterion
//		• Reliability: Cronbach's alpha, McDonald's omega, split-half, Guttman λ6
//		• Validity: AVE, composite reliability, HTMT, Fornell–Larcker
//		• Reporting: one comprehensive report with plain-language recommendations
//
// ✨ Why choose psymet?
//
//   - Deterministic – every stochastic routine takes an explicit, seedable RNG
//   - Honest numerics – degenerate inputs yield zeros, never NaN or Inf
//   - Pure Go – no cgo, no I/O, no hidden deps
//   - Inspectable – iterative kernels report their iteration counts and deltas
//
// Under the hood, everything is organized under five subpackages:
//
//	matops/      — dense matrices, correlation, power iteration, varimax
//	efa/         — exploratory factor analysis & parallel analysis
//	reliability/ — internal-consistency estimators
//	validity/    — convergent & discriminant validity diagnostics
//	report/      — the orchestrator producing a single combined report
//
// Data flows one way:
//
//	responses → correlation → eigenpairs → loadings → reliability/validity → report
//
// Dive into README.md for full examples and the threshold tables used by the
// interpretation layer.
//
//	go get github.com/psymetlab/psymet
package psymet
