// SPDX-License-Identifier: MIT

// Package report is the orchestration facade of the psychometric engine. One
// call to Generate runs the full pipeline over a response matrix —
// correlation, Monte-Carlo parallel analysis, exploratory factor analysis
// with varimax rotation, the reliability family, and the validity
// diagnostics — and assembles a single comprehensive report with qualitative
// interpretation and human-readable recommendations.
//
// The report owns no state beyond the returned value; callers needing
// per-phase results (pilot studies, iterative item review) bypass this
// package and call efa/reliability/validity directly.
package report
