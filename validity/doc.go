// SPDX-License-Identifier: MIT

// Package validity implements the structural-validity diagnostics of the
// psychometric engine: average variance extracted (AVE) and composite
// reliability (CR) for convergent validity, the heterotrait-monotrait ratio
// (HTMT) and the Fornell–Larcker criterion for discriminant validity, and a
// combined assessment that applies the conventional thresholds
// (AVE ≥ 0.50, CR ≥ 0.70, HTMT < 0.85).
//
// Inputs are per-item factor loadings from an EFA run plus the item
// correlation matrix and a factor-assignment vector; outputs are immutable
// value records with no identity beyond the report containing them.
package validity
