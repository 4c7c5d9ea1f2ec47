// SPDX-License-Identifier: MIT
// Package: matops
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return plain sentinel errors (tagged) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - Each validator describes what it validates and what it assumes.

package matops

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: assumes m is not nil (caller must ensure).
// Errors: ErrNonSquare if rows != cols.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures A.Cols == B.Rows for matrix multiplication.
//
// Errors: ErrNilMatrix for nil operands, ErrDimensionMismatch on inner mismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	// Both operands must be present.
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	// Inner dimensions must agree.
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch) // vector length must match dimension
	}

	return nil
}

// ValidateIterOptions ensures an iterative kernel received usable tuning:
// MaxIter must be at least 1, otherwise the iteration body never runs and the
// kernel would return an empty or meaningless estimate.
//
// Errors: ErrBadIterOptions.
// Complexity: O(1).
func ValidateIterOptions(opts IterOptions) error {
	if opts.MaxIter < 1 {
		return validatorErrorf("ValidateIterOptions", ErrBadIterOptions)
	}

	return nil
}

// ValidateResponseMatrix ensures data is a usable n×p response matrix:
// non-nil, at least two subject rows and at least one item column.
// Column statistics (correlation, covariance, alpha) are undefined below
// two observations.
//
// Errors: ErrNilMatrix, ErrTooFewRows, ErrBadShape.
// Complexity: O(1).
func ValidateResponseMatrix(data Matrix) error {
	// Fixed sequence: NotNil → rows → cols.
	if err := ValidateNotNil(data); err != nil {
		return err
	}
	if data.Rows() < 2 {
		return validatorErrorf("ValidateResponseMatrix", ErrTooFewRows)
	}
	if data.Cols() < 1 {
		return validatorErrorf("ValidateResponseMatrix", ErrBadShape)
	}

	return nil
}

// ValidateSymmetricShape ensures m is a non-nil square matrix of order >= 1.
// Symmetry of VALUES is an input contract of the spectral kernels, not
// re-checked numerically here: correlation construction guarantees it and an
// O(n²) re-scan on every power step would be waste.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadShape.
// Complexity: O(1).
func ValidateSymmetricShape(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.Rows() < 1 {
		return validatorErrorf("ValidateSymmetricShape", ErrBadShape)
	}

	return nil
}

// ValidateLoadings ensures a rectangular, non-empty loading matrix
// (items × factors). Returns the shape on success so callers avoid
// re-deriving it.
//
// Errors: ErrEmptyLoadings, ErrRaggedRows.
// Complexity: O(items).
func ValidateLoadings(loadings [][]float64) (items, factors int, err error) {
	// Outer emptiness first.
	if len(loadings) == 0 || len(loadings[0]) == 0 {
		return 0, 0, validatorErrorf("ValidateLoadings", ErrEmptyLoadings)
	}
	items, factors = len(loadings), len(loadings[0])
	// Rectangularity scan.
	for i := 1; i < items; i++ {
		if len(loadings[i]) != factors {
			return 0, 0, validatorErrorf("ValidateLoadings", ErrRaggedRows)
		}
	}

	return items, factors, nil
}
