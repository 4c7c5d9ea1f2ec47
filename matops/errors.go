// SPDX-License-Identifier: MIT
// Package matops: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matops
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matops

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matops: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Dense creation must validate before allocation.
	ErrBadShape = errors.New("matops: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matops: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matops: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (correlation/eigen/rotation surfaces).
	ErrNonSquare = errors.New("matops: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matops: nil matrix")

	// ErrRaggedRows signals that a [][]float64 ingestion had rows of unequal
	// length. Response matrices must be rectangular.
	ErrRaggedRows = errors.New("matops: ragged rows")

	// ErrTooFewRows signals that an operation requiring at least two
	// observations received fewer (sample statistics are undefined).
	ErrTooFewRows = errors.New("matops: need at least two rows")

	// ErrEmptyLoadings signals that a loading matrix had zero items or zero
	// factors where at least one of each is required.
	ErrEmptyLoadings = errors.New("matops: empty loading matrix")

	// ErrBadIterOptions signals that an iterative kernel received unusable
	// tuning (MaxIter < 1). A zero-valued IterOptions is rejected rather than
	// silently running zero iterations; use the Default* constructors.
	ErrBadIterOptions = errors.New("matops: bad iteration options")
)
