// SPDX-License-Identifier: MIT
// Package validity: sentinel error set. Shape violations from the matops
// layer pass through unchanged and still match via errors.Is.

package validity

import "errors"

var (
	// ErrNoLoadings is returned when a loading-based metric received an empty
	// loading vector.
	ErrNoLoadings = errors.New("validity: no loadings supplied")

	// ErrAssignmentMismatch is returned when the factor-assignment vector
	// length does not match the number of items in the correlation matrix.
	ErrAssignmentMismatch = errors.New("validity: assignment length mismatch")

	// ErrBadAssignment is returned when an assignment index is negative.
	ErrBadAssignment = errors.New("validity: negative factor assignment")

	// ErrAVECountMismatch is returned by FornellLarcker when the AVE vector
	// length differs from the construct-correlation matrix order.
	ErrAVECountMismatch = errors.New("validity: AVE count mismatch")

	// ErrNoItems is returned when the assessment received an empty item set.
	ErrNoItems = errors.New("validity: no items supplied")
)
