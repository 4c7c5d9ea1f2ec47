// SPDX-License-Identifier: MIT
// Package reliability: sentinel error set. Shape/nil violations raised by the
// matops layer (ErrNilMatrix, ErrTooFewRows, …) pass through unchanged and
// still match via errors.Is.

package reliability

import "errors"

var (
	// ErrTooFewItems is returned when an estimator needs at least two item
	// columns (alpha, split-half) and received fewer.
	ErrTooFewItems = errors.New("reliability: need at least two items")

	// ErrNoLoadings is returned when a loading-based estimator (omega family)
	// received an empty loading vector.
	ErrNoLoadings = errors.New("reliability: no loadings supplied")

	// ErrLoadingLenMismatch is returned by OmegaHierarchical when the general
	// and group loading vectors differ in length.
	ErrLoadingLenMismatch = errors.New("reliability: general/group loading length mismatch")
)
