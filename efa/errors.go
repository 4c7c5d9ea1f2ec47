// SPDX-License-Identifier: MIT
// Package efa: sentinel error set. Tests match these via errors.Is; see
// matops/errors.go for the shared shape/nil sentinels that efa surfaces
// unchanged through wrapping.

package efa

import "errors"

var (
	// ErrBadFactorCount is returned when a requested factor count is < 1.
	ErrBadFactorCount = errors.New("efa: factor count must be >= 1")

	// ErrBadIterations is returned when ParallelOptions.Iterations < 1.
	ErrBadIterations = errors.New("efa: iterations must be >= 1")

	// ErrBadPercentile is returned when ParallelOptions.Percentile is outside (0,1].
	ErrBadPercentile = errors.New("efa: percentile must be in (0,1]")
)
