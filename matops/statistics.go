// SPDX-License-Identifier: MIT
// Package: matops
//
// Purpose:
//   - Provide correlation/covariance construction over an n×p response matrix
//     (rows are subjects, columns are items) as deterministic single-pass
//     accumulations with Dense fast paths.
//
// Numeric policy (engine contract, differs from textbook NaN propagation):
//   - Population moments (divide by n) throughout, so that perfectly
//     correlated items yield exactly r = 1 and downstream alpha = 1.
//   - A zero-variance item correlates 0 with every OTHER item (divide-by-zero
//     guarded, never NaN); the correlation diagonal is forced to 1 for every
//     item, degenerate or not.
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matops

import "math"

// columnMoments accumulates per-column means and centered sums of squares in
// a fixed two-pass sweep. Shared by Correlation and Covariance.
//
// Returns means[j] = Σ_i X[i,j]/n and sumsq[j] = Σ_i (X[i,j]−mean_j)².
// Complexity: Time O(n*p), Space O(p).
func columnMoments(data Matrix) (means, sumsq []float64, err error) {
	n, p := data.Rows(), data.Cols()
	means = make([]float64, p)
	sumsq = make([]float64, p)

	var i, j int
	var v, d float64

	// Pass 1: column sums → means.
	if dd, ok := data.(*Dense); ok {
		for i = 0; i < n; i++ { // deterministic row order
			base := i * p
			for j = 0; j < p; j++ {
				means[j] += dd.data[base+j]
			}
		}
	} else {
		for i = 0; i < n; i++ {
			for j = 0; j < p; j++ {
				v, err = data.At(i, j)
				if err != nil {
					return nil, nil, err
				}
				means[j] += v
			}
		}
	}
	invN := 1.0 / float64(n)
	for j = 0; j < p; j++ {
		means[j] *= invN
	}

	// Pass 2: centered sums of squares.
	if dd, ok := data.(*Dense); ok {
		for i = 0; i < n; i++ {
			base := i * p
			for j = 0; j < p; j++ {
				d = dd.data[base+j] - means[j]
				sumsq[j] += d * d
			}
		}
	} else {
		for i = 0; i < n; i++ {
			for j = 0; j < p; j++ {
				v, err = data.At(i, j)
				if err != nil {
					return nil, nil, err
				}
				d = v - means[j]
				sumsq[j] += d * d
			}
		}
	}

	return means, sumsq, nil
}

// crossProducts accumulates the centered cross-product matrix
// S[j,k] = Σ_i (X[i,j]−m_j)(X[i,k]−m_k) over the upper triangle and mirrors
// it. Complexity: Time O(n*p²), Space O(p²).
func crossProducts(data Matrix, means []float64) (*Dense, error) {
	n, p := data.Rows(), data.Cols()
	s, err := NewDense(p, p)
	if err != nil {
		return nil, err
	}

	var i, j, k int
	var dj float64

	if dd, ok := data.(*Dense); ok {
		var base int
		for i = 0; i < n; i++ {
			base = i * p
			for j = 0; j < p; j++ {
				dj = dd.data[base+j] - means[j]
				if dj == 0 {
					continue // zero deviation contributes nothing
				}
				for k = j; k < p; k++ {
					s.data[j*p+k] += dj * (dd.data[base+k] - means[k])
				}
			}
		}
	} else {
		// Fallback: buffer one centered row at a time to keep At calls linear.
		row := make([]float64, p)
		var v float64
		for i = 0; i < n; i++ {
			for j = 0; j < p; j++ {
				v, err = data.At(i, j)
				if err != nil {
					return nil, err
				}
				row[j] = v - means[j]
			}
			for j = 0; j < p; j++ {
				dj = row[j]
				if dj == 0 {
					continue
				}
				for k = j; k < p; k++ {
					s.data[j*p+k] += dj * row[k]
				}
			}
		}
	}

	// Mirror the upper triangle (symmetric by construction).
	for j = 0; j < p; j++ {
		for k = j + 1; k < p; k++ {
			s.data[k*p+j] = s.data[j*p+k]
		}
	}

	return s, nil
}

// Covariance computes the population covariance matrix of the p item columns:
// Cov[j,k] = Σ_i (X[i,j]−m_j)(X[i,k]−m_k) / n.
//
// Contract: symmetric output; diagonal equals per-item population variance.
//
// Errors:
//   - ErrNilMatrix, ErrTooFewRows, ErrBadShape (from ValidateResponseMatrix).
//
// Complexity: Time O(n*p²), Space O(p²).
func Covariance(data Matrix) (Matrix, error) {
	// Stage 1 (Validate): canonical response-matrix check.
	if err := ValidateResponseMatrix(data); err != nil {
		return nil, opsErrorf(opCovariance, err)
	}

	// Stage 2 (Moments): column means.
	means, _, err := columnMoments(data)
	if err != nil {
		return nil, opsErrorf(opCovariance, err)
	}

	// Stage 3 (Cross-products): centered S.
	s, err := crossProducts(data, means)
	if err != nil {
		return nil, opsErrorf(opCovariance, err)
	}

	// Stage 4 (Normalize): population scaling through the canonical kernel.
	return Scale(s, 1.0/float64(data.Rows()))
}

// Correlation computes the pairwise Pearson correlation matrix of the p item
// columns of an n×p response matrix.
//
// Contract:
//   - Result is symmetric with diagonal exactly 1.0.
//   - If an item has zero variance, its correlation with any OTHER item is 0
//     (divide-by-zero guarded) rather than NaN; its diagonal stays 1.
//
// Errors:
//   - ErrNilMatrix, ErrTooFewRows, ErrBadShape (from ValidateResponseMatrix).
//
// Complexity: Time O(n*p²), Space O(p²).
func Correlation(data Matrix) (Matrix, error) {
	// Stage 1 (Validate): canonical response-matrix check.
	if err := ValidateResponseMatrix(data); err != nil {
		return nil, opsErrorf(opCorrelation, err)
	}
	p := data.Cols()

	// Stage 2 (Moments): column means and centered sums of squares.
	means, sumsq, err := columnMoments(data)
	if err != nil {
		return nil, opsErrorf(opCorrelation, err)
	}

	// Stage 3 (Cross-products): centered S[j,k].
	s, err := crossProducts(data, means)
	if err != nil {
		return nil, opsErrorf(opCorrelation, err)
	}

	// Stage 4 (Normalize): r[j,k] = S[j,k] / sqrt(sumsq_j * sumsq_k).
	// The population-n denominators cancel, so sumsq suffices.
	var j, k int
	var denom float64
	for j = 0; j < p; j++ {
		for k = j; k < p; k++ {
			if j == k {
				s.data[j*p+j] = 1.0 // unit diagonal by contract, even when degenerate
				continue
			}
			denom = math.Sqrt(sumsq[j] * sumsq[k])
			if denom == 0 {
				s.data[j*p+k] = 0 // zero-variance policy: defined as 0, not NaN
			} else {
				s.data[j*p+k] /= denom
			}
			s.data[k*p+j] = s.data[j*p+k] // keep symmetry
		}
	}

	return s, nil
}

// PearsonR computes the Pearson correlation between two equal-length score
// sequences using population moments. Degenerate inputs (either sequence with
// zero variance, or fewer than two observations) yield 0 by the same policy
// as Correlation.
//
// Errors: ErrNilMatrix (nil slice), ErrDimensionMismatch (length mismatch).
// Complexity: Time O(n), Space O(1).
func PearsonR(x, y []float64) (float64, error) {
	// Validate both sequences and their agreement.
	if x == nil || y == nil {
		return 0, opsErrorf(opCorrelation, validatorErrorf("PearsonR", ErrNilMatrix))
	}
	if len(x) != len(y) {
		return 0, opsErrorf(opCorrelation, validatorErrorf("PearsonR", ErrDimensionMismatch))
	}
	n := len(x)
	if n < 2 {
		return 0, nil // degenerate: no variance to correlate
	}

	// Single pass for means.
	var mx, my float64
	var i int
	for i = 0; i < n; i++ {
		mx += x[i]
		my += y[i]
	}
	mx /= float64(n)
	my /= float64(n)

	// Second pass for centered moments.
	var sxx, syy, sxy, dx, dy float64
	for i = 0; i < n; i++ {
		dx = x[i] - mx
		dy = y[i] - my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, nil // degenerate: defined as 0, not NaN
	}

	return sxy / math.Sqrt(sxx*syy), nil
}
