// SPDX-License-Identifier: MIT
// Package matops: spectral extraction for symmetric matrices.
//
// Purpose:
//   - PowerIteration: dominant eigenpair via repeated MatVec, Rayleigh-quotient
//     eigenvalue estimation and L2 renormalization.
//   - EigenDecompose: up to k dominant eigenpairs via power iteration plus
//     deflation (A ← A − λ·v·vᵀ), with an early stop at EigenFloor.
//
// Convergence contract:
//   - Neither routine errors on non-convergence. The best estimate after
//     MaxIter iterations is returned, and the caller inspects Iterations and
//     Delta in the result when certified precision matters.
//
// Determinism:
//   - All randomness flows through the explicit rng argument; identical seeds
//     give identical start vectors and therefore identical iterates.

package matops

import (
	"math"
	"math/rand"
)

// toDense materializes any Matrix into a fresh *Dense working copy.
// EigenDecompose mutates its working matrix during deflation and must never
// touch the caller's input.
// Complexity: O(n²).
func toDense(m Matrix) (*Dense, error) {
	// Fast path: Dense clone.
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	// Fallback: element-wise copy via At.
	n, c := m.Rows(), m.Cols()
	d, err := NewDense(n, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < c; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, err
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// PowerIteration estimates the dominant eigenpair of a symmetric matrix.
//
// Implementation:
//   - Stage 1: Validate shape (non-nil, square, order ≥ 1).
//   - Stage 2: Start from a random unit vector drawn from rng.
//   - Stage 3: Iterate w = A·v; λ = vᵀ·w (Rayleigh quotient on a unit v);
//     renormalize w into the next v; stop when |λ_t − λ_{t−1}| < opts.Tol or
//     after opts.MaxIter steps.
//
// Behavior highlights:
//   - A zero iterate (A annihilates v) terminates with λ = 0 immediately —
//     the matrix has no dominant direction left to find.
//   - Non-convergence is silent by contract: inspect Iterations/Delta.
//
// Inputs:
//   - a:    symmetric matrix (n×n), not mutated.
//   - rng:  explicit random source; nil falls back to the deterministic
//     default stream (seed==0 policy).
//   - opts: MaxIter/Tol; use DefaultIterOptions() unless tuning.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadShape (from ValidateSymmetricShape).
//   - ErrBadIterOptions when opts.MaxIter < 1.
//
// Complexity: Time O(MaxIter·n²), Space O(n).
func PowerIteration(a Matrix, rng *rand.Rand, opts IterOptions) (PowerIterResult, error) {
	// Stage 1 (Validate): shape checks only; value symmetry is the caller's contract.
	if err := ValidateSymmetricShape(a); err != nil {
		return PowerIterResult{}, opsErrorf(opPowerIter, err)
	}
	if err := ValidateIterOptions(opts); err != nil {
		return PowerIterResult{}, opsErrorf(opPowerIter, err)
	}
	n := a.Rows()

	// Stage 2 (Start): random unit vector keeps the iteration unbiased across calls.
	v := randUnitVector(n, rng)

	var (
		iter       int
		i          int
		lambda     float64
		prevLambda float64
		delta      float64
		norm       float64
		w          []float64
		err        error
	)
	delta = math.Inf(1) // no estimate yet

	for iter = 0; iter < opts.MaxIter; iter++ {
		// w = A·v
		w, err = MatVec(a, v)
		if err != nil {
			return PowerIterResult{}, opsErrorf(opPowerIter, err)
		}

		// Rayleigh quotient: v is unit, so λ = vᵀ·w.
		lambda = ZeroSum
		for i = 0; i < n; i++ {
			lambda += v[i] * w[i]
		}

		// Renormalize w into the next iterate.
		norm = ZeroSum
		for i = 0; i < n; i++ {
			norm += w[i] * w[i]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			// A·v vanished: the remaining spectrum is numerically zero.
			return PowerIterResult{Value: 0, Vector: v, Iterations: iter + 1, Delta: 0}, nil
		}
		for i = 0; i < n; i++ {
			v[i] = w[i] / norm
		}

		// Convergence on successive eigenvalue estimates.
		if iter > 0 {
			delta = math.Abs(lambda - prevLambda)
			if delta < opts.Tol {
				return PowerIterResult{Value: lambda, Vector: v, Iterations: iter + 1, Delta: delta}, nil
			}
		}
		prevLambda = lambda
	}

	// Best estimate after MaxIter; silent by contract.
	return PowerIterResult{Value: lambda, Vector: v, Iterations: opts.MaxIter, Delta: delta}, nil
}

// EigenDecompose extracts up to k dominant eigenpairs of a symmetric matrix
// via power iteration with deflation.
//
// Implementation:
//   - Stage 1: Validate shape; clamp k into [1, n]; copy a into a Dense
//     working matrix (the input is never mutated).
//   - Stage 2: For each pair: run PowerIteration on the working matrix; stop
//     early when |λ| < EigenFloor (remaining factors are not meaningful);
//     otherwise record the pair and deflate W ← W − λ·v·vᵀ.
//
// Behavior highlights:
//   - The result may hold FEWER than k pairs; callers must handle truncation.
//   - Pairs are ordered by extraction, i.e. descending eigenvalue magnitude.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadShape (from ValidateSymmetricShape).
//   - ErrBadShape when k < 1 after clamping (k<=0 requested on empty input
//     cannot happen; k<=0 itself is rejected).
//   - ErrBadIterOptions when opts.MaxIter < 1.
//
// Complexity: Time O(k·MaxIter·n²), Space O(n²) for the working copy.
func EigenDecompose(a Matrix, k int, rng *rand.Rand, opts IterOptions) (EigenResult, error) {
	// Stage 1 (Validate): shape, factor count and iteration tuning.
	if err := ValidateSymmetricShape(a); err != nil {
		return EigenResult{}, opsErrorf(opEigen, err)
	}
	if err := ValidateIterOptions(opts); err != nil {
		return EigenResult{}, opsErrorf(opEigen, err)
	}
	if k < 1 {
		return EigenResult{}, opsErrorf(opEigen, validatorErrorf("factor count", ErrBadShape))
	}
	n := a.Rows()
	if k > n {
		k = n // cannot extract more pairs than the order
	}

	// Working copy for deflation.
	work, err := toDense(a)
	if err != nil {
		return EigenResult{}, opsErrorf(opEigen, err)
	}

	res := EigenResult{
		Values:     make([]float64, 0, k),
		Vectors:    make([][]float64, 0, k),
		Iterations: make([]int, 0, k),
		Deltas:     make([]float64, 0, k),
	}

	var (
		f, i, j int
		pr      PowerIterResult
		row     int
		lvi     float64
	)
	for f = 0; f < k; f++ {
		pr, err = PowerIteration(work, rng, opts)
		if err != nil {
			return EigenResult{}, opsErrorf(opEigen, err)
		}

		// Underflow cutoff: the residual spectrum is numerically zero.
		if math.Abs(pr.Value) < EigenFloor {
			break
		}

		res.Values = append(res.Values, pr.Value)
		res.Vectors = append(res.Vectors, pr.Vector)
		res.Iterations = append(res.Iterations, pr.Iterations)
		res.Deltas = append(res.Deltas, pr.Delta)

		// Deflate: W ← W − λ·v·vᵀ (symmetric rank-1 update on the flat buffer).
		for i = 0; i < n; i++ {
			row = i * n
			lvi = pr.Value * pr.Vector[i]
			if lvi == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				work.data[row+j] -= lvi * pr.Vector[j]
			}
		}
	}

	return res, nil
}
