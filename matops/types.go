// SPDX-License-Identifier: MIT

// Package matops: domain types shared by the dense implementation and the
// numeric kernels. Errors live in errors.go and iteration defaults below are
// the single source of truth for tuning constants.
package matops

// Matrix represents a two-dimensional mutable array of float64 values.
// The interface exists so that kernels can be exercised through both the
// *Dense fast path and a generic fallback (tests hide the concrete type to
// force the latter).
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Iteration defaults (single source of truth).
const (
	// DefaultMaxIter caps power-iteration steps per eigenpair.
	DefaultMaxIter = 100

	// DefaultTol is the eigenvalue-delta convergence threshold for power
	// iteration (successive Rayleigh estimates).
	DefaultTol = 1e-10

	// DefaultVarimaxMaxIter caps full varimax sweeps over all column pairs.
	DefaultVarimaxMaxIter = 100

	// DefaultVarimaxTol is the stabilization threshold on the total
	// squared-loading variance between sweeps.
	DefaultVarimaxTol = 1e-6

	// EigenFloor is the magnitude below which an extracted eigenvalue is
	// treated as numerically zero; deflation stops there because the
	// remaining factors carry no meaningful variance.
	EigenFloor = 1e-10
)

// IterOptions tunes an iterative kernel.
//
// Fields:
//   - MaxIter — hard cap on iterations (power steps or varimax sweeps).
//   - Tol     — convergence threshold; the kernel documents the quantity it
//     applies the threshold to.
//
// A zero-valued IterOptions is rejected with ErrBadIterOptions; use the
// Default* constructors.
type IterOptions struct {
	MaxIter int
	Tol     float64
}

// DefaultIterOptions returns the power-iteration defaults (MaxIter=100, Tol=1e-10).
func DefaultIterOptions() IterOptions {
	return IterOptions{MaxIter: DefaultMaxIter, Tol: DefaultTol}
}

// DefaultVarimaxOptions returns the varimax defaults (MaxIter=100, Tol=1e-6).
func DefaultVarimaxOptions() IterOptions {
	return IterOptions{MaxIter: DefaultVarimaxMaxIter, Tol: DefaultVarimaxTol}
}

// PowerIterResult carries the dominant eigenpair estimate together with the
// convergence evidence. Delta is the last |λ_t − λ_{t−1}|; a Delta above the
// requested tolerance after Iterations==MaxIter means the estimate is
// best-effort (by contract this is not an error).
type PowerIterResult struct {
	Value      float64
	Vector     []float64
	Iterations int
	Delta      float64
}

// EigenResult holds up to k dominant eigenpairs extracted by deflation,
// ordered by extraction (descending eigenvalue magnitude), plus the per-pair
// convergence metadata. len(Values) may be SHORTER than the requested k when
// deflation hits the EigenFloor; callers must handle truncation.
type EigenResult struct {
	Values     []float64
	Vectors    [][]float64 // Vectors[j] is the unit eigenvector for Values[j], length p
	Iterations []int
	Deltas     []float64
}

// VarimaxResult carries the rotated loading matrix and sweep-level
// convergence evidence. Delta is the last change in total squared-loading
// variance between sweeps.
type VarimaxResult struct {
	Loadings [][]float64
	Sweeps   int
	Delta    float64
}
