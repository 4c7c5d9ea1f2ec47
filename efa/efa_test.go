// SPDX-License-Identifier: MIT

package efa_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psymetlab/psymet/efa"
	"github.com/psymetlab/psymet/matops"
)

// identicalColumns builds an n×p response matrix whose columns are all the
// same cycling 1..5 pattern, a perfect single-factor structure (r = 1
// everywhere, λ1 = p).
func identicalColumns(t *testing.T, n, p int) *matops.Dense {
	t.Helper()
	d, err := matops.NewDense(n, p)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		v := float64(i%5 + 1)
		for j := 0; j < p; j++ {
			require.NoError(t, d.Set(i, j, v))
		}
	}
	return d
}

// twoClusterColumns builds an n×4 matrix where items 0,1 follow one score and
// items 2,3 follow another uncorrelated score, replicating a 4-row pattern
// whose two score columns are exactly sample-orthogonal.
func twoClusterColumns(t *testing.T, reps int) *matops.Dense {
	t.Helper()
	x := []float64{1, 2, 3, 4}   // centered: -1.5,-0.5,0.5,1.5
	y := []float64{1, -1, -1, 1} // centered and orthogonal to x
	d, err := matops.NewDense(4*reps, 4)
	require.NoError(t, err)
	for r := 0; r < 4*reps; r++ {
		base := r % 4
		require.NoError(t, d.Set(r, 0, x[base]))
		require.NoError(t, d.Set(r, 1, x[base]))
		require.NoError(t, d.Set(r, 2, y[base]))
		require.NoError(t, d.Set(r, 3, y[base]))
	}
	return d
}

// TestEFA_SingleFactorPerfectStructure checks the analytic solution for four
// identical items: one λ = 4 pair, unit loadings and communalities.
func TestEFA_SingleFactorPerfectStructure(t *testing.T) {
	data := identicalColumns(t, 10, 4)

	opts := efa.DefaultOptions()
	opts.RNG = matops.RNGFromSeed(42)
	res, err := efa.EFA(data, 1, opts)
	require.NoError(t, err)

	require.Len(t, res.Eigenvalues, 1)
	assert.InDelta(t, 4.0, res.Eigenvalues[0], 1e-8, "all-ones correlation has λ1 = p")
	assert.InDelta(t, 100.0, res.VarianceExplained[0], 1e-6, "a single perfect factor explains everything")
	assert.False(t, res.Rotated, "varimax does not apply to one factor")

	require.Len(t, res.Items, 4)
	for _, it := range res.Items {
		assert.InDelta(t, 1.0, math.Abs(it.Loadings[0]), 1e-6, "item %d loading", it.Item)
		assert.InDelta(t, 1.0, it.Communality, 1e-6, "item %d communality", it.Item)
		assert.Equal(t, 0, it.Primary)
	}
}

// TestEFA_TruncatesRequestBelowRank verifies that asking for more factors
// than the spectrum supports silently reports only the extracted pairs.
func TestEFA_TruncatesRequestBelowRank(t *testing.T) {
	data := identicalColumns(t, 10, 4) // rank-1 correlation

	opts := efa.DefaultOptions()
	opts.RNG = matops.RNGFromSeed(7)
	res, err := efa.EFA(data, 3, opts)
	require.NoError(t, err)

	assert.Len(t, res.Eigenvalues, 1, "deflation floor truncates to the real rank")
	assert.Len(t, res.VarianceExplained, 1)
	for _, it := range res.Items {
		assert.Len(t, it.Loadings, 1)
	}
}

// TestEFA_TwoFactorVarimaxSeparation checks that varimax recovers simple
// structure on two uncorrelated item clusters.
func TestEFA_TwoFactorVarimaxSeparation(t *testing.T) {
	data := twoClusterColumns(t, 5)

	opts := efa.DefaultOptions()
	opts.RNG = matops.RNGFromSeed(3)
	res, err := efa.EFA(data, 2, opts)
	require.NoError(t, err)

	require.Len(t, res.Eigenvalues, 2)
	assert.InDelta(t, 2.0, res.Eigenvalues[0], 1e-6)
	assert.InDelta(t, 2.0, res.Eigenvalues[1], 1e-6)
	assert.True(t, res.Rotated)

	// Cluster membership: 0,1 share a primary factor; 2,3 share the other.
	require.Len(t, res.Items, 4)
	assert.Equal(t, res.Items[0].Primary, res.Items[1].Primary)
	assert.Equal(t, res.Items[2].Primary, res.Items[3].Primary)
	assert.NotEqual(t, res.Items[0].Primary, res.Items[2].Primary)
	for _, it := range res.Items {
		assert.InDelta(t, 1.0, it.Communality, 1e-6, "item %d communality", it.Item)
	}
}

// TestEFA_BadInputs covers the option sentinel and the pass-through of the
// shape sentinels from the numeric layer.
func TestEFA_BadInputs(t *testing.T) {
	data := identicalColumns(t, 10, 4)

	_, err := efa.EFA(data, 0, efa.DefaultOptions())
	assert.ErrorIs(t, err, efa.ErrBadFactorCount, "factor count below 1 must error")

	_, err = efa.EFA(nil, 1, efa.DefaultOptions())
	assert.ErrorIs(t, err, matops.ErrNilMatrix, "nil data surfaces the shared sentinel")

	one, derr := matops.NewDense(1, 3)
	require.NoError(t, derr)
	_, err = efa.EFA(one, 1, efa.DefaultOptions())
	assert.ErrorIs(t, err, matops.ErrTooFewRows, "a single subject row is not analyzable")

	// A zero-valued Options carries MaxIter=0; the extraction layer must
	// reject it instead of returning items with empty loading vectors.
	_, err = efa.EFA(data, 1, efa.Options{Rotation: efa.RotationVarimax})
	assert.ErrorIs(t, err, matops.ErrBadIterOptions, "zero iteration tuning must error")
}

// TestEFA_SeedDeterminism: same seed, same loadings.
func TestEFA_SeedDeterminism(t *testing.T) {
	data := twoClusterColumns(t, 5)

	run := func() efa.Result {
		opts := efa.DefaultOptions()
		opts.RNG = matops.RNGFromSeed(123)
		res, err := efa.EFA(data, 2, opts)
		require.NoError(t, err)
		return res
	}
	first, second := run(), run()
	assert.Equal(t, first.Eigenvalues, second.Eigenvalues)
	assert.Equal(t, first.Items, second.Items)
}

func TestKaiserCriterion(t *testing.T) {
	assert.Equal(t, 2, efa.KaiserCriterion([]float64{2.5, 1.2, 0.9, 0.4}))
	assert.Equal(t, 0, efa.KaiserCriterion([]float64{1.0, 0.5}), "strictly greater than 1")
	assert.Equal(t, 0, efa.KaiserCriterion(nil))
}
