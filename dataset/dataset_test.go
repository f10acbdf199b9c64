// SPDX-License-Identifier: MIT
package dataset_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/blockgen/dataset"
	"github.com/katalvlaran/blockgen/matrix"
	"github.com/stretchr/testify/require"
)

func TestDenseShapeAndRange(t *testing.T) {
	t.Parallel()

	g := dataset.New(dataset.WithSeed(1))
	m, err := g.Dense(7, 3)
	require.NoError(t, err)
	require.Equal(t, 7, m.Rows())
	require.Equal(t, 3, m.Cols())
	for _, v := range m.Values() {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestInvalidDimensions(t *testing.T) {
	t.Parallel()

	g := dataset.New(dataset.WithSeed(1))
	cases := []struct {
		name string
		call func() error
	}{
		{"dense zero rows", func() error { _, err := g.Dense(0, 3); return err }},
		{"dense negative cols", func() error { _, err := g.Dense(3, -1); return err }},
		{"vector zero", func() error { _, err := g.Vector(0); return err }},
		{"regression zero cols", func() error { _, err := g.Regression(4, 0); return err }},
		{"positive definite zero", func() error { _, err := g.PositiveDefinite(0); return err }},
	}
	for _, tc := range cases {
		require.ErrorIs(t, tc.call(), dataset.ErrInvalidDimension, tc.name)
	}
}

func TestSeedDeterminism(t *testing.T) {
	t.Parallel()

	a, err := dataset.New(dataset.WithSeed(42)).Dense(4, 4)
	require.NoError(t, err)
	b, err := dataset.New(dataset.WithSeed(42)).Dense(4, 4)
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	c, err := dataset.New(dataset.WithRand(rand.New(rand.NewSource(43)))).Dense(4, 4)
	require.NoError(t, err)
	require.False(t, a.Equal(c))
}

func TestVectorIsRow(t *testing.T) {
	t.Parallel()

	v, err := dataset.New(dataset.WithSeed(3)).Vector(5)
	require.NoError(t, err)
	require.Equal(t, 1, v.Rows())
	require.Equal(t, 5, v.Cols())
}

func TestRegressionWithoutNoiseIsExact(t *testing.T) {
	t.Parallel()

	r, err := dataset.New(dataset.WithSeed(9), dataset.WithNoise(0)).Regression(6, 3)
	require.NoError(t, err)
	require.Equal(t, 6, r.X.Rows())
	require.Equal(t, 3, r.X.Cols())
	require.Equal(t, 3, r.Coefficients.Rows())
	require.Equal(t, 1, r.Coefficients.Cols())
	require.Equal(t, 6, r.Y.Rows())
	require.Equal(t, 1, r.Y.Cols())

	want, err := matrix.MulVec(r.X, r.Coefficients.Values())
	require.NoError(t, err)
	require.InDeltaSlice(t, want, r.Y.Values(), 1e-12)
}

func TestRegressionNoiseIsPerRow(t *testing.T) {
	t.Parallel()

	r, err := dataset.New(dataset.WithSeed(9)).Regression(200, 2)
	require.NoError(t, err)

	clean, err := matrix.MulVec(r.X, r.Coefficients.Values())
	require.NoError(t, err)
	var sum, sq float64
	for i, y := range r.Y.Values() {
		d := y - clean[i]
		sum += d
		sq += d * d
	}
	mean := sum / 200
	std := math.Sqrt(sq/200 - mean*mean)
	require.InDelta(t, 0, mean, 0.3)
	require.InDelta(t, 1, std, 0.3)
}

func TestPositiveDefinite(t *testing.T) {
	t.Parallel()

	g := dataset.New(dataset.WithSeed(5))
	for trial := 0; trial < 20; trial++ {
		m, err := g.PositiveDefinite(3)
		require.NoError(t, err)
		vals, err := matrix.SymmetricEigenvalues(m)
		require.NoError(t, err)
		for _, v := range vals {
			require.Greater(t, v, 0.0)
		}
	}
}

func TestPositiveDefiniteExhaustion(t *testing.T) {
	t.Parallel()

	// Entries are < 1, so every eigenvalue of YᵗY is below dim²; 1e6 is unreachable.
	g := dataset.New(dataset.WithSeed(5), dataset.WithMinEigenvalue(1e6), dataset.WithMaxAttempts(4))
	_, err := g.PositiveDefinite(3)
	require.ErrorIs(t, err, dataset.ErrPositiveDefiniteConstruction)
	require.Contains(t, err.Error(), "after 4 attempts")
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { dataset.WithRand(nil) })
	require.Panics(t, func() { dataset.WithNoise(-1) })
	require.Panics(t, func() { dataset.WithMaxAttempts(0) })
	require.Panics(t, func() { dataset.WithMinEigenvalue(math.NaN()) })
}
