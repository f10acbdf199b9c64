// SPDX-License-Identifier: MIT
// Package: blockgen/dataset
//
// positive_definite.go - random symmetric positive-definite matrices.
//
// Canonical model:
//   • Draw Y (dim×dim, uniform [0,1)), form M = Yᵗ·Y.
//   • Accept M iff every eigenvalue is strictly greater than the configured
//     threshold (default 0); otherwise redraw.
//
// Contract:
//   • The loop is bounded by cfg.maxAttempts; exhaustion returns
//     ErrPositiveDefiniteConstruction wrapped with the attempt count.
//   • M is symmetric by construction (Gram product).
//
// Complexity:
//   • Per attempt O(dim³) for the Gram product and the eigen decomposition.

package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/blockgen/matrix"
)

// PositiveDefinite returns a random dim×dim symmetric positive-definite matrix.
func (g *Generator) PositiveDefinite(dim int) (*matrix.Dense, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%s: dim=%d: %w", MethodPositiveDefinite, dim, ErrInvalidDimension)
	}

	sample := func() (*matrix.Dense, error) {
		y, err := g.uniform(MethodPositiveDefinite, dim, dim)
		if err != nil {
			return nil, err
		}
		return matrix.Gram(y)
	}
	accept := func(m *matrix.Dense) (bool, error) {
		vals, err := matrix.SymmetricEigenvalues(m)
		if err != nil {
			return false, err
		}
		// Ascending order: the smallest eigenvalue decides.
		return vals[0] > g.cfg.minEigenvalue, nil
	}

	m, attempts, err := resampleUntil(g.cfg.maxAttempts, sample, accept)
	switch {
	case errors.Is(err, errAttemptsExhausted):
		return nil, fmt.Errorf("%s: no matrix with eigenvalues > %g after %d attempts: %w",
			MethodPositiveDefinite, g.cfg.minEigenvalue, attempts, ErrPositiveDefiniteConstruction)
	case err != nil:
		return nil, fmt.Errorf("%s: %w", MethodPositiveDefinite, err)
	}

	return m, nil
}
