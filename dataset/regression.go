// SPDX-License-Identifier: MIT
// Package: blockgen/dataset
//
// regression.go - noisy linear-regression datasets.
//
// Model:
//   • X is rows×cols uniform, coefficients c is cols×1 uniform.
//   • y[i] = Σ_j c[j]·X[i][j] + ε_i, ε_i ~ N(0, σ²) drawn independently per row.
//
// Determinism:
//   • Draw order is X (row-major), then c, then ε_0..ε_{rows-1}.

package dataset

import (
	"fmt"

	"github.com/katalvlaran/blockgen/matrix"
)

// Regression is one generated regression dataset.
type Regression struct {
	X            *matrix.Dense // rows×cols design matrix
	Coefficients *matrix.Dense // cols×1 ground-truth coefficients
	Y            *matrix.Dense // rows×1 noisy targets
}

// Regression draws a dataset for the normal-equation benchmark.
//
// Errors: ErrInvalidDimension if rows ≤ 0 or cols ≤ 0.
// Complexity: O(rows*cols).
func (g *Generator) Regression(rows, cols int) (Regression, error) {
	if rows <= 0 || cols <= 0 {
		return Regression{}, fmt.Errorf("%s: rows=%d, cols=%d: %w", MethodRegression, rows, cols, ErrInvalidDimension)
	}

	x, err := g.uniform(MethodRegression, rows, cols)
	if err != nil {
		return Regression{}, err
	}
	coef := g.draw(cols)

	y, err := matrix.MulVec(x, coef)
	if err != nil {
		return Regression{}, fmt.Errorf("%s: %w", MethodRegression, err)
	}
	sigma := g.cfg.noiseSigma
	for i := range y {
		y[i] += g.cfg.rng.NormFloat64() * sigma
	}

	cm, err := matrix.NewDenseFrom(cols, 1, coef)
	if err != nil {
		return Regression{}, fmt.Errorf("%s: %w", MethodRegression, err)
	}
	ym, err := matrix.NewDenseFrom(rows, 1, y)
	if err != nil {
		return Regression{}, fmt.Errorf("%s: %w", MethodRegression, err)
	}

	return Regression{X: x, Coefficients: cm, Y: ym}, nil
}
