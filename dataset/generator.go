// SPDX-License-Identifier: MIT
// Package: blockgen/dataset
//
// generator.go - Generator type and uniform draws (Dense, Vector).
//
// Contract:
//   • Values are independent uniform draws in [0,1) from the generator's RNG.
//   • Draw order is row-major and never changes; equal seeds ⇒ equal matrices.
//   • Size validation happens before the first draw, so a rejected call does
//     not advance the random stream.

package dataset

import (
	"fmt"

	"github.com/katalvlaran/blockgen/matrix"
)

// Generator produces benchmark datasets from one random stream.
type Generator struct {
	cfg generatorConfig
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	return &Generator{cfg: newGeneratorConfig(opts...)}
}

// Dense returns a rows×cols matrix of uniform values in [0,1).
//
// Errors: ErrInvalidDimension if rows ≤ 0 or cols ≤ 0.
// Complexity: O(rows*cols).
func (g *Generator) Dense(rows, cols int) (*matrix.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d: %w", MethodDense, rows, cols, ErrInvalidDimension)
	}

	return g.uniform(MethodDense, rows, cols)
}

// Vector returns a 1×n row vector of uniform values in [0,1).
func (g *Generator) Vector(n int) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", MethodVector, n, ErrInvalidDimension)
	}

	return g.uniform(MethodVector, 1, n)
}

// uniform fills a fresh rows×cols matrix in row-major draw order.
func (g *Generator) uniform(method string, rows, cols int) (*matrix.Dense, error) {
	data := g.draw(rows * cols)
	m, err := matrix.NewDenseFrom(rows, cols, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return m, nil
}

// draw returns n uniform values from the generator's stream.
func (g *Generator) draw(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.cfg.rng.Float64()
	}

	return out
}
