// SPDX-License-Identifier: MIT
// Package: blockgen/dataset
//
// options.go - functional options for the dataset package.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package dataset

import (
	"math"
	"math/rand"
)

// Option customizes a Generator by mutating a generatorConfig before use.
type Option func(*generatorConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and benchmarks to lock the generated datasets.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNoise sets the Gaussian noise sigma (>=0) of regression targets.
// Panics if sigma < 0 or NaN.
func WithNoise(sigma float64) Option {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("dataset: WithNoise(sigma<0)")
	}
	return func(c *generatorConfig) {
		c.noiseSigma = sigma
	}
}

// WithMaxAttempts bounds the positive-definite resampling loop.
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("dataset: WithMaxAttempts(n<1)")
	}
	return func(c *generatorConfig) {
		c.maxAttempts = n
	}
}

// WithMinEigenvalue sets the acceptance threshold for positive-definite
// matrices; every eigenvalue must be strictly greater than eps.
// Panics if eps < 0 or not finite.
func WithMinEigenvalue(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("dataset: WithMinEigenvalue(eps<0)")
	}
	return func(c *generatorConfig) {
		c.minEigenvalue = eps
	}
}
