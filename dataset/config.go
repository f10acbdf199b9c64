// SPDX-License-Identifier: MIT
// Package: blockgen/dataset
//
// config.go - internal configuration and defaults.
//
// Design:
//   • generatorConfig is the single source of truth for all generator knobs.
//   • newGeneratorConfig applies options in-order (later overrides earlier).
//   • Without WithSeed/WithRand the stream is seeded from the wall clock, so
//     reproducibility is an explicit choice of the caller.

package dataset

import (
	"math/rand"
	"time"
)

// generatorConfig aggregates all knobs used by generators.
type generatorConfig struct {
	// RNG for every draw; one stream per Generator.
	rng *rand.Rand

	// Regression noise standard deviation (>=0).
	noiseSigma float64

	// Positive-definite acceptance policy.
	maxAttempts   int     // >=1
	minEigenvalue float64 // >=0; eigenvalues must be strictly greater
}

// newGeneratorConfig constructs a config with defaults and applies all options
// in order. Complexity: O(len(opts)).
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		noiseSigma:    DefaultNoiseSigma,
		maxAttempts:   DefaultMaxAttempts,
		minEigenvalue: DefaultMinEigenvalue,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
