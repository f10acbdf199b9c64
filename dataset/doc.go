// Package dataset generates the synthetic numeric inputs of the benchmark
// scenarios: uniform dense matrices and vectors, noisy linear-regression
// datasets, and random positive-definite matrices.
//
// The package follows the functional-options style:
//
//   - Option:    a function that mutates generatorConfig before use.
//   - WithSeed / WithRand: the single random stream of a Generator.
//   - WithNoise:           Gaussian noise sigma for regression targets.
//   - WithMaxAttempts / WithMinEigenvalue: acceptance policy for the
//     positive-definite resampling loop.
//
// Guarantees:
//
//   - Every draw comes from one *rand.Rand, in a fixed order, so a seeded
//     Generator reproduces the same datasets run after run.
//   - Invalid sizes fail with ErrInvalidDimension before anything is drawn.
//   - Positive-definite construction is bounded; exhaustion surfaces as
//     ErrPositiveDefiniteConstruction instead of looping forever.
//   - No file I/O: generators only return values.
//
// A Generator is not safe for concurrent use.
package dataset
