// SPDX-License-Identifier: MIT
// Package: blockgen/dataset
//
// errors.go - sentinel errors for the dataset package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach method context with %w.
//   • Option constructors (WithX) panic on meaningless inputs; generators never panic.

package dataset

import "errors"

// ErrInvalidDimension indicates a non-positive row, column or dimension count.
// Usage: if errors.Is(err, ErrInvalidDimension) { /* report invalid size */ }.
var ErrInvalidDimension = errors.New("dataset: dimensions must be > 0")

// ErrPositiveDefiniteConstruction indicates that the resampling loop exhausted
// its attempt budget without drawing a matrix whose eigenvalues all exceed the
// acceptance threshold.
// Usage: if errors.Is(err, ErrPositiveDefiniteConstruction) { /* raise attempts or reseed */ }.
var ErrPositiveDefiniteConstruction = errors.New("dataset: positive-definite construction failed")

// errAttemptsExhausted is the internal signal of resampleUntil; public
// generators translate it into a domain sentinel.
var errAttemptsExhausted = errors.New("dataset: attempts exhausted")
