// Package scenario ties dataset generation, block serialization, the plain
// exports and script emission together for the three canned benchmarks:
// Gram product, linear regression and nearest-neighbor search.
//
// A Scenario only knows its inputs and its computation. Runner owns the
// pipeline: plan (geometry checks, no I/O), generate, write every artifact,
// emit scripts, and remove the whole artifact set if any step fails.
package scenario
