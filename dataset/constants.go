// Package dataset defines method tags and defaults shared by all generators.
package dataset

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodDense is the canonical name for the Dense generator.
	MethodDense = "Dense"
	// MethodVector is the canonical name for the Vector generator.
	MethodVector = "Vector"
	// MethodRegression is the canonical name for the Regression generator.
	MethodRegression = "Regression"
	// MethodPositiveDefinite is the canonical name for the PositiveDefinite generator.
	MethodPositiveDefinite = "PositiveDefinite"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultNoiseSigma is the standard deviation of the Gaussian noise added to
// regression targets.
const DefaultNoiseSigma = 1.0

// DefaultMaxAttempts bounds the positive-definite resampling loop. A uniform
// YᵗY is singular with probability zero, so the cap is only reached with a
// pathological threshold or a broken random source.
const DefaultMaxAttempts = 64

// DefaultMinEigenvalue is the acceptance threshold: every eigenvalue must be
// strictly greater than it.
const DefaultMinEigenvalue = 0.0
