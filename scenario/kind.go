// SPDX-License-Identifier: MIT
// Package scenario: scenario kinds.

package scenario

import (
	"fmt"
	"strings"
)

// Kind identifies a benchmark scenario.
type Kind int

const (
	// Gram computes Xᵗ·X.
	Gram Kind = iota + 1
	// Regression solves the normal equation for a noisy linear model.
	Regression
	// NearestNeighbor finds the row of X closest to a query under a
	// positive-definite metric.
	NearestNeighbor
)

// String is the canonical CLI name of k.
func (k Kind) String() string {
	switch k {
	case Gram:
		return "gram"
	case Regression:
		return "regression"
	case NearestNeighbor:
		return "nn"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Tag is the upper-case prefix of every artifact file name of k.
func (k Kind) Tag() string {
	switch k {
	case Gram:
		return "GRAM"
	case Regression:
		return "LR"
	case NearestNeighbor:
		return "NN"
	}
	return ""
}

// ParseKind accepts the canonical names plus the short aliases "lr" and
// "nearest-neighbor".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gram":
		return Gram, nil
	case "regression", "lr":
		return Regression, nil
	case "nn", "nearest-neighbor":
		return NearestNeighbor, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownScenario)
}
