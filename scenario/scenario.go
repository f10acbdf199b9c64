// SPDX-License-Identifier: MIT
// Package scenario: the Scenario contract and the built-in scenarios.
//
// Contract:
//   - Plan validates every geometry and touches nothing else.
//   - Generate returns one matrix per planned input, keyed by Input.Var,
//     each with the planned shape.
//   - Computation and DMLComputation only reference planned variable names.

package scenario

import (
	"fmt"

	"github.com/katalvlaran/blockgen/dataset"
	"github.com/katalvlaran/blockgen/matrix"
	"github.com/katalvlaran/blockgen/script"
)

// Scenario describes the inputs and the computation of one benchmark.
type Scenario interface {
	Kind() Kind
	Plan(p Params) (Plan, error)
	Generate(gen *dataset.Generator, plan Plan) (map[string]*matrix.Dense, error)
	Computation(plan Plan) []script.Statement
	DMLComputation(plan Plan) []script.Statement
}

// For returns the built-in scenario of kind k.
func For(k Kind) (Scenario, error) {
	switch k {
	case Gram:
		return gramScenario{}, nil
	case Regression:
		return regressionScenario{}, nil
	case NearestNeighbor:
		return nearestNeighborScenario{}, nil
	}

	return nil, fmt.Errorf("kind %d: %w", int(k), ErrUnknownScenario)
}

// planError tags a planning failure with the scenario kind.
func planError(k Kind, err error) error {
	return fmt.Errorf("%s: plan: %w", k, err)
}
