// SPDX-License-Identifier: MIT
// Package scenario: Gram product benchmark (M = Xᵗ·X).

package scenario

import (
	"github.com/katalvlaran/blockgen/block"
	"github.com/katalvlaran/blockgen/dataset"
	"github.com/katalvlaran/blockgen/matrix"
	"github.com/katalvlaran/blockgen/script"
)

type gramScenario struct{}

func (gramScenario) Kind() Kind { return Gram }

func (s gramScenario) Plan(p Params) (Plan, error) {
	if err := p.Validate(); err != nil {
		return Plan{}, planError(s.Kind(), err)
	}
	gx, err := block.ComputeGeometry(p.Records, p.Dimension, p.BlockRowSize, p.BlockColSize)
	if err != nil {
		return Plan{}, planError(s.Kind(), err)
	}

	return Plan{Kind: s.Kind(), Params: p, Inputs: []Input{blockInput("X", gx)}}, nil
}

func (gramScenario) Generate(gen *dataset.Generator, plan Plan) (map[string]*matrix.Dense, error) {
	x, err := gen.Dense(plan.Params.Records, plan.Params.Dimension)
	if err != nil {
		return nil, err
	}
	return map[string]*matrix.Dense{"X": x}, nil
}

func (gramScenario) Computation(Plan) []script.Statement {
	return script.GramProduct("X", "M")
}

func (gramScenario) DMLComputation(Plan) []script.Statement {
	return script.GramProductDML("X", "M")
}
