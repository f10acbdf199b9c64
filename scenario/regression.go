// SPDX-License-Identifier: MIT
// Package scenario: linear regression benchmark.
//
// Inputs: X (records×dimension), y (records×1, split like X's rows) and the
// ground-truth coefficients, exported as CSV only so results can be checked.

package scenario

import (
	"github.com/katalvlaran/blockgen/block"
	"github.com/katalvlaran/blockgen/dataset"
	"github.com/katalvlaran/blockgen/matrix"
	"github.com/katalvlaran/blockgen/script"
)

type regressionScenario struct{}

func (regressionScenario) Kind() Kind { return Regression }

func (s regressionScenario) Plan(p Params) (Plan, error) {
	if err := p.Validate(); err != nil {
		return Plan{}, planError(s.Kind(), err)
	}
	gx, err := block.ComputeGeometry(p.Records, p.Dimension, p.BlockRowSize, p.BlockColSize)
	if err != nil {
		return Plan{}, planError(s.Kind(), err)
	}
	gy, err := block.VectorGeometry(p.Records, p.BlockRowSize, block.Column)
	if err != nil {
		return Plan{}, planError(s.Kind(), err)
	}

	return Plan{Kind: s.Kind(), Params: p, Inputs: []Input{
		blockInput("X", gx),
		blockInput("y", gy),
		{Var: "coef", Rows: p.Dimension, Cols: 1, CSVOnly: true},
	}}, nil
}

func (regressionScenario) Generate(gen *dataset.Generator, plan Plan) (map[string]*matrix.Dense, error) {
	r, err := gen.Regression(plan.Params.Records, plan.Params.Dimension)
	if err != nil {
		return nil, err
	}
	return map[string]*matrix.Dense{"X": r.X, "y": r.Y, "coef": r.Coefficients}, nil
}

func (regressionScenario) Computation(Plan) []script.Statement {
	return script.NormalEquation("X", "y", "beta")
}

func (regressionScenario) DMLComputation(Plan) []script.Statement {
	return script.NormalEquationDML("X", "y", "beta")
}
