// SPDX-License-Identifier: MIT
// Package scenario: nearest-neighbor benchmark.
//
// Inputs: X (records×dimension), the query row t (1×dimension, split like
// X's columns) and a positive-definite metric M (dimension×dimension, square
// blocks of the column block size).

package scenario

import (
	"github.com/katalvlaran/blockgen/block"
	"github.com/katalvlaran/blockgen/dataset"
	"github.com/katalvlaran/blockgen/matrix"
	"github.com/katalvlaran/blockgen/script"
)

type nearestNeighborScenario struct{}

func (nearestNeighborScenario) Kind() Kind { return NearestNeighbor }

func (s nearestNeighborScenario) Plan(p Params) (Plan, error) {
	if err := p.Validate(); err != nil {
		return Plan{}, planError(s.Kind(), err)
	}
	gx, err := block.ComputeGeometry(p.Records, p.Dimension, p.BlockRowSize, p.BlockColSize)
	if err != nil {
		return Plan{}, planError(s.Kind(), err)
	}
	gt, err := block.VectorGeometry(p.Dimension, p.BlockColSize, block.Row)
	if err != nil {
		return Plan{}, planError(s.Kind(), err)
	}
	gm, err := block.ComputeGeometry(p.Dimension, p.Dimension, p.BlockColSize, p.BlockColSize)
	if err != nil {
		return Plan{}, planError(s.Kind(), err)
	}

	return Plan{Kind: s.Kind(), Params: p, Inputs: []Input{
		blockInput("X", gx),
		blockInput("t", gt),
		blockInput("M", gm),
	}}, nil
}

func (nearestNeighborScenario) Generate(gen *dataset.Generator, plan Plan) (map[string]*matrix.Dense, error) {
	x, err := gen.Dense(plan.Params.Records, plan.Params.Dimension)
	if err != nil {
		return nil, err
	}
	t, err := gen.Vector(plan.Params.Dimension)
	if err != nil {
		return nil, err
	}
	m, err := gen.PositiveDefinite(plan.Params.Dimension)
	if err != nil {
		return nil, err
	}
	return map[string]*matrix.Dense{"X": x, "t": t, "M": m}, nil
}

func (nearestNeighborScenario) Computation(plan Plan) []script.Statement {
	x, _ := plan.Input("X")
	return script.NearestNeighbor("X", "t", "M", x.Geometry, "result")
}

func (nearestNeighborScenario) DMLComputation(Plan) []script.Statement {
	return script.NearestNeighborDML("X", "t", "M", "result")
}
