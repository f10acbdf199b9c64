// SPDX-License-Identifier: MIT
// Package scenario: run parameters, plans and artifact naming.

package scenario

import (
	"fmt"

	"github.com/katalvlaran/blockgen/block"
)

// Params are the positional run arguments.
type Params struct {
	Records      int // rows of X
	Dimension    int // columns of X
	BlockRowSize int
	BlockColSize int
}

// Validate rejects non-positive values.
func (p Params) Validate() error {
	if p.Records <= 0 || p.Dimension <= 0 || p.BlockRowSize <= 0 || p.BlockColSize <= 0 {
		return fmt.Errorf("records=%d dimension=%d block=%dx%d: %w",
			p.Records, p.Dimension, p.BlockRowSize, p.BlockColSize, ErrInvalidParams)
	}
	return nil
}

// Input is one dataset of a scenario.
type Input struct {
	Var      string
	Geometry block.Geometry // zero for CSVOnly inputs
	Rows     int
	Cols     int
	// CSVOnly inputs are side outputs (ground truth) that never become
	// block files or script inputs.
	CSVOnly bool
}

// Plan is the validated layout of one run. Building a plan performs no I/O.
type Plan struct {
	Kind   Kind
	Params Params
	Inputs []Input
}

// Input returns the planned input named v.
func (p Plan) Input(v string) (Input, bool) {
	for _, in := range p.Inputs {
		if in.Var == v {
			return in, true
		}
	}
	return Input{}, false
}

// blockInput plans a block-partitioned input.
func blockInput(v string, g block.Geometry) Input {
	return Input{Var: v, Geometry: g, Rows: g.Rows, Cols: g.Cols}
}

// BlockFileName is "<TAG>_<var>_<rows>_<cols>_<brs>_<bcs>.data".
func (p Plan) BlockFileName(in Input) string {
	g := in.Geometry
	return fmt.Sprintf("%s_%s_%d_%d_%d_%d.data", p.Kind.Tag(), in.Var, g.Rows, g.Cols, g.BlockRowSize, g.BlockColSize)
}

// DenseFileName is "<TAG>_<var>_<rows>_<cols><ext>" for the plain exports.
func (p Plan) DenseFileName(in Input, ext string) string {
	return fmt.Sprintf("%s_%s_%d_%d%s", p.Kind.Tag(), in.Var, in.Rows, in.Cols, ext)
}

// ScriptFileName is "<TAG>_<records>_<dim>_<brs>_<bcs><ext>".
func (p Plan) ScriptFileName(ext string) string {
	q := p.Params
	return fmt.Sprintf("%s_%d_%d_%d_%d%s", p.Kind.Tag(), q.Records, q.Dimension, q.BlockRowSize, q.BlockColSize, ext)
}
