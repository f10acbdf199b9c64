// SPDX-License-Identifier: MIT
// Package script: canned benchmark computations.
//
// Each benchmark has a PDML and a DML form. Variable names are parameters so
// the caller decides the names used by the load or read declarations.

package script

import (
	"fmt"

	"github.com/katalvlaran/blockgen/block"
)

// GramProduct computes out = Xᵗ·X.
func GramProduct(x, out string) []Statement {
	return []Statement{Assign{Var: out, Expr: fmt.Sprintf("%s' * %s", x, x)}}
}

// GramProductDML is GramProduct over CSV inputs.
func GramProductDML(x, out string) []Statement {
	return []Statement{
		Assign{Var: out, Expr: fmt.Sprintf("t(%s) %%*%% %s", x, x)},
		Raw{Text: fmt.Sprintf(`print("Gram sum: " + toString(sum(%s)));`, out)},
	}
}

// NormalEquation solves out = (XᵗX)⁻¹ Xᵗy.
func NormalEquation(x, y, out string) []Statement {
	return []Statement{Assign{Var: out, Expr: fmt.Sprintf("(%s' * %s)^-1 %%*%% (%s' * %s)", x, x, x, y)}}
}

// NormalEquationDML is NormalEquation over CSV inputs.
func NormalEquationDML(x, y, out string) []Statement {
	return []Statement{
		Assign{Var: out, Expr: fmt.Sprintf("solve(t(%s) %%*%% %s, t(%s) %%*%% %s)", x, x, x, y)},
		Raw{Text: fmt.Sprintf(`print("Coefficients: " + toString(%s));`, out)},
	}
}

// NearestNeighbor finds the minimum quadratic-form distance between the rows
// of x and the query row t under metric m. g is the geometry of x: the query
// row is broadcast to g.BlockRowSize rows per block over g.BlockRowCount blocks.
func NearestNeighbor(x, t, m string, g block.Geometry, out string) []Statement {
	return []Statement{
		Assign{Var: "D", Expr: fmt.Sprintf("%s - duplicateRow(%s,%d,%d)", x, t, g.BlockRowSize, g.BlockRowCount)},
		Assign{Var: out, Expr: fmt.Sprintf("min(rowSum(D %%*%% %s * D))", m)},
	}
}

// duplicateRowDML stacks a row vector nums times.
const duplicateRowDML = `duplicateRow = function (matrix[double] row, int nums) return (matrix[double] rows) {
	rows = row;
	for (i in 2:nums) {
		rows = rbind(rows, row);
	}
}`

// NearestNeighborDML is NearestNeighbor over CSV inputs; out is the index of
// the nearest row.
func NearestNeighborDML(x, t, m, out string) []Statement {
	return []Statement{
		Raw{Text: duplicateRowDML},
		Assign{Var: "Dup", Expr: fmt.Sprintf("duplicateRow(%s, nrow(%s))", t, x)},
		Assign{Var: "Diff", Expr: fmt.Sprintf("%s - Dup", x)},
		Assign{Var: out, Expr: fmt.Sprintf("rowIndexMin(t(rowSums(Diff %%*%% %s * Diff)))", m)},
		Raw{Text: fmt.Sprintf(`print("Nearest item index: " + toString(%s, decimal=0));`, out)},
	}
}
