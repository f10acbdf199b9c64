// SPDX-License-Identifier: MIT
// Package block: block extraction and whole-matrix traversal.

package block

import (
	"fmt"

	"github.com/katalvlaran/blockgen/matrix"
)

const (
	opExtract   = "Extract"
	opPartition = "Partition"
)

// Block is one addressed tile of a partitioned matrix.
type Block struct {
	RowIndex int
	ColIndex int
	Values   []float64 // BlockRowSize*BlockColSize values, row-major
}

// checkShape verifies that m is non-nil and matches g.
func checkShape(m *matrix.Dense, g Geometry) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	if m.Rows() != g.Rows || m.Cols() != g.Cols {
		return fmt.Errorf("matrix %dx%d, geometry %s: %w", m.Rows(), m.Cols(), g, ErrDimensionMismatch)
	}

	return nil
}

// Extract copies block (blockRowIndex, blockColIndex) out of m.
// MAIN DESCRIPTION:
//   - Selects rows [bi·brs, bi·brs+brs) and cols [bj·bcs, bj·bcs+bcs).
//   - Flattens the tile row-major into a fresh slice.
//
// Errors:
//   - ErrDimensionMismatch if m's shape differs from g.
//   - ErrOutOfRange if an index is outside the block grid.
//
// Complexity: O(brs*bcs).
func Extract(m *matrix.Dense, g Geometry, blockRowIndex, blockColIndex int) (Block, error) {
	if err := checkShape(m, g); err != nil {
		return Block{}, fmt.Errorf("%s: %w", opExtract, err)
	}
	if blockRowIndex < 0 || blockRowIndex >= g.BlockRowCount || blockColIndex < 0 || blockColIndex >= g.BlockColCount {
		return Block{}, fmt.Errorf("%s: (%d,%d) in %dx%d grid: %w",
			opExtract, blockRowIndex, blockColIndex, g.BlockRowCount, g.BlockColCount, ErrOutOfRange)
	}

	vals, err := m.Tile(blockRowIndex*g.BlockRowSize, blockColIndex*g.BlockColSize, g.BlockRowSize, g.BlockColSize)
	if err != nil {
		return Block{}, fmt.Errorf("%s: %w", opExtract, err)
	}

	return Block{RowIndex: blockRowIndex, ColIndex: blockColIndex, Values: vals}, nil
}

// Partition calls fn for every block of m in file order and stops at the
// first error returned by fn.
func Partition(m *matrix.Dense, g Geometry, fn func(Block) error) error {
	if err := checkShape(m, g); err != nil {
		return fmt.Errorf("%s: %w", opPartition, err)
	}

	n := g.BlockCount()
	for i := 0; i < n; i++ {
		bi, bj := g.Index(i)
		b, err := Extract(m, g, bi, bj)
		if err != nil {
			return fmt.Errorf("%s: %w", opPartition, err)
		}
		if err = fn(b); err != nil {
			return err
		}
	}

	return nil
}
