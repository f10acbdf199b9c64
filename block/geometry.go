// SPDX-License-Identifier: MIT
// Package block: geometry arithmetic.
//
// Contract:
//   - A Geometry obtained from ComputeGeometry or VectorGeometry always
//     satisfies Rows%BlockRowSize == 0 and Cols%BlockColSize == 0.
//   - Index enumerates blocks in file order.

package block

import "fmt"

const (
	opComputeGeometry = "ComputeGeometry"
	opVectorGeometry  = "VectorGeometry"
)

// Geometry describes how a rows×cols matrix is cut into blocks.
type Geometry struct {
	Rows          int
	Cols          int
	BlockRowSize  int
	BlockColSize  int
	BlockRowCount int // Rows / BlockRowSize
	BlockColCount int // Cols / BlockColSize
}

// Orientation selects the shape of a vector geometry.
type Orientation int

const (
	// Row is a 1×n vector split along its columns.
	Row Orientation = iota
	// Column is an n×1 vector split along its rows.
	Column
)

// ComputeGeometry validates block sizes against a rows×cols matrix.
//
// Errors:
//   - ErrInvalidDimension if any argument is ≤ 0.
//   - ErrDimensionMismatch if rows%blockRowSize != 0 or cols%blockColSize != 0.
func ComputeGeometry(rows, cols, blockRowSize, blockColSize int) (Geometry, error) {
	if rows <= 0 || cols <= 0 || blockRowSize <= 0 || blockColSize <= 0 {
		return Geometry{}, fmt.Errorf("%s: %dx%d with %dx%d blocks: %w",
			opComputeGeometry, rows, cols, blockRowSize, blockColSize, ErrInvalidDimension)
	}
	if rows%blockRowSize != 0 {
		return Geometry{}, fmt.Errorf("%s: rows %d not divisible by block row size %d: %w",
			opComputeGeometry, rows, blockRowSize, ErrDimensionMismatch)
	}
	if cols%blockColSize != 0 {
		return Geometry{}, fmt.Errorf("%s: cols %d not divisible by block col size %d: %w",
			opComputeGeometry, cols, blockColSize, ErrDimensionMismatch)
	}

	return Geometry{
		Rows:          rows,
		Cols:          cols,
		BlockRowSize:  blockRowSize,
		BlockColSize:  blockColSize,
		BlockRowCount: rows / blockRowSize,
		BlockColCount: cols / blockColSize,
	}, nil
}

// VectorGeometry returns the geometry of an n-element vector cut into
// blockSize-element blocks.
func VectorGeometry(n, blockSize int, orient Orientation) (Geometry, error) {
	var (
		g   Geometry
		err error
	)
	switch orient {
	case Row:
		g, err = ComputeGeometry(1, n, 1, blockSize)
	case Column:
		g, err = ComputeGeometry(n, 1, blockSize, 1)
	default:
		return Geometry{}, fmt.Errorf("%s: orientation %d: %w", opVectorGeometry, orient, ErrInvalidDimension)
	}
	if err != nil {
		return Geometry{}, fmt.Errorf("%s: %w", opVectorGeometry, err)
	}

	return g, nil
}

// BlockCount is the number of blocks, i.e. the number of records in the file.
func (g Geometry) BlockCount() int { return g.BlockRowCount * g.BlockColCount }

// BlockLen is the number of values in one block.
func (g Geometry) BlockLen() int { return g.BlockRowSize * g.BlockColSize }

// IsVector reports whether the geometry describes a 1×n or n×1 vector.
func (g Geometry) IsVector() bool { return g.Rows == 1 || g.Cols == 1 }

// Index returns the block coordinates of the i-th record in file order.
func (g Geometry) Index(i int) (blockRowIndex, blockColIndex int) {
	return i / g.BlockColCount, i % g.BlockColCount
}

// String renders the geometry as "RxC/brsxbcs".
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d/%dx%d", g.Rows, g.Cols, g.BlockRowSize, g.BlockColSize)
}
