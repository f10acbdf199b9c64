// SPDX-License-Identifier: MIT
// Package block: sentinel error set.
// Callers branch with errors.Is; context is attached with %w.

package block

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive size or block size.
	ErrInvalidDimension = errors.New("block: dimensions must be > 0")

	// ErrDimensionMismatch indicates that a size is not a multiple of its
	// block size, or that a matrix does not match the geometry it is
	// partitioned with.
	ErrDimensionMismatch = errors.New("block: dimension mismatch")

	// ErrOutOfRange indicates a block index outside the block grid.
	ErrOutOfRange = errors.New("block: block index out of range")

	// ErrOutOfOrder indicates a block written or read out of row-major block order.
	ErrOutOfOrder = errors.New("block: block out of order")

	// ErrMalformedRecord indicates a block file line that cannot be parsed,
	// or a file with missing or surplus records.
	ErrMalformedRecord = errors.New("block: malformed record")

	// ErrUnsupportedEncoding indicates an unknown encoding name, an encoding
	// that does not apply to the geometry, or an unknown manifest format.
	ErrUnsupportedEncoding = errors.New("block: unsupported encoding")
)
