// Package block partitions dense matrices and vectors into fixed-size blocks
// and serializes them as block-indexed text.
//
// A block file holds one record per line:
//
//	blockRowIndex blockColIndex v0 v1 … v(k-1)
//
// with k = BlockRowSize*BlockColSize values in row-major order inside the
// block. Records appear in row-major block order (block row ascending outer,
// block column ascending inner); downstream loaders rely on that order, so
// Writer and Reader both enforce it.
//
// Vectors are degenerate matrices. EncodingGrid keeps the index pair for them;
// EncodingCollapsed writes a single block index. The chosen encoding and
// FormatVersion are recorded in a JSON Manifest stored next to the block file.
//
// Geometry is validated by ComputeGeometry or VectorGeometry, which callers
// run before opening any output, so an invalid geometry never produces a
// partial file.
package block
