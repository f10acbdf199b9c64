// Package matrix provides the dense row-major matrix used as the exchange
// type between dataset generators, the block partitioner and the exporters.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked accessors and
//     copy-based tile extraction (Tile) for block partitioning.
//   - Gram, SymmetricEigenvalues and MulVec: the few linear-algebra kernels
//     needed to build positive-definite and regression datasets, backed by
//     gonum.
//   - Sentinel errors (errors.go) matched with errors.Is.
//
// Vectors are represented as degenerate matrices (n×1 or 1×n).
package matrix
