// Package blockgen generates synthetic benchmark inputs for a distributed
// linear-algebra engine: dense matrices and vectors cut into fixed-size
// blocks, written as block-indexed text, plus the load/compute scripts that
// reference them.
//
// What is in the box:
//
//	matrix/      - row-major Dense plus the Gram, eigenvalue and mat-vec kernels
//	dataset/     - seeded generators: uniform, regression, positive-definite
//	block/       - geometry, partitioning, block file writer/reader, manifests
//	interchange/ - dense CSV with .mtd sidecar, row-indexed text
//	artifact/    - run-scoped output directory, gzip/zstd payloads, abort
//	script/      - pdml and dml script emission
//	scenario/    - Gram, regression and nearest-neighbor pipelines
//	config/      - HCL run files and logger construction
//	cmd/blockgen - the command-line tool
//
// A block file holds one line per block, in row-major block order:
//
//	blockRowIndex blockColIndex v0 v1 … v(k-1)
//
// Quick start:
//
//	blockgen -out ./out -seed 42 gram 640 64 64 64
//
// writes out/GRAM_X_640_64_64_64.data, its manifest, and
// out/GRAM_640_64_64_64.pdml containing
//
//	X = load(64,64,10,1,"out/GRAM_X_640_64_64_64.data")
//	M = X' * X
//
//	go install github.com/katalvlaran/blockgen/cmd/blockgen@latest
package blockgen
