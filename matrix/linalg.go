// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels needed to construct datasets.
//
// Purpose:
//   - Gram product (XᵗX), symmetric eigenvalues and matrix-vector product.
//   - Kernels delegate to gonum's mat package; Dense stays the exchange type
//     so callers never see gonum types.
//
// Notes:
//   - Gram goes through SymOuterK so the result is symmetric by construction,
//     which is what the eigen routine for symmetric matrices expects.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opGram   = "Gram"
	opEigen  = "SymmetricEigenvalues"
	opMulVec = "MulVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toGonum copies m into a gonum dense matrix.
func toGonum(m *Dense) *mat.Dense {
	return mat.NewDense(m.r, m.c, m.Values())
}

// Gram returns the c×c product mᵗ·m.
// MAIN DESCRIPTION:
//   - Computes the Gram matrix of the columns of m.
//
// Implementation:
//   - Stage 1: copy m into gonum storage.
//   - Stage 2: SymOuterK(1, mᵗ) = mᵗ·m, symmetric by construction.
//   - Stage 3: copy the full square back into a Dense.
//
// Errors:
//   - ErrNilMatrix for nil input.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Gram(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	var sym mat.SymDense
	sym.SymOuterK(1, toGonum(m).T())

	n := m.c
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = sym.At(i, j)
		}
	}

	return out, nil
}

// SymmetricEigenvalues returns the eigenvalues of a symmetric matrix in ascending order.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare from validation.
//   - ErrAsymmetry if m[i][j] != m[j][i] for some pair.
//   - ErrEigenFailed if the factorization does not converge.
//
// Complexity: O(n³).
func SymmetricEigenvalues(m *Dense) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return nil, matrixErrorf(opEigen, fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	sym := mat.NewSymDense(n, m.Values())
	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	return es.Values(nil), nil
}

// MulVec returns m·x for a vector x of length m.Cols().
//
// Errors:
//   - ErrNilMatrix for nil m; ErrDimensionMismatch if len(x) != m.Cols().
//
// Complexity: O(r*c).
func MulVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	xs := make([]float64, len(x))
	copy(xs, x)
	var y mat.VecDense
	y.MulVec(toGonum(m), mat.NewVecDense(len(xs), xs))

	out := make([]float64, m.r)
	for i := range out {
		out[i] = y.AtVec(i)
	}

	return out, nil
}
