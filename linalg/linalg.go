// Copyright 2025 The Loom Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides dense linear algebra on 2-D tensors: triangular
// extraction, matrix decompositions (Cholesky, QR, SVD, eigendecomposition,
// Hessenberg), determinants, inverses, linear solves, matrix norms, and
// matrix multiplication.
//
// All operations take row-major or column-major float32/float64 matrices;
// non-contiguous views are compacted internally and inputs are never
// mutated. Failures split into two families: tensor.ShapeError for inputs
// of the wrong shape, and NumericalError for matrices the kernels cannot
// handle (singular inputs, iteration failures).
//
// Example:
//
//	a, _ := tensor.AsTensor([][]float64{{3, 1}, {1, 2}})
//	b, _ := tensor.AsTensor([]float64{9, 8})
//	x, err := linalg.Solve(a, b)  // x ≈ [2, 3]
package linalg

import (
	"github.com/loom-ml/loom/internal/linalg"
	"github.com/loom-ml/loom/tensor"
)

// NumericalErrorKind discriminates numerical failure cases.
type NumericalErrorKind = linalg.NumericalErrorKind

// Numerical error kinds.
const (
	SingularMatrix     NumericalErrorKind = linalg.SingularMatrix
	ConvergenceFailure NumericalErrorKind = linalg.ConvergenceFailure
)

// NumericalError reports a matrix the kernels cannot handle: a singular
// input to a solve or inverse, or an eigenvalue/SVD iteration that failed
// to converge. Use errors.Is with a NumericalError of the desired Kind to
// test for a category.
type NumericalError = linalg.NumericalError

// Norm order selectors.
const (
	NormFrobenius = linalg.NormFrobenius // Square root of the sum of squared entries.
	NormInf       = linalg.NormInf       // Maximum absolute row sum.
	NormOne       = linalg.NormOne       // Maximum absolute column sum.
	NormMaxAbs    = linalg.NormMaxAbs    // Largest absolute entry.
)

// Triu returns the upper triangle of a matrix: entries below the k-th
// diagonal are zeroed. k=0 keeps the main diagonal, k>0 moves it up, k<0
// down. The input is never mutated.
func Triu(t *tensor.RawTensor, k int) (*tensor.RawTensor, error) {
	return linalg.Triu(t, k)
}

// Tril returns the lower triangle of a matrix: entries above the k-th
// diagonal are zeroed.
func Tril(t *tensor.RawTensor, k int) (*tensor.RawTensor, error) {
	return linalg.Tril(t, k)
}

// Cholesky computes the Cholesky factor of a symmetric positive-definite
// matrix. With lower true the result L satisfies L·Lᵀ = A; otherwise the
// upper factor U with Uᵀ·U = A. Returns a SingularMatrix error if the
// matrix is not positive definite.
func Cholesky(t *tensor.RawTensor, lower bool) (*tensor.RawTensor, error) {
	return linalg.Cholesky(t, lower)
}

// QR computes the reduced QR decomposition A = Q·R, where Q is m×min(m,n)
// with orthonormal columns and R is min(m,n)×n upper triangular.
func QR(t *tensor.RawTensor) (q, r *tensor.RawTensor, err error) {
	return linalg.QR(t)
}

// SVD computes the full singular value decomposition A = U·diag(S)·Vᵀ.
// U is m×m, S holds the min(m,n) singular values in descending order, and
// Vt is n×n.
func SVD(t *tensor.RawTensor) (u, s, vt *tensor.RawTensor, err error) {
	return linalg.SVD(t)
}

// Eigh computes the eigendecomposition of a symmetric matrix, returning
// eigenvalues in ascending order and the corresponding orthonormal
// eigenvectors as matrix columns. Only the upper triangle is referenced.
func Eigh(t *tensor.RawTensor) (values, vectors *tensor.RawTensor, err error) {
	return linalg.Eigh(t)
}

// Eigvalsh computes the eigenvalues of a symmetric matrix in ascending
// order.
func Eigvalsh(t *tensor.RawTensor) (*tensor.RawTensor, error) {
	return linalg.Eigvalsh(t)
}

// Eig computes the eigendecomposition of a general square matrix. The
// eigenvalues are complex; the returned vectors are the left eigenvectors
// as matrix columns.
func Eig(t *tensor.RawTensor) (values, vectors *tensor.RawTensor, err error) {
	return linalg.Eig(t)
}

// Eigvals computes the complex eigenvalues of a general square matrix.
func Eigvals(t *tensor.RawTensor) (*tensor.RawTensor, error) {
	return linalg.Eigvals(t)
}

// Det computes the determinant of a square matrix via LU factorization.
func Det(t *tensor.RawTensor) (float64, error) {
	return linalg.Det(t)
}

// Inv computes the inverse of a square matrix. Returns a SingularMatrix
// error if the matrix has no inverse.
func Inv(t *tensor.RawTensor) (*tensor.RawTensor, error) {
	return linalg.Inv(t)
}

// Solve solves the linear system a·x = b for x, where b is a vector or a
// matrix of stacked right-hand sides.
func Solve(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return linalg.Solve(a, b)
}

// Hessenberg reduces a square matrix to upper Hessenberg form (zero below
// the first subdiagonal) via an orthogonal similarity transform.
func Hessenberg(t *tensor.RawTensor) (*tensor.RawTensor, error) {
	return linalg.Hessenberg(t)
}

// Norm computes a matrix norm selected by order: NormFrobenius, NormInf,
// NormOne, or NormMaxAbs.
func Norm(t *tensor.RawTensor, order byte) (float64, error) {
	return linalg.Norm(t, order)
}

// MatMul computes the 2-D matrix product of two float matrices through the
// BLAS gemm kernel. Transposed views multiply without a contiguous copy.
func MatMul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return linalg.MatMul(a, b)
}
