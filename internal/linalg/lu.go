package linalg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/loom-ml/loom/internal/tensor"
)

// Det computes the determinant of a square matrix via LU factorization
// with partial pivoting: the product of the diagonal of the factored
// buffer, negated once for every pivot position that was interchanged.
//
// An exactly singular input surfaces as a SingularMatrix failure.
func Det(t *tensor.RawTensor) (float64, error) {
	if err := tensor.RequireSquareMatrix("det", t); err != nil {
		return 0, err
	}

	a, err := marshalMatrix("det", t)
	if err != nil {
		return 0, err
	}

	n := a.Rows
	ipiv := make([]int, n)
	ok := impl.Dgetrf(n, n, a.Data, a.Stride, ipiv)
	if err := kernelStatus("det", SingularMatrix, ok); err != nil {
		return 0, err
	}

	det := 1.0
	for j := 0; j < n; j++ {
		det *= a.Data[j*a.Stride+j]
		if ipiv[j] != j {
			det = -det
		}
	}
	return det, nil
}

// Inv computes the inverse of a square matrix: LU factorization
// followed by the LU-based inversion kernel, both on a duplicate of the
// input. A zero pivot surfaces as a SingularMatrix failure.
func Inv(t *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := tensor.RequireSquareMatrix("inv", t); err != nil {
		return nil, err
	}

	a, err := marshalMatrix("inv", t)
	if err != nil {
		return nil, err
	}

	n := a.Rows
	ipiv := make([]int, n)
	ok := impl.Dgetrf(n, n, a.Data, a.Stride, ipiv)
	if err := kernelStatus("inv", SingularMatrix, ok); err != nil {
		return nil, err
	}

	work := allocWork(max(1, n), func(probe []float64) {
		impl.Dgetri(n, a.Data, a.Stride, ipiv, probe, -1)
	})
	ok = impl.Dgetri(n, a.Data, a.Stride, ipiv, work, len(work))
	if err := kernelStatus("inv", SingularMatrix, ok); err != nil {
		return nil, err
	}
	return wrapMatrix(a, t.Device())
}

// Solve computes the direct solution of A·x = b for a square A and a
// vector or matrix right-hand side. Both operands are duplicated into
// kernel layout; the solution has the same shape (and element kind) as b.
func Solve(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := tensor.RequireSquareMatrix("solve", a); err != nil {
		return nil, err
	}
	if b.Rank() != 1 && b.Rank() != 2 {
		return nil, &tensor.ShapeError{Kind: tensor.NotAMatrix, Op: "solve", Shape: b.Shape()}
	}
	n := a.Shape()[0]
	if b.Shape()[0] != n {
		return nil, &tensor.ShapeError{Kind: tensor.DimensionMismatch, Op: "solve", Shape: b.Shape()}
	}

	am, err := marshalMatrix("solve", a)
	if err != nil {
		return nil, err
	}

	var (
		bData []float64
		nrhs  int
		ldb   int
		bm    kernelMatrix
	)
	if b.Rank() == 1 {
		bData, err = marshalVector("solve", b)
		if err != nil {
			return nil, err
		}
		nrhs, ldb = 1, 1
	} else {
		bm, err = marshalMatrix("solve", b)
		if err != nil {
			return nil, err
		}
		bData, nrhs, ldb = bm.Data, bm.Cols, bm.Stride
	}

	ipiv := make([]int, n)
	ok := impl.Dgetrf(n, n, am.Data, am.Stride, ipiv)
	if err := kernelStatus("solve", SingularMatrix, ok); err != nil {
		return nil, err
	}
	impl.Dgetrs(blas.NoTrans, n, nrhs, am.Data, am.Stride, ipiv, bData, ldb)

	if b.Rank() == 1 {
		return wrapVector(bData, b.DType(), b.Device())
	}
	return wrapMatrix(kernelMatrix{
		General: blas64.General{Rows: n, Cols: nrhs, Stride: ldb, Data: bData},
		dtype:   b.DType(),
	}, b.Device())
}
