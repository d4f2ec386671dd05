package linalg

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"

	"github.com/loom-ml/loom/internal/tensor"
)

// SVD computes the full singular value decomposition A = U·diag(S)·Vᵀ
// using the QR-iteration kernel in full-matrix mode. For an m×n input
// it returns U of shape m×m, the singular values S of length min(m, n)
// in descending order, and Vᵀ of shape n×n.
func SVD(t *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, *tensor.RawTensor, error) {
	if err := tensor.RequireMatrix("svd", t); err != nil {
		return nil, nil, nil, err
	}

	a, err := marshalMatrix("svd", t)
	if err != nil {
		return nil, nil, nil, err
	}

	m, n := a.Rows, a.Cols
	s := make([]float64, min(m, n))
	uData := make([]float64, m*m)
	vtData := make([]float64, n*n)
	ldu := max(1, m)
	ldvt := max(1, n)

	work := allocWork(svdWorkFloor(m, n), func(probe []float64) {
		impl.Dgesvd(lapack.SVDAll, lapack.SVDAll, m, n, a.Data, a.Stride, s, uData, ldu, vtData, ldvt, probe, -1)
	})
	ok := impl.Dgesvd(lapack.SVDAll, lapack.SVDAll, m, n, a.Data, a.Stride, s, uData, ldu, vtData, ldvt, work, len(work))
	if err := kernelStatus("svd", ConvergenceFailure, ok); err != nil {
		return nil, nil, nil, err
	}

	u, err := wrapMatrix(kernelMatrix{
		General: blas64.General{Rows: m, Cols: m, Stride: ldu, Data: uData},
		dtype:   a.dtype,
	}, t.Device())
	if err != nil {
		return nil, nil, nil, err
	}
	sv, err := wrapVector(s, a.dtype, t.Device())
	if err != nil {
		return nil, nil, nil, err
	}
	vt, err := wrapMatrix(kernelMatrix{
		General: blas64.General{Rows: n, Cols: n, Stride: ldvt, Data: vtData},
		dtype:   a.dtype,
	}, t.Device())
	if err != nil {
		return nil, nil, nil, err
	}
	return u, sv, vt, nil
}
