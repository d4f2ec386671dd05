package linalg

import (
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/loom-ml/loom/internal/tensor"
)

// QR factors a matrix as A = Q·R using Householder reflectors. For an
// m×n input with k = min(m, n) it returns Q of shape m×k with
// orthonormal columns and the upper-triangular R of shape k×n.
//
// R is extracted from the upper triangle of the factored buffer before
// reflector accumulation overwrites it with Q.
func QR(t *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	if err := tensor.RequireMatrix("qr", t); err != nil {
		return nil, nil, err
	}

	a, err := marshalMatrix("qr", t)
	if err != nil {
		return nil, nil, err
	}

	m, n := a.Rows, a.Cols
	k := min(m, n)
	if k == 0 {
		q, err := wrapMatrix(kernelMatrix{General: blas64.General{Rows: m, Cols: k, Stride: 1}, dtype: a.dtype}, t.Device())
		if err != nil {
			return nil, nil, err
		}
		r, err := wrapMatrix(kernelMatrix{General: blas64.General{Rows: k, Cols: n, Stride: max(1, n)}, dtype: a.dtype}, t.Device())
		if err != nil {
			return nil, nil, err
		}
		return q, r, nil
	}

	tau := make([]float64, k)
	work := allocWork(max(1, n), func(probe []float64) {
		impl.Dgeqrf(m, n, a.Data, a.Stride, tau, probe, -1)
	})
	impl.Dgeqrf(m, n, a.Data, a.Stride, tau, work, len(work))

	// R: the nonzero rows of the factored buffer's upper triangle.
	rData := make([]float64, k*n)
	for i := 0; i < k; i++ {
		for j := i; j < n; j++ {
			rData[i*n+j] = a.Data[i*a.Stride+j]
		}
	}
	r, err := wrapMatrix(kernelMatrix{
		General: blas64.General{Rows: k, Cols: n, Stride: n, Data: rData},
		dtype:   a.dtype,
	}, t.Device())
	if err != nil {
		return nil, nil, err
	}

	// Q: accumulate the k reflectors over the first k columns.
	qData := make([]float64, m*k)
	for i := 0; i < m; i++ {
		copy(qData[i*k:(i+1)*k], a.Data[i*a.Stride:i*a.Stride+k])
	}
	qwork := allocWork(max(1, k), func(probe []float64) {
		impl.Dorgqr(m, k, k, qData, k, tau, probe, -1)
	})
	impl.Dorgqr(m, k, k, qData, k, tau, qwork, len(qwork))

	q, err := wrapMatrix(kernelMatrix{
		General: blas64.General{Rows: m, Cols: k, Stride: k, Data: qData},
		dtype:   a.dtype,
	}, t.Device())
	if err != nil {
		return nil, nil, err
	}
	return q, r, nil
}
