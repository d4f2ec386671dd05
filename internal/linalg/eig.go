package linalg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"

	"github.com/loom-ml/loom/internal/tensor"
)

// Eigh computes the eigen-decomposition of a symmetric matrix. It
// returns the eigenvalues in ascending order and the orthonormal
// eigenvectors, written over the duplicated input buffer with the
// vector for eigenvalue i in column i.
func Eigh(t *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	if err := tensor.RequireSquareMatrix("eigh", t); err != nil {
		return nil, nil, err
	}

	a, err := marshalMatrix("eigh", t)
	if err != nil {
		return nil, nil, err
	}

	n := a.Rows
	w := make([]float64, n)
	work := make([]float64, syevWorkLen(n))
	ok := impl.Dsyev(lapack.EVCompute, blas.Upper, n, a.Data, a.Stride, w, work, len(work))
	if err := kernelStatus("eigh", ConvergenceFailure, ok); err != nil {
		return nil, nil, err
	}

	values, err := wrapVector(w, a.dtype, t.Device())
	if err != nil {
		return nil, nil, err
	}
	vectors, err := wrapMatrix(a, t.Device())
	if err != nil {
		return nil, nil, err
	}
	return values, vectors, nil
}

// Eigvalsh computes only the eigenvalues of a symmetric matrix, in
// ascending order, using the vector-free call mode.
func Eigvalsh(t *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := tensor.RequireSquareMatrix("eigvalsh", t); err != nil {
		return nil, err
	}

	a, err := marshalMatrix("eigvalsh", t)
	if err != nil {
		return nil, err
	}

	n := a.Rows
	w := make([]float64, n)
	work := make([]float64, syevWorkLen(n))
	ok := impl.Dsyev(lapack.EVNone, blas.Upper, n, a.Data, a.Stride, w, work, len(work))
	if err := kernelStatus("eigvalsh", ConvergenceFailure, ok); err != nil {
		return nil, err
	}
	return wrapVector(w, a.dtype, t.Device())
}

// Eig computes the eigen-decomposition of a general square matrix. The
// eigenvalues are assembled from the kernel's separate real/imaginary
// output arrays into a complex tensor, so conjugate pairs of a
// non-symmetric real input come back as proper complex values.
//
// The returned eigenvector matrix is the kernel's left-eigenvector
// buffer with vectors in its columns; the right-eigenvector buffer is
// computed and discarded. Complex-pair vectors use the packed kernel
// layout: columns j and j+1 hold the real and imaginary parts of the
// pair.
func Eig(t *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	if err := tensor.RequireSquareMatrix("eig", t); err != nil {
		return nil, nil, err
	}

	a, err := marshalMatrix("eig", t)
	if err != nil {
		return nil, nil, err
	}

	n := a.Rows
	wr := make([]float64, n)
	wi := make([]float64, n)
	vl := make([]float64, n*n)
	vr := make([]float64, n*n)
	ldv := max(1, n)

	work := allocWork(geevWorkFloor(n, true), func(probe []float64) {
		impl.Dgeev(lapack.LeftEVCompute, lapack.RightEVCompute, n, a.Data, a.Stride, wr, wi, vl, ldv, vr, ldv, probe, -1)
	})
	first := impl.Dgeev(lapack.LeftEVCompute, lapack.RightEVCompute, n, a.Data, a.Stride, wr, wi, vl, ldv, vr, ldv, work, len(work))
	if err := kernelStatus("eig", ConvergenceFailure, first == 0); err != nil {
		return nil, nil, err
	}

	values, err := wrapComplexVector(wr, wi, a.dtype, t.Device())
	if err != nil {
		return nil, nil, err
	}
	vectors, err := wrapMatrix(kernelMatrix{
		General: blas64.General{Rows: n, Cols: n, Stride: ldv, Data: vl},
		dtype:   a.dtype,
	}, t.Device())
	if err != nil {
		return nil, nil, err
	}
	return values, vectors, nil
}

// Eigvals computes only the eigenvalues of a general square matrix as a
// complex tensor; both eigenvector sides are skipped.
func Eigvals(t *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := tensor.RequireSquareMatrix("eigvals", t); err != nil {
		return nil, err
	}

	a, err := marshalMatrix("eigvals", t)
	if err != nil {
		return nil, err
	}

	n := a.Rows
	wr := make([]float64, n)
	wi := make([]float64, n)

	work := allocWork(geevWorkFloor(n, false), func(probe []float64) {
		impl.Dgeev(lapack.LeftEVNone, lapack.RightEVNone, n, a.Data, a.Stride, wr, wi, nil, 1, nil, 1, probe, -1)
	})
	first := impl.Dgeev(lapack.LeftEVNone, lapack.RightEVNone, n, a.Data, a.Stride, wr, wi, nil, 1, nil, 1, work, len(work))
	if err := kernelStatus("eigvals", ConvergenceFailure, first == 0); err != nil {
		return nil, err
	}
	return wrapComplexVector(wr, wi, a.dtype, t.Device())
}

// wrapComplexVector assembles separate real/imaginary arrays into a
// rank-1 complex tensor, complex64 for float32 inputs and complex128
// for float64.
func wrapComplexVector(re, im []float64, srcDtype tensor.DataType, device tensor.Device) (*tensor.RawTensor, error) {
	dtype := tensor.Complex128
	if srcDtype == tensor.Float32 {
		dtype = tensor.Complex64
	}
	out, err := tensor.NewRaw(tensor.Shape{len(re)}, dtype, device)
	if err != nil {
		return nil, err
	}
	switch dtype {
	case tensor.Complex128:
		dst := out.AsComplex128()
		for i := range re {
			dst[i] = complex(re[i], im[i])
		}
	case tensor.Complex64:
		dst := out.AsComplex64()
		for i := range re {
			dst[i] = complex(float32(re[i]), float32(im[i]))
		}
	}
	return out, nil
}
