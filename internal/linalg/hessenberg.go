package linalg

import (
	"gonum.org/v1/gonum/lapack"

	"github.com/loom-ml/loom/internal/tensor"
)

// Hessenberg reduces a square matrix to upper-Hessenberg form: the
// matrix is balanced first, then reduced with orthogonal similarity
// transforms, and the upper-Hessenberg part (everything from the first
// sub-diagonal up) of the reduced buffer is returned. Matrices of size
// smaller than 2 are returned unchanged (as a duplicate).
func Hessenberg(t *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := tensor.RequireSquareMatrix("hessenberg", t); err != nil {
		return nil, err
	}
	n := t.Shape()[0]
	if n < 2 {
		return t.AsContiguous(tensor.LayoutRowMajor)
	}

	a, err := marshalMatrix("hessenberg", t)
	if err != nil {
		return nil, err
	}

	scale := make([]float64, n)
	ilo, ihi := impl.Dgebal(lapack.PermuteScale, n, a.Data, a.Stride, scale)

	tau := make([]float64, n-1)
	work := allocWork(max(1, n), func(probe []float64) {
		impl.Dgehrd(n, ilo, ihi, a.Data, a.Stride, tau, probe, -1)
	})
	impl.Dgehrd(n, ilo, ihi, a.Data, a.Stride, tau, work, len(work))

	h, err := wrapMatrix(a, t.Device())
	if err != nil {
		return nil, err
	}
	if err := TriuInPlace(h, -1); err != nil {
		return nil, err
	}
	return h, nil
}
