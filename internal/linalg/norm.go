package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/lapack"

	"github.com/loom-ml/loom/internal/tensor"
)

// Matrix norm order selectors.
const (
	NormFrobenius byte = 'F' // Square root of the sum of squared entries.
	NormInf       byte = 'I' // Maximum absolute row sum.
	NormOne       byte = '1' // Maximum absolute column sum.
	NormMaxAbs    byte = 'M' // Largest absolute entry.
)

// Norm computes a matrix norm selected by a single-character order.
// A zero order defaults to the Frobenius norm, which needs no
// workspace; the row/column-sum norms allocate scratch sized to the
// larger matrix extent.
func Norm(t *tensor.RawTensor, order byte) (float64, error) {
	if err := tensor.RequireMatrix("norm", t); err != nil {
		return 0, err
	}

	var nrm lapack.MatrixNorm
	switch order {
	case 0, 'F', 'f':
		nrm = lapack.Frobenius
	case 'I', 'i':
		nrm = lapack.MaxRowSum
	case '1', 'O', 'o':
		nrm = lapack.MaxColumnSum
	case 'M', 'm':
		nrm = lapack.MaxAbs
	default:
		return 0, fmt.Errorf("linalg: norm: unknown order %q", order)
	}

	a, err := marshalMatrix("norm", t)
	if err != nil {
		return 0, err
	}

	var work []float64
	if nrm == lapack.MaxRowSum || nrm == lapack.MaxColumnSum {
		work = make([]float64, max(a.Rows, a.Cols))
	}
	return impl.Dlange(nrm, a.Rows, a.Cols, a.Data, a.Stride, work), nil
}
