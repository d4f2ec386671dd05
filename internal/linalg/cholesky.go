package linalg

import (
	"gonum.org/v1/gonum/blas"

	"github.com/loom-ml/loom/internal/tensor"
)

// Cholesky factors a symmetric positive-definite matrix into its
// triangular Cholesky factor: A = L·Lᵀ when lower is true, A = Uᵀ·U
// otherwise. The input is duplicated into kernel layout first; the
// unused triangle of the factored buffer is zeroed before wrapping.
//
// A non-positive-definite input surfaces as a SingularMatrix failure.
func Cholesky(t *tensor.RawTensor, lower bool) (*tensor.RawTensor, error) {
	if err := tensor.RequireSquareMatrix("cholesky", t); err != nil {
		return nil, err
	}

	a, err := marshalMatrix("cholesky", t)
	if err != nil {
		return nil, err
	}

	uplo := blas.Upper
	if lower {
		uplo = blas.Lower
	}
	ok := impl.Dpotrf(uplo, a.Rows, a.Data, a.Stride)
	if err := kernelStatus("cholesky", SingularMatrix, ok); err != nil {
		return nil, err
	}

	out, err := wrapMatrix(a, t.Device())
	if err != nil {
		return nil, err
	}
	if lower {
		if err := TrilInPlace(out, 0); err != nil {
			return nil, err
		}
	} else {
		if err := TriuInPlace(out, 0); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CholeskyInPlace factors directly in the caller's buffer, which must
// be float64 and contiguous row-major. The buffer is left in the
// factored state even when the kernel reports failure.
func CholeskyInPlace(t *tensor.RawTensor, lower bool) error {
	if err := tensor.RequireSquareMatrix("cholesky!", t); err != nil {
		return err
	}

	a, err := aliasMatrix("cholesky!", t)
	if err != nil {
		return err
	}

	uplo := blas.Upper
	if lower {
		uplo = blas.Lower
	}
	ok := impl.Dpotrf(uplo, a.Rows, a.Data, a.Stride)
	if err := kernelStatus("cholesky!", SingularMatrix, ok); err != nil {
		return err
	}

	if lower {
		return TrilInPlace(t, 0)
	}
	return TriuInPlace(t, 0)
}
