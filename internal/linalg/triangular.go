// Package linalg provides dense linear-algebra operations over strided
// tensors: triangular extraction, factorizations (LU, QR, Cholesky,
// eigen, SVD), solves, determinant, inverse, Hessenberg reduction,
// matrix norms and matrix products, all backed by dense compute kernels.
package linalg

import "github.com/loom-ml/loom/internal/tensor"

// Triu returns a copy of the matrix with every element below the k-th
// diagonal zeroed. k = 0 keeps the main diagonal, k > 0 shifts the
// retained diagonal above it, k < 0 below it. Works for every element
// kind; the input is left untouched.
func Triu(t *tensor.RawTensor, k int) (*tensor.RawTensor, error) {
	if err := tensor.RequireMatrix("triu", t); err != nil {
		return nil, err
	}
	out, err := t.AsContiguous(tensor.LayoutRowMajor)
	if err != nil {
		return nil, err
	}
	zeroTriangle(out, k, false)
	return out, nil
}

// Tril returns a copy of the matrix with every element above the k-th
// diagonal zeroed.
func Tril(t *tensor.RawTensor, k int) (*tensor.RawTensor, error) {
	if err := tensor.RequireMatrix("tril", t); err != nil {
		return nil, err
	}
	out, err := t.AsContiguous(tensor.LayoutRowMajor)
	if err != nil {
		return nil, err
	}
	zeroTriangle(out, k, true)
	return out, nil
}

// TriuInPlace zeroes elements below the k-th diagonal directly in the
// caller's buffer. Concurrent mutation of the same buffer must be
// serialized by the caller.
func TriuInPlace(t *tensor.RawTensor, k int) error {
	if err := tensor.RequireMatrix("triu!", t); err != nil {
		return err
	}
	zeroTriangle(t, k, false)
	return nil
}

// TrilInPlace zeroes elements above the k-th diagonal directly in the
// caller's buffer.
func TrilInPlace(t *tensor.RawTensor, k int) error {
	if err := tensor.RequireMatrix("tril!", t); err != nil {
		return err
	}
	zeroTriangle(t, k, true)
	return nil
}

// zeroTriangle walks every flat position of the matrix, recovers its
// (row, col) coordinate with the shared divmod mapping, and zeroes the
// positions outside the retained triangle: row > col - k for the upper
// triangular keep, row < col - k for the lower.
func zeroTriangle(t *tensor.RawTensor, k int, lower bool) {
	rows, cols := t.Shape()[0], t.Shape()[1]
	for flat := 0; flat < rows*cols; flat++ {
		row := flat / cols
		col := flat % cols
		if lower {
			if row < col-k {
				t.ZeroAt(row, col)
			}
		} else {
			if row > col-k {
				t.ZeroAt(row, col)
			}
		}
	}
}
