package linalg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/loom-ml/loom/internal/tensor"
)

// MatMul multiplies two matrices with the general matrix-multiply
// kernel, scale 1 and no accumulation into the destination. Transpose
// flags and leading dimensions are chosen from whichever contiguous
// order each operand already has, so row-major and column-major inputs
// both feed the kernel without a copy; only strided views are
// duplicated.
func MatMul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := tensor.RequireMatrix("matmul", a); err != nil {
		return nil, err
	}
	if err := tensor.RequireMatrix("matmul", b); err != nil {
		return nil, err
	}
	m, ka := a.Shape()[0], a.Shape()[1]
	kb, n := b.Shape()[0], b.Shape()[1]
	if ka != kb {
		return nil, &tensor.ShapeError{Kind: tensor.DimensionMismatch, Op: "matmul", Shape: b.Shape()}
	}

	ga, ta, err := gemmOperand("matmul", a)
	if err != nil {
		return nil, err
	}
	gb, tb, err := gemmOperand("matmul", b)
	if err != nil {
		return nil, err
	}

	c := blas64.General{Rows: m, Cols: n, Stride: max(1, n), Data: make([]float64, m*n)}
	blas64.Gemm(ta, tb, 1.0, ga, gb, 0.0, c)

	dtype := tensor.Float32
	if a.DType() == tensor.Float64 || b.DType() == tensor.Float64 {
		dtype = tensor.Float64
	}
	return wrapMatrix(kernelMatrix{General: c, dtype: dtype}, a.Device())
}

// gemmOperand maps a matrix onto the gemm calling convention. A
// contiguous row-major float64 matrix aliases its own buffer with no
// transpose flag; a contiguous column-major float64 matrix is passed as
// its row-major transpose with the flag set, its leading dimension
// being the logical row count. Everything else is duplicated into
// row-major kernel layout.
func gemmOperand(op string, t *tensor.RawTensor) (blas64.General, blas.Transpose, error) {
	rows, cols := t.Shape()[0], t.Shape()[1]

	if t.DType() == tensor.Float64 {
		switch {
		case t.Layout().IsRowMajor():
			return blas64.General{Rows: rows, Cols: cols, Stride: max(1, cols), Data: t.AsFloat64()}, blas.NoTrans, nil
		case t.Layout().IsColMajor():
			return blas64.General{Rows: cols, Cols: rows, Stride: max(1, rows), Data: t.AsFloat64()}, blas.Trans, nil
		}
	}

	km, err := marshalMatrix(op, t)
	if err != nil {
		return blas64.General{}, blas.NoTrans, err
	}
	return km.General, blas.NoTrans, nil
}
