package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"

	"github.com/loom-ml/loom/internal/tensor"
)

// impl is the dense kernel implementation every binding calls into.
// gonum's kernels use contiguous row-major storage, so row-major is the
// kernel-native layout throughout this package; column-major operands
// are handled with transpose flags where the kernel supports them and
// by duplication everywhere else.
var impl lapackgonum.Implementation

// kernelMatrix is a matrix marshaled into the dense kernel calling
// convention: a freshly owned contiguous row-major float64 buffer plus
// dimensions and leading dimension. The original element kind is kept
// so results can be wrapped back into tensors of the caller's kind.
type kernelMatrix struct {
	blas64.General
	dtype tensor.DataType
}

// marshalMatrix duplicates a rank-2 tensor into kernel layout, widening
// float32 elements to float64. The source is never mutated; kernels are
// free to overwrite the returned buffer.
func marshalMatrix(op string, t *tensor.RawTensor) (kernelMatrix, error) {
	rows, cols := t.Shape()[0], t.Shape()[1]
	data := make([]float64, rows*cols)
	if err := readFloat64(op, t, data); err != nil {
		return kernelMatrix{}, err
	}
	return kernelMatrix{
		General: blas64.General{Rows: rows, Cols: cols, Stride: max(1, cols), Data: data},
		dtype:   t.DType(),
	}, nil
}

// marshalVector duplicates a rank-1 tensor into a float64 buffer.
func marshalVector(op string, t *tensor.RawTensor) ([]float64, error) {
	data := make([]float64, t.Shape()[0])
	if err := readFloat64(op, t, data); err != nil {
		return nil, err
	}
	return data, nil
}

// readFloat64 copies a tensor's elements in row-major iteration order
// into dst, widening float32. Only float kinds reach the dense kernels;
// every other kind fails here, before any kernel call.
func readFloat64(op string, t *tensor.RawTensor, dst []float64) error {
	n := t.NumElements()
	if len(dst) < n {
		panic("linalg: marshal buffer too small")
	}

	switch t.DType() {
	case tensor.Float64:
		src := t.AsFloat64()
		if t.Layout().IsRowMajor() {
			copy(dst, src[:n])
			return nil
		}
		forEachRowMajor(t, func(flat, elem int) { dst[flat] = src[elem] })
		return nil
	case tensor.Float32:
		src := t.AsFloat32()
		if t.Layout().IsRowMajor() {
			for i := 0; i < n; i++ {
				dst[i] = float64(src[i])
			}
			return nil
		}
		forEachRowMajor(t, func(flat, elem int) { dst[flat] = float64(src[elem]) })
		return nil
	default:
		return fmt.Errorf("linalg: %s: unsupported dtype %s", op, t.DType())
	}
}

// forEachRowMajor walks the tensor in row-major iteration order,
// yielding the flat position and the strided element offset.
func forEachRowMajor(t *tensor.RawTensor, fn func(flat, elem int)) {
	n := t.NumElements()
	if n == 0 {
		return
	}
	idx := make([]int, t.Rank())
	strides := t.Strides()
	shape := t.Shape()
	for flat := 0; flat < n; flat++ {
		fn(flat, tensor.IndicesToFlat(idx, strides))
		tensor.NextIndex(idx, shape)
	}
}

// wrapMatrix wraps a kernel result buffer back into a row-major tensor
// of the caller's element kind, narrowing to float32 when needed.
func wrapMatrix(km kernelMatrix, device tensor.Device) (*tensor.RawTensor, error) {
	out, err := tensor.NewRaw(tensor.Shape{km.Rows, km.Cols}, km.dtype, device)
	if err != nil {
		return nil, err
	}
	if err := writeFloat64(out, km.Data, km.Rows*km.Cols); err != nil {
		return nil, err
	}
	return out, nil
}

// wrapVector wraps a kernel result buffer into a rank-1 tensor.
func wrapVector(data []float64, dtype tensor.DataType, device tensor.Device) (*tensor.RawTensor, error) {
	out, err := tensor.NewRaw(tensor.Shape{len(data)}, dtype, device)
	if err != nil {
		return nil, err
	}
	if err := writeFloat64(out, data, len(data)); err != nil {
		return nil, err
	}
	return out, nil
}

func writeFloat64(out *tensor.RawTensor, data []float64, n int) error {
	switch out.DType() {
	case tensor.Float64:
		copy(out.AsFloat64(), data[:n])
	case tensor.Float32:
		dst := out.AsFloat32()
		for i := 0; i < n; i++ {
			dst[i] = float32(data[i])
		}
	default:
		return fmt.Errorf("linalg: cannot wrap kernel result into %s tensor", out.DType())
	}
	return nil
}

// aliasMatrix wraps a tensor's own buffer for an in-place kernel call.
// The tensor must hold float64 elements in contiguous row-major layout;
// in-place variants never relayout or retype the caller's buffer.
func aliasMatrix(op string, t *tensor.RawTensor) (kernelMatrix, error) {
	if t.DType() != tensor.Float64 {
		return kernelMatrix{}, fmt.Errorf("linalg: %s: in-place variant requires float64, got %s", op, t.DType())
	}
	if !t.Layout().IsRowMajor() {
		return kernelMatrix{}, fmt.Errorf("linalg: %s: in-place variant requires a contiguous row-major buffer", op)
	}
	rows, cols := t.Shape()[0], t.Shape()[1]
	return kernelMatrix{
		General: blas64.General{Rows: rows, Cols: cols, Stride: max(1, cols), Data: t.AsFloat64()},
		dtype:   t.DType(),
	}, nil
}

// kernelStatus translates a kernel's boolean status into either success
// or a structured failure. Nonzero statuses are never retried.
func kernelStatus(op string, kind NumericalErrorKind, ok bool) error {
	if ok {
		return nil
	}
	return &NumericalError{Kind: kind, Op: op}
}

// Workspace sizing. Iterative factorization kernels corrupt memory or
// fail silently when undersized, so the bounds below are exact: fixed
// classical formulas where the kernel defines one, and the kernel's own
// lwork = -1 query everywhere it is supported.

// allocWork runs a kernel's workspace query and allocates the reported
// optimum, never less than floor.
func allocWork(floor int, query func(probe []float64)) []float64 {
	probe := make([]float64, 1)
	query(probe)
	lwork := int(probe[0])
	if lwork < floor {
		lwork = floor
	}
	if lwork < 1 {
		lwork = 1
	}
	return make([]float64, lwork)
}

// svdWorkFloor is the classical real-scratch lower bound for the
// QR-iteration SVD: max(5·mn, 3·mn+mx) with mn = min(m,n), mx = max(m,n).
func svdWorkFloor(m, n int) int {
	mn := min(m, n)
	mx := max(m, n)
	return max(5*mn, 3*mn+mx)
}

// syevWorkLen is the symmetric eigen workspace length: 3n - 1.
func syevWorkLen(n int) int {
	return max(1, 3*n-1)
}

// geevWorkFloor is the general eigen workspace lower bound: 3n without
// eigenvectors, 4n with.
func geevWorkFloor(n int, vectors bool) int {
	if vectors {
		return max(1, 4*n)
	}
	return max(1, 3*n)
}
