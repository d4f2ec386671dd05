package cpu

import (
	"github.com/loom-ml/loom/internal/tensor"
)

// broadcastStrides returns strides that map an outShape multi-index onto
// the input tensor: left-padded dimensions and dimensions of size 1 get
// stride 0, so the same source element is reused across the broadcast axis.
func broadcastStrides(in *tensor.RawTensor, outShape tensor.Shape) []int {
	inShape := in.Shape()
	inStrides := in.Strides()
	offset := len(outShape) - len(inShape)

	strides := make([]int, len(outShape))
	for i := range outShape {
		inIdx := i - offset
		if inIdx < 0 || inShape[inIdx] == 1 {
			strides[i] = 0
		} else {
			strides[i] = inStrides[inIdx]
		}
	}
	return strides
}

// fastPath reports whether both operands can be walked as flat slices:
// identical shapes, row-major layout, no broadcasting.
func fastPath(a, b, out *tensor.RawTensor) bool {
	return a.Shape().Equal(b.Shape()) &&
		a.Layout().IsRowMajor() && b.Layout().IsRowMajor() &&
		out.Shape().Equal(a.Shape())
}

// applyBinary computes out[i] = op(a[i], b[i]) over the broadcast iteration
// space. The data accessor pins the element type for all three tensors.
func applyBinary[T tensor.DType](out, a, b *tensor.RawTensor, data func(*tensor.RawTensor) []T, op func(x, y T) T) {
	ov := data(out)
	av := data(a)
	bv := data(b)

	if fastPath(a, b, out) {
		for i := range ov {
			ov[i] = op(av[i], bv[i])
		}
		return
	}

	outShape := out.Shape()
	aStrides := broadcastStrides(a, outShape)
	bStrides := broadcastStrides(b, outShape)

	idx := make([]int, outShape.Rank())
	for flat := 0; flat < outShape.NumElements(); flat++ {
		ov[flat] = op(av[tensor.IndicesToFlat(idx, aStrides)], bv[tensor.IndicesToFlat(idx, bStrides)])
		tensor.NextIndex(idx, outShape)
	}
}

// applyCompare is applyBinary for predicates: out is a Bool tensor.
func applyCompare[T tensor.DType](out, a, b *tensor.RawTensor, data func(*tensor.RawTensor) []T, op func(x, y T) bool) {
	ov := out.AsBool()
	av := data(a)
	bv := data(b)

	if fastPath(a, b, out) {
		for i := range ov {
			ov[i] = op(av[i], bv[i])
		}
		return
	}

	outShape := out.Shape()
	aStrides := broadcastStrides(a, outShape)
	bStrides := broadcastStrides(b, outShape)

	idx := make([]int, outShape.Rank())
	for flat := 0; flat < outShape.NumElements(); flat++ {
		ov[flat] = op(av[tensor.IndicesToFlat(idx, aStrides)], bv[tensor.IndicesToFlat(idx, bStrides)])
		tensor.NextIndex(idx, outShape)
	}
}

// applyUnary computes out[i] = op(x[i]); out has x's shape.
func applyUnary[T tensor.DType](out, x *tensor.RawTensor, data func(*tensor.RawTensor) []T, op func(v T) T) {
	ov := data(out)
	xv := data(x)

	if x.Layout().IsRowMajor() {
		for i := range ov {
			ov[i] = op(xv[i])
		}
		return
	}

	shape := x.Shape()
	strides := x.Strides()
	idx := make([]int, shape.Rank())
	for flat := 0; flat < shape.NumElements(); flat++ {
		ov[flat] = op(xv[tensor.IndicesToFlat(idx, strides)])
		tensor.NextIndex(idx, shape)
	}
}
