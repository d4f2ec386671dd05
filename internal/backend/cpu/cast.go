package cpu

import (
	"fmt"

	"github.com/loom-ml/loom/internal/tensor"
)

// Cast converts the tensor to a different data type. Casting to the same
// dtype returns the input unchanged.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	// Real kinds round-trip through float64; this covers every supported
	// source/target pair without a quadratic dispatch table.
	vals := readFloat64(x)
	writeFloat64(result, vals)

	return result
}

// readFloat64 reads the tensor's elements into a float64 slice in row-major
// order. Bool maps to 0/1.
func readFloat64(x *tensor.RawTensor) []float64 {
	out := make([]float64, x.NumElements())

	switch x.DType() {
	case tensor.Float32:
		readStrided(out, x, x.AsFloat32(), func(v float32) float64 { return float64(v) })
	case tensor.Float64:
		readStrided(out, x, x.AsFloat64(), func(v float64) float64 { return v })
	case tensor.Int32:
		readStrided(out, x, x.AsInt32(), func(v int32) float64 { return float64(v) })
	case tensor.Int64:
		readStrided(out, x, x.AsInt64(), func(v int64) float64 { return float64(v) })
	case tensor.Uint8:
		readStrided(out, x, x.AsUint8(), func(v uint8) float64 { return float64(v) })
	case tensor.Bool:
		readStrided(out, x, x.AsBool(), func(v bool) float64 {
			if v {
				return 1
			}
			return 0
		})
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}

	return out
}

// writeFloat64 fills a freshly allocated row-major tensor from float64
// values. Bool targets get v != 0.
func writeFloat64(result *tensor.RawTensor, vals []float64) {
	switch result.DType() {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i, v := range vals {
			dst[i] = float32(v)
		}
	case tensor.Float64:
		copy(result.AsFloat64(), vals)
	case tensor.Int32:
		dst := result.AsInt32()
		for i, v := range vals {
			dst[i] = int32(v)
		}
	case tensor.Int64:
		dst := result.AsInt64()
		for i, v := range vals {
			dst[i] = int64(v)
		}
	case tensor.Uint8:
		dst := result.AsUint8()
		for i, v := range vals {
			dst[i] = uint8(v)
		}
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range vals {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", result.DType()))
	}
}

func readStrided[T tensor.DType](out []float64, x *tensor.RawTensor, src []T, conv func(T) float64) {
	if x.Layout().IsRowMajor() {
		for i := range out {
			out[i] = conv(src[i])
		}
		return
	}

	shape := x.Shape()
	strides := x.Strides()
	idx := make([]int, shape.Rank())
	for flat := range out {
		out[flat] = conv(src[tensor.IndicesToFlat(idx, strides)])
		tensor.NextIndex(idx, shape)
	}
}
