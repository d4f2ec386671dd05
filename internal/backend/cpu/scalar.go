package cpu

import (
	"fmt"

	"github.com/loom-ml/loom/internal/tensor"
)

// Scalar operations apply the tensor dtype's arithmetic against a single
// scalar value. The scalar may be any Go numeric type; it is converted to
// the tensor's element type before the loop.

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("addScalar", x, scalar,
		func(v, s float32) float32 { return v + s },
		func(v, s float64) float64 { return v + s },
		func(v, s int32) int32 { return v + s },
		func(v, s int64) int64 { return v + s },
	)
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("subScalar", x, scalar,
		func(v, s float32) float32 { return v - s },
		func(v, s float64) float64 { return v - s },
		func(v, s int32) int32 { return v - s },
		func(v, s int64) int64 { return v - s },
	)
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("mulScalar", x, scalar,
		func(v, s float32) float32 { return v * s },
		func(v, s float64) float64 { return v * s },
		func(v, s int32) int32 { return v * s },
		func(v, s int64) int64 { return v * s },
	)
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("divScalar", x, scalar,
		func(v, s float32) float32 { return v / s },
		func(v, s float64) float64 { return v / s },
		func(v, s int32) int32 { return v / s },
		func(v, s int64) int64 { return v / s },
	)
}

func (cpu *CPUBackend) scalarOp(op string, x *tensor.RawTensor, scalar any,
	f32 func(v, s float32) float32,
	f64 func(v, s float64) float64,
	i32 func(v, s int32) int32,
	i64 func(v, s int64) int64,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		s := float32(scalarFloat(op, scalar))
		applyUnary(result, x, (*tensor.RawTensor).AsFloat32, func(v float32) float32 { return f32(v, s) })
	case tensor.Float64:
		s := scalarFloat(op, scalar)
		applyUnary(result, x, (*tensor.RawTensor).AsFloat64, func(v float64) float64 { return f64(v, s) })
	case tensor.Int32:
		s := int32(scalarInt(op, scalar))
		applyUnary(result, x, (*tensor.RawTensor).AsInt32, func(v int32) int32 { return i32(v, s) })
	case tensor.Int64:
		s := scalarInt(op, scalar)
		applyUnary(result, x, (*tensor.RawTensor).AsInt64, func(v int64) int64 { return i64(v, s) })
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}

	return result
}

// scalarFloat coerces a scalar argument to float64.
func scalarFloat(op string, scalar any) float64 {
	switch s := scalar.(type) {
	case float32:
		return float64(s)
	case float64:
		return s
	case int:
		return float64(s)
	case int32:
		return float64(s)
	case int64:
		return float64(s)
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type %T", op, scalar))
	}
}

// scalarInt coerces a scalar argument to int64. Float scalars are rejected
// rather than silently truncated.
func scalarInt(op string, scalar any) int64 {
	switch s := scalar.(type) {
	case int:
		return int64(s)
	case int32:
		return int64(s)
	case int64:
		return s
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type %T for integer tensor", op, scalar))
	}
}
