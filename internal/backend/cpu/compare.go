package cpu

import (
	"fmt"

	"github.com/loom-ml/loom/internal/tensor"
)

// Comparison operations return Bool tensors over the broadcast shape.

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("greater", a, b,
		func(x, y float32) bool { return x > y },
		func(x, y float64) bool { return x > y },
		func(x, y int32) bool { return x > y },
		func(x, y int64) bool { return x > y },
	)
}

// Lower returns a < b element-wise.
func (cpu *CPUBackend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("lower", a, b,
		func(x, y float32) bool { return x < y },
		func(x, y float64) bool { return x < y },
		func(x, y int32) bool { return x < y },
		func(x, y int64) bool { return x < y },
	)
}

// GreaterEqual returns a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("greaterEqual", a, b,
		func(x, y float32) bool { return x >= y },
		func(x, y float64) bool { return x >= y },
		func(x, y int32) bool { return x >= y },
		func(x, y int64) bool { return x >= y },
	)
}

// LowerEqual returns a <= b element-wise.
func (cpu *CPUBackend) LowerEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("lowerEqual", a, b,
		func(x, y float32) bool { return x <= y },
		func(x, y float64) bool { return x <= y },
		func(x, y int32) bool { return x <= y },
		func(x, y int64) bool { return x <= y },
	)
}

// Equal returns a == b element-wise.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("equal", a, b,
		func(x, y float32) bool { return x == y },
		func(x, y float64) bool { return x == y },
		func(x, y int32) bool { return x == y },
		func(x, y int64) bool { return x == y },
	)
}

// NotEqual returns a != b element-wise.
func (cpu *CPUBackend) NotEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("notEqual", a, b,
		func(x, y float32) bool { return x != y },
		func(x, y float64) bool { return x != y },
		func(x, y int32) bool { return x != y },
		func(x, y int64) bool { return x != y },
	)
}

func (cpu *CPUBackend) compare(op string, a, b *tensor.RawTensor,
	f32 func(x, y float32) bool,
	f64 func(x, y float64) bool,
	i32 func(x, y int32) bool,
	i64 func(x, y int64) bool,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	switch a.DType() {
	case tensor.Float32:
		applyCompare(result, a, b, (*tensor.RawTensor).AsFloat32, f32)
	case tensor.Float64:
		applyCompare(result, a, b, (*tensor.RawTensor).AsFloat64, f64)
	case tensor.Int32:
		applyCompare(result, a, b, (*tensor.RawTensor).AsInt32, i32)
	case tensor.Int64:
		applyCompare(result, a, b, (*tensor.RawTensor).AsInt64, i64)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}

	return result
}
