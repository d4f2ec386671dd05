package tensor

import (
	"fmt"
)

// MockBackend is a simple backend for testing.
// It implements all operations naively through float64 for correctness
// verification; performance is not a goal.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (m *MockBackend) Div(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

// MatMul performs naive 2-D matrix multiplication.
func (m *MockBackend) MatMul(a, b *RawTensor) *RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 || aShape[1] != bShape[0] {
		panic(fmt.Sprintf("mock matmul: incompatible shapes %v and %v", aShape, bShape))
	}
	rows, inner, cols := aShape[0], aShape[1], bShape[1]

	av := mockValues(a)
	bv := mockValues(b)
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum := 0.0
			for k := 0; k < inner; k++ {
				sum += av[i*inner+k] * bv[k*cols+j]
			}
			out[i*cols+j] = sum
		}
	}

	result := mustNewRaw(Shape{rows, cols}, a.DType())
	mockStore(result, out)
	return result
}

// AddScalar adds a scalar to each element.
func (m *MockBackend) AddScalar(x *RawTensor, scalar any) *RawTensor {
	return m.scalarWise(x, scalar, func(v, s float64) float64 { return v + s })
}

// SubScalar subtracts a scalar from each element.
func (m *MockBackend) SubScalar(x *RawTensor, scalar any) *RawTensor {
	return m.scalarWise(x, scalar, func(v, s float64) float64 { return v - s })
}

// MulScalar multiplies each element by a scalar.
func (m *MockBackend) MulScalar(x *RawTensor, scalar any) *RawTensor {
	return m.scalarWise(x, scalar, func(v, s float64) float64 { return v * s })
}

// DivScalar divides each element by a scalar.
func (m *MockBackend) DivScalar(x *RawTensor, scalar any) *RawTensor {
	return m.scalarWise(x, scalar, func(v, s float64) float64 { return v / s })
}

// Greater returns a > b element-wise.
func (m *MockBackend) Greater(a, b *RawTensor) *RawTensor {
	return m.compareWise(a, b, func(x, y float64) bool { return x > y })
}

// Lower returns a < b element-wise.
func (m *MockBackend) Lower(a, b *RawTensor) *RawTensor {
	return m.compareWise(a, b, func(x, y float64) bool { return x < y })
}

// GreaterEqual returns a >= b element-wise.
func (m *MockBackend) GreaterEqual(a, b *RawTensor) *RawTensor {
	return m.compareWise(a, b, func(x, y float64) bool { return x >= y })
}

// LowerEqual returns a <= b element-wise.
func (m *MockBackend) LowerEqual(a, b *RawTensor) *RawTensor {
	return m.compareWise(a, b, func(x, y float64) bool { return x <= y })
}

// Equal returns a == b element-wise.
func (m *MockBackend) Equal(a, b *RawTensor) *RawTensor {
	return m.compareWise(a, b, func(x, y float64) bool { return x == y })
}

// NotEqual returns a != b element-wise.
func (m *MockBackend) NotEqual(a, b *RawTensor) *RawTensor {
	return m.compareWise(a, b, func(x, y float64) bool { return x != y })
}

// And returns a && b element-wise.
func (m *MockBackend) And(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return boolToFloat(x != 0 && y != 0) })
}

// Or returns a || b element-wise.
func (m *MockBackend) Or(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return boolToFloat(x != 0 || y != 0) })
}

// Not returns !x element-wise.
func (m *MockBackend) Not(x *RawTensor) *RawTensor {
	result := mustNewRaw(x.Shape(), x.DType())
	vals := mockValues(x)
	for i, v := range vals {
		vals[i] = boolToFloat(v == 0)
	}
	mockStore(result, vals)
	return result
}

// Cast converts the tensor to a different data type.
func (m *MockBackend) Cast(x *RawTensor, dtype DataType) *RawTensor {
	if x.DType() == dtype {
		return x
	}
	result := mustNewRaw(x.Shape(), dtype)
	mockStore(result, mockValues(x))
	return result
}

func (m *MockBackend) elementWise(a, b *RawTensor, op func(x, y float64) float64) *RawTensor {
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	av := mockBroadcast(a, outShape)
	bv := mockBroadcast(b, outShape)
	for i := range av {
		av[i] = op(av[i], bv[i])
	}

	result := mustNewRaw(outShape, a.DType())
	mockStore(result, av)
	return result
}

func (m *MockBackend) compareWise(a, b *RawTensor, op func(x, y float64) bool) *RawTensor {
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	av := mockBroadcast(a, outShape)
	bv := mockBroadcast(b, outShape)

	result := mustNewRaw(outShape, Bool)
	dst := result.AsBool()
	for i := range av {
		dst[i] = op(av[i], bv[i])
	}
	return result
}

func (m *MockBackend) scalarWise(x *RawTensor, scalar any, op func(v, s float64) float64) *RawTensor {
	s := anyToFloat(scalar)
	vals := mockValues(x)
	for i, v := range vals {
		vals[i] = op(v, s)
	}

	result := mustNewRaw(x.Shape(), x.DType())
	mockStore(result, vals)
	return result
}

func mustNewRaw(shape Shape, dtype DataType) *RawTensor {
	raw, err := NewRaw(shape, dtype, CPU)
	if err != nil {
		panic(err)
	}
	return raw
}

// mockValues reads all elements in row-major iteration order as float64.
func mockValues(t *RawTensor) []float64 {
	return mockBroadcast(t, t.Shape())
}

// mockBroadcast reads elements in row-major order over outShape, reusing
// source elements along broadcast axes.
func mockBroadcast(t *RawTensor, outShape Shape) []float64 {
	inShape := t.Shape()
	inStrides := t.Strides()
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

	out := make([]float64, outShape.NumElements())
	idx := make([]int, len(outShape))
	for flat := range out {
		out[flat] = mockLoad(t, IndicesToFlat(idx, strides))
		NextIndex(idx, outShape)
	}
	return out
}

func mockLoad(t *RawTensor, elem int) float64 {
	switch t.DType() {
	case Float32:
		return float64(t.AsFloat32()[elem])
	case Float64:
		return t.AsFloat64()[elem]
	case Int32:
		return float64(t.AsInt32()[elem])
	case Int64:
		return float64(t.AsInt64()[elem])
	case Uint8:
		return float64(t.AsUint8()[elem])
	case Bool:
		return boolToFloat(t.AsBool()[elem])
	default:
		panic(fmt.Sprintf("mock backend: unsupported dtype %s", t.DType()))
	}
}

// mockStore fills a freshly allocated row-major tensor from float64 values.
func mockStore(t *RawTensor, vals []float64) {
	switch t.DType() {
	case Float32:
		dst := t.AsFloat32()
		for i, v := range vals {
			dst[i] = float32(v)
		}
	case Float64:
		copy(t.AsFloat64(), vals)
	case Int32:
		dst := t.AsInt32()
		for i, v := range vals {
			dst[i] = int32(v)
		}
	case Int64:
		dst := t.AsInt64()
		for i, v := range vals {
			dst[i] = int64(v)
		}
	case Uint8:
		dst := t.AsUint8()
		for i, v := range vals {
			dst[i] = uint8(v)
		}
	case Bool:
		dst := t.AsBool()
		for i, v := range vals {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("mock backend: unsupported dtype %s", t.DType()))
	}
}

func anyToFloat(scalar any) float64 {
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
		panic(fmt.Sprintf("mock backend: unsupported scalar type %T", scalar))
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
