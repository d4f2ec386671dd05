package tensor

import (
	"math"
	"math/rand"
)

// one returns the multiplicative identity for T (true for bool).
func one[T DType]() T {
	var dummy T
	var v any
	switch any(dummy).(type) {
	case int8:
		v = int8(1)
	case int16:
		v = int16(1)
	case int32:
		v = int32(1)
	case int64:
		v = int64(1)
	case uint8:
		v = uint8(1)
	case uint16:
		v = uint16(1)
	case uint32:
		v = uint32(1)
	case uint64:
		v = uint64(1)
	case float32:
		v = float32(1)
	case float64:
		v = float64(1)
	case bool:
		v = true
	case complex64:
		v = complex64(1)
	case complex128:
		v = complex128(1)
	default:
		panic("unsupported type")
	}
	return v.(T)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float64](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, one[T](), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float64](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Eye creates a 2-D identity matrix.
//
// Example:
//
//	t := tensor.Eye[float64](3, backend) // 3x3 identity matrix
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n, n}, b)
	v := one[T]()
	for i := 0; i < n; i++ {
		t.Set(v, i, i)
	}
	return t
}

// Arange creates a 1-D tensor with values from start to end (exclusive).
// Only works with real numeric types (not bool or complex).
//
// Example:
//
//	t := tensor.Arange[int32](0, 10, backend) // [0, 1, 2, ..., 9]
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	n := arangeLen(start, end)
	if n <= 0 {
		panic("end must be greater than start")
	}

	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	for i := range data {
		data[i] = arangeValue(start, i).(T)
	}
	return t
}

func arangeLen[T DType](start, end T) int {
	switch s := any(start).(type) {
	case int8:
		return int(any(end).(int8) - s)
	case int16:
		return int(any(end).(int16) - s)
	case int32:
		return int(any(end).(int32) - s)
	case int64:
		return int(any(end).(int64) - s)
	case uint8:
		return int(any(end).(uint8) - s)
	case uint16:
		return int(any(end).(uint16) - s)
	case uint32:
		return int(any(end).(uint32) - s)
	case uint64:
		return int(any(end).(uint64) - s)
	case float32:
		return int(any(end).(float32) - s)
	case float64:
		return int(any(end).(float64) - s)
	default:
		panic("Arange not supported for this type")
	}
}

func arangeValue[T DType](start T, i int) any {
	switch s := any(start).(type) {
	case int8:
		return s + int8(i)
	case int16:
		return s + int16(i)
	case int32:
		return s + int32(i)
	case int64:
		return s + int64(i)
	case uint8:
		return s + uint8(i)
	case uint16:
		return s + uint16(i)
	case uint32:
		return s + uint32(i)
	case uint64:
		return s + uint64(i)
	case float32:
		return s + float32(i)
	case float64:
		return s + float64(i)
	default:
		panic("Arange not supported for this type")
	}
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
// Only works with float types.
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		d := any(data).([]float32)
		for i := range d {
			d[i] = rand.Float32() //nolint:gosec // statistical use, not security
		}
	case float64:
		d := any(data).([]float64)
		for i := range d {
			d[i] = rand.Float64() //nolint:gosec // statistical use, not security
		}
	default:
		panic("Rand only supports float32 and float64 types")
	}
	return t
}

// Randn creates a tensor with random values from a normal distribution
// (mean=0, std=1) using the Box-Muller transform. Only works with float
// types. Uses math/rand, appropriate for statistical purposes.
//
// Example:
//
//	t := tensor.Randn[float64](Shape{100, 100}, backend)
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		d := any(data).([]float32)
		for i := 0; i < len(d); i += 2 {
			z0, z1 := boxMuller()
			d[i] = float32(z0)
			if i+1 < len(d) {
				d[i+1] = float32(z1)
			}
		}
	case float64:
		d := any(data).([]float64)
		for i := 0; i < len(d); i += 2 {
			z0, z1 := boxMuller()
			d[i] = z0
			if i+1 < len(d) {
				d[i+1] = z1
			}
		}
	default:
		panic("Randn only supports float32 and float64 types")
	}
	return t
}

func boxMuller() (float64, float64) {
	u1 := rand.Float64() //nolint:gosec // statistical use, not security
	u2 := rand.Float64() //nolint:gosec // statistical use, not security
	r := math.Sqrt(-2.0 * math.Log(u1))
	return r * math.Cos(2.0*math.Pi*u2), r * math.Sin(2.0*math.Pi*u2)
}
