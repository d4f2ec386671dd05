package tensor

import (
	"fmt"
	"math"
	"reflect"
)

// BaseArray is the capability an arbitrary container exposes to be
// coercible into a tensor: a shape plus per-index element access.
type BaseArray interface {
	Shape() Shape
	DType() DataType
	At(indices ...int) any
}

// AsTensor coerces an arbitrary value into a RawTensor.
//
//   - A *RawTensor is returned unchanged (identity, no copy).
//   - A value implementing BaseArray is converted preserving its shape
//     and element kind.
//   - Nested Go slices infer rank from nesting depth and element kind as
//     the smallest common numeric kind (32-bit signed integer when all
//     leaves are integral); values are copied in iteration order into a
//     freshly allocated contiguous row-major buffer.
//   - A bare scalar produces a single-element tensor of the inferred kind.
func AsTensor(v any) (*RawTensor, error) {
	switch src := v.(type) {
	case *RawTensor:
		return src, nil
	case BaseArray:
		return fromBaseArray(src)
	}

	rv := reflect.ValueOf(v)
	shape, err := nestedShape(rv)
	if err != nil {
		return nil, err
	}

	dtype, err := nestedKind(rv)
	if err != nil {
		return nil, err
	}

	raw, err := NewRaw(shape, dtype, CPU)
	if err != nil {
		return nil, err
	}

	flat := 0
	if err := fillNested(raw, rv, shape, 0, &flat); err != nil {
		return nil, err
	}
	return raw, nil
}

func fromBaseArray(src BaseArray) (*RawTensor, error) {
	shape := src.Shape()
	raw, err := NewRaw(shape, src.DType(), CPU)
	if err != nil {
		return nil, err
	}

	n := shape.NumElements()
	if n == 0 {
		return raw, nil
	}
	idx := make([]int, len(shape))
	for flat := 0; flat < n; flat++ {
		if err := setElem(raw, flat, src.At(idx...)); err != nil {
			return nil, err
		}
		NextIndex(idx, shape)
	}
	return raw, nil
}

// nestedShape infers the shape of a nested sequence: rank equals the
// nesting depth, and each level's size is taken from its first element.
// Sibling lengths are validated during the fill pass.
func nestedShape(rv reflect.Value) (Shape, error) {
	var shape Shape
	for rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		shape = append(shape, rv.Len())
		if rv.Len() == 0 {
			break
		}
		rv = elemValue(rv.Index(0))
	}
	if len(shape) == 0 {
		// Bare scalar: single-element tensor.
		return Shape{1}, nil
	}
	return shape, nil
}

// nestedKind computes the smallest common numeric kind of all leaves.
func nestedKind(rv reflect.Value) (DataType, error) {
	kind := DataType(-1)
	var walk func(v reflect.Value) error
	walk = func(v reflect.Value) error {
		v = elemValue(v)
		if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
			for i := 0; i < v.Len(); i++ {
				if err := walk(v.Index(i)); err != nil {
					return err
				}
			}
			return nil
		}
		leaf, err := leafKind(v)
		if err != nil {
			return err
		}
		if kind < 0 {
			kind = leaf
		} else {
			kind = promoteKind(kind, leaf)
		}
		return nil
	}
	if err := walk(rv); err != nil {
		return -1, err
	}
	if kind < 0 {
		kind = Int32 // empty sequence
	}
	return kind, nil
}

func elemValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}
	return v
}

// leafKind maps a scalar Go value onto a tensor kind. Integral values
// default to 32-bit signed integers, widening to 64 bits only when the
// value does not fit.
func leafKind(v reflect.Value) (DataType, error) {
	switch v.Kind() {
	case reflect.Bool:
		return Bool, nil
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return Int32, nil
	case reflect.Int, reflect.Int64:
		if v.Int() >= math.MinInt32 && v.Int() <= math.MaxInt32 {
			return Int32, nil
		}
		return Int64, nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		if v.Uint() <= math.MaxInt32 {
			return Int32, nil
		}
		return Int64, nil
	case reflect.Uint, reflect.Uint64:
		if v.Uint() <= math.MaxInt32 {
			return Int32, nil
		}
		return Int64, nil
	case reflect.Float32:
		return Float32, nil
	case reflect.Float64:
		return Float64, nil
	case reflect.Complex64:
		return Complex64, nil
	case reflect.Complex128:
		return Complex128, nil
	default:
		return -1, fmt.Errorf("as tensor: unsupported element %s", v.Kind())
	}
}

// promoteKind orders kinds for promotion: bool < int32 < int64 < float32 <
// float64 < complex64 < complex128, with the caveat that an int64 cannot
// promote into float32 (it jumps to float64).
func promoteKind(a, b DataType) DataType {
	if a == b {
		return a
	}
	rank := func(dt DataType) int {
		switch dt {
		case Bool:
			return 0
		case Int32:
			return 1
		case Int64:
			return 2
		case Float32:
			return 3
		case Float64:
			return 4
		case Complex64:
			return 5
		case Complex128:
			return 6
		default:
			return 7
		}
	}
	lo, hi := a, b
	if rank(lo) > rank(hi) {
		lo, hi = hi, lo
	}
	if hi == Float32 && lo == Int64 {
		return Float64
	}
	if hi == Complex64 && (lo == Int64 || lo == Float64) {
		return Complex128
	}
	return hi
}

// fillNested copies leaves into raw in iteration order, validating that
// sibling sequences agree with the inferred shape.
func fillNested(raw *RawTensor, v reflect.Value, shape Shape, depth int, flat *int) error {
	v = elemValue(v)

	if depth == len(shape) || (depth == 0 && len(shape) == 1 && v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		if err := setReflectElem(raw, *flat, v); err != nil {
			return err
		}
		*flat++
		return nil
	}

	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return fmt.Errorf("as tensor: ragged sequence: expected depth %d, found scalar at depth %d", len(shape), depth)
	}
	if v.Len() != shape[depth] {
		return fmt.Errorf("as tensor: ragged sequence: expected %d elements at depth %d, got %d", shape[depth], depth, v.Len())
	}
	for i := 0; i < v.Len(); i++ {
		if err := fillNested(raw, v.Index(i), shape, depth+1, flat); err != nil {
			return err
		}
	}
	return nil
}

// setReflectElem widens a reflected scalar into raw's kind and stores it
// at the given flat position of the contiguous buffer.
func setReflectElem(raw *RawTensor, flat int, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		if raw.DType() == Bool {
			return setElem(raw, flat, v.Bool())
		}
		// Kind promotion lifted the sequence past Bool; store 0/1.
		var i int64
		if v.Bool() {
			i = 1
		}
		return setConverted(raw, flat, float64(i), i, complex(float64(i), 0))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setConverted(raw, flat, float64(v.Int()), v.Int(), complex(float64(v.Int()), 0))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setConverted(raw, flat, float64(v.Uint()), int64(v.Uint()), complex(float64(v.Uint()), 0)) //nolint:gosec // magnitude checked by leafKind
	case reflect.Float32, reflect.Float64:
		return setConverted(raw, flat, v.Float(), int64(v.Float()), complex(v.Float(), 0))
	case reflect.Complex64, reflect.Complex128:
		return setConverted(raw, flat, real(v.Complex()), int64(real(v.Complex())), v.Complex())
	default:
		return fmt.Errorf("as tensor: unsupported element %s", v.Kind())
	}
}

// setConverted stores a value given in all three representations,
// choosing the one matching raw's kind.
func setConverted(raw *RawTensor, flat int, f float64, i int64, c complex128) error {
	switch raw.DType() {
	case Int32:
		return setElem(raw, flat, int32(i)) //nolint:gosec // kind inference guarantees range
	case Int64:
		return setElem(raw, flat, i)
	case Float32:
		return setElem(raw, flat, float32(f))
	case Float64:
		return setElem(raw, flat, f)
	case Complex64:
		return setElem(raw, flat, complex64(c))
	case Complex128:
		return setElem(raw, flat, c)
	default:
		return fmt.Errorf("as tensor: cannot store numeric value in %s tensor", raw.DType())
	}
}

// setElem stores a typed scalar at a flat position. The value's Go type
// must match raw's kind exactly.
func setElem(raw *RawTensor, flat int, value any) error {
	switch raw.DType() {
	case Int8:
		raw.AsInt8()[flat] = value.(int8)
	case Int16:
		raw.AsInt16()[flat] = value.(int16)
	case Int32:
		raw.AsInt32()[flat] = value.(int32)
	case Int64:
		raw.AsInt64()[flat] = value.(int64)
	case Uint8:
		raw.AsUint8()[flat] = value.(uint8)
	case Uint16:
		raw.AsUint16()[flat] = value.(uint16)
	case Uint32:
		raw.AsUint32()[flat] = value.(uint32)
	case Uint64:
		raw.AsUint64()[flat] = value.(uint64)
	case Float32:
		raw.AsFloat32()[flat] = value.(float32)
	case Float64:
		raw.AsFloat64()[flat] = value.(float64)
	case Bool:
		raw.AsBool()[flat] = value.(bool)
	case Complex64:
		raw.AsComplex64()[flat] = value.(complex64)
	case Complex128:
		raw.AsComplex128()[flat] = value.(complex128)
	default:
		return fmt.Errorf("as tensor: unsupported dtype %s", raw.DType())
	}
	return nil
}
