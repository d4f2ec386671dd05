// Copyright 2025 The Loom Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/loom-ml/loom/internal/tensor"
)

// RawTensor is the low-level strided tensor representation.
//
// RawTensor provides:
//   - Shape, stride, and type information via Shape(), Strides(), DType()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - Zero-copy views via Permute() and TransposeView()
//   - Layout classification and compaction via Layout() and AsContiguous()
//   - Reference counting for efficient memory management
//
// Most users should use the high-level Tensor[T, B] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32()  // Type-safe access
//	view, _ := raw.TransposeView()  // Shares buffer, swapped strides
type RawTensor = tensor.RawTensor

// NewRaw creates a contiguous row-major tensor of the given shape and dtype.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// NewRawColMajor creates a contiguous column-major tensor.
func NewRawColMajor(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRawColMajor(shape, dtype, device)
}

// BaseArray is the minimal read-only array protocol AsTensor accepts:
// anything exposing a shape, a dtype, and per-index element access.
type BaseArray = tensor.BaseArray

// AsTensor coerces a value into a RawTensor. Accepted inputs:
//   - *RawTensor (returned unchanged)
//   - BaseArray implementations (copied element-wise)
//   - Go scalars (produce a tensor of shape {1})
//   - nested slices (shape inferred, kinds promoted to a common dtype)
func AsTensor(v any) (*RawTensor, error) {
	return tensor.AsTensor(v)
}

// ShapeErrorKind discriminates shape error cases.
type ShapeErrorKind = tensor.ShapeErrorKind

// Shape error kinds.
const (
	NotAMatrix        ShapeErrorKind = tensor.NotAMatrix
	NotSquare         ShapeErrorKind = tensor.NotSquare
	DimensionMismatch ShapeErrorKind = tensor.DimensionMismatch
)

// ShapeError reports a tensor whose shape does not fit an operation, such
// as a non-matrix argument to a matrix decomposition. Use errors.Is with a
// ShapeError of the desired Kind to test for a category.
type ShapeError = tensor.ShapeError
