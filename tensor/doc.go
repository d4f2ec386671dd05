// Copyright 2025 The Loom Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe strided tensor operations for the Loom
// library.
//
// # Overview
//
// Tensors are the fundamental data structure in Loom. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Strided N-dimensional views (transpose and permute without copying)
//   - NumPy-style broadcasting
//   - Device abstraction (CPU, WebGPU)
//
// # Basic Usage
//
//	import (
//	    "github.com/loom-ml/loom/tensor"
//	    "github.com/loom-ml/loom/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//
//	    // Tensor operations
//	    z := x.Add(y)
//	    result := x.MatMul(y.T())
//	}
//
// # Supported Data Types
//
// The DType constraint admits the full numeric kind set: int8 through
// int64, uint8 through uint64, float32, float64, bool, complex64, and
// complex128. Element-wise backend operations cover float32, float64,
// int32, and int64; the dense linear algebra kernels in package linalg
// accept float32 and float64.
//
// # Memory Layout
//
// Every tensor carries explicit strides. A freshly allocated tensor is
// contiguous row-major; transposing or permuting produces a view that
// shares the buffer with adjusted strides. Layout() classifies the current
// strides, and Contiguous() produces a compact duplicate in a requested
// order without mutating the source.
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, backend)  // (3, 1)
//	b := tensor.Ones[float32](tensor.Shape{3, 4}, backend)   // (3, 4)
//	c := a.Add(b)                                            // (3, 4)
package tensor
