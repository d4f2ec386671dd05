// Copyright 2025 The Loom Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU compute backend for Loom tensors.
//
// The backend covers element-wise arithmetic with NumPy-style broadcasting,
// scalar operations, comparisons, boolean logic, dtype casts, and 2-D
// matrix multiplication. Float32 and Float64 matrix products go through
// the gonum BLAS gemm kernel; Int32 and Int64 use a portable loop.
package cpu
