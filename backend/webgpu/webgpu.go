// Copyright 2025 The Loom Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu moves Loom tensors onto a WebGPU device.
//
// A single device context is created lazily the first time any caller
// needs it and shared for the life of the process; uploads and read-backs
// all go through its submission queue.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	dev, err := webgpu.ToDevice(raw)
//	if err != nil {
//	    // no WebGPU runtime available
//	}
//	defer dev.Release()
package webgpu

import (
	internalwebgpu "github.com/loom-ml/loom/internal/backend/webgpu"
	"github.com/loom-ml/loom/tensor"
)

// Context owns the process-wide WebGPU device and queue.
type Context = internalwebgpu.Context

// DeviceTensor holds tensor data in GPU memory.
type DeviceTensor = internalwebgpu.DeviceTensor

// Acquire returns the shared device context, initializing it on first call.
func Acquire() (*Context, error) {
	return internalwebgpu.Acquire()
}

// ToDevice uploads a host tensor to the shared WebGPU device.
func ToDevice(t *tensor.RawTensor) (*DeviceTensor, error) {
	return internalwebgpu.ToDevice(t)
}
