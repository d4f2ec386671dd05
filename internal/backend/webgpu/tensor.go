package webgpu

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/loom-ml/loom/internal/tensor"
)

// DeviceTensor holds tensor data in GPU memory. The shape, strides, and
// dtype mirror the host tensor it was uploaded from; the bytes live in a
// storage buffer on the shared device.
type DeviceTensor struct {
	buffer     *wgpu.Buffer
	shape      tensor.Shape
	strides    []int
	dtype      tensor.DataType
	bufferSize uint64 // buffer sizes are padded to 4-byte multiples
	byteSize   int    // unpadded payload size
	ctx        *Context
}

// ToDevice uploads a host tensor to the shared WebGPU device. Views are
// compacted to row-major before upload so the device buffer is contiguous.
func ToDevice(t *tensor.RawTensor) (*DeviceTensor, error) {
	c, err := Acquire()
	if err != nil {
		return nil, err
	}
	return c.ToDevice(t)
}

// ToDevice uploads a host tensor into a new storage buffer on this context.
func (c *Context) ToDevice(t *tensor.RawTensor) (*DeviceTensor, error) {
	host, err := tensor.EnsureLayout(t, tensor.LayoutRowMajor)
	if err != nil {
		return nil, fmt.Errorf("webgpu: compacting tensor for upload: %w", err)
	}

	data := host.Data()[:host.ByteSize()]
	size := uint64(len(data))
	alignedSize := (size + 3) &^ 3 // WebGPU buffer sizes must be 4-byte multiples

	buffer := c.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:             alignedSize,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, alignedSize)
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), alignedSize)
	copy(mappedSlice, data)
	buffer.Unmap()

	return &DeviceTensor{
		buffer:     buffer,
		shape:      host.Shape().Clone(),
		strides:    append([]int(nil), host.Strides()...),
		dtype:      host.DType(),
		bufferSize: alignedSize,
		byteSize:   len(data),
		ctx:        c,
	}, nil
}

// Shape returns the tensor dimensions.
func (t *DeviceTensor) Shape() tensor.Shape {
	return t.shape
}

// DType returns the element type.
func (t *DeviceTensor) DType() tensor.DataType {
	return t.dtype
}

// Strides returns the element strides of the device buffer.
func (t *DeviceTensor) Strides() []int {
	return t.strides
}

// Buffer exposes the underlying storage buffer for compute passes.
func (t *DeviceTensor) Buffer() *wgpu.Buffer {
	return t.buffer
}

// ReadBack copies the device buffer into a new host tensor.
// Uses a staging buffer since storage buffers can't be mapped directly.
func (t *DeviceTensor) ReadBack() (*tensor.RawTensor, error) {
	c := t.ctx

	staging := c.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  t.bufferSize,
	})
	defer staging.Release()

	encoder := c.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(t.buffer, 0, staging, 0, t.bufferSize)
	cmdBuffer := encoder.Finish(nil)
	c.queue.Submit(cmdBuffer)

	if err := staging.MapAsync(c.device, wgpu.MapModeRead, 0, t.bufferSize); err != nil {
		return nil, fmt.Errorf("webgpu: failed to map staging buffer: %w", err)
	}

	mappedPtr := staging.GetMappedRange(0, t.bufferSize)
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), t.bufferSize)

	result, err := tensor.NewRaw(t.shape, t.dtype, tensor.WebGPU)
	if err != nil {
		staging.Unmap()
		return nil, err
	}
	copy(result.Data(), mappedSlice[:t.byteSize])
	staging.Unmap()

	return result, nil
}

// Release frees the device buffer. The tensor must not be used afterwards.
func (t *DeviceTensor) Release() {
	if t.buffer != nil {
		t.buffer.Release()
		t.buffer = nil
	}
}
