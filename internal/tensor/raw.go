package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// tensorBuffer is a reference-counted shared buffer. Views share the
// buffer with their source and must not outlive it; the count tracks
// how many tensors still address the storage.
type tensorBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newTensorBuffer creates a new reference-counted buffer with refCount = 1.
func newTensorBuffer(size int) *tensorBuffer {
	buf := &tensorBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for views and shallow clones).
func (tb *tensorBuffer) addRef() {
	tb.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (tb *tensorBuffer) release() {
	if tb.refCount.Add(-1) == 0 {
		tb.mu.Lock()
		defer tb.mu.Unlock()
		tb.data = nil
	}
}

// isUnique returns true if this buffer has only one reference.
func (tb *tensorBuffer) isUnique() bool {
	return tb.refCount.Load() == 1
}

// RawTensor is the low-level strided tensor representation: an
// ownership-bearing numeric buffer plus shape, per-dimension element
// strides, runtime data type, device, and an element offset for views.
//
// The buffer is exclusively owned unless the tensor is a view, in which
// case it is shared (reference-counted) with the source tensor.
type RawTensor struct {
	buffer *tensorBuffer
	shape  Shape
	stride []int
	dtype  DataType
	device Device
	offset int  // element offset into the buffer, nonzero only for views
	view   bool // true when the buffer is shared with a source tensor
}

// NewRaw creates a new contiguous row-major RawTensor with the given
// shape and type. Memory is allocated and zero-initialized.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return newRawWithStrides(shape, shape.RowMajorStrides(), dtype, device)
}

// NewRawColMajor creates a new contiguous column-major RawTensor.
func NewRawColMajor(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return newRawWithStrides(shape, shape.ColMajorStrides(), dtype, device)
}

func newRawWithStrides(shape Shape, strides []int, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()

	return &RawTensor{
		buffer: newTensorBuffer(byteSize),
		shape:  shape.Clone(),
		stride: strides,
		dtype:  dtype,
		device: device,
		offset: 0,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's per-dimension element strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// Rank returns the number of dimensions.
func (r *RawTensor) Rank() int {
	return len(r.shape)
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// IsView reports whether this tensor shares its buffer with a source tensor.
func (r *RawTensor) IsView() bool {
	return r.view
}

// Layout classifies the tensor's memory layout from its strides:
// contiguous row-major, contiguous column-major, both, or neither.
func (r *RawTensor) Layout() Layout {
	return LayoutOf(r.shape, r.stride)
}

// Data returns the raw byte slice starting at the tensor's offset.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.buffer.data[r.offset*r.dtype.Size():]
}

// typedBase returns the start of the tensor's payload for the unsafe
// accessors below. Zero-dimension tensors own no bytes, so their
// accessors yield empty slices from a nil base.
func (r *RawTensor) typedBase() unsafe.Pointer {
	data := r.buffer.data[r.offset*r.dtype.Size():]
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

// AsInt8 interprets the data as []int8. Panics on dtype mismatch.
func (r *RawTensor) AsInt8() []int8 {
	r.mustDType(Int8)
	return unsafe.Slice((*int8)(r.typedBase()), r.NumElements())
}

// AsInt16 interprets the data as []int16. Panics on dtype mismatch.
func (r *RawTensor) AsInt16() []int16 {
	r.mustDType(Int16)
	return unsafe.Slice((*int16)(r.typedBase()), r.NumElements())
}

// AsInt32 interprets the data as []int32. Panics on dtype mismatch.
func (r *RawTensor) AsInt32() []int32 {
	r.mustDType(Int32)
	return unsafe.Slice((*int32)(r.typedBase()), r.NumElements())
}

// AsInt64 interprets the data as []int64. Panics on dtype mismatch.
func (r *RawTensor) AsInt64() []int64 {
	r.mustDType(Int64)
	return unsafe.Slice((*int64)(r.typedBase()), r.NumElements())
}

// AsUint8 interprets the data as []uint8. Panics on dtype mismatch.
func (r *RawTensor) AsUint8() []uint8 {
	r.mustDType(Uint8)
	return r.buffer.data[r.offset:] // Already []byte = []uint8
}

// AsUint16 interprets the data as []uint16. Panics on dtype mismatch.
func (r *RawTensor) AsUint16() []uint16 {
	r.mustDType(Uint16)
	return unsafe.Slice((*uint16)(r.typedBase()), r.NumElements())
}

// AsUint32 interprets the data as []uint32. Panics on dtype mismatch.
func (r *RawTensor) AsUint32() []uint32 {
	r.mustDType(Uint32)
	return unsafe.Slice((*uint32)(r.typedBase()), r.NumElements())
}

// AsUint64 interprets the data as []uint64. Panics on dtype mismatch.
func (r *RawTensor) AsUint64() []uint64 {
	r.mustDType(Uint64)
	return unsafe.Slice((*uint64)(r.typedBase()), r.NumElements())
}

// AsFloat32 interprets the data as []float32. Panics on dtype mismatch.
func (r *RawTensor) AsFloat32() []float32 {
	r.mustDType(Float32)
	return unsafe.Slice((*float32)(r.typedBase()), r.NumElements())
}

// AsFloat64 interprets the data as []float64. Panics on dtype mismatch.
func (r *RawTensor) AsFloat64() []float64 {
	r.mustDType(Float64)
	return unsafe.Slice((*float64)(r.typedBase()), r.NumElements())
}

// AsBool interprets the data as []bool. Panics on dtype mismatch.
func (r *RawTensor) AsBool() []bool {
	r.mustDType(Bool)
	return unsafe.Slice((*bool)(r.typedBase()), r.NumElements())
}

// AsComplex64 interprets the data as []complex64. Panics on dtype mismatch.
func (r *RawTensor) AsComplex64() []complex64 {
	r.mustDType(Complex64)
	return unsafe.Slice((*complex64)(r.typedBase()), r.NumElements())
}

// AsComplex128 interprets the data as []complex128. Panics on dtype mismatch.
func (r *RawTensor) AsComplex128() []complex128 {
	r.mustDType(Complex128)
	return unsafe.Slice((*complex128)(r.typedBase()), r.NumElements())
}

func (r *RawTensor) mustDType(want DataType) {
	if r.dtype != want {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, want))
	}
}

// Clone creates a shallow copy of the RawTensor sharing the buffer via
// reference counting. Metadata (shape, strides) is copied.
func (r *RawTensor) Clone() *RawTensor {
	r.buffer.addRef()
	return &RawTensor{
		buffer: r.buffer,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset,
		view:   true,
	}
}

// Release decrements the buffer reference count and deallocates the
// storage when it reaches zero.
func (r *RawTensor) Release() {
	r.buffer.release()
}

// IsUnique returns true if this tensor is the only reference to the buffer.
func (r *RawTensor) IsUnique() bool {
	return r.buffer.isUnique()
}

// Permute returns a view of the tensor with its dimensions reordered.
// The view shares the buffer with the source; only shape and strides
// change. A 2-D permute of a row-major matrix yields a column-major view.
func (r *RawTensor) Permute(axes ...int) (*RawTensor, error) {
	ndim := len(r.shape)
	if len(axes) != ndim {
		return nil, fmt.Errorf("permute: got %d axes for rank-%d tensor", len(axes), ndim)
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("permute: axis %d out of range for rank-%d tensor", ax, ndim)
		}
		if seen[ax] {
			return nil, fmt.Errorf("permute: duplicate axis %d", ax)
		}
		seen[ax] = true
	}

	newShape := make(Shape, ndim)
	newStride := make([]int, ndim)
	for i, ax := range axes {
		newShape[i] = r.shape[ax]
		newStride[i] = r.stride[ax]
	}

	r.buffer.addRef()
	return &RawTensor{
		buffer: r.buffer,
		shape:  newShape,
		stride: newStride,
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset,
		view:   true,
	}, nil
}

// TransposeView returns a zero-copy transposed view of a 2-D tensor.
func (r *RawTensor) TransposeView() (*RawTensor, error) {
	if len(r.shape) != 2 {
		return nil, fmt.Errorf("transpose view: rank-2 tensor required, got rank %d", len(r.shape))
	}
	return r.Permute(1, 0)
}

// AsContiguous returns a new tensor with a freshly allocated buffer whose
// element order matches the requested layout, even if the source uses
// neither contiguous order. The source is never mutated.
//
// order must be LayoutRowMajor or LayoutColMajor.
func (r *RawTensor) AsContiguous(order Layout) (*RawTensor, error) {
	var (
		out *RawTensor
		err error
	)
	switch order {
	case LayoutRowMajor:
		out, err = NewRaw(r.shape, r.dtype, r.device)
	case LayoutColMajor:
		out, err = NewRawColMajor(r.shape, r.dtype, r.device)
	default:
		return nil, fmt.Errorf("as contiguous: order must be row-major or column-major, got %s", order)
	}
	if err != nil {
		return nil, err
	}

	es := r.dtype.Size()
	src := r.Data()
	dst := out.Data()
	n := r.NumElements()
	if n == 0 {
		return out, nil
	}
	if r.Rank() == 0 {
		copy(dst[:es], src[:es])
		return out, nil
	}

	idx := make([]int, r.Rank())
	for flat := 0; flat < n; flat++ {
		so := IndicesToFlat(idx, r.stride) * es
		do := IndicesToFlat(idx, out.stride) * es
		copy(dst[do:do+es], src[so:so+es])
		NextIndex(idx, r.shape)
	}
	return out, nil
}

// ZeroAt zeroes the element at the given multi-index, independent of the
// element type (the all-zero byte pattern is zero for every supported kind).
func (r *RawTensor) ZeroAt(indices ...int) {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
	}
	es := r.dtype.Size()
	off := IndicesToFlat(indices, r.stride) * es
	data := r.Data()
	for i := off; i < off+es; i++ {
		data[i] = 0
	}
}

// CopyElem copies the element at the source multi-index into the
// destination tensor at the destination multi-index. Both tensors must
// share the same dtype.
func (r *RawTensor) CopyElem(dst *RawTensor, srcIdx, dstIdx []int) {
	if r.dtype != dst.dtype {
		panic(fmt.Sprintf("copy elem: dtype mismatch %s vs %s", r.dtype, dst.dtype))
	}
	es := r.dtype.Size()
	so := IndicesToFlat(srcIdx, r.stride) * es
	do := IndicesToFlat(dstIdx, dst.stride) * es
	copy(dst.Data()[do:do+es], r.Data()[so:so+es])
}
