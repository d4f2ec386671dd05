// Package webgpu moves tensor data onto a WebGPU device. It maintains a
// single process-wide device and submission queue, created lazily on first
// use; host tensors are uploaded into GPU buffers and read back through a
// staging buffer. Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO
// WebGPU bindings.
package webgpu

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

// Context owns the process-wide WebGPU handles. All device tensors share
// the same device and queue.
type Context struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
}

var (
	ctxOnce sync.Once
	ctx     *Context
	ctxErr  error
)

// Acquire returns the shared device context, initializing it on first call.
// Every caller observes the same context (or the same initialization error);
// the native library is probed exactly once per process.
func Acquire() (*Context, error) {
	ctxOnce.Do(func() {
		ctx, ctxErr = newContext()
	})
	return ctx, ctxErr
}

func newContext() (c *Context, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			c = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance, instanceErr := wgpu.CreateInstance(nil)
	if instanceErr != nil {
		return nil, fmt.Errorf("webgpu: failed to create instance: %w", instanceErr)
	}

	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	return &Context{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    queue,
	}, nil
}

// Queue returns the shared submission queue.
func (c *Context) Queue() *wgpu.Queue {
	return c.queue
}

// Submit submits command buffers to the shared queue.
func (c *Context) Submit(commands ...*wgpu.CommandBuffer) {
	for _, cmd := range commands {
		c.queue.Submit(cmd)
	}
}
