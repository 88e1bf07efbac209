//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"
	"sync"
	"unsafe"

	"github.com/born-ml/costgen/internal/backend/cpu"
	"github.com/born-ml/costgen/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
)

// tileSize is the workgroup edge of matmulShader.
const tileSize = 16

// matmulShader computes C = A @ B with one invocation per output element.
const matmulShader = `
@group(0) @binding(0) var<storage, read> a: array<f32>;
@group(0) @binding(1) var<storage, read> b: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Dims {
    M: u32,
    K: u32,
    N: u32,
}
@group(0) @binding(3) var<uniform> dims: Dims;

@compute @workgroup_size(16, 16)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
    let row = id.y;
    let col = id.x;
    if (row >= dims.M || col >= dims.N) {
        return;
    }

    var acc: f32 = 0.0;
    for (var k: u32 = 0u; k < dims.K; k = k + 1u) {
        acc = acc + a[row * dims.K + k] * b[k * dims.N + col];
    }
    result[row * dims.N + col] = acc;
}
`

// kernel is a compiled shader and its compute pipeline.
type kernel struct {
	module   *wgpu.ShaderModule
	pipeline *wgpu.ComputePipeline
}

// Backend runs benchmark kernels on a WebGPU device.
//
// MatMul runs matmulShader. Conv performs im2col on the host and sends the
// patch product through the same shader, so every timed multiply-accumulate
// happens on the GPU. Only float32 operands are supported.
type Backend struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	mu      sync.Mutex
	kernels map[string]*kernel
}

var _ tensor.Backend = (*Backend)(nil)

// New acquires a high-performance adapter and its device.
// Returns an error wrapping ErrUnavailable when no device can be used.
func New() (backend *Backend, err error) {
	// wgpu panics when the native library is missing.
	defer func() {
		if r := recover(); r != nil {
			backend = nil
			err = fmt.Errorf("%w: native library not available: %v", ErrUnavailable, r)
		}
	}()

	b := &Backend{kernels: make(map[string]*kernel)}
	b.instance = wgpu.CreateInstance(nil)

	b.adapter, err = b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		b.Release()
		return nil, fmt.Errorf("%w: request adapter: %v", ErrUnavailable, err)
	}

	b.device, err = b.adapter.RequestDevice(nil)
	if err != nil {
		b.Release()
		return nil, fmt.Errorf("%w: request device: %v", ErrUnavailable, err)
	}

	if b.queue = b.device.GetQueue(); b.queue == nil {
		b.Release()
		return nil, fmt.Errorf("%w: device has no queue", ErrUnavailable)
	}
	return b, nil
}

// IsAvailable reports whether an adapter can be acquired.
func IsAvailable() (available bool) {
	defer func() {
		if recover() != nil {
			available = false
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()
	return true
}

// Name returns the backend name.
func (b *Backend) Name() string { return "WebGPU" }

// Device returns the compute device.
func (b *Backend) Device() tensor.Device { return tensor.WebGPU }

// Release frees cached pipelines and the device. It is safe to call on a
// partially initialized backend.
func (b *Backend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, k := range b.kernels {
		k.pipeline.Release()
		k.module.Release()
	}
	b.kernels = nil

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

// Conv lowers the convolution to a patch matrix on the host and multiplies
// it with the kernel on the GPU.
func (b *Backend) Conv(input, kern *tensor.RawTensor, spec tensor.ConvSpec) (*tensor.RawTensor, error) {
	if err := float32Only("conv", input, kern); err != nil {
		return nil, err
	}
	l, err := cpu.Lower(input, kern, spec)
	if err != nil {
		return nil, err
	}
	rows, err := b.MatMul(l.Cols, l.Kernel)
	if err != nil {
		return nil, err
	}
	return l.Scatter(rows, tensor.WebGPU)
}

// MatMul computes (M, K) @ (K, N) -> (M, N) on the GPU.
func (b *Backend) MatMul(a, other *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := float32Only("matmul", a, other); err != nil {
		return nil, err
	}
	as, bs := a.Shape(), other.Shape()
	if len(as) != 2 || len(bs) != 2 || as[1] != bs[0] {
		return nil, fmt.Errorf("webgpu: matmul: incompatible shapes %v @ %v", as, bs)
	}
	m, k, n := as[0], as[1], bs[1]

	out, err := tensor.NewRaw(tensor.Shape{m, n}, tensor.Float32, tensor.WebGPU)
	if err != nil {
		return nil, err
	}

	pipeline := b.kernel("matmul", matmulShader)

	lhs := b.upload(a.Data(), wgpu.BufferUsageStorage)
	defer lhs.Release()
	rhs := b.upload(other.Data(), wgpu.BufferUsageStorage)
	defer rhs.Release()
	//nolint:gosec // G115: extents are validated positive
	dims := b.uniform(uint32(m), uint32(k), uint32(n))
	defer dims.Release()

	//nolint:gosec // G115: ByteSize is non-negative
	outSize := uint64(out.ByteSize())
	result := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc,
		Size:  outSize,
	})
	defer result.Release()

	//nolint:gosec // G115: ByteSize is non-negative
	group := b.device.CreateBindGroupSimple(pipeline.GetBindGroupLayout(0), []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, lhs, 0, uint64(a.ByteSize())),
		wgpu.BufferBindingEntry(1, rhs, 0, uint64(other.ByteSize())),
		wgpu.BufferBindingEntry(2, result, 0, outSize),
		wgpu.BufferBindingEntry(3, dims, 0, 16),
	})
	defer group.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, group, nil)
	//nolint:gosec // G115: extents are validated positive
	pass.DispatchWorkgroups(uint32(ceilDiv(n, tileSize)), uint32(ceilDiv(m, tileSize)), 1)
	pass.End()
	b.queue.Submit(encoder.Finish(nil))

	if err := b.download(result, out.Data()); err != nil {
		return nil, err
	}
	return out, nil
}

func float32Only(op string, ts ...*tensor.RawTensor) error {
	for _, t := range ts {
		if t.DType() != tensor.Float32 {
			return fmt.Errorf("webgpu: %s: only float32 is supported, got %s", op, t.DType())
		}
	}
	return nil
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// kernel returns the cached pipeline for name, compiling code on first use.
func (b *Backend) kernel(name, code string) *wgpu.ComputePipeline {
	b.mu.Lock()
	defer b.mu.Unlock()

	if k, ok := b.kernels[name]; ok {
		return k.pipeline
	}
	module := b.device.CreateShaderModuleWGSL(code)
	k := &kernel{
		module:   module,
		pipeline: b.device.CreateComputePipelineSimple(nil, module, "main"),
	}
	b.kernels[name] = k
	return k.pipeline
}

// upload creates a buffer holding a copy of data.
func (b *Backend) upload(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	// Buffer sizes must be 4-byte aligned.
	size := (uint64(len(data)) + 3) &^ 3
	buf := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})
	//nolint:gosec // mapped range is size bytes long
	copy(unsafe.Slice((*byte)(buf.GetMappedRange(0, size)), size), data)
	buf.Unmap()
	return buf
}

// uniform packs words into a 16-byte aligned uniform buffer.
func (b *Backend) uniform(words ...uint32) *wgpu.Buffer {
	data := make([]byte, (len(words)*4+15)&^15)
	for i, w := range words {
		binary.LittleEndian.PutUint32(data[i*4:], w)
	}
	return b.upload(data, wgpu.BufferUsageUniform)
}

// download copies src into dst through a mappable staging buffer.
func (b *Backend) download(src *wgpu.Buffer, dst []byte) error {
	size := uint64(len(dst))
	staging := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer staging.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(src, 0, staging, 0, size)
	b.queue.Submit(encoder.Finish(nil))

	if err := staging.MapAsync(b.device, wgpu.MapModeRead, 0, size); err != nil {
		return fmt.Errorf("webgpu: map result: %w", err)
	}
	//nolint:gosec // mapped range is size bytes long
	copy(dst, unsafe.Slice((*byte)(staging.GetMappedRange(0, size)), size))
	staging.Unmap()
	return nil
}
