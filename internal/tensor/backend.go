package tensor

// Backend defines the eager compute kernels a device must provide.
// Engines wrap a Backend into deferred, repeatedly evaluable graphs.
//
// Implementations:
//   - CPU: pure Go im2col kernels
//   - WebGPU: WGSL compute shaders (windows)
type Backend interface {
	// Name returns a human-readable backend name.
	Name() string

	// Device returns the device results are produced on.
	Device() Device

	// MatMul computes (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) (*RawTensor, error)

	// Conv computes a convolution whose spatial rank is len(kernel.Shape())-2.
	// The kernel is laid out as [spatial..., in_channels, out_channels].
	Conv(input, kernel *RawTensor, spec ConvSpec) (*RawTensor, error)
}

// ConvSpec carries the non-tensor parameters of a convolution.
type ConvSpec struct {
	// Strides per spatial axis. Empty means 1 everywhere.
	Strides []int

	// SamePadding pads so that out = ceil(in / stride); otherwise no padding
	// is applied ("valid").
	SamePadding bool

	// ChannelsFirst selects [N, C, spatial...] input and output layout;
	// otherwise [N, spatial..., C].
	ChannelsFirst bool
}

// Stride returns the stride for spatial axis i.
func (s ConvSpec) Stride(i int) int {
	if i < len(s.Strides) {
		return s.Strides[i]
	}
	return 1
}
