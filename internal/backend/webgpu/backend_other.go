//go:build !windows

package webgpu

import (
	"github.com/born-ml/costgen/internal/tensor"
)

// Backend is unavailable on this platform.
type Backend struct{}

var _ tensor.Backend = (*Backend)(nil)

// New always fails on this platform.
func New() (*Backend, error) {
	return nil, ErrUnavailable
}

// IsAvailable reports false on this platform.
func IsAvailable() bool { return false }

// Name returns the backend name.
func (*Backend) Name() string { return "WebGPU" }

// Device returns the compute device.
func (*Backend) Device() tensor.Device { return tensor.WebGPU }

// Release is a no-op on this platform.
func (*Backend) Release() {}

// MatMul is not available on this platform.
func (*Backend) MatMul(_, _ *tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, ErrUnavailable
}

// Conv is not available on this platform.
func (*Backend) Conv(_, _ *tensor.RawTensor, _ tensor.ConvSpec) (*tensor.RawTensor, error) {
	return nil, ErrUnavailable
}
