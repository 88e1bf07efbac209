// Package cpu implements pure Go compute kernels for the benchmark engines.
package cpu

import (
	"github.com/born-ml/costgen/internal/parallel"
	"github.com/born-ml/costgen/internal/tensor"
)

// CPUBackend implements tensor kernels on the host CPU.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

var _ tensor.Backend = (*CPUBackend)(nil)

// New creates a new CPU backend that splits output rows across all CPUs.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with explicit parallelism.
// Use parallel.Sequential() for single-threaded kernels.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}
