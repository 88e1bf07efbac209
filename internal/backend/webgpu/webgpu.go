// Package webgpu implements GPU kernels over WebGPU.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
// The GPU path is only built on windows; other platforms get a stub whose
// constructor returns ErrUnavailable.
package webgpu

import "errors"

// ErrUnavailable is returned when no WebGPU adapter can be used.
var ErrUnavailable = errors.New("webgpu: not available")
