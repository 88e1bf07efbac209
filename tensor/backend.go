// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/costgen/internal/tensor"

// Backend is a compute backend executing the benchmarked kernels.
//
// Implementations:
//   - backend/cpu: Pure Go, im2col convolutions
//   - backend/webgpu: GPU matmul via WebGPU (Windows)
type Backend = tensor.Backend

// ConvSpec configures a convolution kernel call.
type ConvSpec = tensor.ConvSpec
