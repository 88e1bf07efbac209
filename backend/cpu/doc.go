// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend.
//
// # Overview
//
// This package implements:
//   - Naive 2-D matrix multiplication with typed float and integer paths
//   - Keras-style 1-D and 2-D convolution via im2col
//   - channels_last and channels_first layouts, valid and same padding
//
// Other element types are computed in float64 and narrowed back.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/costgen/backend/cpu"
//	    "github.com/born-ml/costgen/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    a, _ := tensor.M(64, 64)
//	    c, err := backend.MatMul(a, a)
//	}
package cpu
