// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the deterministic synthetic tensors that costgen
// benchmarks run on.
//
// # Overview
//
// Every benchmark input is produced by [Synthetic]: the value at flat index i
// is i-2, halved for floating-point element types, laid out row-major. Two
// tensors requested with the same shape and element type are byte-identical,
// so a sweep measured twice sees exactly the same data.
//
// # Basic Usage
//
//	import "github.com/born-ml/costgen/tensor"
//
//	func main() {
//	    m, _ := tensor.M(2, 2)       // default floating type
//	    fmt.Println(m.AsFloat32())   // [-1 -0.5 0 0.5]
//
//	    ids, _ := tensor.Synthetic(tensor.Shape{4}, tensor.Int32)
//	    fmt.Println(ids.AsInt32())   // [-2 -1 0 1]
//	}
//
// # Supported Data Types
//
//   - float16, float32, float64 (halved)
//   - int32, int64, uint8 (uint8 wraps: -2 becomes 254)
//
// The default floating type is float32 and can be changed with [SetFloatX].
package tensor
