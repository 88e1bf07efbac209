// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/costgen/internal/tensor"
)

// RawTensor is a dense row-major buffer with shape and element type.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Typed data views via AsFloat32(), AsInt64(), etc.
//   - Conversion via Cast() and deep copies via Clone()
//
// Example:
//
//	raw, _ := tensor.Synthetic(tensor.Shape{2, 3}, tensor.Float64)
//	data := raw.AsFloat64() // [-1 -0.5 0 0.5 1 1.5]
type RawTensor = tensor.RawTensor

// NewRaw allocates a zeroed tensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}
