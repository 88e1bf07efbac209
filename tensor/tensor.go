// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/costgen/internal/tensor"
)

// DataType is the element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float16 DataType = tensor.Float16
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
)

// Device is where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// ErrInvalidShape is returned for shapes with non-positive extents.
var ErrInvalidShape = tensor.ErrInvalidShape

// Synthetic returns the deterministic tensor of the given shape and type.
func Synthetic(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.Synthetic(shape, dtype)
}

// M returns the synthetic tensor with the given dimensions in the default
// floating type.
//
// Example:
//
//	m, _ := tensor.M(2, 2) // [[-1, -0.5], [0, 0.5]]
func M(dims ...int) (*RawTensor, error) {
	return tensor.M(dims...)
}

// ParseDataType returns the data type for a name such as "float32" or "half".
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}

// FloatX returns the default floating type.
func FloatX() DataType {
	return tensor.FloatX()
}

// SetFloatX changes the default floating type. Non-float types are rejected.
func SetFloatX(dt DataType) error {
	return tensor.SetFloatX(dt)
}
