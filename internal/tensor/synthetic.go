package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// seqStart is the first value of the synthetic sequence.
const seqStart = -2

// Synthetic makes a reproducible test tensor of the given shape and type.
//
// The element at flat row-major index i is i-2. Floating-point types are
// halved afterwards so the data exercises fractional arithmetic:
//
//	Synthetic(Shape{2, 2}, Float32) // [[-1, -0.5], [0, 0.5]]
//
// Integer types take i-2 through Go integer conversion, so Uint8 wraps
// (-2 becomes 254). Shapes with non-positive extents return ErrInvalidShape.
func Synthetic(shape Shape, dtype DataType) (*RawTensor, error) {
	t, err := NewRaw(shape, dtype, CPU)
	if err != nil {
		return nil, fmt.Errorf("synthetic %s tensor %v: %w", dtype, shape, err)
	}

	switch dtype {
	case Float16:
		dst := t.AsFloat16()
		for i := range dst {
			dst[i] = float16.Fromfloat32(float32(i+seqStart) / 2)
		}
	case Float32:
		fillHalved(t.AsFloat32())
	case Float64:
		fillHalved(t.AsFloat64())
	case Int32:
		fillSequence(t.AsInt32())
	case Int64:
		fillSequence(t.AsInt64())
	case Uint8:
		fillSequence(t.AsUint8())
	default:
		return nil, fmt.Errorf("synthetic: unsupported dtype %s", dtype)
	}
	return t, nil
}

// M makes a synthetic matrix whose dimensions are the supplied arguments,
// using the default floating type.
func M(dims ...int) (*RawTensor, error) {
	return Synthetic(Shape(dims), FloatX())
}

func fillHalved[T float32 | float64](dst []T) {
	for i := range dst {
		dst[i] = T(i+seqStart) / 2
	}
}

func fillSequence[T int32 | int64 | uint8](dst []T) {
	for i := range dst {
		dst[i] = T(i + seqStart) //nolint:gosec // G115: uint8 wraps negative values
	}
}
