// Package tensor provides shapes, element types and the dense host tensors
// used as benchmark inputs.
package tensor

import (
	"fmt"
	"strings"
)

// DataType represents runtime element type information for tensors.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota
	Float64
	Float16
	Int32
	Int64
	Uint8
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float16:
		return 2
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8:
		return 1
	default:
		panic("unknown data type")
	}
}

// IsFloat reports whether the type belongs to the floating-point family.
// Synthetic tensors of these types are halved after generation.
func (dt DataType) IsFloat() bool {
	switch dt {
	case Float16, Float32, Float64:
		return true
	default:
		return false
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// ParseDataType parses a data type name as produced by String.
func ParseDataType(name string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "float16", "half":
		return Float16, nil
	case "float32", "float":
		return Float32, nil
	case "float64", "double":
		return Float64, nil
	case "int32":
		return Int32, nil
	case "int64":
		return Int64, nil
	case "uint8":
		return Uint8, nil
	default:
		return 0, fmt.Errorf("unknown data type %q", name)
	}
}

// floatx is the process-wide default floating type.
var floatx = Float32

// FloatX returns the default floating type used when no element type is given.
func FloatX() DataType {
	return floatx
}

// SetFloatX changes the default floating type.
// Only floating-point types are accepted.
func SetFloatX(dt DataType) error {
	if !dt.IsFloat() {
		return fmt.Errorf("floatx must be a floating-point type, got %s", dt)
	}
	floatx = dt
	return nil
}
