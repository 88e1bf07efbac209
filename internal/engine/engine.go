// Package engine defines the capability set benchmarks are executed against:
// placeholders describing a graph signature, variables holding bound input
// values, operation entry points building deferred graphs, and Eval forcing
// execution.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/born-ml/costgen/internal/tensor"
)

var (
	// ErrUnavailable is returned when an engine cannot run on this system.
	ErrUnavailable = errors.New("engine unavailable")

	// ErrUnknown is returned by Open for unregistered engine names.
	ErrUnknown = errors.New("unknown engine")
)

// Padding selects how convolutions treat borders.
type Padding string

// Padding modes.
const (
	PaddingValid Padding = "valid"
	PaddingSame  Padding = "same"
)

// DataFormat selects where the channel axis lives.
// The empty value means channels last.
type DataFormat string

// Data formats.
const (
	ChannelsFirst DataFormat = "channels_first"
	ChannelsLast  DataFormat = "channels_last"
)

// Options are the named configuration arguments of an operation.
// The zero value is the empty configuration.
type Options struct {
	Strides    []int
	Padding    Padding
	DataFormat DataFormat
}

// IsZero reports whether no option is set.
func (o Options) IsZero() bool {
	return len(o.Strides) == 0 && o.Padding == "" && o.DataFormat == ""
}

// String renders the options in key=value form.
func (o Options) String() string {
	if o.IsZero() {
		return "{}"
	}
	var parts []string
	if len(o.Strides) > 0 {
		parts = append(parts, fmt.Sprintf("strides=%v", o.Strides))
	}
	if o.Padding != "" {
		parts = append(parts, "padding="+string(o.Padding))
	}
	if o.DataFormat != "" {
		parts = append(parts, "data_format="+string(o.DataFormat))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// convSpec translates options into kernel parameters for the given spatial rank.
func (o Options) convSpec(rank int) (tensor.ConvSpec, error) {
	spec := tensor.ConvSpec{Strides: o.Strides}
	if len(o.Strides) > rank {
		return spec, fmt.Errorf("%d strides for %d spatial axes", len(o.Strides), rank)
	}

	switch o.Padding {
	case "", PaddingValid:
	case PaddingSame:
		spec.SamePadding = true
	default:
		return spec, fmt.Errorf("unknown padding %q", o.Padding)
	}

	switch o.DataFormat {
	case "", ChannelsLast:
	case ChannelsFirst:
		spec.ChannelsFirst = true
	default:
		return spec, fmt.Errorf("unknown data format %q", o.DataFormat)
	}
	return spec, nil
}

// Placeholder is a symbolic, shape-typed input slot of a graph signature.
type Placeholder struct {
	Shape tensor.Shape
	DType tensor.DataType
}

// Variable is a concrete value bound to an engine for execution.
type Variable struct {
	Value *tensor.RawTensor
}

// Shape returns the shape of the bound value.
func (v *Variable) Shape() tensor.Shape {
	return v.Value.Shape()
}

// Graph is a deferred computation. Nothing runs until Eval is called, and
// every call to Eval runs the computation again.
type Graph interface {
	Eval() (*tensor.RawTensor, error)
}

// Operation builds a deferred graph from positional operands and options.
// Engine entry points such as Engine.Dot have this signature.
type Operation func(operands []*Variable, opts Options) (Graph, error)

// Engine is the backend capability set.
type Engine interface {
	// Name identifies the engine in reports.
	Name() string

	// Placeholder creates a symbolic input of the given shape.
	Placeholder(shape tensor.Shape, dtype tensor.DataType) (*Placeholder, error)

	// Variable binds t as a concrete operand of element type dtype.
	Variable(t *tensor.RawTensor, dtype tensor.DataType) (*Variable, error)

	// Dot multiplies two matrices.
	Dot(operands []*Variable, opts Options) (Graph, error)

	// Conv1D convolves an input with a [width, in, out] kernel.
	Conv1D(operands []*Variable, opts Options) (Graph, error)

	// Conv2D convolves an input with a [height, width, in, out] kernel.
	Conv2D(operands []*Variable, opts Options) (Graph, error)
}

// GraphFunc adapts a function to the Graph interface.
type GraphFunc func() (*tensor.RawTensor, error)

// Eval calls f.
func (f GraphFunc) Eval() (*tensor.RawTensor, error) {
	return f()
}
