package bench

import (
	"fmt"

	"github.com/born-ml/costgen/internal/engine"
	"github.com/born-ml/costgen/internal/tensor"
)

// InputSet is the concrete operands plus configuration for one benchmark
// execution. Operands are passed positionally; Options are passed as the
// operation's named configuration.
type InputSet struct {
	Operands []*tensor.RawTensor
	Options  engine.Options
}

// Shapes returns the operand shapes in order.
func (s InputSet) Shapes() []tensor.Shape {
	shapes := make([]tensor.Shape, len(s.Operands))
	for i, op := range s.Operands {
		shapes[i] = op.Shape()
	}
	return shapes
}

// ConvParams describes one convolution sweep point.
type ConvParams struct {
	Batch       int
	InChannels  int
	OutChannels int
	Spatial     []int // input extents, one per spatial axis
	Kernel      []int // kernel extents, same rank as Spatial
	Strides     []int
	Padding     engine.Padding
	DataFormat  engine.DataFormat
}

// ConvInputs builds the input set of a convolution: the input tensor, the
// kernel tensor and the options, in that order.
//
// The kernel has shape Kernel ++ [InChannels, OutChannels]. The input has
// shape [Batch, InChannels] ++ Spatial for channels-first data and
// [Batch] ++ Spatial ++ [InChannels] otherwise. Both use the default
// floating type.
func ConvInputs(p ConvParams) (InputSet, error) {
	if len(p.Spatial) != len(p.Kernel) {
		return InputSet{}, fmt.Errorf("conv inputs: %d spatial extents but %d kernel extents", len(p.Spatial), len(p.Kernel))
	}

	kernel, err := tensor.Synthetic(tensor.Shape(p.Kernel).Concat(p.InChannels, p.OutChannels), tensor.FloatX())
	if err != nil {
		return InputSet{}, fmt.Errorf("conv inputs: kernel: %w", err)
	}

	var inputShape tensor.Shape
	if p.DataFormat == engine.ChannelsFirst {
		inputShape = tensor.Shape{p.Batch, p.InChannels}.Concat(p.Spatial...)
	} else {
		inputShape = tensor.Shape{p.Batch}.Concat(p.Spatial...).Concat(p.InChannels)
	}
	input, err := tensor.Synthetic(inputShape, tensor.FloatX())
	if err != nil {
		return InputSet{}, fmt.Errorf("conv inputs: input: %w", err)
	}

	return InputSet{
		Operands: []*tensor.RawTensor{input, kernel},
		Options: engine.Options{
			Strides:    append([]int(nil), p.Strides...),
			Padding:    p.Padding,
			DataFormat: p.DataFormat,
		},
	}, nil
}
