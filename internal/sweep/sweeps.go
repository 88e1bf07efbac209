package sweep

import (
	"fmt"

	"github.com/born-ml/costgen/internal/bench"
	"github.com/born-ml/costgen/internal/engine"
	"github.com/born-ml/costgen/internal/tensor"
)

// DotSizes are the square matrix extents of the dot sweep.
var DotSizes = []int{64, 512, 1024, 2048}

// DotSweep returns one input set per entry of DotSizes, each a pair of
// square matrices with no options.
func DotSweep() ([]bench.InputSet, error) {
	sets := make([]bench.InputSet, 0, len(DotSizes))
	for _, n := range DotSizes {
		a, err := tensor.M(n, n)
		if err != nil {
			return nil, fmt.Errorf("dot sweep: %w", err)
		}
		b, err := tensor.M(n, n)
		if err != nil {
			return nil, fmt.Errorf("dot sweep: %w", err)
		}
		sets = append(sets, bench.InputSet{Operands: []*tensor.RawTensor{a, b}})
	}
	return sets, nil
}

// Conv1DParams are the 1-D convolution sweep points.
func Conv1DParams() []bench.ConvParams {
	base := func(n, ic, oc, is, ks int) bench.ConvParams {
		return bench.ConvParams{
			Batch: n, InChannels: ic, OutChannels: oc,
			Spatial: []int{is}, Kernel: []int{ks},
			Strides:    []int{1},
			Padding:    engine.PaddingValid,
			DataFormat: engine.ChannelsLast,
		}
	}
	return []bench.ConvParams{
		base(1, 3, 1, 8, 2),
		base(2, 1, 4, 8, 3),
	}
}

// Conv2DParams are the 2-D convolution sweep points.
func Conv2DParams() []bench.ConvParams {
	base := func(n, ic, oc int, is, ks []int, layout engine.DataFormat) bench.ConvParams {
		return bench.ConvParams{
			Batch: n, InChannels: ic, OutChannels: oc,
			Spatial: is, Kernel: ks,
			Strides:    []int{1, 1},
			Padding:    engine.PaddingValid,
			DataFormat: layout,
		}
	}
	return []bench.ConvParams{
		base(3, 3, 1, []int{9, 8}, []int{2, 2}, engine.ChannelsLast),
		base(1, 1, 3, []int{5, 4}, []int{3, 3}, engine.ChannelsFirst),
		base(2, 4, 2, []int{5, 5}, []int{2, 2}, engine.ChannelsFirst),
	}
}

// Conv1DSweep builds the input sets of Conv1DParams.
func Conv1DSweep() ([]bench.InputSet, error) {
	return convSweep("conv1d", Conv1DParams())
}

// Conv2DSweep builds the input sets of Conv2DParams.
func Conv2DSweep() ([]bench.InputSet, error) {
	return convSweep("conv2d", Conv2DParams())
}

func convSweep(name string, params []bench.ConvParams) ([]bench.InputSet, error) {
	sets := make([]bench.InputSet, len(params))
	for i, p := range params {
		set, err := bench.ConvInputs(p)
		if err != nil {
			return nil, fmt.Errorf("%s sweep: %w", name, err)
		}
		sets[i] = set
	}
	return sets, nil
}
