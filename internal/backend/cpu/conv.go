package cpu

import (
	"fmt"

	"github.com/born-ml/costgen/internal/tensor"
)

// convGeom holds the resolved geometry of a 1D or 2D convolution.
// 1D convolutions are run as 2D with a unit height.
type convGeom struct {
	N, C, H, W    int // batch, input channels, input height, input width
	OC            int // output channels
	KH, KW        int // kernel height, kernel width
	SH, SW        int // strides
	PadH, PadW    int // leading padding
	HOut, WOut    int // output extents
	channelsFirst bool
	outSpatial    []int
}

// Conv performs a 1D or 2D convolution using the im2col algorithm.
//
// Kernel shape: [K_w, C_in, C_out] (1D) or [K_h, K_w, C_in, C_out] (2D).
// Input shape: [N, spatial..., C_in] (channels last) or [N, C_in, spatial...]
// (channels first). The output uses the input layout with C_out channels.
//
// Algorithm: Im2col
//  1. Transform input patches into rows [N*H_out*W_out, K_h*K_w*C_in]
//  2. Kernel is already a [K_h*K_w*C_in, C_out] matrix in row-major order
//  3. Multiply
//  4. Scatter rows into the output layout
func (cpu *CPUBackend) Conv(input, kernel *tensor.RawTensor, spec tensor.ConvSpec) (*tensor.RawTensor, error) {
	l, err := Lower(input, kernel, spec)
	if err != nil {
		return nil, err
	}
	rows, err := cpu.MatMul(l.Cols, l.Kernel)
	if err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}
	return l.Scatter(rows, cpu.device)
}

// Lowered is a convolution rewritten as the single matrix product
// Cols @ Kernel. Any backend with a MatMul can finish it with Scatter.
type Lowered struct {
	// Cols holds one input patch per row: [N*H_out*W_out, K_h*K_w*C_in].
	Cols *tensor.RawTensor
	// Kernel is the kernel viewed as [K_h*K_w*C_in, C_out].
	Kernel *tensor.RawTensor

	g convGeom
}

// Lower validates a convolution and performs its im2col step.
func Lower(input, kernel *tensor.RawTensor, spec tensor.ConvSpec) (*Lowered, error) {
	g, err := resolveGeom(input.Shape(), kernel.Shape(), spec)
	if err != nil {
		return nil, err
	}
	if input.DType() != kernel.DType() {
		return nil, fmt.Errorf("conv: dtype mismatch input %s, kernel %s", input.DType(), kernel.DType())
	}

	colWidth := g.KH * g.KW * g.C
	kmat, err := kernel.Reshape(tensor.Shape{colWidth, g.OC})
	if err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}
	cols, err := tensor.NewRaw(tensor.Shape{g.N * g.HOut * g.WOut, colWidth}, input.DType(), input.Device())
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create patch matrix: %w", err)
	}

	switch input.DType() {
	case tensor.Float16:
		im2col(cols.AsFloat16(), input.AsFloat16(), g)
	case tensor.Float32:
		im2col(cols.AsFloat32(), input.AsFloat32(), g)
	case tensor.Float64:
		im2col(cols.AsFloat64(), input.AsFloat64(), g)
	case tensor.Int32:
		im2col(cols.AsInt32(), input.AsInt32(), g)
	case tensor.Int64:
		im2col(cols.AsInt64(), input.AsInt64(), g)
	case tensor.Uint8:
		im2col(cols.AsUint8(), input.AsUint8(), g)
	default:
		return nil, fmt.Errorf("conv: unsupported dtype %s", input.DType())
	}

	return &Lowered{Cols: cols, Kernel: kmat, g: g}, nil
}

// OutputShape returns the shape Scatter produces.
func (l *Lowered) OutputShape() tensor.Shape {
	return l.g.outputShape()
}

// Scatter moves the product rows [N*H_out*W_out, C_out] into the output
// layout on device.
func (l *Lowered) Scatter(rows *tensor.RawTensor, device tensor.Device) (*tensor.RawTensor, error) {
	want := tensor.Shape{l.Cols.Shape()[0], l.g.OC}
	if !rows.Shape().Equal(want) {
		return nil, fmt.Errorf("conv: product has shape %v, want %v", rows.Shape(), want)
	}
	if rows.DType() != l.Cols.DType() {
		return nil, fmt.Errorf("conv: product dtype %s, want %s", rows.DType(), l.Cols.DType())
	}

	output, err := tensor.NewRaw(l.g.outputShape(), rows.DType(), device)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create output tensor: %w", err)
	}

	switch rows.DType() {
	case tensor.Float16:
		scatter(output.AsFloat16(), rows.AsFloat16(), l.g)
	case tensor.Float32:
		scatter(output.AsFloat32(), rows.AsFloat32(), l.g)
	case tensor.Float64:
		scatter(output.AsFloat64(), rows.AsFloat64(), l.g)
	case tensor.Int32:
		scatter(output.AsInt32(), rows.AsInt32(), l.g)
	case tensor.Int64:
		scatter(output.AsInt64(), rows.AsInt64(), l.g)
	case tensor.Uint8:
		scatter(output.AsUint8(), rows.AsUint8(), l.g)
	}
	return output, nil
}

func resolveGeom(in, k tensor.Shape, spec tensor.ConvSpec) (convGeom, error) {
	rank := len(k) - 2
	if rank != 1 && rank != 2 {
		return convGeom{}, fmt.Errorf("conv: kernel must be 3D or 4D, got %dD", len(k))
	}
	if len(in) != rank+2 {
		return convGeom{}, fmt.Errorf("conv: input must be %dD for a %dD kernel, got %v", rank+2, len(k), in)
	}
	if len(spec.Strides) > rank {
		return convGeom{}, fmt.Errorf("conv: %d strides given for %d spatial axes", len(spec.Strides), rank)
	}
	for i := 0; i < rank; i++ {
		if spec.Stride(i) <= 0 {
			return convGeom{}, fmt.Errorf("conv: stride %d on axis %d must be > 0", spec.Stride(i), i)
		}
	}

	g := convGeom{
		N:             in[0],
		OC:            k[rank+1],
		H:             1,
		KH:            1,
		SH:            1,
		channelsFirst: spec.ChannelsFirst,
	}

	var spatial []int
	if spec.ChannelsFirst {
		g.C = in[1]
		spatial = in[2:]
	} else {
		g.C = in[rank+1]
		spatial = in[1 : rank+1]
	}
	if kc := k[rank]; kc != g.C {
		return convGeom{}, fmt.Errorf("conv: input channels %d != kernel channels %d", g.C, kc)
	}

	if rank == 2 {
		g.H, g.KH, g.SH = spatial[0], k[0], spec.Stride(0)
		g.W, g.KW, g.SW = spatial[1], k[1], spec.Stride(1)
	} else {
		g.W, g.KW, g.SW = spatial[0], k[0], spec.Stride(0)
	}

	var ok bool
	if g.HOut, g.PadH, ok = outExtent(g.H, g.KH, g.SH, spec.SamePadding); !ok {
		return convGeom{}, fmt.Errorf("conv: kernel height %d larger than input height %d", g.KH, g.H)
	}
	if g.WOut, g.PadW, ok = outExtent(g.W, g.KW, g.SW, spec.SamePadding); !ok {
		return convGeom{}, fmt.Errorf("conv: kernel width %d larger than input width %d", g.KW, g.W)
	}

	if rank == 2 {
		g.outSpatial = []int{g.HOut, g.WOut}
	} else {
		g.outSpatial = []int{g.WOut}
	}
	return g, nil
}

// outExtent returns the output extent and leading padding for one axis.
// "same" follows the TensorFlow rule: out = ceil(in/stride), padding split
// with the extra element at the end.
func outExtent(in, k, stride int, same bool) (out, padBefore int, ok bool) {
	if same {
		out = (in + stride - 1) / stride
		total := (out-1)*stride + k - in
		if total < 0 {
			total = 0
		}
		return out, total / 2, true
	}
	if k > in {
		return 0, 0, false
	}
	return (in-k)/stride + 1, 0, true
}

func (g convGeom) outputShape() tensor.Shape {
	if g.channelsFirst {
		return tensor.Shape{g.N, g.OC}.Concat(g.outSpatial...)
	}
	return tensor.Shape{g.N}.Concat(g.outSpatial...).Concat(g.OC)
}

func (g convGeom) inputIndex(n, c, h, w int) int {
	if g.channelsFirst {
		return ((n*g.C+c)*g.H+h)*g.W + w
	}
	return ((n*g.H+h)*g.W+w)*g.C + c
}

func (g convGeom) outputIndex(n, oc, h, w int) int {
	if g.channelsFirst {
		return ((n*g.OC+oc)*g.HOut+h)*g.WOut + w
	}
	return ((n*g.HOut+h)*g.WOut+w)*g.OC + oc
}

// scatter copies rows [N*H_out*W_out, OC] into the output layout.
func scatter[T any](out, rows []T, g convGeom) {
	r := 0
	for n := 0; n < g.N; n++ {
		for h := 0; h < g.HOut; h++ {
			for w := 0; w < g.WOut; w++ {
				for oc := 0; oc < g.OC; oc++ {
					out[g.outputIndex(n, oc, h, w)] = rows[r*g.OC+oc]
				}
				r++
			}
		}
	}
}

// im2col fills colBuf [N*H_out*W_out, K_h*K_w*C]. Columns are ordered
// (kh, kw, c) to match the row-major kernel layout.
func im2col[T any](colBuf, input []T, g convGeom) {
	var zero T
	colWidth := g.KH * g.KW * g.C
	colIdx := 0

	for n := 0; n < g.N; n++ {
		for outH := 0; outH < g.HOut; outH++ {
			for outW := 0; outW < g.WOut; outW++ {
				hStart := outH*g.SH - g.PadH
				wStart := outW*g.SW - g.PadW
				bufIdx := colIdx * colWidth

				for kh := 0; kh < g.KH; kh++ {
					for kw := 0; kw < g.KW; kw++ {
						h := hStart + kh
						w := wStart + kw
						inside := h >= 0 && h < g.H && w >= 0 && w < g.W
						for c := 0; c < g.C; c++ {
							if inside {
								colBuf[bufIdx] = input[g.inputIndex(n, c, h, w)]
							} else {
								colBuf[bufIdx] = zero
							}
							bufIdx++
						}
					}
				}
				colIdx++
			}
		}
	}
}
