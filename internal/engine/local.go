package engine

import (
	"fmt"

	"github.com/born-ml/costgen/internal/tensor"
)

// Stats counts capability calls made on a Local engine.
type Stats struct {
	Placeholders int
	Variables    int
	Graphs       int
	Evals        int
}

// Local runs graphs on an in-process tensor backend.
// Graph construction validates operands; Eval runs the backend kernel.
type Local struct {
	backend tensor.Backend
	stats   Stats
}

var _ Engine = (*Local)(nil)

// NewLocal creates an engine over backend.
func NewLocal(backend tensor.Backend) *Local {
	return &Local{backend: backend}
}

// Name returns the backend name.
func (l *Local) Name() string {
	return l.backend.Name()
}

// Stats returns a snapshot of the call counters.
func (l *Local) Stats() Stats {
	return l.stats
}

// Close releases backend resources when the backend holds any.
func (l *Local) Close() error {
	if r, ok := l.backend.(interface{ Release() }); ok {
		r.Release()
	}
	return nil
}

// Placeholder creates a symbolic input of the given shape.
func (l *Local) Placeholder(shape tensor.Shape, dtype tensor.DataType) (*Placeholder, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("placeholder: %w", err)
	}
	l.stats.Placeholders++
	return &Placeholder{Shape: shape.Clone(), DType: dtype}, nil
}

// Variable binds a copy of t converted to dtype.
func (l *Local) Variable(t *tensor.RawTensor, dtype tensor.DataType) (*Variable, error) {
	v, err := t.Cast(dtype)
	if err != nil {
		return nil, fmt.Errorf("variable: %w", err)
	}
	if v == t {
		v = t.Clone()
	}
	l.stats.Variables++
	return &Variable{Value: v}, nil
}

// Dot multiplies two 2D operands. It takes no options.
func (l *Local) Dot(operands []*Variable, opts Options) (Graph, error) {
	if len(operands) != 2 {
		return nil, fmt.Errorf("dot: expected 2 operands, got %d", len(operands))
	}
	if !opts.IsZero() {
		return nil, fmt.Errorf("dot: unexpected options %v", opts)
	}
	a, b := operands[0].Value, operands[1].Value
	if len(a.Shape()) != 2 || len(b.Shape()) != 2 || a.Shape()[1] != b.Shape()[0] {
		return nil, fmt.Errorf("dot: incompatible shapes %v and %v", a.Shape(), b.Shape())
	}
	return l.graph(func() (*tensor.RawTensor, error) {
		return l.backend.MatMul(a, b)
	}), nil
}

// Conv1D convolves operands[0] with the 3D kernel operands[1].
func (l *Local) Conv1D(operands []*Variable, opts Options) (Graph, error) {
	return l.conv("conv1d", 1, operands, opts)
}

// Conv2D convolves operands[0] with the 4D kernel operands[1].
func (l *Local) Conv2D(operands []*Variable, opts Options) (Graph, error) {
	return l.conv("conv2d", 2, operands, opts)
}

func (l *Local) conv(name string, rank int, operands []*Variable, opts Options) (Graph, error) {
	if len(operands) != 2 {
		return nil, fmt.Errorf("%s: expected input and kernel, got %d operands", name, len(operands))
	}
	input, kernel := operands[0].Value, operands[1].Value
	if got := len(kernel.Shape()); got != rank+2 {
		return nil, fmt.Errorf("%s: kernel must be %dD, got %v", name, rank+2, kernel.Shape())
	}
	if got := len(input.Shape()); got != rank+2 {
		return nil, fmt.Errorf("%s: input must be %dD, got %v", name, rank+2, input.Shape())
	}
	spec, err := opts.convSpec(rank)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return l.graph(func() (*tensor.RawTensor, error) {
		return l.backend.Conv(input, kernel, spec)
	}), nil
}

func (l *Local) graph(run func() (*tensor.RawTensor, error)) Graph {
	l.stats.Graphs++
	return GraphFunc(func() (*tensor.RawTensor, error) {
		l.stats.Evals++
		return run()
	})
}
