package engine

import (
	"fmt"

	"github.com/born-ml/costgen/internal/tensor"
)

// Noop is an engine whose graphs evaluate instantly to nil.
// It exercises the harness without numeric work.
type Noop struct{}

var _ Engine = Noop{}

// Name returns "noop".
func (Noop) Name() string { return "noop" }

// Placeholder validates shape and returns a placeholder for it.
func (Noop) Placeholder(shape tensor.Shape, dtype tensor.DataType) (*Placeholder, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("placeholder: %w", err)
	}
	return &Placeholder{Shape: shape.Clone(), DType: dtype}, nil
}

// Variable wraps t without converting it.
func (Noop) Variable(t *tensor.RawTensor, _ tensor.DataType) (*Variable, error) {
	return &Variable{Value: t}, nil
}

// Dot returns a graph that does nothing.
func (Noop) Dot([]*Variable, Options) (Graph, error) { return noopGraph, nil }

// Conv1D returns a graph that does nothing.
func (Noop) Conv1D([]*Variable, Options) (Graph, error) { return noopGraph, nil }

// Conv2D returns a graph that does nothing.
func (Noop) Conv2D([]*Variable, Options) (Graph, error) { return noopGraph, nil }

var noopGraph = GraphFunc(func() (*tensor.RawTensor, error) { return nil, nil })
