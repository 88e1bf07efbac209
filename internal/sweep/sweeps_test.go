package sweep

import (
	"testing"

	"github.com/born-ml/costgen/internal/bench"
	"github.com/born-ml/costgen/internal/engine"
	"github.com/born-ml/costgen/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotSweep(t *testing.T) {
	sets, err := DotSweep()
	require.NoError(t, err)
	require.Len(t, sets, 4)

	for i, n := range []int{64, 512, 1024, 2048} {
		require.Len(t, sets[i].Operands, 2)
		assert.Equal(t, tensor.Shape{n, n}, sets[i].Operands[0].Shape())
		assert.Equal(t, tensor.Shape{n, n}, sets[i].Operands[1].Shape())
		assert.True(t, sets[i].Options.IsZero())
	}
}

func TestConv1DSweep(t *testing.T) {
	sets, err := Conv1DSweep()
	require.NoError(t, err)

	assert.Equal(t, [][]tensor.Shape{
		{{1, 8, 3}, {2, 3, 1}},
		{{2, 8, 1}, {3, 1, 4}},
	}, shapesOf(sets))
	for _, set := range sets {
		assert.Equal(t, engine.Options{
			Strides: []int{1}, Padding: engine.PaddingValid, DataFormat: engine.ChannelsLast,
		}, set.Options)
	}
}

func TestConv2DSweep(t *testing.T) {
	sets, err := Conv2DSweep()
	require.NoError(t, err)

	assert.Equal(t, [][]tensor.Shape{
		{{3, 9, 8, 3}, {2, 2, 3, 1}},
		{{1, 1, 5, 4}, {3, 3, 1, 3}},
		{{2, 4, 5, 5}, {2, 2, 4, 2}},
	}, shapesOf(sets))

	layouts := []engine.DataFormat{engine.ChannelsLast, engine.ChannelsFirst, engine.ChannelsFirst}
	for i, set := range sets {
		assert.Equal(t, []int{1, 1}, set.Options.Strides)
		assert.Equal(t, engine.PaddingValid, set.Options.Padding)
		assert.Equal(t, layouts[i], set.Options.DataFormat)
	}
}

func TestSweepsAreReproducible(t *testing.T) {
	a, err := Conv2DSweep()
	require.NoError(t, err)
	b, err := Conv2DSweep()
	require.NoError(t, err)

	for i := range a {
		for j := range a[i].Operands {
			assert.True(t, a[i].Operands[j].Equal(b[i].Operands[j]))
			assert.NotSame(t, a[i].Operands[j], b[i].Operands[j])
		}
	}
}

func shapesOf(sets []bench.InputSet) [][]tensor.Shape {
	out := make([][]tensor.Shape, len(sets))
	for i, s := range sets {
		out[i] = s.Shapes()
	}
	return out
}
