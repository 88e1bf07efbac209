package sweep

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/born-ml/costgen/internal/backend/cpu"
	"github.com/born-ml/costgen/internal/engine"
	"github.com/born-ml/costgen/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingEngine is a Noop engine that remembers variable dtypes and can
// fail one operation.
type recordingEngine struct {
	engine.Noop
	dtypes    []tensor.DataType
	conv2dErr error
}

func (e *recordingEngine) Variable(t *tensor.RawTensor, dtype tensor.DataType) (*engine.Variable, error) {
	e.dtypes = append(e.dtypes, dtype)
	return e.Noop.Variable(t, dtype)
}

func (e *recordingEngine) Conv2D(vars []*engine.Variable, opts engine.Options) (engine.Graph, error) {
	if e.conv2dErr != nil {
		return nil, e.conv2dErr
	}
	return e.Noop.Conv2D(vars, opts)
}

func TestGenerator_DotOnNoop(t *testing.T) {
	g := New(engine.Noop{}, WithOutput(&bytes.Buffer{}), WithIterations(1))

	timings, err := g.Dot()
	require.NoError(t, err)
	require.Len(t, timings, 4)
	for _, v := range timings {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.InDelta(t, 0, v, 0.05)
	}
}

func TestGenerator_ConvOnCPU(t *testing.T) {
	eng := engine.NewLocal(cpu.New())
	g := New(eng, WithOutput(&bytes.Buffer{}), WithIterations(2))

	t1, err := g.Conv1D()
	require.NoError(t, err)
	assert.Len(t, t1, 2)

	t2, err := g.Conv2D()
	require.NoError(t, err)
	assert.Len(t, t2, 3)

	stats := eng.Stats()
	assert.Equal(t, 5, stats.Graphs)
	assert.Equal(t, 10, stats.Evals)
}

func TestGenerator_DType(t *testing.T) {
	eng := &recordingEngine{}
	g := New(eng, WithOutput(&bytes.Buffer{}), WithDType(tensor.Float16))

	_, err := g.Conv1D()
	require.NoError(t, err)
	require.Len(t, eng.dtypes, 4)
	for _, dt := range eng.dtypes {
		assert.Equal(t, tensor.Float16, dt)
	}
}

func TestGenerator_DefaultDTypeIsFloatX(t *testing.T) {
	eng := &recordingEngine{}
	g := New(eng, WithOutput(&bytes.Buffer{}))

	_, err := g.Conv1D()
	require.NoError(t, err)
	assert.Equal(t, tensor.FloatX(), eng.dtypes[0])
}

func TestGenerator_Registry(t *testing.T) {
	g := New(engine.Noop{}, WithOutput(&bytes.Buffer{}))

	assert.Equal(t, []string{"conv1d", "conv2d", "dot"}, g.Names())

	b, ok := g.Lookup("conv2d")
	require.True(t, ok)
	assert.Equal(t, "conv2d", b.Name())
	timings, err := b.Run()
	require.NoError(t, err)
	assert.Len(t, timings, 3)

	_, ok = g.Lookup("testDot")
	assert.False(t, ok)
}

func TestGenerator_RunAll(t *testing.T) {
	var out bytes.Buffer
	g := New(engine.Noop{}, WithOutput(&out))

	results, err := g.RunAll()
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, "conv1d", results[0].Name)
	assert.Len(t, results[0].Timings, 2)
	assert.Equal(t, "conv2d", results[1].Name)
	assert.Len(t, results[1].Timings, 3)
	assert.Equal(t, "dot", results[2].Name)
	assert.Len(t, results[2].Timings, 4)

	var headings []string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "Testing ") {
			headings = append(headings, line)
		}
	}
	assert.Equal(t, []string{"Testing conv1d", "Testing conv2d", "Testing dot"}, headings)
	assert.Equal(t, 9, strings.Count(out.String(), "    running: "))
	assert.Equal(t, 9, strings.Count(out.String(), "    Testing took: "))
}

func TestGenerator_RunSelected(t *testing.T) {
	var out bytes.Buffer
	g := New(engine.Noop{}, WithOutput(&out))

	results, err := g.RunSelected([]string{"dot", "conv1d"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "dot", results[0].Name)
	assert.Equal(t, "conv1d", results[1].Name)
	assert.True(t, strings.HasPrefix(out.String(), "Testing dot\n    running: 1/4\n"))
}

func TestGenerator_RunSelectedUnknown(t *testing.T) {
	var out bytes.Buffer
	g := New(engine.Noop{}, WithOutput(&out))

	_, err := g.RunSelected([]string{"conv1d", "conv3d"})
	assert.ErrorIs(t, err, ErrUnknownBenchmark)
	assert.Empty(t, out.String())
}

func TestGenerator_FailureAborts(t *testing.T) {
	boom := errors.New("compile failed")
	var out bytes.Buffer
	g := New(&recordingEngine{conv2dErr: boom}, WithOutput(&out))

	results, err := g.RunAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, strings.HasPrefix(err.Error(), "conv2d: input set 1/3: "))
	assert.Nil(t, results)
	assert.NotContains(t, out.String(), "Testing dot")
}
