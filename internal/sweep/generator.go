// Package sweep enumerates the fixed benchmark sweeps and drives the runner
// over them.
package sweep

import (
	"fmt"
	"io"
	"os"

	"github.com/born-ml/costgen/internal/bench"
	"github.com/born-ml/costgen/internal/engine"
	"github.com/born-ml/costgen/internal/tensor"
)

// Benchmark is one registered operation family.
type Benchmark interface {
	Name() string
	Run() (bench.Timings, error)
}

// Result pairs a benchmark name with its timings.
type Result struct {
	Name    string
	Timings bench.Timings
}

// Generator runs the dot and convolution sweeps on an engine.
type Generator struct {
	engine     engine.Engine
	runner     *bench.Runner
	out        io.Writer
	dtype      tensor.DataType
	iterations int
}

type options struct {
	out        io.Writer
	dtype      tensor.DataType
	iterations int
}

// Option configures a Generator.
type Option func(*options)

// WithOutput sets where progress lines go. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithDType sets the element type variables are bound with.
// Defaults to tensor.FloatX() at construction time.
func WithDType(dt tensor.DataType) Option {
	return func(o *options) { o.dtype = dt }
}

// WithIterations sets how many times each graph is evaluated. Defaults to 1.
func WithIterations(n int) Option {
	return func(o *options) { o.iterations = n }
}

// New creates a Generator on eng.
func New(eng engine.Engine, opts ...Option) *Generator {
	o := options{
		out:        os.Stdout,
		dtype:      tensor.FloatX(),
		iterations: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{
		engine:     eng,
		runner:     bench.NewRunner(eng, bench.WithOutput(o.out)),
		out:        o.out,
		dtype:      o.dtype,
		iterations: o.iterations,
	}
}

// Dot times the dot product over DotSweep.
func (g *Generator) Dot() (bench.Timings, error) {
	sets, err := DotSweep()
	if err != nil {
		return nil, err
	}
	return g.runner.Run(g.engine.Dot, sets, nil, g.dtype, g.iterations)
}

// Conv1D times 1-D convolution over Conv1DSweep.
func (g *Generator) Conv1D() (bench.Timings, error) {
	sets, err := Conv1DSweep()
	if err != nil {
		return nil, err
	}
	return g.runner.Run(g.engine.Conv1D, sets, nil, g.dtype, g.iterations)
}

// Conv2D times 2-D convolution over Conv2DSweep.
func (g *Generator) Conv2D() (bench.Timings, error) {
	sets, err := Conv2DSweep()
	if err != nil {
		return nil, err
	}
	return g.runner.Run(g.engine.Conv2D, sets, nil, g.dtype, g.iterations)
}

type benchmark struct {
	name string
	run  func() (bench.Timings, error)
}

func (b benchmark) Name() string                { return b.name }
func (b benchmark) Run() (bench.Timings, error) { return b.run() }

// Benchmarks returns the registered benchmarks in run order.
func (g *Generator) Benchmarks() []Benchmark {
	return []Benchmark{
		benchmark{"conv1d", g.Conv1D},
		benchmark{"conv2d", g.Conv2D},
		benchmark{"dot", g.Dot},
	}
}

// Names returns the registered benchmark names in run order.
func (g *Generator) Names() []string {
	bs := g.Benchmarks()
	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = b.Name()
	}
	return names
}

// Lookup returns the benchmark registered under name.
func (g *Generator) Lookup(name string) (Benchmark, bool) {
	for _, b := range g.Benchmarks() {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}

// RunAll runs every registered benchmark in order.
func (g *Generator) RunAll() ([]Result, error) {
	return g.runBenchmarks(g.Benchmarks())
}

// RunSelected runs the named benchmarks in the order given.
// Unknown names fail before anything runs.
func (g *Generator) RunSelected(names []string) ([]Result, error) {
	bs := make([]Benchmark, 0, len(names))
	for _, name := range names {
		b, ok := g.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBenchmark, name)
		}
		bs = append(bs, b)
	}
	return g.runBenchmarks(bs)
}

func (g *Generator) runBenchmarks(bs []Benchmark) ([]Result, error) {
	results := make([]Result, 0, len(bs))
	for _, b := range bs {
		fmt.Fprintf(g.out, "Testing %s\n", b.Name())
		timings, err := b.Run()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		results = append(results, Result{Name: b.Name(), Timings: timings})
	}
	return results, nil
}
