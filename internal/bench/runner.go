// Package bench times operations built by an engine over synthetic inputs.
package bench

//go:generate mockgen -destination=mock_engine_test.go -package=bench github.com/born-ml/costgen/internal/engine Engine,Graph

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/born-ml/costgen/internal/engine"
	"github.com/born-ml/costgen/internal/tensor"
)

var (
	// ErrIterations is returned when fewer than one iteration is requested.
	ErrIterations = errors.New("iteration count must be at least 1")

	// ErrShapeCount is returned when more explicit shape lists than input
	// sets are given.
	ErrShapeCount = errors.New("more shape lists than input sets")
)

// Timings holds mean latencies in seconds, one per input set, in input order.
type Timings []float64

// Len returns the number of measured input sets.
func (t Timings) Len() int { return len(t) }

// Runner builds each input set into a graph once and times repeated
// evaluation of it.
type Runner struct {
	engine engine.Engine
	out    io.Writer
	now    func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where progress lines are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithClock replaces time.Now for measuring evaluations.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// NewRunner creates a Runner executing on eng.
func NewRunner(eng engine.Engine, opts ...Option) *Runner {
	r := &Runner{
		engine: eng,
		out:    os.Stdout,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Execute measures one input set and returns the mean evaluation time in
// seconds.
//
// Placeholders are declared from shapes when it is non-nil, otherwise from
// the operand shapes. Every operand is bound as a variable of dtype, op is
// invoked once with the variables and the set's options, and the resulting
// graph is evaluated iterations times. Only Eval is timed.
func (r *Runner) Execute(op engine.Operation, set InputSet, iterations int, dtype tensor.DataType, shapes []tensor.Shape) (float64, error) {
	if iterations < 1 {
		return 0, fmt.Errorf("%w, got %d", ErrIterations, iterations)
	}

	if shapes == nil {
		shapes = set.Shapes()
	}
	for _, shape := range shapes {
		if _, err := r.engine.Placeholder(shape, dtype); err != nil {
			return 0, err
		}
	}

	vars := make([]*engine.Variable, len(set.Operands))
	for i, operand := range set.Operands {
		v, err := r.engine.Variable(operand, dtype)
		if err != nil {
			return 0, err
		}
		vars[i] = v
	}

	graph, err := op(vars, set.Options)
	if err != nil {
		return 0, err
	}

	var total time.Duration
	for i := 0; i < iterations; i++ {
		start := r.now()
		if _, err := graph.Eval(); err != nil {
			return 0, err
		}
		total += r.now().Sub(start)
	}

	mean := total.Seconds() / float64(iterations)
	fmt.Fprintf(r.out, "    Testing took: %v sec.\n", mean)
	return mean, nil
}

// Run executes every input set in order and returns their mean timings.
//
// shapes[i], when present, overrides the placeholder shapes of sets[i]; a
// shorter shapes list leaves the remaining sets on their own operand shapes.
// The first failure aborts the run.
func (r *Runner) Run(op engine.Operation, sets []InputSet, shapes [][]tensor.Shape, dtype tensor.DataType, iterations int) (Timings, error) {
	if len(shapes) > len(sets) {
		return nil, fmt.Errorf("%w: %d shape lists for %d input sets", ErrShapeCount, len(shapes), len(sets))
	}

	timings := make(Timings, 0, len(sets))
	for i, set := range sets {
		var explicit []tensor.Shape
		if i < len(shapes) {
			explicit = shapes[i]
		}

		fmt.Fprintf(r.out, "    running: %d/%d\n", i+1, len(sets))
		t, err := r.Execute(op, set, iterations, dtype, explicit)
		if err != nil {
			return nil, fmt.Errorf("input set %d/%d: %w", i+1, len(sets), err)
		}
		timings = append(timings, t)
	}
	return timings, nil
}
