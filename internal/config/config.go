// Package config loads costgen run settings from flags and the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/costgen/internal/tensor"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvOutput     = "TEST_OUTPUT"
	EnvBackend    = "COSTGEN_BACKEND"
	EnvDType      = "COSTGEN_DTYPE"
	EnvIterations = "COSTGEN_ITERATIONS"
)

// ErrNoOutput is returned when neither -output nor TEST_OUTPUT names a file.
var ErrNoOutput = errors.New("no output file: set -output or " + EnvOutput)

// Config holds the settings of one run.
type Config struct {
	Output     string
	Backend    string
	DType      tensor.DataType
	Iterations int
	Benchmarks []string // empty runs all
}

// Default returns the settings used when nothing is overridden.
func Default() Config {
	return Config{
		Backend:    "cpu",
		DType:      tensor.FloatX(),
		Iterations: 1,
	}
}

// Load parses args with environment fallbacks. lookup is usually
// os.LookupEnv. Flags win over the environment.
func Load(args []string, lookup func(string) (string, bool), stderr io.Writer) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvOutput); ok {
		cfg.Output = v
	}
	if v, ok := lookup(EnvBackend); ok && v != "" {
		cfg.Backend = v
	}
	dtypeName := cfg.DType.String()
	if v, ok := lookup(EnvDType); ok && v != "" {
		dtypeName = v
	}
	if v, ok := lookup(EnvIterations); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvIterations, err)
		}
		cfg.Iterations = n
	}

	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Output, "output", cfg.Output, "result file (env "+EnvOutput+")")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "engine: cpu, noop or webgpu (env "+EnvBackend+")")
	fs.StringVar(&dtypeName, "dtype", dtypeName, "element type of bound variables (env "+EnvDType+")")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "evaluations per input set (env "+EnvIterations+")")
	bench := fs.String("bench", "", "comma-separated benchmarks to run (default all)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	dt, err := tensor.ParseDataType(dtypeName)
	if err != nil {
		return cfg, err
	}
	cfg.DType = dt
	cfg.Benchmarks = splitList(*bench)

	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Output == "" {
		return ErrNoOutput
	}
	if c.Backend == "" {
		return errors.New("backend must not be empty")
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", c.Iterations)
	}
	seen := make(map[string]bool, len(c.Benchmarks))
	for _, name := range c.Benchmarks {
		if seen[name] {
			return fmt.Errorf("benchmark %q selected twice", name)
		}
		seen[name] = true
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
