// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sweep runs the costgen benchmark sweeps.
//
// Example:
//
//	eng, err := sweep.OpenEngine("cpu")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gen := sweep.New(eng, sweep.WithIterations(10))
//	results, err := gen.RunAll()
package sweep

import (
	"github.com/born-ml/costgen/internal/bench"
	"github.com/born-ml/costgen/internal/engine"
	"github.com/born-ml/costgen/internal/sweep"
)

// Engine builds and evaluates benchmarked operations.
type Engine = engine.Engine

// Generator runs the dot and convolution sweeps on an engine.
type Generator = sweep.Generator

// Option configures a Generator.
type Option = sweep.Option

// Benchmark is one registered operation family.
type Benchmark = sweep.Benchmark

// Result pairs a benchmark name with its timings.
type Result = sweep.Result

// Timings holds mean latencies in seconds, one per sweep point.
type Timings = bench.Timings

// ErrUnknownBenchmark is returned for names that are not registered.
var ErrUnknownBenchmark = sweep.ErrUnknownBenchmark

// New creates a Generator on eng.
func New(eng Engine, opts ...Option) *Generator {
	return sweep.New(eng, opts...)
}

// WithOutput, WithDType and WithIterations configure a Generator.
var (
	WithOutput     = sweep.WithOutput
	WithDType      = sweep.WithDType
	WithIterations = sweep.WithIterations
)

// OpenEngine opens a registered engine: "cpu", "noop" or "webgpu".
func OpenEngine(name string) (Engine, error) {
	return engine.Open(name)
}

// Engines lists the registered engine names.
func Engines() []string {
	return engine.Names()
}
