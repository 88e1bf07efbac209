// Package main provides the costgen CLI, which times dot and convolution
// sweeps and writes the timings as training data for a cost model.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/born-ml/costgen/internal/config"
	"github.com/born-ml/costgen/internal/engine"
	"github.com/born-ml/costgen/internal/report"
	"github.com/born-ml/costgen/internal/sweep"
	"github.com/fatih/color"
	"github.com/tebeka/atexit"
)

const version = "v0.1.0"

// exitInterrupted is the status of a run stopped by SIGINT or SIGTERM.
const exitInterrupted = 130

func main() {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-interrupts
		fmt.Fprintf(os.Stderr, "\ninterrupted (%v), previous report kept\n", sig)
		atexit.Exit(exitInterrupted)
	}()

	atexit.Exit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}

func run(args []string, lookup func(string) (string, bool), stdout, stderr io.Writer) int {
	cmd := "run"
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help" || !strings.HasPrefix(args[0], "-")) {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "run":
		return runBenchmarks(args, lookup, stdout, stderr)
	case "list":
		return list(stdout)
	case "version":
		fmt.Fprintf(stdout, "costgen %s\n", version)
		return 0
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "costgen %s - cost model training data generator\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run        Run benchmarks and write timings (default)")
	fmt.Fprintln(w, "  list       List benchmarks and engines")
	fmt.Fprintln(w, "  version    Show version")
}

func list(w io.Writer) int {
	heading := color.New(color.Bold)
	heading.Fprintln(w, "Benchmarks:")
	for _, name := range sweep.New(engine.Noop{}).Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	heading.Fprintln(w, "Engines:")
	for _, name := range engine.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	return 0
}

// runBenchmarks leaves releasing the engine and discarding an uncommitted
// report to atexit handlers, which run on normal exit and on interrupt.
func runBenchmarks(args []string, lookup func(string) (string, bool), stdout, stderr io.Writer) int {
	failure := color.New(color.FgRed)

	cfg, err := config.Load(args, lookup, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, config.ErrNoOutput):
		fmt.Fprintln(stdout, "Need environment variable TEST_OUTPUT for the filename of the test result")
		return 1
	case err != nil:
		failure.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	// Reject unknown names before the engine or the output file is touched.
	known := sweep.New(engine.Noop{})
	for _, name := range cfg.Benchmarks {
		if _, ok := known.Lookup(name); !ok {
			failure.Fprintf(stderr, "%v: %q\n", sweep.ErrUnknownBenchmark, name)
			return 1
		}
	}

	eng, err := engine.Open(cfg.Backend)
	if err != nil {
		failure.Fprintf(stderr, "engine: %v\n", err)
		return 1
	}
	if c, ok := eng.(io.Closer); ok {
		atexit.Register(func() { _ = c.Close() })
	}

	w, err := report.Create(cfg.Output)
	if err != nil {
		failure.Fprintln(stderr, err)
		return 1
	}
	atexit.Register(func() { _ = w.Close() })

	color.New(color.FgCyan).Fprintf(stdout, "costgen %s on %s (%s, %d iterations)\n",
		version, eng.Name(), cfg.DType, cfg.Iterations)

	gen := sweep.New(eng,
		sweep.WithOutput(stdout),
		sweep.WithDType(cfg.DType),
		sweep.WithIterations(cfg.Iterations),
	)

	var results []sweep.Result
	if len(cfg.Benchmarks) == 0 {
		results, err = gen.RunAll()
	} else {
		results, err = gen.RunSelected(cfg.Benchmarks)
	}
	if err != nil {
		failure.Fprintf(stderr, "benchmark failed: %v\n", err)
		return 1
	}

	rep := report.New(eng.Name(), cfg.DType.String(), cfg.Iterations)
	for _, r := range results {
		rep.Add(r.Name, r.Timings)
	}
	if err := w.Write(rep); err != nil {
		failure.Fprintln(stderr, err)
		return 1
	}
	if err := w.Commit(); err != nil {
		failure.Fprintln(stderr, err)
		return 1
	}

	color.New(color.FgGreen).Fprintf(stdout, "wrote %d benchmarks to %s (run %s)\n", len(results), cfg.Output, rep.RunID)
	return 0
}
