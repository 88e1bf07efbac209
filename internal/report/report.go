// Package report persists benchmark timings as JSON.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/xid"
)

// Version is the report format version.
const Version = 1

// Entry holds the timings of one benchmark, in sweep order.
type Entry struct {
	Name    string    `json:"name"`
	Timings []float64 `json:"timings"`
}

// Report is one costgen run.
type Report struct {
	Version    int       `json:"version"`
	RunID      string    `json:"run_id"`
	Created    time.Time `json:"created"`
	Backend    string    `json:"backend"`
	DType      string    `json:"dtype"`
	Iterations int       `json:"iterations"`
	Benchmarks []Entry   `json:"benchmarks"`
}

// New starts a report with a fresh run ID.
func New(backend, dtype string, iterations int) *Report {
	return &Report{
		Version:    Version,
		RunID:      xid.New().String(),
		Created:    time.Now().UTC(),
		Backend:    backend,
		DType:      dtype,
		Iterations: iterations,
	}
}

// Add appends the timings of a benchmark.
func (r *Report) Add(name string, timings []float64) {
	r.Benchmarks = append(r.Benchmarks, Entry{Name: name, Timings: append([]float64(nil), timings...)})
}

// Lookup returns the entry for name.
func (r *Report) Lookup(name string) (Entry, bool) {
	for _, e := range r.Benchmarks {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Writer writes a report to a temporary file next to its destination.
// The destination is replaced only by Commit, so a run that fails or is
// interrupted leaves the previous report in place.
type Writer struct {
	mu   sync.Mutex
	path string
	f    *os.File
}

// Create opens a temporary file in the directory of path.
func Create(path string) (*Writer, error) {
	f, err := os.CreateTemp(filepath.Dir(path), TempPattern)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("report: %w", err)
	}
	return &Writer{path: path, f: f}, nil
}

// TempPattern names the temporary files created by Create.
const TempPattern = ".costgen-*.json"

// Write encodes r as indented JSON.
func (w *Writer) Write(r *Report) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.f == nil {
		return errClosed
	}
	enc := json.NewEncoder(w.f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}
	return nil
}

// Commit closes the temporary file and renames it over the destination.
func (w *Writer) Commit() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.f == nil {
		return errClosed
	}
	tmp := w.f.Name()
	err := w.f.Close()
	w.f = nil
	if err == nil {
		err = os.Rename(tmp, w.path)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("report: commit %s: %w", w.path, err)
	}
	return nil
}

// Close discards anything not committed. It is safe to call more than once
// and after Commit.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.f == nil {
		return nil
	}
	tmp := w.f.Name()
	err := w.f.Close()
	w.f = nil
	if rmErr := os.Remove(tmp); err == nil {
		err = rmErr
	}
	return err
}

var errClosed = errors.New("report: writer is closed")

// Read loads a report written by Writer.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("report: decode %s: %w", path, err)
	}
	if r.Version != Version {
		return nil, fmt.Errorf("report: unsupported version %d", r.Version)
	}
	if _, err := xid.FromString(r.RunID); err != nil {
		return nil, fmt.Errorf("report: run id: %w", err)
	}
	return &r, nil
}
