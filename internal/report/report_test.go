package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := New("CPU", "float32", 3)
	b := New("CPU", "float32", 3)

	assert.Equal(t, Version, a.Version)
	assert.NotEqual(t, a.RunID, b.RunID)
	_, err := xid.FromString(a.RunID)
	assert.NoError(t, err)
}

func TestAddCopiesTimings(t *testing.T) {
	r := New("noop", "float32", 1)
	timings := []float64{0.5, 0.25}
	r.Add("dot", timings)
	timings[0] = 9

	e, ok := r.Lookup("dot")
	require.True(t, ok)
	assert.Equal(t, []float64{0.5, 0.25}, e.Timings)

	_, ok = r.Lookup("conv1d")
	assert.False(t, ok)
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timings.json")

	r := New("CPU", "float64", 2)
	r.Add("conv1d", []float64{0.001, 0.002})
	r.Add("dot", []float64{0.1, 0.2, 0.3, 0.4})

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(r))
	require.NoError(t, w.Commit())
	require.NoError(t, w.Close())
	assert.Error(t, w.Commit())

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, r.RunID, got.RunID)
	assert.True(t, r.Created.Equal(got.Created))
	assert.Equal(t, r.Benchmarks, got.Benchmarks)
	assert.Equal(t, "float64", got.DType)
	assert.Equal(t, 2, got.Iterations)
}

func TestCommitReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timings.json")
	require.NoError(t, os.WriteFile(path, []byte("previous report"), 0o600))

	w, err := Create(path)
	require.NoError(t, err)

	// Nothing changes on disk until Commit.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous report", string(data))

	r := New("CPU", "float32", 1)
	r.Add("dot", []float64{0.5})
	require.NoError(t, w.Write(r))
	require.NoError(t, w.Commit())

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, r.RunID, got.RunID)

	leftovers, err := filepath.Glob(filepath.Join(dir, TempPattern))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestCloseWithoutCommitKeepsPreviousReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timings.json")
	require.NoError(t, os.WriteFile(path, []byte("previous report"), 0o600))

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(New("CPU", "float32", 1)))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous report", string(data))

	leftovers, err := filepath.Glob(filepath.Join(dir, TempPattern))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
	assert.Error(t, w.Write(New("CPU", "float32", 1)))
}

func TestCreateMissingDirectory(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "timings.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = Read(bad)
	assert.ErrorContains(t, err, "decode")

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version": 0}`), 0o600))
	_, err = Read(old)
	assert.ErrorContains(t, err, "unsupported version 0")

	noID := filepath.Join(dir, "noid.json")
	require.NoError(t, os.WriteFile(noID, []byte(`{"version": 1, "run_id": "x"}`), 0o600))
	_, err = Read(noID)
	assert.ErrorContains(t, err, "run id")
}
