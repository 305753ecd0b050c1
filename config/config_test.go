package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8, cfg.Graph.Size)
	assert.Equal(t, FormatText, cfg.Output.Format)
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Graph.Size = 2
	cfg.Graph.Density = 0
	cfg.Enumerate.Workers = 0
	cfg.Output.Format = "xml"

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	for _, key := range []string{"graph.size", "graph.density", "enumerate.workers", "output.format"} {
		assert.Contains(t, err.Error(), key)
	}
	assert.NotContains(t, err.Error(), "max_cycles")
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cyclespace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
graph:
  size: 12
  density: 0.25
  seed: 42
enumerate:
  workers: 3
output:
  format: yaml
`), 0o600))

	t.Setenv("CYCLESPACE_ENUMERATE_MAX_CYCLES", "77")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Graph.Size)
	assert.InDelta(t, 0.25, cfg.Graph.Density, 1e-12)
	assert.EqualValues(t, 42, cfg.Graph.Seed)
	assert.Equal(t, 3, cfg.Enumerate.Workers)
	assert.Equal(t, 77, cfg.Enumerate.MaxCycles)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	// Keys absent from the file keep their defaults.
	assert.EqualValues(t, 10, cfg.Graph.MaxWeight)
	assert.True(t, cfg.Output.Matrix)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CYCLESPACE_GRAPH_SIZE=21\n"), 0o600))
	t.Setenv("CYCLESPACE_GRAPH_SIZE", "")
	require.NoError(t, os.Unsetenv("CYCLESPACE_GRAPH_SIZE"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 21, cfg.Graph.Size)
	require.NoError(t, os.Unsetenv("CYCLESPACE_GRAPH_SIZE"))
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph: [unclosed\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
