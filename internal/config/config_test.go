package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
# Demo network.
layers: [2, 3, 1]
seed: 42
parallelism: 4
input: batch.csv
summary: true
`))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Layers:      []int{2, 3, 1},
		Seed:        42,
		Parallelism: 4,
		Input:       "batch.csv",
		Summary:     true,
	}, cfg)

	// Empty configuration is valid, layers can come from overrides.
	cfg, err = Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Layers)
}

func TestParseErrors(t *testing.T) {
	for _, content := range []string{
		"layers: [3]",
		"layers: [2, 0, 1]",
		"unknown_key: 1",
		"layers: not-a-list",
	} {
		_, err := Parse(strings.NewReader(content))
		require.Error(t, err, "content=%q", content)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fcnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layers: [4, 2]\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2}, cfg.Layers)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg := &Config{Layers: []int{2, 1}, Seed: 1, Input: "a.json"}
	cfg.ApplyOverrides(Overrides{})
	assert.Equal(t, &Config{Layers: []int{2, 1}, Seed: 1, Input: "a.json"}, cfg)

	cfg.ApplyOverrides(Overrides{Layers: []int{3, 3}, Seed: 7, Parallelism: -1, Input: "b.csv", Summary: true})
	assert.Equal(t, &Config{Layers: []int{3, 3}, Seed: 7, Parallelism: -1, Input: "b.csv", Summary: true}, cfg)
	require.NoError(t, cfg.Validate())

	var nilCfg *Config
	require.Error(t, nilCfg.Validate())
}
