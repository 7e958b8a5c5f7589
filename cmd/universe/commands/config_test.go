package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattdell71/universe/cluster"
	"github.com/mattdell71/universe/dissim"
)

// TestLoadRunConfig_Defaults verifies the no-file path mirrors the library
// defaults.
func TestLoadRunConfig_Defaults(t *testing.T) {
	cfg, err := loadRunConfig("")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, cfg.Ks)
	assert.Equal(t, "agglomerative", cfg.Method)
	assert.Equal(t, 50, cfg.Trials)
	assert.False(t, cfg.Rooted)
}

// TestLoadRunConfig_FileOverlay verifies that YAML values overlay the
// defaults while unset keys keep them.
func TestLoadRunConfig_FileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"method: medoid\ntrials: 200\nks: [2, 5]\nrooted: true\n"), 0o600))

	cfg, err := loadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "medoid", cfg.Method)
	assert.Equal(t, 200, cfg.Trials)
	assert.Equal(t, []int{2, 5}, cfg.Ks)
	assert.True(t, cfg.Rooted)
	// Unset keys keep their defaults.
	assert.Equal(t, int64(1), cfg.Seed)
}

// TestLoadRunConfig_Errors verifies missing and malformed files fail loudly.
func TestLoadRunConfig_Errors(t *testing.T) {
	_, err := loadRunConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("trials: [not a number\n"), 0o600))
	_, err = loadRunConfig(bad)
	assert.Error(t, err)
}

// TestParseMethod covers the three method names and the failure sentinel.
func TestParseMethod(t *testing.T) {
	for name, want := range map[string]cluster.Method{
		"agglomerative": cluster.Agglomerative,
		"divisive":      cluster.Divisive,
		"medoid":        cluster.Medoid,
	} {
		got, err := parseMethod(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := parseMethod("kmeans")
	assert.ErrorIs(t, err, ErrUnknownClusteringMethod)
}

// TestTransformOf maps the rooted flag onto the dissim transform.
func TestTransformOf(t *testing.T) {
	assert.Equal(t, dissim.SumOfSquares, transformOf(false))
	assert.Equal(t, dissim.Rooted, transformOf(true))
}
