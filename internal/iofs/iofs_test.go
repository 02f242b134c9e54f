package iofs_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coronium/isiscb-jsonld-conversion/internal/iofs"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/config"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()

	err := iofs.EnsureDirs(home)
	require.NoError(t, err)

	for _, dir := range []string{
		config.ConfigDir(home),
		config.CacheDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	// Idempotent.
	assert.NoError(t, iofs.EnsureDirs(home))
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))

	err := iofs.EnsureConfigFile(home)
	require.NoError(t, err)

	bs, err := os.ReadFile(config.ConfigFilePath(home))
	require.NoError(t, err)
	assert.Contains(t, string(bs), "base_uri")

	// An existing file is left alone.
	err = os.WriteFile(config.ConfigFilePath(home), []byte("custom"), 0644)
	require.NoError(t, err)
	require.NoError(t, iofs.EnsureConfigFile(home))
	bs, err = os.ReadFile(config.ConfigFilePath(home))
	require.NoError(t, err)
	assert.Equal(t, "custom", string(bs))
}

func TestEnsureBatchesFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))

	err := iofs.EnsureBatchesFile(home)
	require.NoError(t, err)

	bs, err := os.ReadFile(config.BatchesFilePath(home))
	require.NoError(t, err)
	assert.Contains(t, string(bs), "batches:")
}
