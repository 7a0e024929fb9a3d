package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/lookbusy1344/super32/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, uint64(1_000_000), cfg.Execution.MaxSteps)
	assert.Equal(t, "lines", cfg.Output.Mode)
	assert.Equal(t, "single", cfg.Output.Architecture)
}

func TestGetConfigPath(t *testing.T) {
	path := config.GetConfigPath()
	require.NotEmpty(t, path)
	assert.Equal(t, "config.toml", filepath.Base(path))

	if runtime.GOOS != "windows" {
		assert.Equal(t, "super32", filepath.Base(filepath.Dir(path)))
	}
}

func TestGetLogPath(t *testing.T) {
	path := config.GetLogPath()
	require.NotEmpty(t, path)
	assert.Equal(t, "logs", filepath.Base(path))
}

func TestSaveAndLoad(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Execution.MaxSteps = 42
	cfg.Execution.EnableTrace = true
	cfg.Output.Mode = "stream"

	path := filepath.Join(t.TempDir(), "test_config.toml")
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), loaded.Execution.MaxSteps)
	assert.True(t, loaded.Execution.EnableTrace)
	assert.Equal(t, "stream", loaded.Output.Mode)
}

func TestLoadFrom_NonExistentReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.toml")

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoadFrom_InvalidTOMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.toml")
	invalidTOML := "[execution]\nmax_steps = \"not a number\"\n"
	require.NoError(t, os.WriteFile(path, []byte(invalidTOML), 0o600))

	_, err := config.LoadFrom(path)
	require.Error(t, err)
}

func TestSaveTo_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir1", "subdir2", "config.toml")

	require.NoError(t, config.DefaultConfig().SaveTo(path))
	require.FileExists(t, path)
}
