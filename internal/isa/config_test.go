package isa_test

import (
	"path/filepath"
	"testing"

	"github.com/lookbusy1344/super32/internal/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SaveAndLoadRoundTrip(t *testing.T) {
	cfg := isa.DefaultConfig()
	path := filepath.Join(t.TempDir(), "instructionset.toml")

	require.NoError(t, isa.SaveConfigFile(cfg, path))

	loaded, err := isa.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Arithmetic, loaded.Arithmetic)
	assert.Equal(t, cfg.Storage, loaded.Storage)
	assert.Equal(t, cfg.Branch, loaded.Branch)
	assert.Equal(t, cfg.Registers, loaded.Registers)
}

func TestDefaultConfig_Has32Registers(t *testing.T) {
	cfg := isa.DefaultConfig()
	assert.Len(t, cfg.Registers, 32)
	assert.Equal(t, uint32(0), cfg.Registers["R0"])
	assert.Equal(t, uint32(31), cfg.Registers["R31"])
}
