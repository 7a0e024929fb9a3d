package isa_test

import (
	"testing"

	"github.com/lookbusy1344/super32/internal/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_ForwardAndReverseLookupAgree(t *testing.T) {
	set := isa.Default()

	for mnemonic, code := range isa.DefaultConfig().Arithmetic {
		got, ok := set.ArithmeticCode(mnemonic)
		require.True(t, ok)
		assert.Equal(t, code, got)

		name, ok := set.ArithmeticMnemonic(code)
		require.True(t, ok)
		assert.Equal(t, mnemonic, name)
	}
}

func TestCompile_RegisterTableHas32Entries(t *testing.T) {
	set := isa.Default()

	for i := uint32(0); i < 32; i++ {
		name, ok := set.RegisterName(i)
		require.True(t, ok)

		code, ok := set.RegisterCode(name)
		require.True(t, ok)
		assert.Equal(t, i, code)
	}
}

func TestIsClassification(t *testing.T) {
	set := isa.Default()

	assert.True(t, set.IsArithmetic("ADD"))
	assert.False(t, set.IsStorage("ADD"))
	assert.False(t, set.IsBranch("ADD"))

	assert.True(t, set.IsStorage("LW"))
	assert.True(t, set.IsStorage("SW"))
	assert.True(t, set.IsStorage("LI"))

	assert.True(t, set.IsBranch("BEQ"))

	assert.False(t, set.IsArithmetic("NOPE"))
	assert.False(t, set.IsStorage("NOPE"))
	assert.False(t, set.IsBranch("NOPE"))
}
