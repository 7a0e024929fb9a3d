package assemble_test

import (
	"testing"

	"github.com/lookbusy1344/super32/internal/assemble"
	"github.com/lookbusy1344/super32/internal/encoder"
	"github.com/lookbusy1344/super32/internal/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_ProducesSymbolsAndImage(t *testing.T) {
	source := "ORG 0\nDEFINE 9\nSTART\ntop: ADD R1, R1, R1\nBEQ R30, R30, top\nEND\n"

	prog, err := assemble.Assemble(isa.Default(), "test.s32", source, encoder.ModeMulti)
	require.NoError(t, err)

	addr, err := prog.Symbols.Get("top")
	require.NoError(t, err)
	assert.Equal(t, prog.CodeAddress, addr)
	assert.Equal(t, uint32(9), prog.Image[0])
	assert.Len(t, prog.CodeLines, 2)
}

func TestAssemble_IsIdempotent(t *testing.T) {
	source := "ORG 0\nDEFINE 0\nSTART\nADD R1, R1, R1\nEND\nORG 8\nDEFINE 0\n"
	set := isa.Default()

	first, err := assemble.Assemble(set, "test.s32", source, encoder.ModeSingle)
	require.NoError(t, err)

	second, err := assemble.Assemble(set, "test.s32", source, encoder.ModeSingle)
	require.NoError(t, err)

	assert.Equal(t, first.Image, second.Image)
}

func TestAssemble_PropagatesEncodeErrors(t *testing.T) {
	source := "ORG 0\nSTART\nFOO R1, R2, R3\nEND\n"

	_, err := assemble.Assemble(isa.Default(), "test.s32", source, encoder.ModeMulti)
	require.Error(t, err)
}
