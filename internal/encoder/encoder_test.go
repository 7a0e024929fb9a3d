package encoder_test

import (
	"testing"

	"github.com/lookbusy1344/super32/internal/encoder"
	"github.com/lookbusy1344/super32/internal/isa"
	"github.com/lookbusy1344/super32/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func process(t *testing.T, source string) *parser.Result {
	t.Helper()
	pre := parser.NewPreprocessor("test.s32")
	res, err := pre.Process(source)
	require.NoError(t, err)
	return res
}

func TestEncodeAll_Arithmetic(t *testing.T) {
	set := isa.Default()
	res := process(t, "ORG 0\nSTART\nADD R3, R1, R2\nEND\n")

	enc := encoder.New(set)
	require.NoError(t, enc.EncodeAll(res, encoder.ModeMulti))

	word := res.Image[res.CodeAddress/4]
	opcode := word >> 26 & 0x3F
	rs := word >> 21 & 0x1F
	rt := word >> 16 & 0x1F
	rd := word >> 11 & 0x1F
	shamt := word >> 6 & 0x1F
	funct := word & 0x3F

	assert.Equal(t, uint32(0), opcode)
	assert.Equal(t, uint32(1), rs) // R1
	assert.Equal(t, uint32(2), rt) // R2
	assert.Equal(t, uint32(3), rd) // R3
	assert.Equal(t, uint32(0), shamt)
	addFunct, _ := set.ArithmeticCode("ADD")
	assert.Equal(t, addFunct, funct)
}

func TestEncodeAll_StorageRoundTrip(t *testing.T) {
	set := isa.Default()
	res := process(t, "ORG 0\nSTART\nSW R1, R0, $20\nEND\n")

	enc := encoder.New(set)
	require.NoError(t, enc.EncodeAll(res, encoder.ModeMulti))

	word := res.Image[res.CodeAddress/4]
	opcode := word >> 26 & 0x3F
	base := word >> 21 & 0x1F
	data := word >> 16 & 0x1F
	imm := word & 0xFFFF

	swOpcode, _ := set.StorageCode("SW")
	assert.Equal(t, swOpcode, opcode)
	assert.Equal(t, uint32(0), base) // R0
	assert.Equal(t, uint32(1), data) // R1
	assert.Equal(t, uint32(0x20), imm)
}

func TestEncodeAll_BranchLabelOffsetIsPCRelative(t *testing.T) {
	set := isa.Default()
	res := process(t, "ORG 0\nSTART\ntop: ADD R1, R1, R1\nBEQ R30, R30, top\nEND\n")

	enc := encoder.New(set)
	require.NoError(t, enc.EncodeAll(res, encoder.ModeMulti))

	branchAddr := res.CodeAddress + 4
	word := res.Image[branchAddr/4]
	offset := int32(int16(uint16(word & 0xFFFF)))

	topAddr, err := res.Symbols.Get("top")
	require.NoError(t, err)

	resolved := int64(branchAddr) + 4 + int64(offset)*4
	assert.Equal(t, int64(topAddr), resolved)
}

func TestEncodeAll_RejectsWrongOperandCount(t *testing.T) {
	set := isa.Default()
	res := process(t, "ORG 0\nSTART\nADD R1, R2\nEND\n")

	enc := encoder.New(set)
	err := enc.EncodeAll(res, encoder.ModeMulti)
	require.Error(t, err)
}

func TestEncodeAll_RejectsUnknownMnemonic(t *testing.T) {
	set := isa.Default()
	res := process(t, "ORG 0\nSTART\nFOO R1, R2, R3\nEND\n")

	enc := encoder.New(set)
	err := enc.EncodeAll(res, encoder.ModeMulti)
	require.Error(t, err)
}

func TestEncodeAll_RejectsOutOfRangeImmediate(t *testing.T) {
	set := isa.Default()
	res := process(t, "ORG 0\nSTART\nLI R1, R0, 100000\nEND\n")

	enc := encoder.New(set)
	err := enc.EncodeAll(res, encoder.ModeMulti)
	require.Error(t, err)
}

func TestEncodeAll_SingleModeInjectsVectors(t *testing.T) {
	set := isa.Default()
	res := process(t, "ORG 0\nDEFINE 0\nSTART\nADD R1, R1, R1\nADD R2, R2, R2\nEND\nORG 12\nDEFINE 0\n")

	enc := encoder.New(set)
	require.NoError(t, enc.EncodeAll(res, encoder.ModeSingle))

	beqOpcode, _ := set.BranchCode("BEQ")

	start := res.Image[0]
	assert.Equal(t, beqOpcode, start>>26&0x3F)
	startOffset := int32(int16(uint16(start & 0xFFFF)))
	assert.Equal(t, int32(res.CodeAddress)/4-1, startOffset)

	halt := res.Image[len(res.Image)-1]
	assert.Equal(t, beqOpcode, halt>>26&0x3F)
	haltOffset := int32(int16(uint16(halt & 0xFFFF)))
	assert.Equal(t, int32(-1), haltOffset)
}

func TestEncodeAll_SingleModeRejectsCodeAtAddressZero(t *testing.T) {
	set := isa.Default()
	res := process(t, "ORG 0\nSTART\nADD R1, R1, R1\nEND\n")

	enc := encoder.New(set)
	err := enc.EncodeAll(res, encoder.ModeSingle)

	require.Error(t, err)
}
