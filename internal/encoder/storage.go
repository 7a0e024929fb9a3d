package encoder

import (
	"github.com/lookbusy1344/super32/internal/isa"
	"github.com/lookbusy1344/super32/internal/parser"
)

// encodeStorage packs an I-type storage instruction: OP Rd Rs imm_or_label.
//
// [opcode:6][Rs(base):5][Rt(dest/src):5][imm:16]
//
// The first operand always lands in the Rt (dest/src) field and the
// second always lands in the Rs (base) field, for all three storage
// mnemonics: LW Rd,Rs,imm loads into Rd through base Rs; LI Rd,Rs,imm
// is the same shape; SW Rs2,Rs1,imm stores Rs2's value through base
// Rs1 (the first operand is the field written by SW, the second is the
// field read for the address, exactly mirroring LW/LI's roles).
func encodeStorage(set *isa.ISA, tokens []string, symbols *parser.SymbolTable, pos parser.Position) (uint32, error) {
	opcode, ok := set.StorageCode(tokens[0])
	if !ok {
		return 0, operandError(pos, parser.ErrorSource, "unknown storage mnemonic", tokens[0])
	}

	dataField, err := resolveRegister(set, tokens[1], pos)
	if err != nil {
		return 0, err
	}
	baseField, err := resolveRegister(set, tokens[2], pos)
	if err != nil {
		return 0, err
	}
	imm, err := resolveImmediate(symbols, tokens[3], pos)
	if err != nil {
		return 0, err
	}

	word := opcode<<26 | baseField<<21 | dataField<<16 | imm
	return word, nil
}
