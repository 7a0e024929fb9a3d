package encoder

import (
	"github.com/lookbusy1344/super32/internal/isa"
	"github.com/lookbusy1344/super32/internal/parser"
)

// encodeBranch packs an I-type branch instruction: OP Rs Rt target.
//
// [opcode:6][Rs:5][Rt:5][offset:16]
//
// A numeric target is taken as a literal word offset. A label target is
// resolved to a PC-relative word offset from the instruction *following*
// this one: (label_address - currentAddress - 4) / 4.
func encodeBranch(set *isa.ISA, tokens []string, symbols *parser.SymbolTable, currentAddress uint32, pos parser.Position) (uint32, error) {
	opcode, ok := set.BranchCode(tokens[0])
	if !ok {
		return 0, operandError(pos, parser.ErrorSource, "unknown branch mnemonic", tokens[0])
	}

	rs, err := resolveRegister(set, tokens[1], pos)
	if err != nil {
		return 0, err
	}
	rt, err := resolveRegister(set, tokens[2], pos)
	if err != nil {
		return 0, err
	}

	offset, err := resolveBranchOffset(symbols, tokens[3], currentAddress, pos)
	if err != nil {
		return 0, err
	}

	word := opcode<<26 | rs<<21 | rt<<16 | offset
	return word, nil
}

func resolveBranchOffset(symbols *parser.SymbolTable, token string, currentAddress uint32, pos parser.Position) (uint32, error) {
	if parser.IsNumeric(token) {
		n, err := parser.ParseNumber(token)
		if err != nil {
			return 0, operandError(pos, parser.ErrorSource, err.Error(), token)
		}
		if n < -32768 || n > 65535 {
			return 0, operandError(pos, parser.ErrorRange, "branch offset does not fit in 16 bits", token)
		}
		return uint32(n) & 0xFFFF, nil
	}

	target, err := symbols.Get(token)
	if err != nil {
		return 0, operandError(pos, parser.ErrorLabel, err.Error(), token)
	}

	offset := int64(target) - int64(currentAddress) - 4
	offset /= 4

	if offset < -32768 || offset > 32767 {
		return 0, operandError(pos, parser.ErrorRange, "branch target out of range", token)
	}

	return uint32(offset) & 0xFFFF, nil
}
