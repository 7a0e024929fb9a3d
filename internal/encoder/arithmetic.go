package encoder

import (
	"github.com/lookbusy1344/super32/internal/isa"
	"github.com/lookbusy1344/super32/internal/parser"
)

// encodeArithmetic packs an R-type instruction: OP Rd Rs Rt.
//
// [opcode=0:6][Rs:5][Rt:5][Rd:5][shamt=0:5][funct:6]
func encodeArithmetic(set *isa.ISA, tokens []string, pos parser.Position) (uint32, error) {
	funct, ok := set.ArithmeticCode(tokens[0])
	if !ok {
		return 0, operandError(pos, parser.ErrorSource, "unknown arithmetic mnemonic", tokens[0])
	}

	rd, err := resolveRegister(set, tokens[1], pos)
	if err != nil {
		return 0, err
	}
	rs, err := resolveRegister(set, tokens[2], pos)
	if err != nil {
		return 0, err
	}
	rt, err := resolveRegister(set, tokens[3], pos)
	if err != nil {
		return 0, err
	}

	word := rs<<21 | rt<<16 | rd<<11 | funct
	return word, nil
}
