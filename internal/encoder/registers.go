package encoder

import (
	"github.com/lookbusy1344/super32/internal/isa"
	"github.com/lookbusy1344/super32/internal/parser"
)

func resolveRegister(set *isa.ISA, token string, pos parser.Position) (uint32, error) {
	code, ok := set.RegisterCode(token)
	if !ok {
		return 0, operandError(pos, parser.ErrorSource, "unknown register", token)
	}
	return code, nil
}

// resolveImmediate turns a numeric literal or label reference into a
// 16-bit two's-complement value suitable for the imm field of a storage
// instruction.
func resolveImmediate(symbols *parser.SymbolTable, token string, pos parser.Position) (uint32, error) {
	var value int64
	if parser.IsNumeric(token) {
		n, err := parser.ParseNumber(token)
		if err != nil {
			return 0, operandError(pos, parser.ErrorSource, err.Error(), token)
		}
		value = n
	} else {
		addr, err := symbols.Get(token)
		if err != nil {
			return 0, operandError(pos, parser.ErrorLabel, err.Error(), token)
		}
		value = int64(addr)
	}

	if value < -32768 || value > 65535 {
		return 0, operandError(pos, parser.ErrorRange, "value does not fit in 16 bits", token)
	}

	return uint32(value) & 0xFFFF, nil
}
