package vm

import "github.com/lookbusy1344/super32/internal/isa"

// fields are the positional bit groups shared by every instruction word,
// extracted before the decoder knows which family it belongs to. This
// mirrors the encoder's layout bit-for-bit: [opcode:6][field1:5][field2:5][rest:16 or 5+5+6].
type fields struct {
	opcode uint32
	field1 uint32 // Rs (R-type) / base register (storage) / Rs (branch)
	field2 uint32 // Rt (R-type) / dest-src register (storage) / Rt (branch)
	field3 uint32 // Rd (R-type only)
	shamt  uint32 // R-type only, always reserved zero
	funct  uint32 // R-type only
	imm16  uint32 // storage/branch only, raw 16 bits
}

func extractFields(word uint32) fields {
	return fields{
		opcode: word >> 26 & 0x3F,
		field1: word >> 21 & 0x1F,
		field2: word >> 16 & 0x1F,
		field3: word >> 11 & 0x1F,
		shamt:  word >> 6 & 0x1F,
		funct:  word & 0x3F,
		imm16:  word & 0xFFFF,
	}
}

// signExtend16 sign-extends the low 16 bits of v to a full 32-bit
// two's-complement value.
func signExtend16(v uint32) uint32 {
	if v&0x8000 != 0 {
		return v | 0xFFFF0000
	}
	return v & 0xFFFF
}

// decoded identifies which instruction a word represents, resolved
// through the compiled ISA's reverse tables rather than a linear scan.
type decoded struct {
	mnemonic string
	f        fields
}

func decode(set *isa.ISA, word uint32) (decoded, error) {
	f := extractFields(word)

	if f.opcode == 0 {
		mnemonic, ok := set.ArithmeticMnemonic(f.funct)
		if !ok {
			return decoded{}, &ExecutionError{Word: word, Message: "unknown function code"}
		}
		return decoded{mnemonic: mnemonic, f: f}, nil
	}

	if mnemonic, ok := set.StorageMnemonic(f.opcode); ok {
		return decoded{mnemonic: mnemonic, f: f}, nil
	}
	if mnemonic, ok := set.BranchMnemonic(f.opcode); ok {
		return decoded{mnemonic: mnemonic, f: f}, nil
	}

	return decoded{}, &ExecutionError{Word: word, Message: "unknown opcode"}
}
