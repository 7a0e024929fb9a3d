// Package encoder turns preprocessed source lines into 32-bit machine
// words, bit-packed per the Super32 R-type/I-type layouts.
package encoder

import (
	"github.com/lookbusy1344/super32/internal/isa"
	"github.com/lookbusy1344/super32/internal/parser"
)

// Mode selects whether a program is a standalone, directly-bootable
// region (vectors injected at image[0] and image[len-1]) or one region
// of a larger, externally-linked image.
type Mode int

const (
	ModeSingle Mode = iota
	ModeMulti
)

// Encoder turns a preprocessor.Result's code lines into machine words,
// writing them into the accompanying memory image.
type Encoder struct {
	isa *isa.ISA
}

func New(set *isa.ISA) *Encoder {
	return &Encoder{isa: set}
}

// EncodeAll encodes every code line into image at its instruction
// address, then, in ModeSingle, overwrites the image's boot and halt
// words with jump vectors bracketing the code region.
func (e *Encoder) EncodeAll(res *parser.Result, mode Mode) error {
	for i, line := range res.CodeLines {
		addr := res.CodeAddress + uint32(i)*4
		pos := parser.Position{Filename: "", Line: line.EditorLine}

		word, err := e.encodeLine(line.Text, addr, res.Symbols, pos)
		if err != nil {
			return err
		}

		index := addr / 4
		if int(index) >= len(res.Image) {
			return parser.NewError(pos, parser.ErrorAddress, "instruction address outside memory image")
		}
		res.Image[index] = word
	}

	if mode == ModeSingle {
		return injectVectors(e.isa, res.CodeAddress, res.Image, parser.Position{})
	}
	return nil
}

func (e *Encoder) encodeLine(text string, addr uint32, symbols *parser.SymbolTable, pos parser.Position) (uint32, error) {
	tokens := tokenize(text)
	if len(tokens) != 4 {
		return 0, operandError(pos, parser.ErrorSource, "expected a mnemonic and exactly three operands", text)
	}

	mnemonic := tokens[0]
	switch {
	case e.isa.IsArithmetic(mnemonic):
		return encodeArithmetic(e.isa, tokens, pos)
	case e.isa.IsStorage(mnemonic):
		return encodeStorage(e.isa, tokens, symbols, pos)
	case e.isa.IsBranch(mnemonic):
		return encodeBranch(e.isa, tokens, symbols, addr, pos)
	default:
		return 0, operandError(pos, parser.ErrorSource, "unrecognised mnemonic", mnemonic)
	}
}
