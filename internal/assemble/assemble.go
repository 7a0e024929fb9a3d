// Package assemble ties the preprocessor and encoder together into the
// single call a driver needs: source text in, a completed memory image
// out.
package assemble

import (
	"github.com/lookbusy1344/super32/internal/encoder"
	"github.com/lookbusy1344/super32/internal/isa"
	"github.com/lookbusy1344/super32/internal/parser"
)

// Program is the fully assembled result: the completed memory image plus
// everything the emulator or a symbol dump needs to interpret it.
type Program struct {
	Image       []uint32
	Symbols     *parser.SymbolTable
	CodeAddress uint32
	CodeLines   []parser.SourceLine
}

// Assemble runs the preprocessor and encoder over source and returns the
// completed image. mode controls whether boot/halt vectors are injected
// (ModeSingle) or the region is left for external linking (ModeMulti).
func Assemble(set *isa.ISA, filename, source string, mode encoder.Mode) (*Program, error) {
	pre := parser.NewPreprocessor(filename)
	res, err := pre.Process(source)
	if err != nil {
		return nil, err
	}

	enc := encoder.New(set)
	if err := enc.EncodeAll(res, mode); err != nil {
		return nil, err
	}

	return &Program{
		Image:       res.Image,
		Symbols:     res.Symbols,
		CodeAddress: res.CodeAddress,
		CodeLines:   res.CodeLines,
	}, nil
}
