package encoder

import (
	"strconv"

	"github.com/lookbusy1344/super32/internal/isa"
	"github.com/lookbusy1344/super32/internal/parser"
)

// injectVectors writes the boot and halt vectors into a single-region
// image: image[0] branches unconditionally into the code region, and the
// final word branches unconditionally to itself, parking execution there
// once the program runs off the end of its code. Both reuse the ordinary
// branch encoder with R30 == R30 as the always-true condition and a
// literal (non-label) word offset, exactly as an ordinary BEQ would.
func injectVectors(set *isa.ISA, codeAddress uint32, image []uint32, pos parser.Position) error {
	if len(image) == 0 {
		return operandError(pos, parser.ErrorAddress, "memory image is empty", "")
	}
	if codeAddress == 0 {
		return operandError(pos, parser.ErrorAddress,
			"single-region images reserve word 0 for the boot vector; ORG the code region at a nonzero address", "")
	}

	startOffset := int64(codeAddress)/4 - 1
	startWord, err := encodeBranchLiteral(set, startOffset, pos)
	if err != nil {
		return err
	}
	image[0] = startWord

	haltWord, err := encodeBranchLiteral(set, -1, pos)
	if err != nil {
		return err
	}
	image[len(image)-1] = haltWord

	return nil
}

func encodeBranchLiteral(set *isa.ISA, offset int64, pos parser.Position) (uint32, error) {
	tokens := []string{"BEQ", "R30", "R30", strconv.FormatInt(offset, 10)}
	return encodeBranch(set, tokens, nil, 0, pos)
}
