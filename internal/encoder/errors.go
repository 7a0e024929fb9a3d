package encoder

import "github.com/lookbusy1344/super32/internal/parser"

// operandError wraps a parser.Error for a specific bad operand so callers
// get the instruction text alongside the position.
func operandError(pos parser.Position, kind parser.ErrorKind, message, operand string) *parser.Error {
	return parser.NewErrorWithContext(pos, kind, message, operand)
}
