package vm

import (
	"fmt"

	"github.com/lookbusy1344/super32/internal/parser"
)

// ExecutionError reports a fatal decode or execute failure: an unknown
// opcode or function code encountered by the fetch/decode loop, or a
// runtime fault such as exceeding the configured cycle limit. It is
// unified with the rest of the toolchain's error taxonomy under
// parser.ErrorExecution rather than carrying its own ad hoc kind.
type ExecutionError struct {
	Index   uint32
	Word    uint32
	Message string
}

func (e *ExecutionError) Error() string {
	pos := parser.Position{Line: int(e.Index)}
	context := fmt.Sprintf("word 0x%08X", e.Word)
	return parser.NewErrorWithContext(pos, parser.ErrorExecution, e.Message, context).Error()
}
