package vm

import (
	"fmt"
	"io"
)

// Trace writes one line per executed instruction to an io.Writer: the
// sequence number, the byte address, and the decoded mnemonic. It has no
// state beyond a running counter, unlike the richer flag/register/stack
// traces this is descended from.
type Trace struct {
	Writer io.Writer
	count  uint64
}

// NewTrace creates a trace sink writing to w. A nil Writer disables
// tracing entirely (record becomes a no-op), so SetTrace(nil) can be used
// to turn tracing back off.
func NewTrace(w io.Writer) *Trace {
	return &Trace{Writer: w}
}

func (t *Trace) record(index uint32, d decoded) {
	if t == nil || t.Writer == nil {
		return
	}
	t.count++
	fmt.Fprintf(t.Writer, "[%06d] 0x%08X %s\n", t.count, index*4, d.mnemonic)
}
