// Package vm implements the Super32 single-cycle emulator: a
// fetch/decode/execute loop over a flat memory image, exposing run,
// step and breakpoint-gated continuation.
package vm

import (
	"github.com/lookbusy1344/super32/internal/encoder"
	"github.com/lookbusy1344/super32/internal/isa"
	"github.com/lookbusy1344/super32/internal/parser"
)

// State is the emulator's coarse run state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// VM is the emulator's observable state: the register file, the shared
// memory image, and the bookkeeping needed to map execution back onto
// source lines for breakpoints.
type VM struct {
	CPU         CPU
	Image       Image
	Breakpoints *BreakpointManager

	isa          *isa.ISA
	lineForIndex map[uint32]int
	index        uint32 // i: current word index, PC/4
	haltIndex    uint32
	state        State
	branched     bool

	trace     *Trace
	maxSteps  uint64
	stepCount uint64

	stopRequested bool
}

// New creates an emulator bound to a given instruction set. Call Load to
// assemble and install a program before stepping or running.
func New(set *isa.ISA) *VM {
	return &VM{
		isa:         set,
		Breakpoints: NewBreakpointManager(),
		state:       StateIdle,
	}
}

// Load runs the preprocessor and encoder over source, installs the
// resulting image, and resets the register file and execution index.
func (v *VM) Load(filename, source string, mode encoder.Mode) error {
	pre := parser.NewPreprocessor(filename)
	res, err := pre.Process(source)
	if err != nil {
		return err
	}

	enc := encoder.New(v.isa)
	if err := enc.EncodeAll(res, mode); err != nil {
		return err
	}

	lineForIndex := make(map[uint32]int, len(res.CodeLines))
	for offset, line := range res.CodeLines {
		lineForIndex[res.CodeAddress/4+uint32(offset)] = line.EditorLine
	}

	v.Image = res.Image
	v.lineForIndex = lineForIndex
	v.CPU.Reset()
	v.index = 0
	// Only ModeSingle puts a halt vector in the last word; a ModeMulti
	// image halts once execution steps past its final word.
	v.haltIndex = uint32(len(res.Image))
	if mode == encoder.ModeSingle {
		v.haltIndex--
	}
	v.state = StateIdle
	v.stopRequested = false
	v.stepCount = 0

	return nil
}

func (v *VM) State() State  { return v.state }
func (v *VM) Index() uint32 { return v.index }

// SetTrace attaches an instruction trace sink. Pass nil to disable tracing.
func (v *VM) SetTrace(t *Trace) { v.trace = t }

// SetMaxSteps bounds how many instructions Run/Step will execute before
// reporting an ExecutionError; 0 means unbounded.
func (v *VM) SetMaxSteps(n uint64) { v.maxSteps = n }

// Step executes a single instruction. It is a no-op once the halt row
// has been reached.
func (v *VM) Step() error {
	if v.index == v.haltIndex {
		v.state = StateHalted
		return nil
	}

	if v.maxSteps > 0 && v.stepCount >= v.maxSteps {
		v.state = StateHalted
		return &ExecutionError{Index: v.index, Message: "maximum cycle count exceeded"}
	}

	word, err := v.Image.ReadWord(v.index * 4)
	if err != nil {
		v.state = StateHalted
		return err
	}

	d, err := decode(v.isa, word)
	if err != nil {
		v.state = StateHalted
		return err
	}

	v.trace.record(v.index, d)

	v.branched = false
	if err := v.execute(d); err != nil {
		v.state = StateHalted
		return err
	}
	v.stepCount++

	if !v.branched {
		v.index++
	}
	v.CPU.PC = 4 * v.index

	if v.index == v.haltIndex {
		v.state = StateHalted
	} else {
		v.state = StatePaused
	}

	return nil
}

// Run steps repeatedly until halt, a breakpoint, or a cooperative stop
// request. A breakpoint is consulted before the gated instruction
// executes, so state remains observable and re-enterable at that line.
// Resuming a Run that is already paused at a breakpoint steps past the
// gated instruction first, rather than re-hitting the same breakpoint
// forever.
func (v *VM) Run() error {
	resuming := v.state == StatePaused

	v.stopRequested = false
	v.state = StateRunning

	for {
		if v.stopRequested {
			v.state = StateIdle
			return nil
		}
		if v.index == v.haltIndex {
			v.state = StateHalted
			return nil
		}

		if !resuming {
			if line, ok := v.lineForIndex[v.index]; ok {
				if _, hit := v.Breakpoints.Hit(line); hit {
					v.state = StatePaused
					return nil
				}
			}
		}
		resuming = false

		if err := v.Step(); err != nil {
			return err
		}
	}
}

// Stop requests that a running loop return at the next instruction
// boundary. It does not touch the image or register file.
func (v *VM) Stop() {
	v.stopRequested = true
}
