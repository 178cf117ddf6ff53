package serial

import (
	"iter"

	"github.com/ezrec/muxalu/alu"
)

// Step represents one assembled stimulus operation with its source location.
type Step struct {
	LineNo int
	Words  []string
	Op     alu.Op
	A, B   uint16
}

// Program is an assembled sequence of stimulus operations.
type Program struct {
	Steps []Step
}

// EDGES_PER_STEP is the number of clock edges one step occupies on the
// serial load interface.
const EDGES_PER_STEP = 4

// Bytes returns the serialized load sequence for the whole program.
func (prog *Program) Bytes() (data []uint8) {
	for _, step := range prog.Steps {
		group := LoadBytes(step.A, step.B, step.Op)
		data = append(data, group[:]...)
	}

	return
}

// Samples iterates (clock edge, sample) over the serialized load sequence.
func (prog *Program) Samples() iter.Seq2[int, uint8] {
	return func(yield func(edge int, sample uint8) bool) {
		for n, sample := range prog.Bytes() {
			if !yield(n, sample) {
				return
			}
		}
	}
}

// Debug returns the step covering a given clock edge, or nil past the
// end of the program.
func (prog *Program) Debug(edge int) (step *Step) {
	index := edge / EDGES_PER_STEP
	if index >= 0 && index < len(prog.Steps) {
		step = &prog.Steps[index]
	}

	return
}

// LineNo returns the source line number for the step covering a clock
// edge, or 0 past the end of the program.
func (prog *Program) LineNo(edge int) (lineno int) {
	step := prog.Debug(edge)
	if step != nil {
		lineno = step.LineNo
	}

	return
}
