package serial

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"math/bits"

	"github.com/ezrec/muxalu/alu"
)

// LoadState is one ordinal of the 4-step byte-reassembly protocol.
type LoadState int

//go:generate go tool stringer -linecomment -type=LoadState
const (
	LOAD_A_LOW       = LoadState(0) // a.lo
	LOAD_A_HIGH_OP   = LoadState(1) // a.hi+op
	LOAD_B_LOW       = LoadState(2) // b.lo
	LOAD_B_HIGH_EXEC = LoadState(3) // b.hi+exec
)

var _controller_defines = map[string]string{
	"LOAD_A_LOW":       fmt.Sprintf("0x%x", int(LOAD_A_LOW)),
	"LOAD_A_HIGH_OP":   fmt.Sprintf("0x%x", int(LOAD_A_HIGH_OP)),
	"LOAD_B_LOW":       fmt.Sprintf("0x%x", int(LOAD_B_LOW)),
	"LOAD_B_HIGH_EXEC": fmt.Sprintf("0x%x", int(LOAD_B_HIGH_EXEC)),
}

// Controller is the synchronous load/execute register block. All
// mutable state of the core lives here; the ALU it invokes is pure.
type Controller struct {
	Verbose bool // Set to enable verbose logging.

	A  uint16 // Operand A register.
	B  uint16 // Operand B register.
	Op alu.Op // Opcode register.

	State LoadState // Load protocol cursor.

	Result uint16    // Latched result register.
	Flags  alu.Flags // Latched flags register.

	Ticks    int // Clock edges since reset.
	Executed int // Completed load groups since reset.
	Power    int // Result register bits flipped since reset.
}

// Defines for the controller.
func (ctl *Controller) Defines() iter.Seq2[string, string] {
	return maps.All(_controller_defines)
}

// Reset forces the initial state: all registers zero, cursor at
// LOAD_A_LOW. Level-sensitive and unconditional, so it may cut an
// in-flight load group short at any point.
func (ctl *Controller) Reset() {
	if ctl.Verbose {
		log.Printf("serial: reset")
	}

	ctl.A = 0
	ctl.B = 0
	ctl.Op = alu.Op(0)
	ctl.State = LOAD_A_LOW
	ctl.Result = 0
	ctl.Flags = alu.Flags{}
	ctl.Ticks = 0
	ctl.Executed = 0
	ctl.Power = 0
}

// Clock advances the protocol by exactly one state with the next input
// sample. Any sample value is accepted in any state. On the fourth
// edge of a group the completed operands and opcode are evaluated and
// the result and flags are latched; executed reports that.
func (ctl *Controller) Clock(sample uint8) (executed bool) {
	ctl.Ticks++

	switch ctl.State {
	case LOAD_A_LOW:
		ctl.A = (ctl.A & 0xff00) | uint16(sample)
		ctl.State = LOAD_A_HIGH_OP
	case LOAD_A_HIGH_OP:
		// High nibble extends operand A; low nibble is the opcode.
		ctl.A = (uint16(sample>>4) << 8) | (ctl.A & 0x00ff)
		ctl.Op = alu.Op(sample) & alu.OP_MASK
		ctl.State = LOAD_B_LOW
	case LOAD_B_LOW:
		ctl.B = (ctl.B & 0xff00) | uint16(sample)
		ctl.State = LOAD_B_HIGH_EXEC
	case LOAD_B_HIGH_EXEC:
		ctl.B = (uint16(sample) << 8) | (ctl.B & 0x00ff)

		prior := ctl.Result
		ctl.Result, ctl.Flags = alu.Evaluate(ctl.A, ctl.B, ctl.Op)
		ctl.Power += bits.OnesCount16(prior ^ ctl.Result)
		ctl.Executed++

		ctl.State = LOAD_A_LOW
		executed = true

		if ctl.Verbose {
			log.Printf("serial: %v %04x,%04x -> %04x %v",
				ctl.Op, ctl.A, ctl.B, ctl.Result, ctl.Flags)
		}
	}

	return
}

// PortResult returns the primary output port: result bits [7:0].
func (ctl *Controller) PortResult() uint8 {
	return uint8(ctl.Result)
}

// PortStatus returns the secondary output port: the packed flags in
// the high nibble and result bits [11:8] in the low nibble. Result
// bits [15:12] are not observable on either port.
func (ctl *Controller) PortStatus() uint8 {
	return (ctl.Flags.Pack() << 4) | uint8((ctl.Result>>8)&0xf)
}

// String returns the current controller state as a string.
func (ctl *Controller) String() (text string) {
	rows := [](struct {
		name  string
		value string
	}){
		{"state", ctl.State.String()},
		{"a", fmt.Sprintf("%04x", ctl.A)},
		{"b", fmt.Sprintf("%04x", ctl.B)},
		{"op", ctl.Op.String()},
		{"result", fmt.Sprintf("%04x", ctl.Result)},
		{"flags", ctl.Flags.String()},
	}

	for _, row := range rows {
		text += fmt.Sprintf("% 6s: %v\n", row.name, row.value)
	}

	return
}

// LoadBytes packs one complete load group for the serial protocol.
// Operand A is truncated to the 12 bits the protocol can carry; its
// top nibble shares the second sample with the opcode.
func LoadBytes(a, b uint16, op alu.Op) [4]uint8 {
	return [4]uint8{
		uint8(a),
		(uint8(a>>8) << 4) | uint8(op&alu.OP_MASK),
		uint8(b),
		uint8(b >> 8),
	}
}
