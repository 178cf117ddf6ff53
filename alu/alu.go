package alu

import (
	"fmt"
	"iter"
	"maps"
)

// Flags is the set of status bits derived from every evaluation.
type Flags struct {
	Zero     bool // Result is all zeros.
	Carry    bool // Carry out, borrow, or truncation loss.
	Overflow bool // Signed overflow.
	Negative bool // Result bit 15 is set.
}

// Flag bit positions within the packed 4-bit status field.
const (
	FLAG_BIT_ZERO     = 0
	FLAG_BIT_CARRY    = 1
	FLAG_BIT_OVERFLOW = 2
	FLAG_BIT_NEGATIVE = 3
)

// Pack packs the flags into the low 4 bits of a byte, as presented in
// the high nibble of the status port.
func (fl Flags) Pack() (packed uint8) {
	if fl.Zero {
		packed |= 1 << FLAG_BIT_ZERO
	}
	if fl.Carry {
		packed |= 1 << FLAG_BIT_CARRY
	}
	if fl.Overflow {
		packed |= 1 << FLAG_BIT_OVERFLOW
	}
	if fl.Negative {
		packed |= 1 << FLAG_BIT_NEGATIVE
	}

	return
}

// UnpackFlags recovers a Flags from its packed 4-bit form.
func UnpackFlags(packed uint8) (fl Flags) {
	fl.Zero = (packed>>FLAG_BIT_ZERO)&1 != 0
	fl.Carry = (packed>>FLAG_BIT_CARRY)&1 != 0
	fl.Overflow = (packed>>FLAG_BIT_OVERFLOW)&1 != 0
	fl.Negative = (packed>>FLAG_BIT_NEGATIVE)&1 != 0

	return
}

// String returns the flags as "zcvn", with '-' for clear bits.
func (fl Flags) String() (text string) {
	bits := [4]struct {
		set bool
		chr string
	}{
		{fl.Zero, "z"},
		{fl.Carry, "c"},
		{fl.Overflow, "v"},
		{fl.Negative, "n"},
	}

	for _, bit := range bits {
		if bit.set {
			text += bit.chr
		} else {
			text += "-"
		}
	}

	return
}

// Evaluate computes the 16-way decision table over two 16-bit operands,
// using the direct adder for the add/subtract paths.
func Evaluate(a, b uint16, op Op) (result uint16, flags Flags) {
	return EvaluateWith(AddSub, a, b, op)
}

// EvaluateWith computes the decision table with a caller-chosen adder
// strategy on the add/subtract paths. LookaheadAddSub may be
// substituted for AddSub transparently.
func EvaluateWith(add AdderFunc, a, b uint16, op Op) (result uint16, flags Flags) {
	switch op & OP_MASK {
	case OP_ADD:
		result, flags.Carry, flags.Overflow = add(a, b, false, false)
	case OP_SUB:
		var carry bool
		result, carry, flags.Overflow = add(a, b, false, true)
		// Raw carry out of a two's-complement subtract is the
		// inverted unsigned borrow.
		flags.Carry = !carry
	case OP_INC:
		result = a + 1
		flags.Carry = a == 0xffff
		flags.Overflow = a == 0x7fff
	case OP_DEC:
		result = a - 1
		flags.Carry = a == 0x0000
		flags.Overflow = a == 0x8000
	case OP_MUL:
		product := uint32(a) * uint32(b)
		result = uint16(product)
		// Truncation loss indicator.
		flags.Carry = (product >> 16) != 0
	case OP_DIV:
		if b == 0 {
			result = 0xffff
		} else {
			result = a / b
		}
	case OP_RSVD_6, OP_RSVD_7:
		result = 0x0000
	case OP_AND:
		result = a & b
	case OP_OR:
		result = a | b
	case OP_XOR:
		result = a ^ b
	case OP_NOT:
		result = ^a
	case OP_PASS_A:
		result = a
	case OP_PASS_B:
		result = b
	case OP_CLEAR:
		result = 0x0000
	case OP_SET:
		result = 0xffff
	}

	flags.Zero = result == 0
	flags.Negative = (result & 0x8000) != 0

	return
}

// Defines for the alu opcode encodings.
var _alu_defines = map[string]string{
	"OP_ADD":    fmt.Sprintf("0x%x", int(OP_ADD)),
	"OP_SUB":    fmt.Sprintf("0x%x", int(OP_SUB)),
	"OP_INC":    fmt.Sprintf("0x%x", int(OP_INC)),
	"OP_DEC":    fmt.Sprintf("0x%x", int(OP_DEC)),
	"OP_MUL":    fmt.Sprintf("0x%x", int(OP_MUL)),
	"OP_DIV":    fmt.Sprintf("0x%x", int(OP_DIV)),
	"OP_AND":    fmt.Sprintf("0x%x", int(OP_AND)),
	"OP_OR":     fmt.Sprintf("0x%x", int(OP_OR)),
	"OP_XOR":    fmt.Sprintf("0x%x", int(OP_XOR)),
	"OP_NOT":    fmt.Sprintf("0x%x", int(OP_NOT)),
	"OP_PASS_A": fmt.Sprintf("0x%x", int(OP_PASS_A)),
	"OP_PASS_B": fmt.Sprintf("0x%x", int(OP_PASS_B)),
	"OP_CLEAR":  fmt.Sprintf("0x%x", int(OP_CLEAR)),
	"OP_SET":    fmt.Sprintf("0x%x", int(OP_SET)),
}

// Defines returns an iterator over the opcode encodings by name.
func Defines() iter.Seq2[string, string] {
	return maps.All(_alu_defines)
}
