package alu

// Op is a 4-bit operation selector.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD    = Op(0)  // add
	OP_SUB    = Op(1)  // sub
	OP_INC    = Op(2)  // inc
	OP_DEC    = Op(3)  // dec
	OP_MUL    = Op(4)  // mul
	OP_DIV    = Op(5)  // div
	OP_RSVD_6 = Op(6)  // rsvd6
	OP_RSVD_7 = Op(7)  // rsvd7
	OP_AND    = Op(8)  // and
	OP_OR     = Op(9)  // or
	OP_XOR    = Op(10) // xor
	OP_NOT    = Op(11) // not
	OP_PASS_A = Op(12) // passa
	OP_PASS_B = Op(13) // passb
	OP_CLEAR  = Op(14) // clear
	OP_SET    = Op(15) // set
)

// OP_MASK masks an Op to its 4-bit encoding.
const OP_MASK = Op(0xf)

// Arithmetic returns true if the Op can set the carry or overflow flags.
func (op Op) Arithmetic() bool {
	return op <= OP_MUL
}
