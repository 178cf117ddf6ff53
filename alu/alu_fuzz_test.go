package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzEvaluate(f *testing.F) {
	for op := range uint8(16) {
		f.Add(uint16(0x0000), uint16(0x0000), op)
		f.Add(uint16(0xffff), uint16(0xffff), op)
		f.Add(uint16(0x7fff), uint16(0x8000), op)
		f.Add(uint16(0x0134), uint16(0x7856), op)
	}

	f.Fuzz(func(t *testing.T, a uint16, b uint16, opval uint8) {
		assert := assert.New(t)

		op := Op(opval) & OP_MASK

		result, flags := Evaluate(a, b, op)

		// Uniform flag derivation.
		assert.Equal(result == 0, flags.Zero)
		assert.Equal((result&0x8000) != 0, flags.Negative)

		if !op.Arithmetic() {
			assert.False(flags.Carry)
			assert.False(flags.Overflow)
		}

		// Reference semantics per operation.
		switch op {
		case OP_ADD:
			wide := uint32(a) + uint32(b)
			assert.Equal(uint16(wide), result)
			assert.Equal(wide >= 0x10000, flags.Carry)
			assert.Equal((int16(a) >= 0) == (int16(b) >= 0) &&
				(int16(a) >= 0) != (int16(result) >= 0), flags.Overflow)
		case OP_SUB:
			assert.Equal(a-b, result)
			assert.Equal(a < b, flags.Carry)
			assert.Equal((int16(a) >= 0) != (int16(b) >= 0) &&
				(int16(a) >= 0) != (int16(result) >= 0), flags.Overflow)
		case OP_INC:
			assert.Equal(a+1, result)
			assert.Equal(a == 0xffff, flags.Carry)
			assert.Equal(a == 0x7fff, flags.Overflow)
		case OP_DEC:
			assert.Equal(a-1, result)
			assert.Equal(a == 0x0000, flags.Carry)
			assert.Equal(a == 0x8000, flags.Overflow)
		case OP_MUL:
			product := uint32(a) * uint32(b)
			assert.Equal(uint16(product), result)
			assert.Equal(product > 0xffff, flags.Carry)
			assert.False(flags.Overflow)
		case OP_DIV:
			if b == 0 {
				assert.Equal(uint16(0xffff), result)
			} else {
				assert.Equal(a/b, result)
			}
		case OP_RSVD_6, OP_RSVD_7, OP_CLEAR:
			assert.Equal(uint16(0x0000), result)
		case OP_AND:
			assert.Equal(a&b, result)
		case OP_OR:
			assert.Equal(a|b, result)
		case OP_XOR:
			assert.Equal(a^b, result)
		case OP_NOT:
			assert.Equal(^a, result)
		case OP_PASS_A:
			assert.Equal(a, result)
		case OP_PASS_B:
			assert.Equal(b, result)
		case OP_SET:
			assert.Equal(uint16(0xffff), result)
		}

		// The lookahead strategy is bit-identical.
		lresult, lflags := EvaluateWith(LookaheadAddSub, a, b, op)
		assert.Equal(result, lresult)
		assert.Equal(flags, lflags)
	})
}
