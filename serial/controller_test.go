package serial

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/muxalu/alu"
)

func TestLoadSequence(t *testing.T) {
	assert := assert.New(t)

	ctl := &Controller{}
	ctl.Reset()

	assert.Equal(LOAD_A_LOW, ctl.State)

	// inc 0x134: samples are a.lo, then a.hi nibble packed with the
	// opcode, then both halves of operand b.
	assert.False(ctl.Clock(0x34))
	assert.Equal(LOAD_A_HIGH_OP, ctl.State)

	assert.False(ctl.Clock(0x12))
	assert.Equal(LOAD_B_LOW, ctl.State)
	assert.Equal(uint16(0x0134), ctl.A)
	assert.Equal(alu.OP_INC, ctl.Op)

	assert.False(ctl.Clock(0x56))
	assert.Equal(LOAD_B_HIGH_EXEC, ctl.State)

	assert.True(ctl.Clock(0x78))
	assert.Equal(LOAD_A_LOW, ctl.State)

	assert.Equal(uint16(0x7856), ctl.B)
	assert.Equal(uint16(0x0135), ctl.Result)
	assert.Equal(alu.Flags{}, ctl.Flags)

	assert.Equal(uint8(0x35), ctl.PortResult())
	assert.Equal(uint8(0x01), ctl.PortStatus())

	assert.Equal(4, ctl.Ticks)
	assert.Equal(1, ctl.Executed)
}

func TestStateCycle(t *testing.T) {
	assert := assert.New(t)

	ctl := &Controller{}
	ctl.Reset()

	// The cursor never skips or stalls.
	for n := range 32 {
		assert.Equal(LoadState(n%EDGES_PER_STEP), ctl.State)
		executed := ctl.Clock(0x00)
		assert.Equal(n%EDGES_PER_STEP == 3, executed)
	}

	assert.Equal(8, ctl.Executed)
	assert.Equal(32, ctl.Ticks)
}

func TestResetMidSequence(t *testing.T) {
	assert := assert.New(t)

	ctl := &Controller{}
	ctl.Reset()

	for state := range EDGES_PER_STEP {
		// Partially load a group, then reset at each possible state.
		for range state {
			ctl.Clock(0xaa)
		}
		ctl.Reset()

		assert.Equal(LOAD_A_LOW, ctl.State)
		assert.Equal(uint16(0), ctl.A)
		assert.Equal(uint16(0), ctl.B)
		assert.Equal(uint16(0), ctl.Result)
		assert.Equal(alu.Flags{}, ctl.Flags)
		assert.Equal(0, ctl.Ticks)

		// The next byte is interpreted as operand A low.
		group := LoadBytes(0x0123, 0x0000, alu.OP_PASS_A)
		for _, sample := range group {
			ctl.Clock(sample)
		}
		assert.Equal(uint16(0x0123), ctl.Result)
	}
}

func TestLoadBytesRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for range 4096 {
		a := uint16(rand.Uint32()) & 0x0fff
		b := uint16(rand.Uint32())
		op := alu.Op(rand.Intn(16))

		ctl := &Controller{}
		ctl.Reset()

		group := LoadBytes(a, b, op)
		for _, sample := range group {
			ctl.Clock(sample)
		}

		assert.Equal(a, ctl.A, "a=%03x b=%04x op=%v", a, b, op)
		assert.Equal(b, ctl.B, "a=%03x b=%04x op=%v", a, b, op)
		assert.Equal(op, ctl.Op, "a=%03x b=%04x op=%v", a, b, op)

		result, flags := alu.Evaluate(a, b, op)
		assert.Equal(result, ctl.Result)
		assert.Equal(flags, ctl.Flags)
	}
}

func TestPortTruncation(t *testing.T) {
	assert := assert.New(t)

	ctl := &Controller{}
	ctl.Reset()

	// passb 0xfedc: the top result nibble is not observable on
	// either port.
	group := LoadBytes(0x0000, 0xfedc, alu.OP_PASS_B)
	for _, sample := range group {
		ctl.Clock(sample)
	}

	assert.Equal(uint16(0xfedc), ctl.Result)
	assert.Equal(uint8(0xdc), ctl.PortResult())

	packed := alu.Flags{Negative: true}.Pack()
	assert.Equal((packed<<4)|0x0e, ctl.PortStatus())
}

func TestControllerString(t *testing.T) {
	assert := assert.New(t)

	ctl := &Controller{}
	ctl.Reset()

	text := ctl.String()
	assert.Contains(text, "state: a.lo")
	assert.Contains(text, "flags: ----")
}
