package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{
		Input: bytes.NewReader([]byte{0x34, 0x12, 0x56, 0x78}),
	}

	var samples []uint8
	for sample := range tape.Receive() {
		samples = append(samples, sample)
	}
	assert.Equal([]uint8{0x34, 0x12, 0x56, 0x78}, samples)

	err := tape.Send(0xaa)
	assert.ErrorIs(err, ErrChannelFull)

	output := &bytes.Buffer{}
	tape.Output = output
	assert.NoError(tape.Send(0xaa))
	assert.NoError(tape.Send(0x55))
	assert.Equal([]byte{0xaa, 0x55}, output.Bytes())
}

func TestRom(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []uint8{1, 2, 3}}

	// Partial consumption survives across Receive calls.
	for sample := range rom.Receive() {
		assert.Equal(uint8(1), sample)
		break
	}

	var rest []uint8
	for sample := range rom.Receive() {
		rest = append(rest, sample)
	}
	assert.Equal([]uint8{2, 3}, rest)

	rom.Rewind()
	rest = rest[:0]
	for sample := range rom.Receive() {
		rest = append(rest, sample)
	}
	assert.Equal([]uint8{1, 2, 3}, rest)

	assert.ErrorIs(rom.Send(0), ErrChannelFull)
}

func TestRing(t *testing.T) {
	assert := assert.New(t)

	ring := &Ring{Capacity: 4}
	ring.Rewind()

	assert.NoError(ring.Send(0x11))
	assert.NoError(ring.Send(0x22))
	assert.NoError(ring.Send(0x33))
	assert.NoError(ring.Send(0x44))
	assert.ErrorIs(ring.Send(0x55), ErrChannelFull)

	var samples []uint8
	for sample := range ring.Receive() {
		samples = append(samples, sample)
	}
	assert.Equal([]uint8{0x11, 0x22, 0x33, 0x44}, samples)

	saved := &bytes.Buffer{}
	assert.NoError(ring.Marshal(saved))

	restored := &Ring{}
	assert.NoError(restored.Unmarshal(bytes.NewReader(saved.Bytes())))
	restored.Rewind()

	samples = samples[:0]
	for sample := range restored.Receive() {
		samples = append(samples, sample)
	}
	assert.Equal([]uint8{0x11, 0x22, 0x33, 0x44}, samples)
}
