package io

import (
	"iter"
	"maps"
)

// Rom is a fixed sample sequence, replayed from the read position.
// The emulator loads the assembled stimulus stream here.
type Rom struct {
	Data []uint8

	ReadIndex int
}

var _ Channel = (*Rom)(nil)

// Defines returns an iter of defines for the channel.
func (rc *Rom) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

// Rewind resets the read position to the start.
func (rc *Rom) Rewind() {
	rc.ReadIndex = 0
}

// Receive returns an iterator that yields samples from the current
// read position to the end of the data.
func (rc *Rom) Receive() iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {
		for rc.ReadIndex < len(rc.Data) {
			value := rc.Data[rc.ReadIndex]
			rc.ReadIndex++
			if !yield(value) {
				return
			}
		}
	}
}

// Send is not possible on a ROM.
func (rc *Rom) Send(value uint8) error {
	return ErrChannelFull
}
