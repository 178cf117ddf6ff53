// Package io provides sample channel implementations for the muxalu
// emulator. The serial pin interface consumes one 8-bit sample per
// clock edge and produces two 8-bit port values per completed load
// group; channels carry those byte streams. Implementations include
// sequential I/O (Tape), fixed replayable stimulus (Rom), and a
// persistent circular store (Ring).
package io

import (
	"iter"
)

// Channel defines the interface for all sample channels. Channels
// operate at the byte level, one sample per clock edge.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields samples from the channel.
	Receive() iter.Seq[uint8]
	// Send writes a single sample to the channel.
	Send(value uint8) error
}
