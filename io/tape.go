package io

import (
	"io"
	"iter"
	"maps"
)

// Tape provides sequential sample I/O over byte streams. It wraps an
// io.Reader for input and io.Writer for output; samples map one to one
// onto stream bytes.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

var _ Channel = (*Tape)(nil)

// Defines returns an iter of defines for the channel.
func (tc *Tape) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive returns an iterator that yields samples from the input
// stream until it is exhausted.
func (tc *Tape) Receive() iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {
		if tc.Input == nil {
			return
		}

		var one [1]byte
		for {
			_, err := tc.Input.Read(one[:])
			if err != nil {
				return
			}
			if !yield(one[0]) {
				return
			}
		}
	}
}

// Send writes a sample to the output stream.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelFull
		return
	}

	_, err = tc.Output.Write([]byte{value})

	return
}
