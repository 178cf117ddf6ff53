package io

import (
	"fmt"
	"io"
	"iter"
	"maps"
)

const (
	// RING_DEFAULT_CAPACITY is the default capacity in samples for a new ring.
	RING_DEFAULT_CAPACITY = 65536
)

// Ring represents a circular sample store with separate read and write
// positions. The emulator can persist captured port output here, and
// the store can be marshaled to and from a file.
type Ring struct {
	Capacity int

	WriteIndex int
	ReadIndex  int
	Data       []uint8
}

var _ Channel = (*Ring)(nil)

// Defines returns an iter of defines for the channel.
func (ring *Ring) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"RING_CAPACITY": fmt.Sprintf("%v", ring.Capacity),
	})
}

// Rewind resets the ring's read position to the start and write
// position to the end of existing data. Initializes the data buffer
// if not already allocated.
func (ring *Ring) Rewind() {
	if ring.Data == nil {
		if ring.Capacity == 0 {
			ring.Capacity = RING_DEFAULT_CAPACITY
		}
		ring.Data = make([]uint8, 0, ring.Capacity)
	} else {
		ring.Capacity = cap(ring.Data)
	}

	ring.ReadIndex = 0
	ring.WriteIndex = len(ring.Data)
}

// Unmarshal loads ring data from a reader, replacing any existing data.
func (ring *Ring) Unmarshal(file io.Reader) (err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	ring.Data = data
	ring.ReadIndex = 0
	ring.WriteIndex = len(ring.Data)

	return
}

// Marshal writes the ring's data to a writer up to the current write position.
func (ring *Ring) Marshal(file io.Writer) (err error) {
	_, err = file.Write(ring.Data[0:ring.WriteIndex])

	return
}

// Receive returns an iterator that yields samples from the ring
// starting at the current read position up to the write position.
func (ring *Ring) Receive() iter.Seq[uint8] {
	if ring == nil {
		return func(func(uint8) bool) {}
	}

	return func(yield func(value uint8) bool) {
		for ring.ReadIndex < ring.WriteIndex {
			value := ring.Data[ring.ReadIndex]
			ring.ReadIndex++
			if !yield(value) {
				return
			}
		}
	}
}

// Send writes a sample to the ring at the current write position.
// Returns ErrChannelFull if the ring has reached capacity.
func (ring *Ring) Send(value uint8) (err error) {
	if ring == nil {
		err = ErrChannelFull
		return
	}

	if ring.WriteIndex >= ring.Capacity {
		err = ErrChannelFull
		return
	}

	for ring.WriteIndex >= len(ring.Data) {
		ring.Data = append(ring.Data, 0xff)
	}

	ring.Data[ring.WriteIndex] = value
	ring.WriteIndex++

	return
}
