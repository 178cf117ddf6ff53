// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator composes the serial load/execute controller with
// sample channels into a runnable core: assembled or raw stimulus in,
// output port captures out.
package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/muxalu/alu"
	"github.com/ezrec/muxalu/internal"
	"github.com/ezrec/muxalu/io"
	"github.com/ezrec/muxalu/serial"
)

const (
	// PORTS_PER_EXECUTE is the number of output samples captured per
	// completed load group.
	PORTS_PER_EXECUTE = 2
)

var _emulator_defines = map[string]string{
	"PORTS_PER_EXECUTE": fmt.Sprintf("%v", PORTS_PER_EXECUTE),
}

// Emulator state. Controller + stimulus ROM + capture channels.
type Emulator struct {
	Verbose            bool // If set, enables verbose logging.
	*serial.Controller      // Reference to the controller simulation.

	Program *serial.Program // Currently loaded stimulus listing.

	Rom  io.Rom  // Serialized stimulus samples.
	Tape io.Tape // Output port capture stream.
	Ring io.Ring // Optional persistent port capture.

	Persist bool // If set, capture ports into the Ring as well.

	edge int
	next func() (uint8, bool)
	stop func()
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Controller: &serial.Controller{},
		Program:    &serial.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		alu.Defines(),
		emu.Controller.Defines(),
		emu.Tape.Defines(),
		emu.Rom.Defines(),
		emu.Ring.Defines(),
	)
}

// Close the emulator
func (emu *Emulator) Close() (err error) {
	if emu.stop != nil {
		emu.stop()
		emu.next = nil
		emu.stop = nil
	}

	return
}

// LoadRaw reads an already serialized sample stream from the tape
// input into the stimulus ROM, replacing any assembled program.
func (emu *Emulator) LoadRaw() (err error) {
	emu.Program = &serial.Program{}

	emu.Rom.Data = emu.Rom.Data[:0]
	for sample := range emu.Tape.Receive() {
		emu.Rom.Data = append(emu.Rom.Data, sample)
	}

	return
}

// Reset serializes the stimulus program into the ROM and forces the
// controller to its initial state. A raw sample stream loaded with
// LoadRaw is left in place.
func (emu *Emulator) Reset() (err error) {
	if len(emu.Program.Steps) != 0 {
		emu.Rom.Data = emu.Program.Bytes()
	}
	emu.Rom.Rewind()

	if emu.Persist {
		emu.Ring.Rewind()
	}

	emu.Controller.Verbose = emu.Verbose
	emu.Controller.Reset()

	emu.edge = 0
	if emu.stop != nil {
		emu.stop()
	}
	emu.next, emu.stop = iter.Pull(emu.Rom.Receive())

	return
}

// Edge returns the current clock edge count.
func (emu *Emulator) Edge() int {
	return emu.edge
}

// LineNo returns the stimulus line number for the current clock edge.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.edge)
}

// Tick feeds one sample to the controller. When the sample completes a
// load group, both output ports are captured to the tape (and the ring
// when persistence is enabled). done reports stimulus exhaustion.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Controller.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.next == nil {
		done = true
		return
	}

	sample, ok := emu.next()
	if !ok {
		done = true
		return
	}

	executed := emu.Controller.Clock(sample)
	emu.edge++

	if !executed {
		return
	}

	ports := [PORTS_PER_EXECUTE]uint8{
		emu.Controller.PortResult(),
		emu.Controller.PortStatus(),
	}

	for _, port := range ports {
		err = emu.Tape.Send(port)
		if err != nil {
			return
		}
		if emu.Persist {
			err = emu.Ring.Send(port)
			if err != nil {
				return
			}
		}
	}

	return
}

// Run ticks the emulator until the stimulus is exhausted.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
