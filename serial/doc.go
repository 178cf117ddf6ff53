// Package serial implements the load/execute controller for the
// time-multiplexed pin interface, and the stimulus assembler.
//
// The controller reassembles two 16-bit operands and a 4-bit opcode
// from four consecutive 8-bit samples, one per clock edge. The fourth
// sample of every group triggers a combinational ALU evaluation and
// latches the result and flags into the output registers. Only the low
// 12 result bits plus the four flags are visible on the two output
// ports; the pin budget does not cover the top nibble.
//
// The assembler compiles a line-oriented stimulus language (one ALU
// operation per line, with equates, macros, and compile-time starlark
// expressions) into the serialized byte-load sequence the controller
// consumes.
package serial
