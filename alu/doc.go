// Package alu implements the combinational 16-bit arithmetic/logic core.
//
// The core is a pure decision table: two 16-bit operands and a 4-bit
// opcode select one of 16 operations, producing a 16-bit result and four
// status flags (zero, carry, overflow, negative). There is no state and
// no fault path - reserved opcodes yield fixed constants and division by
// zero saturates to 0xFFFF.
//
// The package also provides the carry-lookahead adder/subtractor used as
// an alternate fast-addition strategy. It sits behind the same AdderFunc
// contract as the direct adder and is interchangeable with it.
package alu
