package alu

// AdderFunc is the 16-bit adder/subtractor contract. Subtract mode
// one's-complements b and forces the carry in, making the operation a
// two's-complement subtract. The raw carry out and the signed overflow
// are reported alongside the sum.
type AdderFunc func(a, b uint16, carry, subtract bool) (sum uint16, carryOut, overflow bool)

var _ AdderFunc = AddSub
var _ AdderFunc = LookaheadAddSub

// AddSub is the direct adder/subtractor strategy.
func AddSub(a, b uint16, carry, subtract bool) (sum uint16, carryOut, overflow bool) {
	if subtract {
		b = ^b
		carry = true
	}

	var cin uint32
	if carry {
		cin = 1
	}

	wide := uint32(a) + uint32(b) + cin
	sum = uint16(wide)
	carryOut = (wide >> 16) != 0
	overflow = ((a ^ sum) & (b ^ sum) & 0x8000) != 0

	return
}

// LookaheadAddSub is the carry-lookahead adder/subtractor strategy:
// four 4-bit lookahead blocks chained on their carry line. The carry
// within each block does not ripple; across blocks it does.
func LookaheadAddSub(a, b uint16, carry, subtract bool) (sum uint16, carryOut, overflow bool) {
	if subtract {
		b = ^b
		carry = true
	}

	cin := carry
	for n := 0; n < 16; n += 4 {
		block, cout, _, _ := Lookahead4(uint8((a>>n)&0xf), uint8((b>>n)&0xf), cin)
		sum |= uint16(block) << n
		cin = cout
	}

	carryOut = cin
	overflow = ((a ^ sum) & (b ^ sum) & 0x8000) != 0

	return
}

// Lookahead4 computes one 4-bit carry-lookahead block: the sum and
// carry out for the low 4 bits of a and b, plus the block generate and
// propagate signals for composition into wider adders.
func Lookahead4(a, b uint8, cin bool) (sum uint8, cout, gen, prop bool) {
	g := (a & b) & 0xf
	p := (a ^ b) & 0xf

	// Internal carries from the lookahead recurrence: every carry is
	// a sum of products over the generate/propagate bits below it.
	c0 := cin
	c1 := bit(g, 0) ||
		(bit(p, 0) && c0)
	c2 := bit(g, 1) ||
		(bit(p, 1) && bit(g, 0)) ||
		(bit(p, 1) && bit(p, 0) && c0)
	c3 := bit(g, 2) ||
		(bit(p, 2) && bit(g, 1)) ||
		(bit(p, 2) && bit(p, 1) && bit(g, 0)) ||
		(bit(p, 2) && bit(p, 1) && bit(p, 0) && c0)

	gen = bit(g, 3) ||
		(bit(p, 3) && bit(g, 2)) ||
		(bit(p, 3) && bit(p, 2) && bit(g, 1)) ||
		(bit(p, 3) && bit(p, 2) && bit(p, 1) && bit(g, 0))
	prop = p == 0xf
	cout = gen || (prop && cin)

	sum = p ^ pack4(c0, c1, c2, c3)

	return
}

func bit(value uint8, n int) bool {
	return ((value >> n) & 1) != 0
}

func pack4(b0, b1, b2, b3 bool) (value uint8) {
	bits := [4]bool{b0, b1, b2, b3}
	for n, set := range bits {
		if set {
			value |= 1 << n
		}
	}

	return
}
