// Package arith implements the MCS-51's flag-producing 8-bit arithmetic
// primitives: ADD, ADDC, and SUBB. Every opcode handler that touches
// CY/AC/OV routes through here rather than recomputing flag logic inline,
// the way the teacher's cpu package centralizes carryCheck/overflowCheck
// for its own ALU ops.
package arith

// Flags holds the three status bits an arithmetic primitive produces.
// Other PSW bits are never touched by these primitives; callers are
// responsible for merging Flags into PSW and leaving the rest alone.
type Flags struct {
	CY bool // Carry (or borrow, for Subb)
	AC bool // Auxiliary carry (or borrow from bit 4, for Subb)
	OV bool // Signed overflow
}

func sign(b uint8) bool {
	return b >= 0x80
}

// Add computes lhs+rhs mod 256 and the CY/AC/OV flags that result,
// matching the MCS-51 ADD instruction.
func Add(lhs, rhs uint8) (uint8, Flags) {
	sum := uint16(lhs) + uint16(rhs)
	lowNibble := uint16(lhs&0x0F) + uint16(rhs&0x0F)
	result := uint8(sum)
	return result, Flags{
		CY: sum >= 0x100,
		AC: lowNibble >= 0x10,
		OV: sign(lhs) == sign(rhs) && sign(result) != sign(lhs),
	}
}

// AddC computes lhs+rhs+cyIn mod 256 and the resulting CY/AC/OV flags,
// matching ADDC. cyIn must be 0 or 1. Flags are computed on the full
// three-operand sum, not by patching the result of a plain Add - the
// reference draft's unconditional "add then increment by one" shortcut is
// deliberately not reproduced since it miscomputes carry propagation out
// of the low nibble when adding the carry-in causes its own ripple.
func AddC(lhs, rhs, cyIn uint8) (uint8, Flags) {
	sum := uint16(lhs) + uint16(rhs) + uint16(cyIn)
	lowNibble := uint16(lhs&0x0F) + uint16(rhs&0x0F) + uint16(cyIn)
	result := uint8(sum)
	return result, Flags{
		CY: sum >= 0x100,
		AC: lowNibble >= 0x10,
		OV: sign(lhs) == sign(rhs) && sign(result) != sign(lhs),
	}
}

// Subb computes lhs-rhs-cyIn mod 256 and the resulting CY (borrow),
// AC (borrow out of bit 4) and OV flags, matching SUBB. cyIn must be 0
// or 1.
func Subb(lhs, rhs, cyIn uint8) (uint8, Flags) {
	diff := int16(lhs) - int16(rhs) - int16(cyIn)
	result := uint8(diff)
	signedDiff := int16(int8(lhs)) - int16(int8(rhs)) - int16(cyIn)
	return result, Flags{
		CY: diff < 0,
		AC: int16(lhs&0x0F) < int16(rhs&0x0F)+int16(cyIn),
		OV: signedDiff < -128 || signedDiff > 127,
	}
}
