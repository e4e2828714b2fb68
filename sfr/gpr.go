package sfr

// GPR names the eight general-purpose registers within whichever bank is
// currently selected by PSW.RS1:RS0. The underlying storage address is
// 8*bank + GPR, computed by the memory package; these constants are only
// the bank-relative offsets 0-7.
const (
	R0 = uint8(0)
	R1 = uint8(1)
	R2 = uint8(2)
	R3 = uint8(3)
	R4 = uint8(4)
	R5 = uint8(5)
	R6 = uint8(6)
	R7 = uint8(7)
)
