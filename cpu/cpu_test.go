package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/shirosaka/shiro51/sfr"
)

// newTestCPU returns a CPU with code loaded at offset 0 and initialized
// set directly, bypassing the hex loader/file path Init uses - tests
// build code images as raw byte slices the way the teacher's Setup
// builds a flatMemory fixture directly rather than through a file.
func newTestCPU(code []byte) *CPU {
	c := New()
	c.Mem.LoadCode(code)
	for addr, val := range sfr.ResetValues() {
		c.Mem.Write(addr, val)
	}
	c.initialized = true
	return c
}

func step(t *testing.T, c *CPU) {
	t.Helper()
	if err := c.Cycle(); err != nil {
		t.Fatalf("Cycle() error: %v\nstate: %s", err, spew.Sdump(c))
	}
}

func TestAddFlags(t *testing.T) {
	// A=0xC3, R0=0xAA; ADD A,R0 -> A=0x6D, CY=1, AC=0, OV=1.
	c := newTestCPU([]byte{0x28}) // ADD A,R0
	c.setAcc(0xC3)
	c.Mem.SetGPR(0, 0xAA)
	step(t, c)

	if got, want := c.acc(), uint8(0x6D); got != want {
		t.Errorf("A = %#02x, want %#02x", got, want)
	}
	if got, want := c.psw()&flagCY != 0, true; got != want {
		t.Errorf("CY = %v, want %v", got, want)
	}
	if got, want := c.psw()&flagAC != 0, false; got != want {
		t.Errorf("AC = %v, want %v", got, want)
	}
	if got, want := c.psw()&flagOV != 0, true; got != want {
		t.Errorf("OV = %v, want %v", got, want)
	}
}

func TestAddcWithCarryIn(t *testing.T) {
	// A=0xC3, R2=0xAA, CY=1; ADDC A,R2 -> A=0x6E, CY=1, OV=1, AC=0.
	c := newTestCPU([]byte{0x3A}) // ADDC A,R2
	c.setAcc(0xC3)
	c.Mem.SetGPR(2, 0xAA)
	c.setFlag(flagCY, true)
	step(t, c)

	if got, want := c.acc(), uint8(0x6E); got != want {
		t.Errorf("A = %#02x, want %#02x", got, want)
	}
	if got := c.psw()&flagCY != 0; !got {
		t.Errorf("CY = false, want true")
	}
	if got := c.psw()&flagOV != 0; !got {
		t.Errorf("OV = false, want true")
	}
	if got := c.psw()&flagAC != 0; got {
		t.Errorf("AC = true, want false")
	}
}

func TestAddcDoesNotReproduceNaiveIncrementBug(t *testing.T) {
	// A naive "add then acc+=1" shortcut would botch a case where adding
	// the carry-in itself ripples the low nibble: A=0x0F, R0=0x00, CY=1.
	// Correct ADDC treats cyIn as a true third addend: 0x0F+0x00+1=0x10,
	// AC set (nibble carry), CY clear.
	c := newTestCPU([]byte{0x38}) // ADDC A,R0
	c.setAcc(0x0F)
	c.Mem.SetGPR(0, 0x00)
	c.setFlag(flagCY, true)
	step(t, c)

	if got, want := c.acc(), uint8(0x10); got != want {
		t.Fatalf("A = %#02x, want %#02x", got, want)
	}
	if got := c.psw()&flagAC != 0; !got {
		t.Errorf("AC = false, want true")
	}
	if got := c.psw()&flagCY != 0; got {
		t.Errorf("CY = true, want false")
	}
}

func TestSubbWithBorrowIn(t *testing.T) {
	// A=0xC9, R2=0x54, CY=1; SUBB A,R2 -> A=0x74, CY=0, AC=0, OV=1.
	c := newTestCPU([]byte{0x9A}) // SUBB A,R2
	c.setAcc(0xC9)
	c.Mem.SetGPR(2, 0x54)
	c.setFlag(flagCY, true)
	step(t, c)

	if got, want := c.acc(), uint8(0x74); got != want {
		t.Errorf("A = %#02x, want %#02x", got, want)
	}
	if got := c.psw()&flagCY != 0; got {
		t.Errorf("CY = true, want false")
	}
	if got := c.psw()&flagAC != 0; got {
		t.Errorf("AC = true, want false")
	}
	if got := c.psw()&flagOV != 0; !got {
		t.Errorf("OV = false, want true")
	}
}

func TestRotatesAreTrueRotates(t *testing.T) {
	// A plain shift would lose the wrapped bit; a true rotate carries it
	// to the opposite end.
	c := newTestCPU([]byte{0x03}) // RR A
	c.setAcc(0x01)
	step(t, c)
	if got, want := c.acc(), uint8(0x80); got != want {
		t.Errorf("RR: A = %#02x, want %#02x (bit 0 should wrap to bit 7)", got, want)
	}

	c = newTestCPU([]byte{0x23}) // RL A
	c.setAcc(0x80)
	step(t, c)
	if got, want := c.acc(), uint8(0x01); got != want {
		t.Errorf("RL: A = %#02x, want %#02x (bit 7 should wrap to bit 0)", got, want)
	}
}

func TestRotateThroughCarry(t *testing.T) {
	c := newTestCPU([]byte{0x13}) // RRC A
	c.setAcc(0x01)
	c.setFlag(flagCY, true)
	step(t, c)
	if got, want := c.acc(), uint8(0x80); got != want {
		t.Errorf("RRC: A = %#02x, want %#02x (old CY should enter bit 7)", got, want)
	}
	if got := c.psw()&flagCY != 0; !got {
		t.Errorf("RRC: CY = false, want true (outgoing bit 0 was 1)")
	}

	c = newTestCPU([]byte{0x33}) // RLC A
	c.setAcc(0x80)
	c.setFlag(flagCY, false)
	step(t, c)
	if got, want := c.acc(), uint8(0x00); got != want {
		t.Errorf("RLC: A = %#02x, want %#02x", got, want)
	}
	if got := c.psw()&flagCY != 0; !got {
		t.Errorf("RLC: CY = false, want true (outgoing bit 7 was 1)")
	}
}

func TestAjmpPaging(t *testing.T) {
	// AJMP at 0x0100 (opcode 0x01, target low byte 0x34): page is
	// (0x0100+2)&0xF800=0, opcode page bits from 0x01&0xE0=0 -> target
	// 0x0034.
	code := make([]byte, 0x103)
	code[0x100] = 0x01
	code[0x101] = 0x34
	c := newTestCPU(code)
	c.PC = 0x100
	step(t, c)
	if got, want := c.PC, uint16(0x0034); got != want {
		t.Errorf("PC = %#04x, want %#04x", got, want)
	}
}

func TestLjmpAbsolute(t *testing.T) {
	code := []byte{0x02, 0x12, 0x34}
	c := newTestCPU(code)
	step(t, c)
	if got, want := c.PC, uint16(0x1234); got != want {
		t.Errorf("PC = %#04x, want %#04x", got, want)
	}
}

func TestSjmpSignExtension(t *testing.T) {
	// SJMP -2 (0xFE) from PC=0 lands back on itself: next=2, 2+(-2)=0.
	c := newTestCPU([]byte{0x80, 0xFE})
	step(t, c)
	if got, want := c.PC, uint16(0x0000); got != want {
		t.Errorf("PC = %#04x, want %#04x", got, want)
	}
}

func TestPCWrapsModulo65536(t *testing.T) {
	code := make([]byte, 65535)
	c := newTestCPU(code)
	c.PC = 0xFFFF
	// NOP at the top of the address space; advancing wraps to 0, not
	// to 0xFFFF-1 or any off-by-one underflow.
	step(t, c)
	if got, want := c.PC, uint16(0x0000); got != want {
		t.Errorf("PC = %#04x, want %#04x", got, want)
	}
}

func TestLcallRet(t *testing.T) {
	code := make([]byte, 0x20)
	code[0x00] = 0x12 // LCALL 0x0010
	code[0x01] = 0x00
	code[0x02] = 0x10
	code[0x10] = 0x22 // RET
	c := newTestCPU(code)
	c.Mem.Write(sfr.SP, 0x07)

	step(t, c) // LCALL
	if got, want := c.PC, uint16(0x0010); got != want {
		t.Fatalf("after LCALL: PC = %#04x, want %#04x", got, want)
	}
	step(t, c) // RET
	if got, want := c.PC, uint16(0x0003); got != want {
		t.Errorf("after RET: PC = %#04x, want %#04x (return address is LCALL's own address + 3)", got, want)
	}
}

func TestBitSetThenJumpBranch(t *testing.T) {
	// SETB 0x20.0 (bit address 0x00), then JB 0x00,rel should branch.
	code := []byte{0xD2, 0x00, 0x20, 0x00, 0x05}
	c := newTestCPU(code)
	step(t, c) // SETB bit 0
	v, err := c.Mem.ReadBit(0x00)
	if err != nil {
		t.Fatalf("ReadBit: %v", err)
	}
	if !v {
		t.Fatalf("bit not set after SETB")
	}

	c.PC = 2
	step(t, c) // JB 0x00, +5
	if got, want := c.PC, uint16(2+3+5); got != want {
		t.Errorf("PC = %#04x, want %#04x", got, want)
	}
}

func TestJbcClearsOnTaken(t *testing.T) {
	c := newTestCPU([]byte{0x10, 0x00, 0x02})
	if err := c.Mem.WriteBit(0x00, true); err != nil {
		t.Fatal(err)
	}
	step(t, c)
	v, _ := c.Mem.ReadBit(0x00)
	if v {
		t.Errorf("bit still set after JBC branched")
	}
	if got, want := c.PC, uint16(3+2); got != want {
		t.Errorf("PC = %#04x, want %#04x", got, want)
	}
}

func TestCjneSetsCarryAndBranches(t *testing.T) {
	c := newTestCPU([]byte{0xB4, 0x10, 0x05}) // CJNE A,#0x10,+5
	c.setAcc(0x03)
	step(t, c)
	if got := c.psw()&flagCY != 0; !got {
		t.Errorf("CY = false, want true (A < operand)")
	}
	if got, want := c.PC, uint16(3+5); got != want {
		t.Errorf("PC = %#04x, want %#04x", got, want)
	}
}

func TestDjnzRn(t *testing.T) {
	c := newTestCPU([]byte{0xD8, 0xFD}) // DJNZ R0,-3
	c.Mem.SetGPR(0, 2)
	step(t, c)
	if got, want := c.Mem.GPR(0), uint8(1); got != want {
		t.Fatalf("R0 = %d, want %d", got, want)
	}
	if got, want := c.PC, uint16(0xFFFF); got != want { // 2-3 wraps to 0xFFFF
		t.Errorf("PC = %#04x, want %#04x (R0 still nonzero, should branch)", got, want)
	}
}

func TestDjnzDirectNotTakenAdvancesByTwo(t *testing.T) {
	// DJNZ 0x40,+1: idata[0x40] starts at 1, decrements to 0, branch not
	// taken. The not-taken PC lands at 2, not 3 - see hDjnzDirect.
	c := newTestCPU([]byte{0xD5, 0x40, 0x01})
	c.Mem.Write(0x40, 0x01)
	step(t, c)
	if got, want := c.Mem.Read(0x40), uint8(0); got != want {
		t.Fatalf("idata[0x40] = %d, want %d", got, want)
	}
	if got, want := c.PC, uint16(2); got != want {
		t.Errorf("PC = %#04x, want %#04x", got, want)
	}
}

func TestDjnzDirectTakenBranchesFromTheTwoByteBase(t *testing.T) {
	c := newTestCPU([]byte{0xD5, 0x40, 0xFD}) // DJNZ 0x40,-3
	c.Mem.Write(0x40, 0x02)
	step(t, c)
	if got, want := c.Mem.Read(0x40), uint8(1); got != want {
		t.Fatalf("idata[0x40] = %d, want %d", got, want)
	}
	if got, want := c.PC, uint16(0xFFFF); got != want { // 2-3 wraps to 0xFFFF
		t.Errorf("PC = %#04x, want %#04x (still nonzero, should branch)", got, want)
	}
}

func TestMovDirectDirectByteOrderIsSourceThenDest(t *testing.T) {
	// MOV direct,direct: the instruction stream is (opcode, source,
	// dest), the reverse of the mnemonic's written order.
	c := newTestCPU([]byte{0x85, 0x30, 0x31})
	c.Mem.Write(0x30, 0x99)
	step(t, c)
	if got, want := c.Mem.Read(0x31), uint8(0x99); got != want {
		t.Errorf("dest = %#02x, want %#02x", got, want)
	}
}

func TestMovIndirectDirectDirectionality(t *testing.T) {
	// 0x86: MOV @R0,direct (direct -> @R0).
	c := newTestCPU([]byte{0x86, 0x40})
	c.Mem.SetGPR(0, 0x50)
	c.Mem.Write(0x40, 0x77)
	step(t, c)
	if got, want := c.Mem.Read(0x50), uint8(0x77); got != want {
		t.Errorf("@R0 = %#02x, want %#02x", got, want)
	}

	// 0xA6: MOV direct,@R0 (@R0 -> direct), the opposite direction.
	c = newTestCPU([]byte{0xA6, 0x41})
	c.Mem.SetGPR(0, 0x51)
	c.Mem.Write(0x51, 0x88)
	step(t, c)
	if got, want := c.Mem.Read(0x41), uint8(0x88); got != want {
		t.Errorf("direct = %#02x, want %#02x", got, want)
	}
}

func TestMovcAPlusPCUsesAddressAfterInstruction(t *testing.T) {
	code := make([]byte, 0x10)
	code[0] = 0x83 // MOVC A,@A+PC
	code[3] = 0x42 // PC(after insn)=1, +A(2) = 3
	c := newTestCPU(code)
	c.setAcc(2)
	step(t, c)
	if got, want := c.acc(), uint8(0x42); got != want {
		t.Errorf("A = %#02x, want %#02x", got, want)
	}
}

func TestUnknownInstructionHalts(t *testing.T) {
	c := newTestCPU([]byte{0xA5})
	err := c.Cycle()
	if err == nil {
		t.Fatal("expected error for reserved opcode 0xA5")
	}
	if !c.Halted() {
		t.Errorf("expected CPU to halt after unknown instruction")
	}
}

func TestUninitializedCycleErrors(t *testing.T) {
	c := New()
	if err := c.Cycle(); err == nil {
		t.Fatal("expected error calling Cycle before Init")
	}
}

func TestPowerModeBookkeeping(t *testing.T) {
	c := newTestCPU([]byte{0x75, 0x87, 0x01}) // MOV PCON,#0x01 (Idle)
	if got, want := c.PowerMode(), PMMNone; got != want {
		t.Fatalf("PowerMode before execution = %v, want %v", got, want)
	}
	step(t, c)
	if got, want := c.PowerMode(), PMMIdle; got != want {
		t.Errorf("PowerMode = %v, want %v", got, want)
	}
}

func TestMulAB(t *testing.T) {
	c := newTestCPU([]byte{0xA4}) // MUL AB
	c.setAcc(200)
	c.Mem.Write(sfr.B, 10)
	step(t, c)
	// 2000 = 0x07D0
	if diff := deep.Equal([2]uint8{c.acc(), c.Mem.Read(sfr.B)}, [2]uint8{0xD0, 0x07}); diff != nil {
		t.Errorf("MUL AB result mismatch: %v", diff)
	}
	if got := c.psw()&flagOV != 0; !got {
		t.Errorf("OV = false, want true (product > 255)")
	}
}

func TestDivAByZero(t *testing.T) {
	c := newTestCPU([]byte{0x84}) // DIV AB
	c.setAcc(10)
	c.Mem.Write(sfr.B, 0)
	step(t, c)
	if got := c.psw()&flagOV != 0; !got {
		t.Errorf("OV = false, want true (divide by zero)")
	}
}
