package cpu

import "github.com/shirosaka/shiro51/addr"

// hAjmp implements the eight AJMP opcodes (0x01/21/41/61/81/A1/C1/E1).
// The target is an 11-bit address within the 2K page that PC+2 falls in:
// the three page bits come from the opcode's top three bits, the low
// eight from arg0. PC is advanced by the instruction's own two bytes
// before the page is computed, matching the architecture's "PC is
// updated to the next instruction's address, then the jump target is
// formed against that" sequencing.
func hAjmp(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	next := c.PC + 2
	page := next & 0xF800
	c.PC = page | uint16(op&0xE0)<<3 | uint16(*arg0)
	return Jump, nil
}

// hLjmp implements LJMP addr16 (0x02): arg0 is the high byte, arg1 the
// low byte of the absolute target.
func hLjmp(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Jump, err
	}
	c.PC = addr.Addr16(*arg0, *arg1)
	return Jump, nil
}

// hAcall implements the eight ACALL opcodes, mirroring hAjmp's page
// computation but pushing the return address (PC+2) first.
func hAcall(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	next := c.PC + 2
	push(c, uint8(next))
	push(c, uint8(next>>8))
	page := next & 0xF800
	c.PC = page | uint16(op&0xE0)<<3 | uint16(*arg0)
	return Jump, nil
}

// hLcall implements LCALL addr16 (0x12): pushes PC+3 (the return
// address) then jumps absolute.
func hLcall(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Jump, err
	}
	ret := c.PC + 3
	push(c, uint8(ret))
	push(c, uint8(ret>>8))
	c.PC = addr.Addr16(*arg0, *arg1)
	return Jump, nil
}

// hRet implements RET (0x22): pops the return address pushed by ACALL
// or LCALL. The high byte was pushed last, so it pops first.
func hRet(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	hi := pop(c)
	lo := pop(c)
	c.PC = addr.Addr16(hi, lo)
	return Jump, nil
}

// hReti implements RETI (0x32). Interrupt priority-level bookkeeping is
// out of scope; this behaves identically to RET.
func hReti(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	return hRet(c, op, arg0, arg1)
}

// hSjmp implements SJMP rel (0x80): an always-taken relative jump, PC
// relative to the address of the following instruction.
func hSjmp(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	next := c.PC + 2
	c.PC = next + addr.SignExtend8(*arg0)
	return Jump, nil
}

// hJmpADptr implements JMP @A+DPTR (0x73).
func hJmpADptr(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.PC = c.dptr() + uint16(c.acc())
	return Jump, nil
}

// relBranch advances PC past the two-byte instruction, then adds the
// sign-extended relative offset only if taken is true.
func relBranch(c *CPU, rel uint8, taken bool) {
	next := c.PC + 2
	if taken {
		next += addr.SignExtend8(rel)
	}
	c.PC = next
}

func hJz(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	relBranch(c, *arg0, c.acc() == 0)
	return Jump, nil
}

func hJnz(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	relBranch(c, *arg0, c.acc() != 0)
	return Jump, nil
}

func hJc(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	relBranch(c, *arg0, c.psw()&flagCY != 0)
	return Jump, nil
}

func hJnc(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	relBranch(c, *arg0, c.psw()&flagCY == 0)
	return Jump, nil
}

// relBranch3 is relBranch's three-byte-instruction counterpart, used by
// JB/JNB/JBC and the CJNE forms (DJNZ direct,rel uses a two-byte base;
// see hDjnzDirect).
func relBranch3(c *CPU, rel uint8, taken bool) {
	next := c.PC + 3
	if taken {
		next += addr.SignExtend8(rel)
	}
	c.PC = next
}

// hJb implements JB bit,rel (0x20).
func hJb(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Jump, err
	}
	bit, err := c.Mem.ReadBit(*arg0)
	if err != nil {
		return Jump, err
	}
	relBranch3(c, *arg1, bit)
	return Jump, nil
}

// hJnb implements JNB bit,rel (0x30).
func hJnb(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Jump, err
	}
	bit, err := c.Mem.ReadBit(*arg0)
	if err != nil {
		return Jump, err
	}
	relBranch3(c, *arg1, !bit)
	return Jump, nil
}

// hJbc implements JBC bit,rel (0x10): branches if the bit is set, and
// clears it unconditionally when it was.
func hJbc(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Jump, err
	}
	bit, err := c.Mem.ReadBit(*arg0)
	if err != nil {
		return Jump, err
	}
	if bit {
		if err := c.Mem.WriteBit(*arg0, false); err != nil {
			return Jump, err
		}
	}
	relBranch3(c, *arg1, bit)
	return Jump, nil
}

// cjne compares lhs against rhs, sets CY when lhs<rhs (unsigned), and
// reports whether they differ (the branch condition for every CJNE
// form).
func cjne(c *CPU, lhs, rhs uint8) bool {
	c.setFlag(flagCY, lhs < rhs)
	return lhs != rhs
}

// hCjneAImm implements CJNE A,#data,rel (0xB4).
func hCjneAImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Jump, err
	}
	taken := cjne(c, c.acc(), *arg0)
	relBranch3(c, *arg1, taken)
	return Jump, nil
}

// hCjneADirect implements CJNE A,direct,rel (0xB5).
func hCjneADirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Jump, err
	}
	taken := cjne(c, c.acc(), c.Mem.Read(*arg0))
	relBranch3(c, *arg1, taken)
	return Jump, nil
}

// hCjneIndirectImm implements CJNE @Ri,#data,rel (0xB6/0xB7).
func hCjneIndirectImm(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		if err := arg0err(op, arg0); err != nil {
			return Jump, err
		}
		if err := arg1err(op, arg1); err != nil {
			return Jump, err
		}
		ptr := c.Mem.GPR(op - base)
		taken := cjne(c, c.Mem.Read(ptr), *arg0)
		relBranch3(c, *arg1, taken)
		return Jump, nil
	}
}

// hCjneRnImm implements CJNE Rn,#data,rel (0xB8-0xBF).
func hCjneRnImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Jump, err
	}
	taken := cjne(c, rnOperand(c, op, 0xB8), *arg0)
	relBranch3(c, *arg1, taken)
	return Jump, nil
}

// hDjnzDirect implements DJNZ direct,rel (0xD5): decrements direct first,
// then branches if the result is nonzero. The not-taken PC lands at
// PC+2, not PC+3 like the other three-byte branch forms - this opcode
// fetches all three bytes, but the base for both the not-taken advance
// and the taken displacement only counts two of them, matching the
// original reference's DJNZ_DATA_CODE handling.
func hDjnzDirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Jump, err
	}
	v := c.Mem.Read(*arg0) - 1
	c.Mem.Write(*arg0, v)
	next := c.PC + 2
	if v != 0 {
		next += addr.SignExtend8(*arg1)
	}
	c.PC = next
	return Jump, nil
}

// hDjnzRn implements DJNZ Rn,rel (0xD8-0xDF), a two-byte instruction.
func hDjnzRn(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Jump, err
	}
	n := op - 0xD8
	v := c.Mem.GPR(n) - 1
	c.Mem.SetGPR(n, v)
	relBranch(c, *arg0, v != 0)
	return Jump, nil
}
