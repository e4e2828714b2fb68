package cpu

import (
	"github.com/shirosaka/shiro51/arith"
	"github.com/shirosaka/shiro51/sfr"
)

func (c *CPU) applyFlags(f arith.Flags) {
	p := c.psw()
	if f.CY {
		p |= flagCY
	} else {
		p &^= flagCY
	}
	if f.AC {
		p |= flagAC
	} else {
		p &^= flagAC
	}
	if f.OV {
		p |= flagOV
	} else {
		p &^= flagOV
	}
	c.setPSW(p)
}

// rnOperand reads Rn for the family of opcodes based op-base (0-7).
func rnOperand(c *CPU, op, base uint8) uint8 {
	return c.Mem.GPR(op - base)
}

// --- ADD A,<src> : 0x24 #data, 0x25 direct, 0x26/27 @Ri, 0x28-2F Rn ---

func hAddImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	result, f := arith.Add(c.acc(), *arg0)
	c.setAcc(result)
	c.applyFlags(f)
	return Advance, nil
}

func hAddDirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	result, f := arith.Add(c.acc(), c.Mem.Read(*arg0))
	c.setAcc(result)
	c.applyFlags(f)
	return Advance, nil
}

func hAddIndirect(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		ptr := c.Mem.GPR(op - base)
		result, f := arith.Add(c.acc(), c.Mem.Read(ptr))
		c.setAcc(result)
		c.applyFlags(f)
		return Advance, nil
	}
}

func hAddRn(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	result, f := arith.Add(c.acc(), rnOperand(c, op, 0x28))
	c.setAcc(result)
	c.applyFlags(f)
	return Advance, nil
}

// --- ADDC A,<src> : 0x34 #data, 0x35 direct, 0x36/37 @Ri, 0x38-3F Rn ---

func hAddcImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	result, f := arith.AddC(c.acc(), *arg0, c.carry())
	c.setAcc(result)
	c.applyFlags(f)
	return Advance, nil
}

func hAddcDirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	result, f := arith.AddC(c.acc(), c.Mem.Read(*arg0), c.carry())
	c.setAcc(result)
	c.applyFlags(f)
	return Advance, nil
}

func hAddcIndirect(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		ptr := c.Mem.GPR(op - base)
		result, f := arith.AddC(c.acc(), c.Mem.Read(ptr), c.carry())
		c.setAcc(result)
		c.applyFlags(f)
		return Advance, nil
	}
}

func hAddcRn(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	result, f := arith.AddC(c.acc(), rnOperand(c, op, 0x38), c.carry())
	c.setAcc(result)
	c.applyFlags(f)
	return Advance, nil
}

// --- SUBB A,<src> : 0x94 #data, 0x95 direct, 0x96/97 @Ri, 0x98-9F Rn ---

func hSubbImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	result, f := arith.Subb(c.acc(), *arg0, c.carry())
	c.setAcc(result)
	c.applyFlags(f)
	return Advance, nil
}

func hSubbDirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	result, f := arith.Subb(c.acc(), c.Mem.Read(*arg0), c.carry())
	c.setAcc(result)
	c.applyFlags(f)
	return Advance, nil
}

func hSubbIndirect(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		ptr := c.Mem.GPR(op - base)
		result, f := arith.Subb(c.acc(), c.Mem.Read(ptr), c.carry())
		c.setAcc(result)
		c.applyFlags(f)
		return Advance, nil
	}
}

func hSubbRn(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	result, f := arith.Subb(c.acc(), rnOperand(c, op, 0x98), c.carry())
	c.setAcc(result)
	c.applyFlags(f)
	return Advance, nil
}

// --- INC : 0x04 A, 0x05 direct, 0x06/07 @Ri, 0x08-0F Rn, 0xA3 DPTR ---

func hIncA(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.setAcc(c.acc() + 1)
	return Advance, nil
}

func hIncDirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.Mem.Write(*arg0, c.Mem.Read(*arg0)+1)
	return Advance, nil
}

func hIncIndirect(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		ptr := c.Mem.GPR(op - base)
		c.Mem.Write(ptr, c.Mem.Read(ptr)+1)
		return Advance, nil
	}
}

func hIncRn(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	n := op - 0x08
	c.Mem.SetGPR(n, c.Mem.GPR(n)+1)
	return Advance, nil
}

func hIncDptr(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	d := c.dptr() + 1
	c.Mem.Write(sfr.DPH, uint8(d>>8))
	c.Mem.Write(sfr.DPL, uint8(d))
	return Advance, nil
}

// --- DEC : 0x14 A, 0x15 direct, 0x16/17 @Ri, 0x18-1F Rn ---

func hDecA(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.setAcc(c.acc() - 1)
	return Advance, nil
}

func hDecDirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.Mem.Write(*arg0, c.Mem.Read(*arg0)-1)
	return Advance, nil
}

func hDecIndirect(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		ptr := c.Mem.GPR(op - base)
		c.Mem.Write(ptr, c.Mem.Read(ptr)-1)
		return Advance, nil
	}
}

func hDecRn(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	n := op - 0x18
	c.Mem.SetGPR(n, c.Mem.GPR(n)-1)
	return Advance, nil
}

// hMulAB implements MUL AB: the 16-bit product of A and B is split with
// the low byte back into A and the high byte into B. OV is set when the
// product exceeds 255; CY is always cleared.
func hMulAB(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	b := c.Mem.Read(sfr.B)
	product := uint16(c.acc()) * uint16(b)
	c.setAcc(uint8(product))
	c.Mem.Write(sfr.B, uint8(product>>8))
	c.setFlag(flagCY, false)
	c.setFlag(flagOV, product > 0xFF)
	return Advance, nil
}

// hDivAB implements DIV AB: A/B quotient replaces A, remainder replaces
// B. Division by zero leaves A and B undefined per the architecture and
// sets OV; this implementation leaves both operands unchanged in that
// case. CY is always cleared.
func hDivAB(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	a := c.acc()
	b := c.Mem.Read(sfr.B)
	c.setFlag(flagCY, false)
	if b == 0 {
		c.setFlag(flagOV, true)
		return Advance, nil
	}
	c.setFlag(flagOV, false)
	c.setAcc(a / b)
	c.Mem.Write(sfr.B, a%b)
	return Advance, nil
}

// hDA implements DA A, the decimal-adjust-after-addition instruction: it
// corrects the accumulator into packed BCD following an ADD/ADDC whose
// operands were themselves packed BCD.
func hDA(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	a := c.acc()
	cy := c.psw()&flagCY != 0
	ac := c.psw()&flagAC != 0

	if a&0x0F > 9 || ac {
		a += 0x06
	}
	if a>>4 > 9 || cy {
		a += 0x60
		cy = true
	}
	c.setAcc(a)
	c.setFlag(flagCY, cy)
	return Advance, nil
}
