package cpu

// hRR implements RR A: a plain right rotate of the accumulator's eight
// bits, CY untouched. This is a genuine rotate - bit 0 wraps into bit 7 -
// not the off-by-one plain shift a naive port would produce.
func hRR(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	a := c.acc()
	c.setAcc(a>>1 | a<<7)
	return Advance, nil
}

// hRL implements RL A: left rotate, bit 7 wraps into bit 0.
func hRL(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	a := c.acc()
	c.setAcc(a<<1 | a>>7)
	return Advance, nil
}

// hRRC implements RRC A: right rotate through carry. The outgoing bit 0
// becomes the new CY; the old CY becomes the new bit 7.
func hRRC(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	a := c.acc()
	oldCY := c.carry()
	c.setAcc(a>>1 | oldCY<<7)
	c.setFlag(flagCY, a&0x01 != 0)
	return Advance, nil
}

// hRLC implements RLC A: left rotate through carry, the mirror of RRC.
func hRLC(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	a := c.acc()
	oldCY := c.carry()
	c.setAcc(a<<1 | oldCY)
	c.setFlag(flagCY, a&0x80 != 0)
	return Advance, nil
}

// hSwap implements SWAP A: exchanges the accumulator's two nibbles.
func hSwap(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	a := c.acc()
	c.setAcc(a<<4 | a>>4)
	return Advance, nil
}

// --- XCH A,<src> : 0xC5 direct, 0xC6/C7 @Ri, 0xC8-CF Rn ---

func hXchDirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	a, v := c.acc(), c.Mem.Read(*arg0)
	c.setAcc(v)
	c.Mem.Write(*arg0, a)
	return Advance, nil
}

func hXchIndirect(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		ptr := c.Mem.GPR(op - base)
		a, v := c.acc(), c.Mem.Read(ptr)
		c.setAcc(v)
		c.Mem.Write(ptr, a)
		return Advance, nil
	}
}

func hXchRn(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	n := op - 0xC8
	a, v := c.acc(), c.Mem.GPR(n)
	c.setAcc(v)
	c.Mem.SetGPR(n, a)
	return Advance, nil
}

// hXchd implements XCHD A,@Ri: exchanges only the low nibbles of A and
// the indirectly addressed byte.
func hXchd(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		ptr := c.Mem.GPR(op - base)
		a, v := c.acc(), c.Mem.Read(ptr)
		c.setAcc(a&0xF0 | v&0x0F)
		c.Mem.Write(ptr, v&0xF0|a&0x0F)
		return Advance, nil
	}
}
