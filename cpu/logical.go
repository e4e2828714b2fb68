package cpu

// ANL/ORL/XRL each come in six shapes: direct,A / direct,#data /
// A,#data / A,direct / A,@Ri / A,Rn. The three families share the same
// shape set; each shape has its own handler per family, eighteen in all
// (the @Ri shapes are constructors parameterized by base opcode).

func hAnlDirectA(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.Mem.Write(*arg0, c.Mem.Read(*arg0)&c.acc())
	return Advance, nil
}

func hAnlDirectImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Advance, err
	}
	c.Mem.Write(*arg0, c.Mem.Read(*arg0)&*arg1)
	return Advance, nil
}

func hAnlAImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.setAcc(c.acc() & *arg0)
	return Advance, nil
}

func hAnlADirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.setAcc(c.acc() & c.Mem.Read(*arg0))
	return Advance, nil
}

func hAnlAIndirect(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		c.setAcc(c.acc() & c.Mem.Read(c.Mem.GPR(op-base)))
		return Advance, nil
	}
}

func hAnlARn(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.setAcc(c.acc() & rnOperand(c, op, 0x58))
	return Advance, nil
}

func hOrlDirectA(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.Mem.Write(*arg0, c.Mem.Read(*arg0)|c.acc())
	return Advance, nil
}

func hOrlDirectImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Advance, err
	}
	c.Mem.Write(*arg0, c.Mem.Read(*arg0)|*arg1)
	return Advance, nil
}

func hOrlAImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.setAcc(c.acc() | *arg0)
	return Advance, nil
}

func hOrlADirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.setAcc(c.acc() | c.Mem.Read(*arg0))
	return Advance, nil
}

func hOrlAIndirect(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		c.setAcc(c.acc() | c.Mem.Read(c.Mem.GPR(op-base)))
		return Advance, nil
	}
}

func hOrlARn(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.setAcc(c.acc() | rnOperand(c, op, 0x48))
	return Advance, nil
}

func hXrlDirectA(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.Mem.Write(*arg0, c.Mem.Read(*arg0)^c.acc())
	return Advance, nil
}

func hXrlDirectImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Advance, err
	}
	c.Mem.Write(*arg0, c.Mem.Read(*arg0)^*arg1)
	return Advance, nil
}

func hXrlAImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.setAcc(c.acc() ^ *arg0)
	return Advance, nil
}

func hXrlADirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.setAcc(c.acc() ^ c.Mem.Read(*arg0))
	return Advance, nil
}

func hXrlAIndirect(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		c.setAcc(c.acc() ^ c.Mem.Read(c.Mem.GPR(op-base)))
		return Advance, nil
	}
}

func hXrlARn(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.setAcc(c.acc() ^ rnOperand(c, op, 0x68))
	return Advance, nil
}

// --- bit-addressable boolean ops: ORL/ANL C,bit and C,/bit ---

func hOrlCBit(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	bit, err := c.Mem.ReadBit(*arg0)
	if err != nil {
		return Advance, err
	}
	c.setFlag(flagCY, c.psw()&flagCY != 0 || bit)
	return Advance, nil
}

func hOrlCNotBit(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	bit, err := c.Mem.ReadBit(*arg0)
	if err != nil {
		return Advance, err
	}
	c.setFlag(flagCY, c.psw()&flagCY != 0 || !bit)
	return Advance, nil
}

func hAnlCBit(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	bit, err := c.Mem.ReadBit(*arg0)
	if err != nil {
		return Advance, err
	}
	c.setFlag(flagCY, c.psw()&flagCY != 0 && bit)
	return Advance, nil
}

func hAnlCNotBit(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	bit, err := c.Mem.ReadBit(*arg0)
	if err != nil {
		return Advance, err
	}
	c.setFlag(flagCY, c.psw()&flagCY != 0 && !bit)
	return Advance, nil
}

// --- SETB/CLR/CPL, both the single-bit and the C-only forms ---

func hSetbBit(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	return Advance, c.Mem.WriteBit(*arg0, true)
}

func hSetbC(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.setFlag(flagCY, true)
	return Advance, nil
}

func hClrBit(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	return Advance, c.Mem.WriteBit(*arg0, false)
}

func hClrC(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.setFlag(flagCY, false)
	return Advance, nil
}

func hClrA(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.setAcc(0)
	return Advance, nil
}

func hCplBit(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	bit, err := c.Mem.ReadBit(*arg0)
	if err != nil {
		return Advance, err
	}
	return Advance, c.Mem.WriteBit(*arg0, !bit)
}

func hCplC(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.setFlag(flagCY, c.psw()&flagCY == 0)
	return Advance, nil
}

func hCplA(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.setAcc(^c.acc())
	return Advance, nil
}
