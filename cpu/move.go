package cpu

import "github.com/shirosaka/shiro51/sfr"

// --- MOV A,<src> : 0x74 #data, 0xE5 direct, 0xE6/E7 @Ri, 0xE8-EF Rn ---

func hMovAImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.setAcc(*arg0)
	return Advance, nil
}

func hMovADirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.setAcc(c.Mem.Read(*arg0))
	return Advance, nil
}

func hMovAIndirect(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		c.setAcc(c.Mem.Read(c.Mem.GPR(op - base)))
		return Advance, nil
	}
}

func hMovARn(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.setAcc(rnOperand(c, op, 0xE8))
	return Advance, nil
}

// --- MOV direct,A (0xF5), MOV @Ri,A (0xF6/F7), MOV Rn,A (0xF8-FF) ---

func hMovDirectA(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.Mem.Write(*arg0, c.acc())
	return Advance, nil
}

func hMovIndirectA(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		c.Mem.Write(c.Mem.GPR(op-base), c.acc())
		return Advance, nil
	}
}

func hMovRnA(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.Mem.SetGPR(op-0xF8, c.acc())
	return Advance, nil
}

// --- MOV direct,#data (0x75), MOV @Ri,#data (0x76/77), MOV Rn,#data (0x78-7F) ---

func hMovDirectImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Advance, err
	}
	c.Mem.Write(*arg0, *arg1)
	return Advance, nil
}

func hMovIndirectImm(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		if err := arg0err(op, arg0); err != nil {
			return Advance, err
		}
		c.Mem.Write(c.Mem.GPR(op-base), *arg0)
		return Advance, nil
	}
}

func hMovRnImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.Mem.SetGPR(op-0x78, *arg0)
	return Advance, nil
}

// hMovDirectDirect implements MOV direct,direct (0x85). The byte order in
// the instruction stream is (source, destination) - the reverse of the
// mnemonic's written order - a documented MCS-51 encoding quirk.
func hMovDirectDirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Advance, err
	}
	c.Mem.Write(*arg1, c.Mem.Read(*arg0))
	return Advance, nil
}

// hMovIndirectDirect implements MOV @Ri,direct (0x86/0x87): direct is the
// source, @Ri the destination.
func hMovIndirectDirect(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		if err := arg0err(op, arg0); err != nil {
			return Advance, err
		}
		c.Mem.Write(c.Mem.GPR(op-base), c.Mem.Read(*arg0))
		return Advance, nil
	}
}

// hMovDirectRn implements MOV direct,Rn (0x88-0x8F).
func hMovDirectRn(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.Mem.Write(*arg0, rnOperand(c, op, 0x88))
	return Advance, nil
}

// hMovDirectIndirect implements MOV direct,@Ri (0xA6/0xA7): @Ri is the
// source, direct the destination - the reverse of hMovIndirectDirect.
func hMovDirectIndirect(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		if err := arg0err(op, arg0); err != nil {
			return Advance, err
		}
		c.Mem.Write(*arg0, c.Mem.Read(c.Mem.GPR(op-base)))
		return Advance, nil
	}
}

// hMovRnDirect implements MOV Rn,direct (0xA8-0xAF).
func hMovRnDirect(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.Mem.SetGPR(op-0xA8, c.Mem.Read(*arg0))
	return Advance, nil
}

// hMovDptrImm implements MOV DPTR,#data16 (0x90): arg0 is the high byte,
// arg1 the low byte.
func hMovDptrImm(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	if err := arg1err(op, arg1); err != nil {
		return Advance, err
	}
	c.Mem.Write(sfr.DPH, *arg0)
	c.Mem.Write(sfr.DPL, *arg1)
	return Advance, nil
}

// hMovBitC implements MOV bit,C (0x92).
func hMovBitC(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	return Advance, c.Mem.WriteBit(*arg0, c.psw()&flagCY != 0)
}

// hMovCBit implements MOV C,bit (0xA2).
func hMovCBit(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	bit, err := c.Mem.ReadBit(*arg0)
	if err != nil {
		return Advance, err
	}
	c.setFlag(flagCY, bit)
	return Advance, nil
}

// --- MOVX: external data memory transfers ---

func hMovxADptr(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.setAcc(c.Mem.ReadXdata(c.dptr()))
	return Advance, nil
}

func hMovxARi(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		ptr := uint16(c.Mem.GPR(op - base))
		c.setAcc(c.Mem.ReadXdata(ptr))
		return Advance, nil
	}
}

func hMovxDptrA(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	c.Mem.WriteXdata(c.dptr(), c.acc())
	return Advance, nil
}

func hMovxRiA(base uint8) Handler {
	return func(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
		ptr := uint16(c.Mem.GPR(op - base))
		c.Mem.WriteXdata(ptr, c.acc())
		return Advance, nil
	}
}

// --- MOVC: code memory lookup tables ---

// hMovcAPC implements MOVC A,@A+PC (0x83): the base for the table lookup
// is PC *after* this one-byte instruction has been accounted for.
func hMovcAPC(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	base := c.PC + 1
	addr := base + uint16(c.acc())
	c.setAcc(c.Mem.ReadCode(addr))
	return Advance, nil
}

// hMovcADptr implements MOVC A,@A+DPTR (0x93).
func hMovcADptr(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	addr := c.dptr() + uint16(c.acc())
	c.setAcc(c.Mem.ReadCode(addr))
	return Advance, nil
}

// --- PUSH/POP ---

func hPush(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	push(c, c.Mem.Read(*arg0))
	return Advance, nil
}

func hPop(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	if err := arg0err(op, arg0); err != nil {
		return Advance, err
	}
	c.Mem.Write(*arg0, pop(c))
	return Advance, nil
}

// hNop implements NOP (0x00).
func hNop(c *CPU, op uint8, arg0, arg1 *uint8) (PCDisposition, error) {
	return Advance, nil
}

// recordPowerMode is called by Cycle whenever an instruction changes PCON,
// and records the requested power mode for PowerMode() to report. Bit 0 (Idle) takes
// priority over bit 1 (Stop) when both are set, matching the
// architecture's documented behavior that IDL is checked first.
func recordPowerMode(c *CPU, val uint8) {
	switch {
	case val&0x01 != 0:
		c.pmm = PMMIdle
	case val&0x02 != 0:
		c.pmm = PMMStop
	}
}
