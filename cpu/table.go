package cpu

// table is the fixed 256-entry MCS-51 opcode table, indexed by opcode
// byte. A zero-value entry (nil handler) marks 0xA5, the one reserved
// opcode the architecture leaves undefined; Cycle treats any such slot
// as cpuerr.UnknownInstruction regardless of whether that's the
// genuinely-reserved slot or a defect in this table.
var table [256]instrEntry

func init() {
	table[0x00] = instrEntry{"NOP", 1, hNop}
	table[0x01] = instrEntry{"AJMP", 2, hAjmp}
	table[0x02] = instrEntry{"LJMP", 3, hLjmp}
	table[0x03] = instrEntry{"RR A", 1, hRR}
	table[0x04] = instrEntry{"INC A", 1, hIncA}
	table[0x05] = instrEntry{"INC direct", 2, hIncDirect}
	table[0x06] = instrEntry{"INC @R0", 1, hIncIndirect(0x06)}
	table[0x07] = instrEntry{"INC @R1", 1, hIncIndirect(0x06)}
	for n := uint8(0); n < 8; n++ {
		table[0x08+n] = instrEntry{"INC Rn", 1, hIncRn}
	}
	table[0x10] = instrEntry{"JBC bit,rel", 3, hJbc}
	table[0x11] = instrEntry{"ACALL", 2, hAcall}
	table[0x12] = instrEntry{"LCALL", 3, hLcall}
	table[0x13] = instrEntry{"RRC A", 1, hRRC}
	table[0x14] = instrEntry{"DEC A", 1, hDecA}
	table[0x15] = instrEntry{"DEC direct", 2, hDecDirect}
	table[0x16] = instrEntry{"DEC @R0", 1, hDecIndirect(0x16)}
	table[0x17] = instrEntry{"DEC @R1", 1, hDecIndirect(0x16)}
	for n := uint8(0); n < 8; n++ {
		table[0x18+n] = instrEntry{"DEC Rn", 1, hDecRn}
	}
	table[0x20] = instrEntry{"JB bit,rel", 3, hJb}
	table[0x21] = instrEntry{"AJMP", 2, hAjmp}
	table[0x22] = instrEntry{"RET", 1, hRet}
	table[0x23] = instrEntry{"RL A", 1, hRL}
	table[0x24] = instrEntry{"ADD A,#data", 2, hAddImm}
	table[0x25] = instrEntry{"ADD A,direct", 2, hAddDirect}
	table[0x26] = instrEntry{"ADD A,@R0", 1, hAddIndirect(0x26)}
	table[0x27] = instrEntry{"ADD A,@R1", 1, hAddIndirect(0x26)}
	for n := uint8(0); n < 8; n++ {
		table[0x28+n] = instrEntry{"ADD A,Rn", 1, hAddRn}
	}
	table[0x30] = instrEntry{"JNB bit,rel", 3, hJnb}
	table[0x31] = instrEntry{"ACALL", 2, hAcall}
	table[0x32] = instrEntry{"RETI", 1, hReti}
	table[0x33] = instrEntry{"RLC A", 1, hRLC}
	table[0x34] = instrEntry{"ADDC A,#data", 2, hAddcImm}
	table[0x35] = instrEntry{"ADDC A,direct", 2, hAddcDirect}
	table[0x36] = instrEntry{"ADDC A,@R0", 1, hAddcIndirect(0x36)}
	table[0x37] = instrEntry{"ADDC A,@R1", 1, hAddcIndirect(0x36)}
	for n := uint8(0); n < 8; n++ {
		table[0x38+n] = instrEntry{"ADDC A,Rn", 1, hAddcRn}
	}
	table[0x40] = instrEntry{"JC rel", 2, hJc}
	table[0x41] = instrEntry{"AJMP", 2, hAjmp}
	table[0x42] = instrEntry{"ORL direct,A", 2, hOrlDirectA}
	table[0x43] = instrEntry{"ORL direct,#data", 3, hOrlDirectImm}
	table[0x44] = instrEntry{"ORL A,#data", 2, hOrlAImm}
	table[0x45] = instrEntry{"ORL A,direct", 2, hOrlADirect}
	table[0x46] = instrEntry{"ORL A,@R0", 1, hOrlAIndirect(0x46)}
	table[0x47] = instrEntry{"ORL A,@R1", 1, hOrlAIndirect(0x46)}
	for n := uint8(0); n < 8; n++ {
		table[0x48+n] = instrEntry{"ORL A,Rn", 1, hOrlARn}
	}
	table[0x50] = instrEntry{"JNC rel", 2, hJnc}
	table[0x51] = instrEntry{"ACALL", 2, hAcall}
	table[0x52] = instrEntry{"ANL direct,A", 2, hAnlDirectA}
	table[0x53] = instrEntry{"ANL direct,#data", 3, hAnlDirectImm}
	table[0x54] = instrEntry{"ANL A,#data", 2, hAnlAImm}
	table[0x55] = instrEntry{"ANL A,direct", 2, hAnlADirect}
	table[0x56] = instrEntry{"ANL A,@R0", 1, hAnlAIndirect(0x56)}
	table[0x57] = instrEntry{"ANL A,@R1", 1, hAnlAIndirect(0x56)}
	for n := uint8(0); n < 8; n++ {
		table[0x58+n] = instrEntry{"ANL A,Rn", 1, hAnlARn}
	}
	table[0x60] = instrEntry{"JZ rel", 2, hJz}
	table[0x61] = instrEntry{"AJMP", 2, hAjmp}
	table[0x62] = instrEntry{"XRL direct,A", 2, hXrlDirectA}
	table[0x63] = instrEntry{"XRL direct,#data", 3, hXrlDirectImm}
	table[0x64] = instrEntry{"XRL A,#data", 2, hXrlAImm}
	table[0x65] = instrEntry{"XRL A,direct", 2, hXrlADirect}
	table[0x66] = instrEntry{"XRL A,@R0", 1, hXrlAIndirect(0x66)}
	table[0x67] = instrEntry{"XRL A,@R1", 1, hXrlAIndirect(0x66)}
	for n := uint8(0); n < 8; n++ {
		table[0x68+n] = instrEntry{"XRL A,Rn", 1, hXrlARn}
	}
	table[0x70] = instrEntry{"JNZ rel", 2, hJnz}
	table[0x71] = instrEntry{"ACALL", 2, hAcall}
	table[0x72] = instrEntry{"ORL C,bit", 2, hOrlCBit}
	table[0x73] = instrEntry{"JMP @A+DPTR", 1, hJmpADptr}
	table[0x74] = instrEntry{"MOV A,#data", 2, hMovAImm}
	table[0x75] = instrEntry{"MOV direct,#data", 3, hMovDirectImm}
	table[0x76] = instrEntry{"MOV @R0,#data", 2, hMovIndirectImm(0x76)}
	table[0x77] = instrEntry{"MOV @R1,#data", 2, hMovIndirectImm(0x76)}
	for n := uint8(0); n < 8; n++ {
		table[0x78+n] = instrEntry{"MOV Rn,#data", 2, hMovRnImm}
	}
	table[0x80] = instrEntry{"SJMP rel", 2, hSjmp}
	table[0x81] = instrEntry{"AJMP", 2, hAjmp}
	table[0x82] = instrEntry{"ANL C,bit", 2, hAnlCBit}
	table[0x83] = instrEntry{"MOVC A,@A+PC", 1, hMovcAPC}
	table[0x84] = instrEntry{"DIV AB", 1, hDivAB}
	table[0x85] = instrEntry{"MOV direct,direct", 3, hMovDirectDirect}
	table[0x86] = instrEntry{"MOV @R0,direct", 2, hMovIndirectDirect(0x86)}
	table[0x87] = instrEntry{"MOV @R1,direct", 2, hMovIndirectDirect(0x86)}
	for n := uint8(0); n < 8; n++ {
		table[0x88+n] = instrEntry{"MOV direct,Rn", 2, hMovDirectRn}
	}
	table[0x90] = instrEntry{"MOV DPTR,#data16", 3, hMovDptrImm}
	table[0x91] = instrEntry{"ACALL", 2, hAcall}
	table[0x92] = instrEntry{"MOV bit,C", 2, hMovBitC}
	table[0x93] = instrEntry{"MOVC A,@A+DPTR", 1, hMovcADptr}
	table[0x94] = instrEntry{"SUBB A,#data", 2, hSubbImm}
	table[0x95] = instrEntry{"SUBB A,direct", 2, hSubbDirect}
	table[0x96] = instrEntry{"SUBB A,@R0", 1, hSubbIndirect(0x96)}
	table[0x97] = instrEntry{"SUBB A,@R1", 1, hSubbIndirect(0x96)}
	for n := uint8(0); n < 8; n++ {
		table[0x98+n] = instrEntry{"SUBB A,Rn", 1, hSubbRn}
	}
	table[0xA0] = instrEntry{"ORL C,/bit", 2, hOrlCNotBit}
	table[0xA1] = instrEntry{"AJMP", 2, hAjmp}
	table[0xA2] = instrEntry{"MOV C,bit", 2, hMovCBit}
	table[0xA3] = instrEntry{"INC DPTR", 1, hIncDptr}
	table[0xA4] = instrEntry{"MUL AB", 1, hMulAB}
	// 0xA5 is reserved/undefined; left as the zero value.
	table[0xA6] = instrEntry{"MOV direct,@R0", 2, hMovDirectIndirect(0xA6)}
	table[0xA7] = instrEntry{"MOV direct,@R1", 2, hMovDirectIndirect(0xA6)}
	for n := uint8(0); n < 8; n++ {
		table[0xA8+n] = instrEntry{"MOV Rn,direct", 2, hMovRnDirect}
	}
	table[0xB0] = instrEntry{"ANL C,/bit", 2, hAnlCNotBit}
	table[0xB1] = instrEntry{"ACALL", 2, hAcall}
	table[0xB2] = instrEntry{"CPL bit", 2, hCplBit}
	table[0xB3] = instrEntry{"CPL C", 1, hCplC}
	table[0xB4] = instrEntry{"CJNE A,#data,rel", 3, hCjneAImm}
	table[0xB5] = instrEntry{"CJNE A,direct,rel", 3, hCjneADirect}
	table[0xB6] = instrEntry{"CJNE @R0,#data,rel", 3, hCjneIndirectImm(0xB6)}
	table[0xB7] = instrEntry{"CJNE @R1,#data,rel", 3, hCjneIndirectImm(0xB6)}
	for n := uint8(0); n < 8; n++ {
		table[0xB8+n] = instrEntry{"CJNE Rn,#data,rel", 3, hCjneRnImm}
	}
	table[0xC0] = instrEntry{"PUSH direct", 2, hPush}
	table[0xC1] = instrEntry{"AJMP", 2, hAjmp}
	table[0xC2] = instrEntry{"CLR bit", 2, hClrBit}
	table[0xC3] = instrEntry{"CLR C", 1, hClrC}
	table[0xC4] = instrEntry{"SWAP A", 1, hSwap}
	table[0xC5] = instrEntry{"XCH A,direct", 2, hXchDirect}
	table[0xC6] = instrEntry{"XCH A,@R0", 1, hXchIndirect(0xC6)}
	table[0xC7] = instrEntry{"XCH A,@R1", 1, hXchIndirect(0xC6)}
	for n := uint8(0); n < 8; n++ {
		table[0xC8+n] = instrEntry{"XCH A,Rn", 1, hXchRn}
	}
	table[0xD0] = instrEntry{"POP direct", 2, hPop}
	table[0xD1] = instrEntry{"ACALL", 2, hAcall}
	table[0xD2] = instrEntry{"SETB bit", 2, hSetbBit}
	table[0xD3] = instrEntry{"SETB C", 1, hSetbC}
	table[0xD4] = instrEntry{"DA A", 1, hDA}
	table[0xD5] = instrEntry{"DJNZ direct,rel", 3, hDjnzDirect}
	table[0xD6] = instrEntry{"XCHD A,@R0", 1, hXchd(0xD6)}
	table[0xD7] = instrEntry{"XCHD A,@R1", 1, hXchd(0xD6)}
	for n := uint8(0); n < 8; n++ {
		table[0xD8+n] = instrEntry{"DJNZ Rn,rel", 2, hDjnzRn}
	}
	table[0xE0] = instrEntry{"MOVX A,@DPTR", 1, hMovxADptr}
	table[0xE1] = instrEntry{"AJMP", 2, hAjmp}
	table[0xE2] = instrEntry{"MOVX A,@R0", 1, hMovxARi(0xE2)}
	table[0xE3] = instrEntry{"MOVX A,@R1", 1, hMovxARi(0xE2)}
	table[0xE4] = instrEntry{"CLR A", 1, hClrA}
	table[0xE5] = instrEntry{"MOV A,direct", 2, hMovADirect}
	table[0xE6] = instrEntry{"MOV A,@R0", 1, hMovAIndirect(0xE6)}
	table[0xE7] = instrEntry{"MOV A,@R1", 1, hMovAIndirect(0xE6)}
	for n := uint8(0); n < 8; n++ {
		table[0xE8+n] = instrEntry{"MOV A,Rn", 1, hMovARn}
	}
	table[0xF0] = instrEntry{"MOVX @DPTR,A", 1, hMovxDptrA}
	table[0xF1] = instrEntry{"ACALL", 2, hAcall}
	table[0xF2] = instrEntry{"MOVX @R0,A", 1, hMovxRiA(0xF2)}
	table[0xF3] = instrEntry{"MOVX @R1,A", 1, hMovxRiA(0xF2)}
	table[0xF4] = instrEntry{"CPL A", 1, hCplA}
	table[0xF5] = instrEntry{"MOV direct,A", 2, hMovDirectA}
	table[0xF6] = instrEntry{"MOV @R0,A", 1, hMovIndirectA(0xF6)}
	table[0xF7] = instrEntry{"MOV @R1,A", 1, hMovIndirectA(0xF6)}
	for n := uint8(0); n < 8; n++ {
		table[0xF8+n] = instrEntry{"MOV Rn,A", 1, hMovRnA}
	}
}
