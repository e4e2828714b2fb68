// Package disassemble implements a disassembler for MCS-51 opcodes.
package disassemble

import (
	"fmt"

	"github.com/shirosaka/shiro51/memory"
)

const (
	modeImplied = iota // operand text, if any, is already folded into the mnemonic
	modeImmediate
	modeDirect
	modeBit
	modeRelative
	modeDirectImmediate // direct,#data
	modeDirectRelative  // bit,rel or direct,rel
	modeImmRelative     // #data,rel (prefixed by a register/accumulator operand already in the mnemonic)
	modeAbs11           // AJMP/ACALL page+addr8
	modeAbs16           // LJMP/LCALL addr16
	modeDirectDirect    // MOV direct,direct (src, dest order in the byte stream)
)

// Step disassembles the instruction at pc, reading from r, and returns
// its text and the number of bytes it occupies. This does not follow
// jumps or calls; a JMP/CALL at pc disassembles as itself, not its
// target's contents.
func Step(pc uint16, r memory.Ram) (string, int) {
	pc1 := r.ReadCode(pc + 1)
	pc2 := r.ReadCode(pc + 2)
	o := r.ReadCode(pc)

	var op string
	mode := modeImplied
	length := 1

	switch o {
	case 0x00:
		op, length = "NOP", 1
	case 0x01, 0x21, 0x41, 0x61, 0x81, 0xA1, 0xC1, 0xE1:
		op, mode, length = "AJMP", modeAbs11, 2
	case 0x02:
		op, mode, length = "LJMP", modeAbs16, 3
	case 0x03:
		op, length = "RR A", 1
	case 0x04:
		op, length = "INC A", 1
	case 0x05:
		op, mode, length = "INC", modeDirect, 2
	case 0x06:
		op, length = "INC @R0", 1
	case 0x07:
		op, length = "INC @R1", 1
	case 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F:
		op, length = fmt.Sprintf("INC R%d", o-0x08), 1
	case 0x10:
		op, mode, length = "JBC", modeDirectRelative, 3
	case 0x11, 0x31, 0x51, 0x71, 0x91, 0xB1, 0xD1, 0xF1:
		op, mode, length = "ACALL", modeAbs11, 2
	case 0x12:
		op, mode, length = "LCALL", modeAbs16, 3
	case 0x13:
		op, length = "RRC A", 1
	case 0x14:
		op, length = "DEC A", 1
	case 0x15:
		op, mode, length = "DEC", modeDirect, 2
	case 0x16:
		op, length = "DEC @R0", 1
	case 0x17:
		op, length = "DEC @R1", 1
	case 0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F:
		op, length = fmt.Sprintf("DEC R%d", o-0x18), 1
	case 0x20:
		op, mode, length = "JB", modeDirectRelative, 3
	case 0x22:
		op, length = "RET", 1
	case 0x23:
		op, length = "RL A", 1
	case 0x24:
		op, mode, length = "ADD A,", modeImmediate, 2
	case 0x25:
		op, mode, length = "ADD A,", modeDirect, 2
	case 0x26:
		op, length = "ADD A,@R0", 1
	case 0x27:
		op, length = "ADD A,@R1", 1
	case 0x28, 0x29, 0x2A, 0x2B, 0x2C, 0x2D, 0x2E, 0x2F:
		op, length = fmt.Sprintf("ADD A,R%d", o-0x28), 1
	case 0x30:
		op, mode, length = "JNB", modeDirectRelative, 3
	case 0x32:
		op, length = "RETI", 1
	case 0x33:
		op, length = "RLC A", 1
	case 0x34:
		op, mode, length = "ADDC A,", modeImmediate, 2
	case 0x35:
		op, mode, length = "ADDC A,", modeDirect, 2
	case 0x36:
		op, length = "ADDC A,@R0", 1
	case 0x37:
		op, length = "ADDC A,@R1", 1
	case 0x38, 0x39, 0x3A, 0x3B, 0x3C, 0x3D, 0x3E, 0x3F:
		op, length = fmt.Sprintf("ADDC A,R%d", o-0x38), 1
	case 0x40:
		op, mode, length = "JC", modeRelative, 2
	case 0x42:
		op, mode, length = "ORL %s,A", modeDirect, 2 // direct,A
	case 0x43:
		op, mode, length = "ORL", modeDirectImmediate, 3
	case 0x44:
		op, mode, length = "ORL A,", modeImmediate, 2
	case 0x45:
		op, mode, length = "ORL A,", modeDirect, 2
	case 0x46:
		op, length = "ORL A,@R0", 1
	case 0x47:
		op, length = "ORL A,@R1", 1
	case 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F:
		op, length = fmt.Sprintf("ORL A,R%d", o-0x48), 1
	case 0x50:
		op, mode, length = "JNC", modeRelative, 2
	case 0x52:
		op, mode, length = "ANL %s,A", modeDirect, 2
	case 0x53:
		op, mode, length = "ANL", modeDirectImmediate, 3
	case 0x54:
		op, mode, length = "ANL A,", modeImmediate, 2
	case 0x55:
		op, mode, length = "ANL A,", modeDirect, 2
	case 0x56:
		op, length = "ANL A,@R0", 1
	case 0x57:
		op, length = "ANL A,@R1", 1
	case 0x58, 0x59, 0x5A, 0x5B, 0x5C, 0x5D, 0x5E, 0x5F:
		op, length = fmt.Sprintf("ANL A,R%d", o-0x58), 1
	case 0x60:
		op, mode, length = "JZ", modeRelative, 2
	case 0x62:
		op, mode, length = "XRL %s,A", modeDirect, 2
	case 0x63:
		op, mode, length = "XRL", modeDirectImmediate, 3
	case 0x64:
		op, mode, length = "XRL A,", modeImmediate, 2
	case 0x65:
		op, mode, length = "XRL A,", modeDirect, 2
	case 0x66:
		op, length = "XRL A,@R0", 1
	case 0x67:
		op, length = "XRL A,@R1", 1
	case 0x68, 0x69, 0x6A, 0x6B, 0x6C, 0x6D, 0x6E, 0x6F:
		op, length = fmt.Sprintf("XRL A,R%d", o-0x68), 1
	case 0x70:
		op, mode, length = "JNZ", modeRelative, 2
	case 0x72:
		op, mode, length = "ORL C,", modeBit, 2
	case 0x73:
		op, length = "JMP @A+DPTR", 1
	case 0x74:
		op, mode, length = "MOV A,", modeImmediate, 2
	case 0x75:
		op, mode, length = "MOV", modeDirectImmediate, 3
	case 0x76:
		op, mode, length = "MOV @R0,", modeImmediate, 2
	case 0x77:
		op, mode, length = "MOV @R1,", modeImmediate, 2
	case 0x78, 0x79, 0x7A, 0x7B, 0x7C, 0x7D, 0x7E, 0x7F:
		op, mode, length = fmt.Sprintf("MOV R%d,", o-0x78), modeImmediate, 2
	case 0x80:
		op, mode, length = "SJMP", modeRelative, 2
	case 0x82:
		op, mode, length = "ANL C,", modeBit, 2
	case 0x83:
		op, length = "MOVC A,@A+PC", 1
	case 0x84:
		op, length = "DIV AB", 1
	case 0x85:
		op, mode, length = "MOV", modeDirectDirect, 3
	case 0x86:
		op, mode, length = "MOV @R0,", modeDirect, 2
	case 0x87:
		op, mode, length = "MOV @R1,", modeDirect, 2
	case 0x88, 0x89, 0x8A, 0x8B, 0x8C, 0x8D, 0x8E, 0x8F:
		op, mode, length = fmt.Sprintf("MOV %%s,R%d", o-0x88), modeDirect, 2
	case 0x90:
		op, mode, length = "MOV DPTR,#", modeAbs16, 3
	case 0x92:
		op, mode, length = "MOV %s,C", modeBit, 2
	case 0x93:
		op, length = "MOVC A,@A+DPTR", 1
	case 0x94:
		op, mode, length = "SUBB A,", modeImmediate, 2
	case 0x95:
		op, mode, length = "SUBB A,", modeDirect, 2
	case 0x96:
		op, length = "SUBB A,@R0", 1
	case 0x97:
		op, length = "SUBB A,@R1", 1
	case 0x98, 0x99, 0x9A, 0x9B, 0x9C, 0x9D, 0x9E, 0x9F:
		op, length = fmt.Sprintf("SUBB A,R%d", o-0x98), 1
	case 0xA0:
		op, mode, length = "ORL C,/", modeBit, 2
	case 0xA2:
		op, mode, length = "MOV C,", modeBit, 2
	case 0xA3:
		op, length = "INC DPTR", 1
	case 0xA4:
		op, length = "MUL AB", 1
	case 0xA5:
		op, length = "???", 1
	case 0xA6:
		op, mode, length = "MOV %s,@R0", modeDirect, 2
	case 0xA7:
		op, mode, length = "MOV %s,@R1", modeDirect, 2
	case 0xA8, 0xA9, 0xAA, 0xAB, 0xAC, 0xAD, 0xAE, 0xAF:
		op, mode, length = fmt.Sprintf("MOV R%d,", o-0xA8), modeDirect, 2
	case 0xB0:
		op, mode, length = "ANL C,/", modeBit, 2
	case 0xB2:
		op, mode, length = "CPL ", modeBit, 2
	case 0xB3:
		op, length = "CPL C", 1
	case 0xB4:
		op, mode, length = "CJNE A,", modeImmRelative, 3
	case 0xB5:
		op, mode, length = "CJNE A,", modeDirectRelative, 3
	case 0xB6:
		op, mode, length = "CJNE @R0,", modeImmRelative, 3
	case 0xB7:
		op, mode, length = "CJNE @R1,", modeImmRelative, 3
	case 0xB8, 0xB9, 0xBA, 0xBB, 0xBC, 0xBD, 0xBE, 0xBF:
		op, mode, length = fmt.Sprintf("CJNE R%d,", o-0xB8), modeImmRelative, 3
	case 0xC0:
		op, mode, length = "PUSH", modeDirect, 2
	case 0xC2:
		op, mode, length = "CLR ", modeBit, 2
	case 0xC3:
		op, length = "CLR C", 1
	case 0xC4:
		op, length = "SWAP A", 1
	case 0xC5:
		op, mode, length = "XCH A,", modeDirect, 2
	case 0xC6:
		op, length = "XCH A,@R0", 1
	case 0xC7:
		op, length = "XCH A,@R1", 1
	case 0xC8, 0xC9, 0xCA, 0xCB, 0xCC, 0xCD, 0xCE, 0xCF:
		op, length = fmt.Sprintf("XCH A,R%d", o-0xC8), 1
	case 0xD0:
		op, mode, length = "POP", modeDirect, 2
	case 0xD2:
		op, mode, length = "SETB ", modeBit, 2
	case 0xD3:
		op, length = "SETB C", 1
	case 0xD4:
		op, length = "DA A", 1
	case 0xD5:
		op, mode, length = "DJNZ", modeDirectRelative, 3
	case 0xD6:
		op, length = "XCHD A,@R0", 1
	case 0xD7:
		op, length = "XCHD A,@R1", 1
	case 0xD8, 0xD9, 0xDA, 0xDB, 0xDC, 0xDD, 0xDE, 0xDF:
		op, mode, length = fmt.Sprintf("DJNZ R%d,", o-0xD8), modeRelative, 2
	case 0xE0:
		op, length = "MOVX A,@DPTR", 1
	case 0xE2:
		op, length = "MOVX A,@R0", 1
	case 0xE3:
		op, length = "MOVX A,@R1", 1
	case 0xE4:
		op, length = "CLR A", 1
	case 0xE5:
		op, mode, length = "MOV A,", modeDirect, 2
	case 0xE6:
		op, length = "MOV A,@R0", 1
	case 0xE7:
		op, length = "MOV A,@R1", 1
	case 0xE8, 0xE9, 0xEA, 0xEB, 0xEC, 0xED, 0xEE, 0xEF:
		op, length = fmt.Sprintf("MOV A,R%d", o-0xE8), 1
	case 0xF0:
		op, length = "MOVX @DPTR,A", 1
	case 0xF2:
		op, length = "MOVX @R0,A", 1
	case 0xF3:
		op, length = "MOVX @R1,A", 1
	case 0xF4:
		op, length = "CPL A", 1
	case 0xF5:
		op, mode, length = "MOV %s,A", modeDirect, 2
	case 0xF6:
		op, length = "MOV @R0,A", 1
	case 0xF7:
		op, length = "MOV @R1,A", 1
	case 0xF8, 0xF9, 0xFA, 0xFB, 0xFC, 0xFD, 0xFE, 0xFF:
		op, length = fmt.Sprintf("MOV R%d,A", o-0xF8), 1
	default:
		op, length = "???", 1
	}

	return format(op, mode, o, pc1, pc2), length
}

// format appends the operand text its mode calls for. For modeDirect
// entries whose op contains a "%s" placeholder, the direct address is
// substituted in place rather than appended, so e.g. "MOV %s,A" becomes
// "MOV 0x30,A" instead of "MOV %s,A0x30".
func format(op string, mode int, o, pc1, pc2 uint8) string {
	switch mode {
	case modeImmediate:
		return fmt.Sprintf("%s#%#02x", op, pc1)
	case modeDirect:
		if containsPlaceholder(op) {
			return fmt.Sprintf(op, fmt.Sprintf("%#02x", pc1))
		}
		return fmt.Sprintf("%s%#02x", op, pc1)
	case modeBit:
		if containsPlaceholder(op) {
			return fmt.Sprintf(op, fmt.Sprintf("%#02x", pc1))
		}
		return fmt.Sprintf("%s%#02x", op, pc1)
	case modeRelative:
		return fmt.Sprintf("%s %+d", op, int8(pc1))
	case modeDirectImmediate:
		return fmt.Sprintf("%s %#02x,#%#02x", op, pc1, pc2)
	case modeDirectRelative:
		return fmt.Sprintf("%s %#02x,%+d", op, pc1, int8(pc2))
	case modeImmRelative:
		return fmt.Sprintf("%s#%#02x,%+d", op, pc1, int8(pc2))
	case modeAbs11:
		page := uint16(o&0xE0) << 3
		return fmt.Sprintf("%s %#04x", op, page|uint16(pc1))
	case modeAbs16:
		return fmt.Sprintf("%s %#04x", op, uint16(pc1)<<8|uint16(pc2))
	case modeDirectDirect:
		return fmt.Sprintf("%s %#02x,%#02x", op, pc2, pc1)
	default:
		return op
	}
}

func containsPlaceholder(op string) bool {
	for i := 0; i+1 < len(op); i++ {
		if op[i] == '%' && op[i+1] == 's' {
			return true
		}
	}
	return false
}
