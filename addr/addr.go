// Package addr implements the MCS-51 address types: plain 8-bit direct
// addresses into internal data, 16-bit addresses into code/external data,
// and the family's bit-addressing scheme that lets single bits within a
// narrow set of bytes carry their own 8-bit address.
package addr

import "github.com/shirosaka/shiro51/cpuerr"

// BitAddressableLow and BitAddressableHigh bound the bit-addressable RAM
// region (0x20-0x2F). SFRs are bit-addressable individually when their
// address is a multiple of 8; see IsBitAddressableByte.
const (
	BitAddressableLow  = uint8(0x20)
	BitAddressableHigh = uint8(0x2F)
	sfrBase            = uint8(0x80)
)

// IsBitAddressableByte reports whether byte addr has individually
// addressable bits: either it falls in the 0x20-0x2F RAM window, or it's
// an SFR (>= 0x80) on a multiple of 8.
func IsBitAddressableByte(b uint8) bool {
	if b >= BitAddressableLow && b <= BitAddressableHigh {
		return true
	}
	return b >= sfrBase && b%8 == 0
}

// Decode turns a bit address (0-255) into the byte address that holds it
// and the bit index (0-7) within that byte, applying the MCS-51 decoding
// rule: bit addresses below 128 fall in the 0x20-0x2F window (byte =
// bit/8 + 0x20), bit addresses 128 and above name a bit directly within
// an SFR (byte = bit rounded down to a multiple of 8). It returns
// cpuerr.InvalidBitAddr if the decoded byte isn't bit-addressable.
func Decode(bit uint8) (byteAddr uint8, bitIndex uint8, err error) {
	if bit <= 127 {
		byteAddr = bit/8 + BitAddressableLow
	} else {
		byteAddr = bit - (bit % 8)
	}
	bitIndex = bit % 8
	if !IsBitAddressableByte(byteAddr) {
		return 0, 0, cpuerr.InvalidBitAddr{Bit: bit, Byte: byteAddr}
	}
	return byteAddr, bitIndex, nil
}

// Addr16 composes a 16-bit address from a high and low byte, used for
// LJMP/LCALL targets and the DPTR-relative MOVX/MOVC addressing modes.
func Addr16(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// SignExtend8 interprets b as a two's-complement signed byte and widens
// it to a 16-bit value suitable for adding to PC. Every relative-jump
// handler (SJMP, the conditional branches, CJNE, DJNZ) must route its
// operand through this rather than treating it as unsigned.
func SignExtend8(b uint8) uint16 {
	return uint16(int16(int8(b)))
}
