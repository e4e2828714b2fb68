package addr

import "testing"

func TestDecodeRAMWindow(t *testing.T) {
	byteAddr, bit, err := Decode(0x00)
	if err != nil {
		t.Fatal(err)
	}
	if byteAddr != 0x20 || bit != 0 {
		t.Errorf("got byte=%#02x bit=%d, want byte=0x20 bit=0", byteAddr, bit)
	}

	byteAddr, bit, err = Decode(0x7F)
	if err != nil {
		t.Fatal(err)
	}
	if byteAddr != 0x2F || bit != 7 {
		t.Errorf("got byte=%#02x bit=%d, want byte=0x2F bit=7", byteAddr, bit)
	}
}

func TestDecodeSFRWindow(t *testing.T) {
	// Bit address 0x80 names P0 (0x80) bit 0: 0x80 is the first SFR
	// bit address, mapping to the lowest bit-addressable SFR byte.
	byteAddr, bit, err := Decode(0x80)
	if err != nil {
		t.Fatal(err)
	}
	if byteAddr != 0x80 || bit != 0 {
		t.Errorf("got byte=%#02x bit=%d, want byte=0x80 bit=0", byteAddr, bit)
	}
}

func TestDecodeCoversFullByteRange(t *testing.T) {
	// Every flat bit address 0-255 decodes to a byte that is, by
	// construction, one of the 0x20-0x2F RAM cells or an 8-aligned SFR
	// address - the bit-addressable set is exactly "every multiple of
	// 8 from 0x80 to 0xF8", so Decode never actually returns
	// InvalidBitAddr for any uint8 input. IsBitAddressableByte still
	// guards the decode for documentation and future callers that might
	// construct a (byte, bit) pair outside this derivation.
	for b := 0; b <= 255; b++ {
		if _, _, err := Decode(uint8(b)); err != nil {
			t.Errorf("Decode(%#02x) unexpectedly failed: %v", b, err)
		}
	}
}

func TestSignExtend8(t *testing.T) {
	tests := []struct {
		in   uint8
		want uint16
	}{
		{0x00, 0x0000},
		{0x7F, 0x007F},
		{0x80, 0xFF80},
		{0xFE, 0xFFFE}, // -2
	}
	for _, tc := range tests {
		if got := SignExtend8(tc.in); got != tc.want {
			t.Errorf("SignExtend8(%#02x) = %#04x, want %#04x", tc.in, got, tc.want)
		}
	}
}

func TestAddr16(t *testing.T) {
	if got, want := Addr16(0x12, 0x34), uint16(0x1234); got != want {
		t.Errorf("Addr16 = %#04x, want %#04x", got, want)
	}
}
