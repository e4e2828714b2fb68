package loader

import (
	"strings"
	"testing"
)

func TestLoadHexSingleLine(t *testing.T) {
	b, err := LoadHex(strings.NewReader(":0102AABB"))
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x01, 0x02, 0xAA, 0xBB}
	if len(b) != len(want) {
		t.Fatalf("got %d bytes, want %d", len(b), len(want))
	}
	for i := range want {
		if b[i] != want[i] {
			t.Errorf("byte %d = %#02x, want %#02x", i, b[i], want[i])
		}
	}
}

func TestLoadHexMultipleLinesConcatenate(t *testing.T) {
	b, err := LoadHex(strings.NewReader(":0011\n:2233\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x00, 0x11, 0x22, 0x33}
	if string(b) != string(want) {
		t.Errorf("got %v, want %v", b, want)
	}
}

func TestLoadHexWithoutColonPrefix(t *testing.T) {
	b, err := LoadHex(strings.NewReader("DEAD"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != string([]byte{0xDE, 0xAD}) {
		t.Errorf("got %v, want DEAD", b)
	}
}

func TestLoadHexBlankLinesIgnored(t *testing.T) {
	b, err := LoadHex(strings.NewReader(":00\n\n   \n:11\n"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != string([]byte{0x00, 0x11}) {
		t.Errorf("got %v, want [00 11]", b)
	}
}

func TestLoadHexMalformedLineReportsLineNumber(t *testing.T) {
	_, err := LoadHex(strings.NewReader(":00\n:ZZ\n"))
	if err == nil {
		t.Fatal("expected an error for malformed hex")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %v, want it to mention line 2", err)
	}
}

func TestLoadHexOddDigitCount(t *testing.T) {
	_, err := LoadHex(strings.NewReader(":0"))
	if err == nil {
		t.Fatal("expected an error for an odd number of hex digits")
	}
}
