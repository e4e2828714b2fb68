package memory

import "testing"

func TestReadWrite(t *testing.T) {
	var m Memory
	m.Write(0x30, 0xAB)
	if got := m.Read(0x30); got != 0xAB {
		t.Errorf("Read = %#02x, want 0xAB", got)
	}
}

func TestReadWriteBit(t *testing.T) {
	var m Memory
	if err := m.WriteBit(0x00, true); err != nil {
		t.Fatal(err)
	}
	if got := m.Read(0x20); got != 0x01 {
		t.Errorf("underlying byte = %#02x, want 0x01", got)
	}
	v, err := m.ReadBit(0x00)
	if err != nil {
		t.Fatal(err)
	}
	if !v {
		t.Error("ReadBit(0x00) = false, want true")
	}

	if err := m.WriteBit(0x07, true); err != nil {
		t.Fatal(err)
	}
	if got := m.Read(0x20); got != 0x81 {
		t.Errorf("underlying byte = %#02x, want 0x81", got)
	}

	if err := m.WriteBit(0x00, false); err != nil {
		t.Fatal(err)
	}
	if got := m.Read(0x20); got != 0x80 {
		t.Errorf("underlying byte after clear = %#02x, want 0x80", got)
	}
}

func TestGPRBankSwitching(t *testing.T) {
	var m Memory
	m.SetGPR(3, 0x11) // bank 0
	m.Write(sfr_PSW, 0x08)
	m.SetGPR(3, 0x22) // bank 1
	m.Write(sfr_PSW, 0x00)
	if got := m.GPR(3); got != 0x11 {
		t.Errorf("bank 0 R3 = %#02x, want 0x11", got)
	}
	m.Write(sfr_PSW, 0x08)
	if got := m.GPR(3); got != 0x22 {
		t.Errorf("bank 1 R3 = %#02x, want 0x22", got)
	}
}

func TestLoadCodeAndReadCode(t *testing.T) {
	var m Memory
	m.LoadCode([]byte{0x01, 0x02, 0x03})
	if got := m.ReadCode(0); got != 0x01 {
		t.Errorf("ReadCode(0) = %#02x, want 0x01", got)
	}
	if got := m.ReadCode(2); got != 0x03 {
		t.Errorf("ReadCode(2) = %#02x, want 0x03", got)
	}
}

func TestReadCodeCoversFullAddressRange(t *testing.T) {
	// PC is a uint16 and wraps modulo 65536, so it can legitimately reach
	// 0xFFFF; code memory must size to 0x10000 so that address indexes
	// validly instead of panicking.
	var m Memory
	if got := m.ReadCode(0xFFFF); got != 0 {
		t.Errorf("ReadCode(0xFFFF) = %#02x, want 0x00", got)
	}
}

func TestXdata(t *testing.T) {
	var m Memory
	m.WriteXdata(0x0100, 0x55)
	if got := m.ReadXdata(0x0100); got != 0x55 {
		t.Errorf("ReadXdata = %#02x, want 0x55", got)
	}
}

type fakePin struct{ v uint8 }

func (f fakePin) Input() uint8 { return f.v }

func TestPortCrossbarReadThrough(t *testing.T) {
	var m Memory
	m.Write(portP1, 0xFF) // stored latch, should be shadowed once attached
	m.AttachPort(1, fakePin{v: 0x3C})
	if got := m.Read(portP1); got != 0x3C {
		t.Errorf("Read(P1) = %#02x, want 0x3C (read-through)", got)
	}
	// Writes still update the stored latch regardless of the attachment.
	m.Write(portP1, 0x01)
	if got := m.Read(portP1); got != 0x3C {
		t.Errorf("Read(P1) after write = %#02x, want 0x3C (still shadowed)", got)
	}
}

func TestPortWithoutAttachmentReadsStoredLatch(t *testing.T) {
	var m Memory
	m.Write(portP2, 0x42)
	if got := m.Read(portP2); got != 0x42 {
		t.Errorf("Read(P2) = %#02x, want stored latch 0x42", got)
	}
}
