package arith

import "testing"

func TestAdd(t *testing.T) {
	result, f := Add(0xC3, 0xAA)
	if result != 0x6D {
		t.Errorf("result = %#02x, want 0x6D", result)
	}
	if !f.CY {
		t.Error("CY = false, want true")
	}
	if f.AC {
		t.Error("AC = true, want false")
	}
	if !f.OV {
		t.Error("OV = false, want true")
	}
}

func TestAddCPropagatesCarryAsThirdOperand(t *testing.T) {
	// 0x0F + 0x00 + 1 must ripple into AC, unlike a naive plain-Add
	// followed by an unconditional acc+=1.
	result, f := AddC(0x0F, 0x00, 1)
	if result != 0x10 {
		t.Errorf("result = %#02x, want 0x10", result)
	}
	if !f.AC {
		t.Error("AC = false, want true")
	}
	if f.CY {
		t.Error("CY = true, want false")
	}
}

func TestAddCMatchesAddWhenCarryInIsZero(t *testing.T) {
	a, fa := Add(0x40, 0x20)
	b, fb := AddC(0x40, 0x20, 0)
	if a != b || fa != fb {
		t.Errorf("AddC with cyIn=0 diverged from Add: %#02x/%+v vs %#02x/%+v", a, fa, b, fb)
	}
}

func TestSubb(t *testing.T) {
	result, f := Subb(0xC9, 0x54, 1)
	if result != 0x74 {
		t.Errorf("result = %#02x, want 0x74", result)
	}
	if f.CY {
		t.Error("CY = true, want false")
	}
	if f.AC {
		t.Error("AC = true, want false")
	}
	if !f.OV {
		t.Error("OV = false, want true")
	}
}

func TestSubbBorrow(t *testing.T) {
	result, f := Subb(0x00, 0x01, 0)
	if result != 0xFF {
		t.Errorf("result = %#02x, want 0xFF", result)
	}
	if !f.CY {
		t.Error("CY = false, want true (borrow)")
	}
	if !f.AC {
		t.Error("AC = false, want true (nibble borrow)")
	}
}
