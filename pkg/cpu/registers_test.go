package cpu

import "testing"

func TestGetSetGeneralRegister(t *testing.T) {
	var r Registers
	if err := r.Set(RegR3, 0x1234); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, err := r.Get(RegR3)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != 0x1234 {
		t.Fatalf("Get(RegR3) = %#x, want 0x1234", got)
	}
}

func TestGetSetImmediateRegister(t *testing.T) {
	var r Registers
	if err := r.Set(RegImm7, 0xFF); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, _ := r.Get(RegImm7)
	if got != 0xFF {
		t.Fatalf("Get(RegImm7) = %#x, want 0xFF", got)
	}
}

func TestGetInvalidRegisterFaults(t *testing.T) {
	var r Registers
	_, err := r.Get(0xBEEF)
	if err == nil {
		t.Fatalf("Get() of an invalid register code should fault")
	}
	if _, ok := err.(*Fault); !ok {
		t.Fatalf("Get() error should be a *Fault, got %T", err)
	}
}

func TestSetInvalidRegisterFaults(t *testing.T) {
	var r Registers
	if err := r.Set(0xBEEF, 1); err == nil {
		t.Fatalf("Set() of an invalid register code should fault")
	}
}

func TestResetZeroesEverything(t *testing.T) {
	var r Registers
	r.Set(RegR0, 1)
	r.Set(RegFlags, 1)
	r.Set(RegImm0, 1)
	r.Reset()

	for _, code := range []uint16{RegR0, RegFlags, RegImm0} {
		got, _ := r.Get(code)
		if got != 0 {
			t.Fatalf("Reset() left register %#x = %#x, want 0", code, got)
		}
	}
}

func TestIsImmediateRegister(t *testing.T) {
	if !IsImmediateRegister(RegImm0) || !IsImmediateRegister(RegImm7) {
		t.Fatalf("IsImmediateRegister should accept imm0-imm7")
	}
	if IsImmediateRegister(RegR0) || IsImmediateRegister(RegFlags) {
		t.Fatalf("IsImmediateRegister should reject non-immediate registers")
	}
}
