package cpu

import (
	"encoding/binary"
	"testing"

	"github.com/monad-system/monad/pkg/iobus"
	"github.com/monad-system/monad/pkg/memio"
)

func newTestCPU() (*CPU, *memio.Bus, *iobus.Bus) {
	return New(nil), memio.New(128, nil), iobus.New()
}

func storeInstruction(mem *memio.Bus, addr uint64, opcode, op1, op2, op3 uint16) {
	word := uint64(opcode) | uint64(op1)<<16 | uint64(op2)<<32 | uint64(op3)<<48
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, word)
	mem.Write(addr, buf)
}

func TestCbwsSignExtendsAndPreservesUpperBits(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Regs.Set(RegR0, 0xFF)             // negative byte
	c.Regs.Set(RegR1, 0xFFFFFFFFFFFF0000) // upper 48 bits to verify preserved
	storeInstruction(mem, 0, opCbws, RegR0, RegR1, 0)

	if err := c.ExecuteCycle(mem, io); err != nil {
		t.Fatalf("ExecuteCycle() error: %v", err)
	}
	got, _ := c.Regs.Get(RegR1)
	if want := uint64(0xFFFFFFFFFFFFFFFF); got != want {
		t.Fatalf("CBWS result = %#x, want %#x", got, want)
	}
}

func TestCbwZeroExtends(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Regs.Set(RegR0, 0xFF)
	c.Regs.Set(RegR1, 0xFFFFFFFFFFFF0000)
	storeInstruction(mem, 0, opCbw, RegR0, RegR1, 0)

	c.ExecuteCycle(mem, io)
	got, _ := c.Regs.Get(RegR1)
	if want := uint64(0xFFFFFFFFFFFF00FF); got != want {
		t.Fatalf("CBW result = %#x, want %#x", got, want)
	}
}

func TestLliLuiFormFullImmediate(t *testing.T) {
	c, mem, io := newTestCPU()
	storeInstruction(mem, 0, opLui, RegImm0, 0xCCDD, 0xAABB)
	storeInstruction(mem, 8, opLli, RegImm0, 0x3344, 0x1122)

	c.ExecuteCycle(mem, io)
	c.ExecuteCycle(mem, io)

	got, _ := c.Regs.Get(RegImm0)
	if want := uint64(0xAABBCCDD11223344); got != want {
		t.Fatalf("imm0 = %#x, want %#x", got, want)
	}
}

func TestLliRejectsNonImmediateTarget(t *testing.T) {
	c, mem, io := newTestCPU()
	storeInstruction(mem, 0, opLli, RegR0, 0, 0)

	err := c.ExecuteCycle(mem, io)
	if err == nil {
		t.Fatalf("LLI into a non-immediate register should fault")
	}
}

func TestUnsignedAddOverflowWraps(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Regs.Set(RegR0, 0xFF)
	c.Regs.Set(RegR1, 0x01)
	storeInstruction(mem, 0, opAddb, RegR0, RegR1, RegR2)

	c.ExecuteCycle(mem, io)

	got, _ := c.Regs.Get(RegR2)
	if got != 0 {
		t.Fatalf("ADDB result = %#x, want 0", got)
	}
	if c.Regs.RFlags&FlagOverflow == 0 {
		t.Fatalf("ADDB overflow flag not set")
	}
	if c.Regs.RFlags&FlagZero == 0 {
		t.Fatalf("ADDB zero flag not set")
	}
	if c.Regs.RFlags&FlagSign != 0 {
		t.Fatalf("ADDB (unsigned) sign flag should always be clear")
	}
}

func TestSignedSubtractProducesNegative(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Regs.Set(RegR0, 0)
	c.Regs.Set(RegR1, 1)
	storeInstruction(mem, 0, opSubbs, RegR0, RegR1, RegR2)

	c.ExecuteCycle(mem, io)

	got, _ := c.Regs.Get(RegR2)
	if want := uint64(0xFF); got != want {
		t.Fatalf("SUBBS result = %#x, want %#x", got, want)
	}
	if c.Regs.RFlags&FlagSign == 0 {
		t.Fatalf("SUBBS (signed, negative result) sign flag should be set")
	}
}

func TestJumpViaRegister(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Regs.Set(RegR5, 0x40)
	storeInstruction(mem, 0, opJmp, RegR5, 0, 0)

	c.ExecuteCycle(mem, io)

	if c.Regs.RIP != 0x40 {
		t.Fatalf("RIP after JMP = %#x, want 0x40", c.Regs.RIP)
	}
}

func TestJmpnzSharesJmpzPredicate(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Regs.RFlags = FlagZero
	c.Regs.Set(RegR5, 0x40)
	storeInstruction(mem, 0, opJmpnz, RegR5, 0, 0)

	c.ExecuteCycle(mem, io)

	if c.Regs.RIP != 0x40 {
		t.Fatalf("JMPNZ with Zero set should jump (shares JMPZ's predicate), RIP = %#x", c.Regs.RIP)
	}
}

func TestJmpltChecksOverflowFlag(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Regs.RFlags = FlagOverflow
	c.Regs.Set(RegR5, 0x40)
	storeInstruction(mem, 0, opJmplt, RegR5, 0, 0)

	c.ExecuteCycle(mem, io)

	if c.Regs.RIP != 0x40 {
		t.Fatalf("JMPLT with Overflow set should jump, RIP = %#x", c.Regs.RIP)
	}
}

func TestRstZeroesEverythingAndSetsRunning(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Regs.Set(RegR0, 0xDEAD)
	c.Regs.RFlags = 0xFF
	c.Running = false
	storeInstruction(mem, 0, opRst, 0, 0, 0)

	c.ExecuteCycle(mem, io)

	if !c.Running {
		t.Fatalf("RST should leave Running = true")
	}
	if c.Regs.RIP != 0 {
		t.Fatalf("RST should zero RIP, got %#x", c.Regs.RIP)
	}
	got, _ := c.Regs.Get(RegR0)
	if got != 0 {
		t.Fatalf("RST should zero R0, got %#x", got)
	}
}

func TestMovqRoundTrip(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Regs.Set(RegR0, 0x0123456789ABCDEF)
	storeInstruction(mem, 0, opMovq, RegR0, RegR1, 0)

	c.ExecuteCycle(mem, io)

	got, _ := c.Regs.Get(RegR1)
	if got != 0x0123456789ABCDEF {
		t.Fatalf("MOVQ result = %#x, want 0x0123456789ABCDEF", got)
	}
}

func TestNotIsSelfInverse(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Regs.Set(RegR0, 0x0F0F0F0F0F0F0F0F)
	storeInstruction(mem, 0, opNotq, RegR0, 0, 0)
	storeInstruction(mem, 8, opNotq, RegR0, 0, 0)

	c.ExecuteCycle(mem, io)
	c.ExecuteCycle(mem, io)

	got, _ := c.Regs.Get(RegR0)
	if got != 0x0F0F0F0F0F0F0F0F {
		t.Fatalf("NOTQ applied twice = %#x, want original value restored", got)
	}
}

func TestXorSelfIsZero(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Regs.Set(RegR0, 0x1234)
	storeInstruction(mem, 0, opXorq, RegR0, RegR0, RegR0)

	c.ExecuteCycle(mem, io)

	got, _ := c.Regs.Get(RegR0)
	if got != 0 {
		t.Fatalf("XORQ r0,r0,r0 = %#x, want 0", got)
	}
	if c.Regs.RFlags&FlagZero == 0 {
		t.Fatalf("XORQ self zero flag not set")
	}
}

func TestUnknownOpcodeFaults(t *testing.T) {
	c, mem, io := newTestCPU()
	storeInstruction(mem, 0, 0x9999, 0, 0, 0)

	err := c.ExecuteCycle(mem, io)
	if err == nil {
		t.Fatalf("unknown opcode should fault")
	}
	f, ok := err.(*Fault)
	if !ok || f.Kind != FaultUnknownOpcode {
		t.Fatalf("unknown opcode error = %#v, want FaultUnknownOpcode", err)
	}
	if c.Regs.RIP != 8 {
		t.Fatalf("RIP should already be advanced past the faulting instruction, got %#x", c.Regs.RIP)
	}
}

func TestIntAndCpuidAreNotImplemented(t *testing.T) {
	for _, op := range []uint16{opInt, opCpuid} {
		c, mem, io := newTestCPU()
		storeInstruction(mem, 0, op, 0, 0, 0)
		err := c.ExecuteCycle(mem, io)
		if err == nil {
			t.Fatalf("opcode %#x should fault as not implemented", op)
		}
	}
}

func TestWfiClearsRunning(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Running = true
	storeInstruction(mem, 0, opWfi, 0, 0, 0)

	c.ExecuteCycle(mem, io)

	if c.Running {
		t.Fatalf("WFI should clear Running")
	}
}

func TestRunCPUStopsOnWfi(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Running = true
	storeInstruction(mem, 0, opNop, 0, 0, 0)
	storeInstruction(mem, 8, opWfi, 0, 0, 0)

	if err := c.RunCPU(mem, io); err != nil {
		t.Fatalf("RunCPU() error: %v", err)
	}
	if c.Running {
		t.Fatalf("RunCPU() should have stopped at WFI")
	}
	if c.Regs.RIP != 16 {
		t.Fatalf("RIP = %#x, want 16", c.Regs.RIP)
	}
}

func TestInOutThroughPortHandler(t *testing.T) {
	c, mem, _ := newTestCPU()
	io := iobus.New()
	var stored uint8
	io.Install(0, &iobus.Handler{
		Read8:  func(uint16) uint8 { return stored },
		Write8: func(_ uint16, v uint8) { stored = v },
	})

	c.Regs.Set(RegR0, 0) // port register
	c.Regs.Set(RegR1, 'Z')
	storeInstruction(mem, 0, opOutb, RegR0, RegR1, 0)
	storeInstruction(mem, 8, opInb, RegR0, RegR2, 0)

	c.ExecuteCycle(mem, io)
	c.ExecuteCycle(mem, io)

	got, _ := c.Regs.Get(RegR2)
	if got != 'Z' {
		t.Fatalf("INB after OUTB = %#x, want 'Z'", got)
	}
}

func TestBittCopiesBitIntoGreaterFlag(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Regs.Set(RegR0, 0b1000)
	c.Regs.Set(RegR1, 3) // bit index

	storeInstruction(mem, 0, opBitt, RegR0, RegR1, 0)
	c.ExecuteCycle(mem, io)

	if c.Regs.RFlags&FlagGreater == 0 {
		t.Fatalf("BITT should have set Greater for a set bit")
	}
}

func TestBitsAndBitc(t *testing.T) {
	c, mem, io := newTestCPU()
	c.Regs.Set(RegR0, 0)
	c.Regs.Set(RegR1, 2) // bit index
	storeInstruction(mem, 0, opBits, RegR0, RegR1, 0)
	c.ExecuteCycle(mem, io)

	got, _ := c.Regs.Get(RegR0)
	if got != 0b100 {
		t.Fatalf("BITS result = %#b, want 0b100", got)
	}

	storeInstruction(mem, 8, opBitc, RegR0, RegR1, 0)
	c.ExecuteCycle(mem, io)
	got, _ = c.Regs.Get(RegR0)
	if got != 0 {
		t.Fatalf("BITC result = %#b, want 0", got)
	}
}
