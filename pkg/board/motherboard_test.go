package board

import (
	"bytes"
	"testing"

	"github.com/monad-system/monad/pkg/cartridge"
	"github.com/monad-system/monad/pkg/iobus"
	"github.com/monad-system/monad/pkg/memio"
)

type fakeCPU struct {
	ran bool
}

func (f *fakeCPU) ExecuteCycle(*memio.Bus, *iobus.Bus) error { return nil }
func (f *fakeCPU) RunCPU(*memio.Bus, *iobus.Bus) error {
	f.ran = true
	return nil
}

func TestInitCopiesCartridgeIntoRAM(t *testing.T) {
	cpu := &fakeCPU{}
	mb := New(cpu, nil)
	mb.WithBootCartridge(cartridge.New([]byte{1, 2, 3, 4}))

	mem := memio.New(64, nil)
	mb.Init(mem)

	if got := mem.Read(0, 4); !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Fatalf("Init() did not copy cartridge into RAM, got %v", got)
	}
}

func TestInitWithoutCartridgeIsNoop(t *testing.T) {
	cpu := &fakeCPU{}
	mb := New(cpu, nil)
	mem := memio.New(64, nil)
	mb.Init(mem)

	if got := mem.Read(0, 8); !bytes.Equal(got, make([]byte, 8)) {
		t.Fatalf("Init() without a cartridge should leave RAM zeroed, got %v", got)
	}
}

func TestInitOversizedCartridgeIsRejected(t *testing.T) {
	cpu := &fakeCPU{}
	mb := New(cpu, nil)
	mb.WithBootCartridge(cartridge.New(make([]byte, 128)))
	mem := memio.New(64, nil)
	mb.Init(mem)

	if got := mem.Read(0, 8); !bytes.Equal(got, make([]byte, 8)) {
		t.Fatalf("Init() with an oversized cartridge should leave RAM untouched, got %v", got)
	}
}

func TestRunCPUDelegatesToCPU(t *testing.T) {
	cpu := &fakeCPU{}
	mb := New(cpu, nil)
	mem := memio.New(64, nil)

	if err := mb.RunCPU(mem); err != nil {
		t.Fatalf("RunCPU() error: %v", err)
	}
	if !cpu.ran {
		t.Fatalf("RunCPU() did not delegate to the CPU")
	}
}

func TestSystemBoot(t *testing.T) {
	cpu := &fakeCPU{}
	mb := New(cpu, nil)
	mb.WithBootCartridge(cartridge.New([]byte{0xAA}))
	system := NewSystem(mb, 64, nil)

	if err := system.Boot(); err != nil {
		t.Fatalf("Boot() error: %v", err)
	}
	if got := system.Memory.Read(0, 1); got == nil || got[0] != 0xAA {
		t.Fatalf("Boot() did not Init before RunCPU")
	}
	if !cpu.ran {
		t.Fatalf("Boot() did not run the CPU")
	}
}
