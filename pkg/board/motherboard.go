// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package board wires a CPU, an I/O bus, and an optional boot cartridge
// into a runnable motherboard, and a System that owns the shared memory
// bus alongside it.
package board

import (
	"go.uber.org/zap"

	"github.com/monad-system/monad/pkg/cartridge"
	"github.com/monad-system/monad/pkg/iobus"
	"github.com/monad-system/monad/pkg/memio"
)

// CPU is the narrow capability set a motherboard needs from a CPU core.
// pkg/cpu.CPU satisfies this.
type CPU interface {
	ExecuteCycle(mem *memio.Bus, io *iobus.Bus) error
	RunCPU(mem *memio.Bus, io *iobus.Bus) error
}

// Motherboard owns one CPU, one I/O bus, and an optional boot cartridge.
type Motherboard struct {
	cpu       CPU
	io        *iobus.Bus
	cartridge *cartridge.Cartridge
	log       *zap.Logger
}

// New builds a motherboard around the given CPU, with a fresh I/O bus.
func New(cpu CPU, log *zap.Logger) *Motherboard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Motherboard{cpu: cpu, io: iobus.New(), log: log}
}

// WithBootCartridge attaches a boot cartridge and returns the motherboard
// for chaining, mirroring the original's builder-style constructor.
func (m *Motherboard) WithBootCartridge(c *cartridge.Cartridge) *Motherboard {
	m.cartridge = c
	return m
}

// SetBootCartridge replaces the currently inserted boot cartridge, if any.
func (m *Motherboard) SetBootCartridge(c *cartridge.Cartridge) {
	m.cartridge = c
}

// RemoveBootCartridge ejects the currently inserted boot cartridge, if any.
func (m *Motherboard) RemoveBootCartridge() {
	m.cartridge = nil
}

// IOBus returns the motherboard's I/O bus so callers can install device
// handlers before running the CPU.
func (m *Motherboard) IOBus() *iobus.Bus {
	return m.io
}

// CPUCore returns the motherboard's CPU.
func (m *Motherboard) CPUCore() CPU {
	return m.cpu
}

// Init copies the boot cartridge's image into the start of RAM, if one is
// inserted, accepted revision, and small enough to fit. Every rejection
// path is logged rather than treated as fatal, exactly as the original
// motherboard does.
func (m *Motherboard) Init(mem *memio.Bus) {
	if m.cartridge == nil {
		m.log.Error("no boot cartridge inserted")
		return
	}
	if m.cartridge.Revision() != cartridge.SupportedRevision {
		m.log.Error("unsupported boot cartridge revision",
			zap.Uint8("revision", m.cartridge.Revision()))
		return
	}
	if m.cartridge.Size() > mem.Size() {
		m.log.Error("boot cartridge data is larger than RAM size",
			zap.Int("cartridge_size", m.cartridge.Size()),
			zap.Int("ram_size", mem.Size()))
		return
	}
	mem.Write(0, m.cartridge.Data())
}

// RunCPU delegates to the CPU's run loop, wired to the motherboard's own
// I/O bus and the shared memory bus.
func (m *Motherboard) RunCPU(mem *memio.Bus) error {
	return m.cpu.RunCPU(mem, m.io)
}

// System owns the memory bus shared by a motherboard's CPU and any DMA-
// capable device, mirroring original_source's Monarch64System.
type System struct {
	Motherboard *Motherboard
	Memory      *memio.Bus
}

// NewSystem builds a system with a fresh memory bus of the given size.
func NewSystem(motherboard *Motherboard, ramSize int, log *zap.Logger) *System {
	return &System{
		Motherboard: motherboard,
		Memory:      memio.New(ramSize, log),
	}
}

// Boot runs Init followed by RunCPU, the exact sequencing original_source's
// main.rs performs on system startup.
func (s *System) Boot() error {
	s.Motherboard.Init(s.Memory)
	return s.Motherboard.RunCPU(s.Memory)
}
