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

// Package cpu implements the Monad fetch-decode-execute engine: the
// register file, the flags register and its opcode-specific update rules,
// instruction decode, and every opcode handler across the eight opcode
// classes (memory, immediate-load, extension, register move, ALU,
// bitwise, control transfer, I/O).
package cpu

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/monad-system/monad/pkg/iobus"
	"github.com/monad-system/monad/pkg/memio"
)

// FaultKind discriminates the ways the CPU can come to a fatal stop.
type FaultKind int

const (
	FaultUnknownOpcode FaultKind = iota
	FaultInvalidRegister
	FaultNotImplemented
	FaultBusRange
)

// Fault is raised for any decode-time or dispatch-time condition
// original_source treats as unrecoverable (an unknown opcode, an invalid
// register code, or the reserved INT/CPUID opcodes), and for an instruction
// fetch that runs past RAM. For a dispatch-time Fault, RIP has already been
// advanced past the faulting instruction, matching the original's
// fetch-then-dispatch ordering, and the message ends with that advanced
// RIP; a fetch Fault leaves RIP at the address it could not fetch from.
type Fault struct {
	Kind    FaultKind
	Message string
}

func (f *Fault) Error() string {
	return f.Message
}

// CPU is the Monad register machine: a register file, the flags it
// carries, and a running flag the WFI/RST opcodes manipulate.
type CPU struct {
	Regs    Registers
	Running bool
	log     *zap.Logger
}

// New returns a CPU with every register zeroed and Running false, matching
// MonadCPU::new's initial state.
func New(log *zap.Logger) *CPU {
	if log == nil {
		log = zap.NewNop()
	}
	return &CPU{log: log}
}

// State is a point-in-time snapshot of every architectural register, for
// debuggers and single-step tooling; it has no effect on CPU semantics.
type State struct {
	Registers Registers
	Running   bool
}

// State returns a copy of the CPU's current register file and run flag.
func (c *CPU) State() State {
	return State{Registers: c.Regs, Running: c.Running}
}

// ExecuteCycle runs exactly one fetch-decode-execute cycle: it reads the
// 8-byte instruction word at RIP, advances RIP past it, and dispatches the
// decoded opcode. RIP is advanced before dispatch so control-transfer
// opcodes overwrite it with an absolute target rather than racing the
// advance.
func (c *CPU) ExecuteCycle(mem *memio.Bus, io *iobus.Bus) error {
	word := mem.Read(c.Regs.RIP, 8)
	if word == nil {
		return &Fault{Kind: FaultBusRange, Message: fmt.Sprintf("fetch at rip=%#x ran past RAM bounds", c.Regs.RIP)}
	}
	inst := decodeInstruction(word)
	c.Regs.RIP += 8

	op := inst.opcode()
	c.log.Debug("executing instruction", zap.Uint16("opcode", op), zap.Uint64("rip", c.Regs.RIP))

	err := c.dispatch(op, inst, mem, io)
	if f, ok := err.(*Fault); ok {
		f.Message = fmt.Sprintf("%s (rip=%#x)", f.Message, c.Regs.RIP)
	}
	return err
}

// RunCPU sets Running and then executes cycles until Running is cleared
// (by WFI) or a Fault occurs.
func (c *CPU) RunCPU(mem *memio.Bus, io *iobus.Bus) error {
	c.Running = true
	for c.Running {
		if err := c.ExecuteCycle(mem, io); err != nil {
			c.Running = false
			return err
		}
	}
	return nil
}

func (c *CPU) dispatch(op uint16, inst instruction, mem *memio.Bus, io *iobus.Bus) error {
	switch op {
	case opNop:
		return nil

	case opSmemb, opSmemw, opSmemd, opSmemq:
		return c.execStoreMem(op, inst, mem)
	case opLmemb, opLmemw, opLmemd, opLmemq:
		return c.execLoadMem(op, inst, mem)

	case opLli:
		return c.execLli(inst)
	case opLui:
		return c.execLui(inst)

	case opCbw:
		return c.execCbw(inst)
	case opCbws:
		return c.execCbws(inst)
	case opCwd:
		return c.execCwd(inst)
	case opCwds:
		return c.execCwds(inst)
	case opCdq:
		return c.execCdq(inst)
	case opCdqs:
		return c.execCdqs(inst)

	case opMovb, opMovw, opMovd, opMovq:
		return c.execMov(op, inst)

	case opAddb, opAddw, opAddd, opAddq, opAddbs, opAddws, opAddds, opAddqs,
		opSubb, opSubw, opSubd, opSubq, opSubbs, opSubws, opSubds, opSubqs,
		opMulb, opMulw, opMuld, opMulq, opMulbs, opMulws, opMulds, opMulqs,
		opDivb, opDivw, opDivd, opDivq, opDivbs, opDivws, opDivds, opDivqs:
		return c.execBinaryALU(op, inst)

	case opIncb, opIncw, opIncd, opIncq, opIncbs, opIncws, opIncds, opIncqs:
		return c.execInc(op, inst)
	case opDecb, opDecw, opDecd, opDecq, opDecbs, opDecws, opDecds, opDecqs:
		return c.execDec(op, inst)
	case opNegb, opNegw, opNegd, opNegq:
		return c.execNeg(op, inst)

	case opCmpb, opCmpw, opCmpd, opCmpq, opCmpbs, opCmpws, opCmpds, opCmpqs:
		return c.execCmp(op, inst)

	case opAndb, opAndw, opAndd, opAndq,
		opOrb, opOrw, opOrd, opOrq,
		opXorb, opXorw, opXord, opXorq,
		opNorb, opNorw, opNord, opNorq,
		opNandb, opNandw, opNandd, opNandq:
		return c.execBinaryBitwise(op, inst)

	case opNotb, opNotw, opNotd, opNotq:
		return c.execNot(op, inst)

	case opShlb, opShlw, opShld, opShlq,
		opShrb, opShrw, opShrd, opShrq,
		opRolb, opRolw, opRold, opRolq,
		opRorb, opRorw, opRord, opRorq:
		return c.execShiftRotate(op, inst)

	case opBitt:
		return c.execBitt(inst)
	case opBits:
		return c.execBits(inst)
	case opBitc:
		return c.execBitc(inst)

	case opJmp, opJmpeq, opJmpz, opJmpneq, opJmpnz, opJmpgt, opJmpge,
		opJmplt, opJmple, opJmpo, opJmpn, opJmpp:
		return c.execJump(op, inst)

	case opInt:
		return &Fault{Kind: FaultNotImplemented, Message: "INT is reserved and not implemented"}
	case opCpuid:
		return &Fault{Kind: FaultNotImplemented, Message: "CPUID is reserved and not implemented"}
	case opWfi:
		c.Running = false
		return nil
	case opRst:
		c.execRst()
		return nil

	case opInb, opInw, opInd, opInq:
		return c.execIn(op, inst, io)
	case opOutb, opOutw, opOutd, opOutq:
		return c.execOut(op, inst, io)

	default:
		return &Fault{Kind: FaultUnknownOpcode, Message: fmt.Sprintf("unknown opcode encountered: %#x", op)}
	}
}

// execRst zeroes every register and sets Running true, per the later
// revision's meaning for 0x030E (see the register-set RST rather than
// earlier HALT semantics).
func (c *CPU) execRst() {
	c.Regs.Reset()
	c.Running = true
}
