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

package cpu

import "github.com/monad-system/monad/pkg/memio"

func memWidth(op uint16) int {
	switch op {
	case opSmemb, opLmemb:
		return 1
	case opSmemw, opLmemw:
		return 2
	case opSmemd, opLmemd:
		return 4
	default:
		return 8
	}
}

// execStoreMem implements SMEMB/SMEMW/SMEMD/SMEMQ: the source register's
// low `width` bytes are stored at the address held in the dest register.
// Unlike every other two-operand opcode, the "dest" operand here names an
// address, not a register to merge into.
func (c *CPU) execStoreMem(op uint16, inst instruction, mem *memio.Bus) error {
	width := memWidth(op)
	sourceReg, destReg := inst.twoOperand()

	sourceValue, err := c.Regs.Get(sourceReg)
	if err != nil {
		return err
	}
	destAddress, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}

	mem.Write(destAddress, toLEBytes(sourceValue, width))
	return nil
}

// execLoadMem implements LMEMB/LMEMW/LMEMD/LMEMQ: `width` bytes are read
// from the address held in the source register and merged into the low
// bytes of the dest register, preserving its upper bits.
func (c *CPU) execLoadMem(op uint16, inst instruction, mem *memio.Bus) error {
	width := memWidth(op)
	sourceReg, destReg := inst.twoOperand()

	sourceAddress, err := c.Regs.Get(sourceReg)
	if err != nil {
		return err
	}
	destValue, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}

	loaded := fromLEBytes(mem.Read(sourceAddress, width), width)
	return c.Regs.Set(destReg, mergeWidth(destValue, loaded, width))
}
