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

import "github.com/monad-system/monad/pkg/iobus"

func ioWidth(op uint16) int {
	switch op {
	case opInb, opOutb:
		return 1
	case opInw, opOutw:
		return 2
	case opInd, opOutd:
		return 4
	default:
		return 8
	}
}

// execIn implements INB/INW/IND/INQ: reads `width` bytes from the port
// named by the port-index register and merges them into the low bytes of
// the dest register, preserving its upper bits (INQ replaces all 64).
func (c *CPU) execIn(op uint16, inst instruction, io *iobus.Bus) error {
	width := ioWidth(op)
	portReg, destReg := inst.twoOperand()

	portValue, err := c.Regs.Get(portReg)
	if err != nil {
		return err
	}
	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}
	port := uint16(portValue & 0xFFFF)

	var value uint64
	switch width {
	case 1:
		value = uint64(io.Read8(port))
	case 2:
		value = uint64(io.Read16(port))
	case 4:
		value = uint64(io.Read32(port))
	default:
		value = io.Read64(port)
	}

	return c.Regs.Set(destReg, mergeWidth(dest, value, width))
}

// execOut implements OUTB/OUTW/OUTD/OUTQ: truncates the value register to
// `width` bytes and writes it to the port named by the port-index
// register.
func (c *CPU) execOut(op uint16, inst instruction, io *iobus.Bus) error {
	width := ioWidth(op)
	portReg, valueReg := inst.twoOperand()

	portValue, err := c.Regs.Get(portReg)
	if err != nil {
		return err
	}
	value, err := c.Regs.Get(valueReg)
	if err != nil {
		return err
	}
	port := uint16(portValue & 0xFFFF)
	v := truncate(value, width)

	switch width {
	case 1:
		io.Write8(port, uint8(v))
	case 2:
		io.Write16(port, uint16(v))
	case 4:
		io.Write32(port, uint32(v))
	default:
		io.Write64(port, v)
	}
	return nil
}
