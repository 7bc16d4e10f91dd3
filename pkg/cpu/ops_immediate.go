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

import "fmt"

// immediateValue decodes the 32-bit immediate payload that spans an
// instruction's second and third operand slots (bits 32-63 of the word).
func (i instruction) immediateValue() uint32 {
	return uint32(i >> 32)
}

// execLli implements LLI: loads a 32-bit immediate into the low 32 bits of
// one of imm0-imm7, preserving its high 32 bits. Any other target register
// is a decode-time fault.
func (c *CPU) execLli(inst instruction) error {
	immReg := inst.operand1()
	if !IsImmediateRegister(immReg) {
		return &Fault{Kind: FaultInvalidRegister, Message: fmt.Sprintf("invalid immediate register: %#x", immReg)}
	}

	initial, err := c.Regs.Get(immReg)
	if err != nil {
		return err
	}
	value := uint64(inst.immediateValue())
	newValue := (initial & 0xFFFFFFFF00000000) | value
	return c.Regs.Set(immReg, newValue)
}

// execLui implements LUI: loads a 32-bit immediate into the high 32 bits
// of one of imm0-imm7, preserving its low 32 bits.
func (c *CPU) execLui(inst instruction) error {
	immReg := inst.operand1()
	if !IsImmediateRegister(immReg) {
		return &Fault{Kind: FaultInvalidRegister, Message: fmt.Sprintf("invalid immediate register: %#x", immReg)}
	}

	initial, err := c.Regs.Get(immReg)
	if err != nil {
		return err
	}
	value := uint64(inst.immediateValue())
	newValue := (initial & 0x00000000FFFFFFFF) | (value << 32)
	return c.Regs.Set(immReg, newValue)
}
