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

// widthForQuad recovers the width of a four-variant (b/w/d/q, no signed
// pair) opcode family from its position after base.
func widthForQuad(op, base uint16) int {
	widths := [4]int{1, 2, 4, 8}
	return widths[op-base]
}

// execBinaryBitwise implements AND/OR/XOR/NOR/NAND across all four
// widths. The flag update follows NOR's pattern (the one directly
// confirmed against original_source): Zero and Equal update cleanly,
// Greater clears correctly on its false branch, but Less's false branch
// still clears Overflow instead of Less — a narrower version of the ALU
// quirk, reproduced as coded rather than normalized to match ADD/SUB.
func (c *CPU) execBinaryBitwise(op uint16, inst instruction) error {
	var base uint16
	var combine func(a, b uint64) uint64
	switch {
	case op >= opAndb && op <= opAndq:
		base, combine = opAndb, func(a, b uint64) uint64 { return a & b }
	case op >= opOrb && op <= opOrq:
		base, combine = opOrb, func(a, b uint64) uint64 { return a | b }
	case op >= opXorb && op <= opXorq:
		base, combine = opXorb, func(a, b uint64) uint64 { return a ^ b }
	case op >= opNorb && op <= opNorq:
		base, combine = opNorb, func(a, b uint64) uint64 { return ^(a | b) }
	default:
		base, combine = opNandb, func(a, b uint64) uint64 { return ^(a & b) }
	}
	width := widthForQuad(op, base)

	in1, in2, destReg := inst.threeOperand()
	v1, err := c.Regs.Get(in1)
	if err != nil {
		return err
	}
	v2, err := c.Regs.Get(in2)
	if err != nil {
		return err
	}
	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}

	u1, u2 := truncate(v1, width), truncate(v2, width)
	result := truncate(combine(u1, u2), width)

	flags := c.Regs.RFlags
	flags = setFlag(flags, FlagZero, result == 0)
	flags = applyBitwiseCompareFlags(flags, u1 > u2, u1 == u2, u1 < u2)
	c.Regs.RFlags = flags

	return c.Regs.Set(destReg, mergeWidth(dest, result, width))
}

// execNot implements NOTB/NOTW/NOTD/NOTQ: bitwise complement of dest, in
// place. Only the Zero flag is updated.
func (c *CPU) execNot(op uint16, inst instruction) error {
	width := widthForQuad(op, opNotb)
	destReg := inst.operand1()

	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}
	result := truncate(^dest, width)
	c.Regs.RFlags = setFlag(c.Regs.RFlags, FlagZero, result == 0)
	return c.Regs.Set(destReg, mergeWidth(dest, result, width))
}

// execShiftRotate implements SHL/SHR/ROL/ROR, each shifting or rotating
// dest by a fixed count of 1. Only the Zero flag is updated.
func (c *CPU) execShiftRotate(op uint16, inst instruction) error {
	var base uint16
	var apply func(v uint64, width int) uint64
	switch {
	case op >= opShlb && op <= opShlq:
		base, apply = opShlb, func(v uint64, width int) uint64 {
			return truncate(v<<1, width)
		}
	case op >= opShrb && op <= opShrq:
		base, apply = opShrb, func(v uint64, width int) uint64 {
			return truncate(v, width) >> 1
		}
	case op >= opRolb && op <= opRolq:
		base, apply = opRolb, func(v uint64, width int) uint64 {
			bits := uint(width) * 8
			u := truncate(v, width)
			return truncate((u<<1)|(u>>(bits-1)), width)
		}
	default:
		base, apply = opRorb, func(v uint64, width int) uint64 {
			bits := uint(width) * 8
			u := truncate(v, width)
			return truncate((u>>1)|(u<<(bits-1)), width)
		}
	}
	width := widthForQuad(op, base)
	destReg := inst.operand1()

	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}
	result := apply(dest, width)
	c.Regs.RFlags = setFlag(c.Regs.RFlags, FlagZero, result == 0)
	return c.Regs.Set(destReg, mergeWidth(dest, result, width))
}

// execBitt implements BITT: copies the selected bit of the test register
// into the Greater flag. No register is written. Operand A names the
// tested register; operand B names the bit-index register (mod 64).
func (c *CPU) execBitt(inst instruction) error {
	testReg, indexReg := inst.twoOperand()
	testValue, err := c.Regs.Get(testReg)
	if err != nil {
		return err
	}
	indexReg64, err := c.Regs.Get(indexReg)
	if err != nil {
		return err
	}
	index := indexReg64 & 0b111111
	set := testValue&(uint64(1)<<index) != 0
	c.Regs.RFlags = setFlag(c.Regs.RFlags, FlagGreater, set)
	return nil
}

// execBits implements BITS: sets the selected bit of dest. Operand A
// names dest; operand B names the bit-index register (mod 64).
func (c *CPU) execBits(inst instruction) error {
	destReg, indexReg := inst.twoOperand()
	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}
	indexReg64, err := c.Regs.Get(indexReg)
	if err != nil {
		return err
	}
	index := indexReg64 & 0b111111
	return c.Regs.Set(destReg, dest|(uint64(1)<<index))
}

// execBitc implements BITC: clears the selected bit of dest. Operand A
// names dest; operand B names the bit-index register (mod 64).
func (c *CPU) execBitc(inst instruction) error {
	destReg, indexReg := inst.twoOperand()
	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}
	indexReg64, err := c.Regs.Get(indexReg)
	if err != nil {
		return err
	}
	index := indexReg64 & 0b111111
	return c.Regs.Set(destReg, dest&^(uint64(1)<<index))
}
