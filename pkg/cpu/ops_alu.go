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

// Every binary-ALU opcode family (ADD/SUB/MUL/DIV) lays its eight variants
// out the same way: unsigned b/w/d/q followed by signed b/w/d/q. The same
// holds for INC/DEC. decodeALUOp recovers (width, signed) from that layout.
func decodeALUOp(op, base uint16) (width int, signed bool) {
	idx := op - base
	widths := [4]int{1, 2, 4, 8}
	return widths[idx%4], idx >= 4
}

func compareOperands(v1, v2 uint64, width int, signed bool) (greater, equal, less bool) {
	if signed {
		s1, s2 := int64(signExtend(v1, width)), int64(signExtend(v2, width))
		return s1 > s2, s1 == s2, s1 < s2
	}
	u1, u2 := truncate(v1, width), truncate(v2, width)
	return u1 > u2, u1 == u2, u1 < u2
}

type overflowingOp func(v1, v2 uint64, width int, signed bool) (uint64, bool)

func (c *CPU) execBinaryALU(op uint16, inst instruction) error {
	var base uint16
	var fn overflowingOp
	switch {
	case op >= opAddb && op <= opAddqs:
		base, fn = opAddb, overflowingAdd
	case op >= opSubb && op <= opSubqs:
		base, fn = opSubb, overflowingSub
	case op >= opMulb && op <= opMulqs:
		base, fn = opMulb, overflowingMul
	default:
		base, fn = opDivb, overflowingDiv
	}
	width, signed := decodeALUOp(op, base)

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

	result, overflow := fn(v1, v2, width, signed)
	greater, equal, less := compareOperands(v1, v2, width, signed)

	flags := c.Regs.RFlags
	flags = setFlag(flags, FlagOverflow, overflow)
	flags = setFlag(flags, FlagZero, result == 0)
	flags = applyCompareFlags(flags, greater, equal, less)
	if signed {
		flags = setFlag(flags, FlagSign, isNegative(result, width))
	} else {
		// We cannot get a negative value with unsigned arithmetic, so the
		// sign flag is always cleared.
		flags = setFlag(flags, FlagSign, false)
	}
	c.Regs.RFlags = flags

	return c.Regs.Set(destReg, mergeWidth(dest, result, width))
}

// execInc implements INC/INCS across all four widths: dest += 1, with the
// sign flag always cleared for the unsigned variants.
func (c *CPU) execInc(op uint16, inst instruction) error {
	width, signed := decodeALUOp(op, opIncb)
	destReg := inst.operand1()

	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}
	result, overflow := overflowingAdd(dest, 1, width, signed)

	flags := c.Regs.RFlags
	flags = setFlag(flags, FlagOverflow, overflow)
	flags = setFlag(flags, FlagZero, result == 0)
	if signed {
		flags = setFlag(flags, FlagSign, isNegative(result, width))
	} else {
		flags = setFlag(flags, FlagSign, false)
	}
	c.Regs.RFlags = flags

	return c.Regs.Set(destReg, mergeWidth(dest, result, width))
}

// execDec implements DEC/DECS across all four widths: dest -= 1.
func (c *CPU) execDec(op uint16, inst instruction) error {
	width, signed := decodeALUOp(op, opDecb)
	destReg := inst.operand1()

	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}
	result, overflow := overflowingSub(dest, 1, width, signed)

	flags := c.Regs.RFlags
	flags = setFlag(flags, FlagOverflow, overflow)
	flags = setFlag(flags, FlagZero, result == 0)
	if signed {
		flags = setFlag(flags, FlagSign, isNegative(result, width))
	} else {
		flags = setFlag(flags, FlagSign, false)
	}
	c.Regs.RFlags = flags

	return c.Regs.Set(destReg, mergeWidth(dest, result, width))
}

func negWidth(op uint16) int {
	switch op {
	case opNegb:
		return 1
	case opNegw:
		return 2
	case opNegd:
		return 4
	default:
		return 8
	}
}

// execNeg implements NEGB/NEGW/NEGD/NEGQ: signed, two's-complement
// negation. Overflow is always cleared (negating the width's minimum
// value silently wraps back to itself, as original_source does); only
// Zero and Sign are otherwise updated.
func (c *CPU) execNeg(op uint16, inst instruction) error {
	width := negWidth(op)
	destReg := inst.operand1()

	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}
	signedValue := int64(signExtend(dest, width))
	result := uint64(-signedValue) & widthMask(width)

	flags := c.Regs.RFlags
	flags = setFlag(flags, FlagOverflow, false)
	flags = setFlag(flags, FlagZero, result == 0)
	flags = setFlag(flags, FlagSign, isNegative(result, width))
	c.Regs.RFlags = flags

	return c.Regs.Set(destReg, mergeWidth(dest, result, width))
}

// execCmp implements CMP across all four widths and both signedness: the
// same Equal/Greater/Less update (and its "else" quirks) as the binary
// ALU ops, but no Zero update, no Overflow computation, and no destination
// write. Overflow is never set here, but the Less quirk still clears it
// whenever v1 < v2 is false.
func (c *CPU) execCmp(op uint16, inst instruction) error {
	width, signed := decodeALUOp(op, opCmpb)
	reg1, reg2 := inst.twoOperand()

	v1, err := c.Regs.Get(reg1)
	if err != nil {
		return err
	}
	v2, err := c.Regs.Get(reg2)
	if err != nil {
		return err
	}

	greater, equal, less := compareOperands(v1, v2, width, signed)
	c.Regs.RFlags = applyCompareFlags(c.Regs.RFlags, greater, equal, less)
	return nil
}
