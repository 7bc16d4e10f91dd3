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

// execCbw implements CBW: zero-extends the source's low byte into the low
// 16 bits of dest, preserving dest's upper 48 bits.
func (c *CPU) execCbw(inst instruction) error {
	sourceReg, destReg := inst.twoOperand()
	source, err := c.Regs.Get(sourceReg)
	if err != nil {
		return err
	}
	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}
	value := truncate(source, 1)
	return c.Regs.Set(destReg, mergeWidth(dest, value, 2))
}

// execCbws implements CBWS: sign-extends the source's low byte into the
// low 16 bits of dest, preserving dest's upper 48 bits.
func (c *CPU) execCbws(inst instruction) error {
	sourceReg, destReg := inst.twoOperand()
	source, err := c.Regs.Get(sourceReg)
	if err != nil {
		return err
	}
	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}
	value := signExtend(source, 1) & 0xFFFF
	return c.Regs.Set(destReg, mergeWidth(dest, value, 2))
}

// execCwd implements CWD: zero-extends the source's low 16 bits into the
// low 32 bits of dest, preserving dest's upper 32 bits.
func (c *CPU) execCwd(inst instruction) error {
	sourceReg, destReg := inst.twoOperand()
	source, err := c.Regs.Get(sourceReg)
	if err != nil {
		return err
	}
	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}
	value := truncate(source, 2)
	return c.Regs.Set(destReg, mergeWidth(dest, value, 4))
}

// execCwds implements CWDS: sign-extends the source's low 16 bits into
// the low 32 bits of dest, preserving dest's upper 32 bits.
func (c *CPU) execCwds(inst instruction) error {
	sourceReg, destReg := inst.twoOperand()
	source, err := c.Regs.Get(sourceReg)
	if err != nil {
		return err
	}
	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}
	value := signExtend(source, 2) & 0xFFFFFFFF
	return c.Regs.Set(destReg, mergeWidth(dest, value, 4))
}

// execCdq implements CDQ. original_source masks the source to 32 bits but
// then narrows it through a u16 cast before widening back to 64 bits,
// truncating to the low 16 bits rather than the low 32 the mnemonic
// implies; the result also overwrites dest's entire 64 bits rather than
// merging into the low 32, unlike every other extension opcode. Both
// quirks are reproduced exactly as coded, not corrected.
func (c *CPU) execCdq(inst instruction) error {
	sourceReg, destReg := inst.twoOperand()
	source, err := c.Regs.Get(sourceReg)
	if err != nil {
		return err
	}
	truncated := uint64(uint16(source & 0xFFFFFFFF))
	return c.Regs.Set(destReg, truncated)
}

// execCdqs implements CDQS: sign-extends the source's low 32 bits to a
// full 64-bit value and overwrites dest's entire 64 bits, matching
// original_source's lack of an upper-bits preservation mask on this one
// extension opcode.
func (c *CPU) execCdqs(inst instruction) error {
	sourceReg, destReg := inst.twoOperand()
	source, err := c.Regs.Get(sourceReg)
	if err != nil {
		return err
	}
	converted := signExtend(source, 4)
	return c.Regs.Set(destReg, converted)
}
