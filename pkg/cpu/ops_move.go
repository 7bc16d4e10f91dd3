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

func movWidth(op uint16) int {
	switch op {
	case opMovb:
		return 1
	case opMovw:
		return 2
	case opMovd:
		return 4
	default:
		return 8
	}
}

// execMov implements MOVB/MOVW/MOVD/MOVQ: copies the source register's
// low `width` bytes into dest, preserving dest's upper bits for widths
// under 64; MOVQ replaces the full register.
func (c *CPU) execMov(op uint16, inst instruction) error {
	width := movWidth(op)
	sourceReg, destReg := inst.twoOperand()

	source, err := c.Regs.Get(sourceReg)
	if err != nil {
		return err
	}
	dest, err := c.Regs.Get(destReg)
	if err != nil {
		return err
	}

	return c.Regs.Set(destReg, mergeWidth(dest, source, width))
}
