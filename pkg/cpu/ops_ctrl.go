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

// jumpPredicate reports whether a conditional jump's predicate holds
// against the current flags. JMPNZ intentionally tests the same bit as
// JMPZ, and JMPLT intentionally tests Overflow rather than a dedicated
// less-than bit — both are reproduced exactly as original_source encodes
// them, not corrected to what their mnemonics suggest.
func jumpPredicate(op uint16, flags uint64) bool {
	switch op {
	case opJmp:
		return true
	case opJmpeq:
		return flags&FlagEqual != 0
	case opJmpz:
		return flags&FlagZero != 0
	case opJmpneq:
		return flags&FlagEqual == 0
	case opJmpnz:
		return flags&FlagZero != 0
	case opJmpgt:
		return flags&FlagLess != 0
	case opJmpge:
		return flags&FlagLess != 0 || flags&FlagEqual != 0
	case opJmplt:
		return flags&FlagOverflow != 0
	case opJmple:
		return flags&FlagOverflow != 0 || flags&FlagEqual != 0
	case opJmpo:
		return flags&FlagSign != 0
	case opJmpn:
		return flags&FlagParityBit != 0
	case opJmpp:
		return flags&FlagParityBit == 0
	default:
		return false
	}
}

// execJump implements JMP and its eleven conditional variants: if the
// predicate holds, RIP is replaced with the target register's full value.
func (c *CPU) execJump(op uint16, inst instruction) error {
	targetReg := inst.operand1()
	target, err := c.Regs.Get(targetReg)
	if err != nil {
		return err
	}
	if jumpPredicate(op, c.Regs.RFlags) {
		c.Regs.RIP = target
	}
	return nil
}
