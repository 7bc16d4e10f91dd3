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

// rflags bit layout, exactly as original_source/src/cpus/monad.rs leaves it.
// These are deliberately not a clean one-bit-per-condition design; several
// opcodes share or misuse bits in ways later opcodes (JMPNZ, JMPLT, the ALU
// comparison "else" branches) depend on. Do not "fix" these.
const (
	FlagZero      uint64 = 0b00000001 // bit0
	FlagEqual     uint64 = 0b00000010 // bit1
	FlagGreater   uint64 = 0b00000100 // bit2
	FlagLess      uint64 = 0b00001000 // bit3
	FlagOverflow  uint64 = 0b00010000 // bit4, also the carry bit
	FlagSign      uint64 = 0b00100000 // bit5
	FlagParityBit uint64 = 0b01000000 // bit6, tested by JMPN/JMPP
)

func setFlag(flags uint64, bit uint64, on bool) uint64 {
	if on {
		return flags | bit
	}
	return flags &^ bit
}

// applyCompareFlags reproduces the exact Equal/Greater/Less update sequence
// shared by every ALU compare (ADD/SUB/MUL/DIV/CMP, all widths and
// signedness). The "else" branches do not clear the bit they just tested:
// the false branch of the Greater test clears Less instead, and the false
// branch of the Less test clears Overflow instead. This is reproduced
// exactly as coded in the original, not corrected.
func applyCompareFlags(flags uint64, greater, equal, less bool) uint64 {
	flags = setFlag(flags, FlagEqual, equal)

	if greater {
		flags |= FlagGreater
	} else {
		flags &^= FlagLess
	}

	if less {
		flags |= FlagLess
	} else {
		flags &^= FlagOverflow
	}

	return flags
}

// applyBitwiseCompareFlags is the variant used by the binary bitwise ops
// (AND/OR/XOR/NOR/NAND). The Greater branch clears correctly here; only the
// Less branch keeps the ALU's cross-bit quirk, clearing Overflow instead of
// Less on the false path.
func applyBitwiseCompareFlags(flags uint64, greater, equal, less bool) uint64 {
	flags = setFlag(flags, FlagEqual, equal)
	flags = setFlag(flags, FlagGreater, greater)

	if less {
		flags |= FlagLess
	} else {
		flags &^= FlagOverflow
	}

	return flags
}
