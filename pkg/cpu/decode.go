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

import "encoding/binary"

// An instruction word is a fixed-width 64-bit little-endian value: the
// opcode occupies bits [15:0], and up to three 16-bit operand slots follow
// at [31:16], [47:32], and [63:48].
type instruction uint64

func decodeInstruction(word []byte) instruction {
	return instruction(binary.LittleEndian.Uint64(word))
}

func (i instruction) opcode() uint16 {
	return uint16(i & 0xFFFF)
}

func (i instruction) operand1() uint16 {
	return uint16((i >> 16) & 0xFFFF)
}

func (i instruction) operand2() uint16 {
	return uint16((i >> 32) & 0xFFFF)
}

func (i instruction) operand3() uint16 {
	return uint16((i >> 48) & 0xFFFF)
}

// twoOperand decodes the (source, dest) register pair used by the
// two-operand opcode classes: memory move, sign/zero extension, register
// move, compare, bit test/set/clear, and I/O. LLI/LUI read only operand1
// plus the immediate payload instead.
func (i instruction) twoOperand() (source, dest uint16) {
	return i.operand1(), i.operand2()
}

// threeOperand decodes the (input1, input2, dest) register triple used by
// binary ALU and bitwise opcodes.
func (i instruction) threeOperand() (in1, in2, dest uint16) {
	return i.operand1(), i.operand2(), i.operand3()
}
