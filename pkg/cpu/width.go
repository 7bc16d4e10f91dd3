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

// widthMask returns a mask covering the low width*8 bits of a uint64.
// width must be 1, 2, 4, or 8.
func widthMask(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}
	return (uint64(1) << (uint(width) * 8)) - 1
}

// truncate keeps only the low width bytes of value.
func truncate(value uint64, width int) uint64 {
	return value & widthMask(width)
}

// mergeWidth preserves the upper bits of original above width bytes and
// replaces the low width bytes with value, the pattern every sub-64-bit
// opcode uses to write its destination register without disturbing the
// bits it doesn't own.
func mergeWidth(original, value uint64, width int) uint64 {
	if width >= 8 {
		return value
	}
	mask := widthMask(width)
	return (original &^ mask) | (value & mask)
}

// signExtend sign-extends the low width bytes of value to a full 64-bit
// two's-complement value.
func signExtend(value uint64, width int) uint64 {
	if width >= 8 {
		return value
	}
	bits := uint(width) * 8
	signBit := uint64(1) << (bits - 1)
	v := value & widthMask(width)
	if v&signBit != 0 {
		return v | (^uint64(0) << bits)
	}
	return v
}

// toLEBytes returns the low width bytes of value, little-endian.
func toLEBytes(value uint64, width int) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	return buf[:width]
}

// fromLEBytes widens width little-endian bytes (1, 2, 4, or 8) to a
// uint64. A nil or short slice (the memory bus's signal for an
// out-of-range read, already logged by the bus itself) widens to zero.
func fromLEBytes(bytes []byte, width int) uint64 {
	if len(bytes) < width {
		return 0
	}
	var buf [8]byte
	copy(buf[:width], bytes[:width])
	return binary.LittleEndian.Uint64(buf[:])
}
