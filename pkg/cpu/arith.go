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

import "math/bits"

func signedRange(width int) (min, max int64) {
	b := uint(width) * 8
	min = -(int64(1) << (b - 1))
	max = (int64(1) << (b - 1)) - 1
	return
}

// overflowingAdd mirrors Rust's overflowing_add at the given width and
// signedness: the result wraps, and overflow reports whether the true sum
// didn't fit.
func overflowingAdd(v1, v2 uint64, width int, signed bool) (result uint64, overflow bool) {
	if width >= 8 {
		if signed {
			s1, s2 := int64(v1), int64(v2)
			sum := s1 + s2
			overflow = (s1 > 0 && s2 > 0 && sum < 0) || (s1 < 0 && s2 < 0 && sum >= 0)
			return uint64(sum), overflow
		}
		sum := v1 + v2
		return sum, sum < v1
	}
	if signed {
		s1, s2 := int64(signExtend(v1, width)), int64(signExtend(v2, width))
		min, max := signedRange(width)
		sum := s1 + s2
		overflow = sum < min || sum > max
		return uint64(sum) & widthMask(width), overflow
	}
	u1, u2 := truncate(v1, width), truncate(v2, width)
	sum := u1 + u2
	mask := widthMask(width)
	return sum & mask, sum > mask
}

func overflowingSub(v1, v2 uint64, width int, signed bool) (result uint64, overflow bool) {
	if width >= 8 {
		if signed {
			s1, s2 := int64(v1), int64(v2)
			diff := s1 - s2
			overflow = ((s1 ^ s2) < 0) && ((s1 ^ diff) < 0)
			return uint64(diff), overflow
		}
		return v1 - v2, v1 < v2
	}
	if signed {
		s1, s2 := int64(signExtend(v1, width)), int64(signExtend(v2, width))
		min, max := signedRange(width)
		diff := s1 - s2
		overflow = diff < min || diff > max
		return uint64(diff) & widthMask(width), overflow
	}
	u1, u2 := truncate(v1, width), truncate(v2, width)
	mask := widthMask(width)
	diff := (u1 - u2) & mask
	return diff, u1 < u2
}

func overflowingMul(v1, v2 uint64, width int, signed bool) (result uint64, overflow bool) {
	if width >= 8 {
		if signed {
			s1, s2 := int64(v1), int64(v2)
			product := s1 * s2
			overflow = s1 != 0 && product/s1 != s2
			return uint64(product), overflow
		}
		hi, lo := bits.Mul64(v1, v2)
		return lo, hi != 0
	}
	if signed {
		s1, s2 := int64(signExtend(v1, width)), int64(signExtend(v2, width))
		min, max := signedRange(width)
		product := s1 * s2
		overflow = product < min || product > max
		return uint64(product) & widthMask(width), overflow
	}
	u1, u2 := truncate(v1, width), truncate(v2, width)
	mask := widthMask(width)
	product := u1 * u2
	return product & mask, product > mask
}

// overflowingDiv panics on division by zero, the same as Rust's
// overflowing_div and Go's native integer division both do; this is
// allowed to propagate rather than being special-cased.
func overflowingDiv(v1, v2 uint64, width int, signed bool) (result uint64, overflow bool) {
	if width >= 8 {
		if signed {
			s1, s2 := int64(v1), int64(v2)
			min, _ := signedRange(8)
			overflow = s1 == min && s2 == -1
			return uint64(s1 / s2), overflow
		}
		return v1 / v2, false
	}
	if signed {
		s1, s2 := int64(signExtend(v1, width)), int64(signExtend(v2, width))
		min, _ := signedRange(width)
		quotient := s1 / s2
		overflow = s1 == min && s2 == -1
		return uint64(quotient) & widthMask(width), overflow
	}
	u1, u2 := truncate(v1, width), truncate(v2, width)
	return u1 / u2, false
}

// isNegative reports whether value's low `width` bytes, read as a signed
// two's-complement integer, are negative.
func isNegative(value uint64, width int) bool {
	return int64(signExtend(value, width)) < 0
}
