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

// Register codes, exactly as decoded from the 16-bit operand fields of an
// instruction word. r0-r15 are the sixteen general-purpose registers;
// rflags/rip/rsp/rpt/rit/cr0/cr1 are the named specials; imm0-imm7 are the
// eight immediate-load scratch registers LLI/LUI are allowed to target.
const (
	RegR0 uint16 = 0x0000 + iota
	RegR1
	RegR2
	RegR3
	RegR4
	RegR5
	RegR6
	RegR7
	RegR8
	RegR9
	RegR10
	RegR11
	RegR12
	RegR13
	RegR14
	RegR15
)

const (
	RegFlags uint16 = 0x0010
	RegRIP   uint16 = 0x0011
	RegRSP   uint16 = 0x0012
	RegRPT   uint16 = 0x0013
	RegRIT   uint16 = 0x0014
	RegCR0   uint16 = 0x0015
	RegCR1   uint16 = 0x0016
)

const (
	RegImm0 uint16 = 0xF000 + iota
	RegImm1
	RegImm2
	RegImm3
	RegImm4
	RegImm5
	RegImm6
	RegImm7
)

// Registers holds every architectural register of the Monad CPU.
type Registers struct {
	R      [16]uint64
	RFlags uint64
	RIP    uint64
	RSP    uint64
	RPT    uint64
	RIT    uint64
	CR0    uint64
	CR1    uint64
	Imm    [8]uint64
}

// Reset zeroes every register, matching RST's documented behavior and
// MonadCPU::new's initial state.
func (r *Registers) Reset() {
	*r = Registers{}
}

// Get returns the 64-bit value of the register named by code, faulting on
// any code that does not name a real register — the same decode-time
// failure original_source's get_register_value_from_code panics on.
func (r *Registers) Get(code uint16) (uint64, error) {
	switch {
	case code <= RegR15:
		return r.R[code], nil
	case code == RegFlags:
		return r.RFlags, nil
	case code == RegRIP:
		return r.RIP, nil
	case code == RegRSP:
		return r.RSP, nil
	case code == RegRPT:
		return r.RPT, nil
	case code == RegRIT:
		return r.RIT, nil
	case code == RegCR0:
		return r.CR0, nil
	case code == RegCR1:
		return r.CR1, nil
	case code >= RegImm0 && code <= RegImm7:
		return r.Imm[code-RegImm0], nil
	default:
		return 0, &Fault{Kind: FaultInvalidRegister, Message: fmt.Sprintf("invalid register code: %#x", code)}
	}
}

// Set writes value into the register named by code, faulting under the
// same conditions as Get.
func (r *Registers) Set(code uint16, value uint64) error {
	switch {
	case code <= RegR15:
		r.R[code] = value
	case code == RegFlags:
		r.RFlags = value
	case code == RegRIP:
		r.RIP = value
	case code == RegRSP:
		r.RSP = value
	case code == RegRPT:
		r.RPT = value
	case code == RegRIT:
		r.RIT = value
	case code == RegCR0:
		r.CR0 = value
	case code == RegCR1:
		r.CR1 = value
	case code >= RegImm0 && code <= RegImm7:
		r.Imm[code-RegImm0] = value
	default:
		return &Fault{Kind: FaultInvalidRegister, Message: fmt.Sprintf("invalid register code: %#x", code)}
	}
	return nil
}

// IsImmediateRegister reports whether code names one of imm0-imm7, the
// only targets LLI/LUI accept.
func IsImmediateRegister(code uint16) bool {
	return code >= RegImm0 && code <= RegImm7
}
