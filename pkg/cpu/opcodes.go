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

// Opcode values, unchanged from original_source's match table.
const (
	opNop uint16 = 0x0000

	opSmemb uint16 = 0x0001
	opSmemw uint16 = 0x0002
	opSmemd uint16 = 0x0003
	opSmemq uint16 = 0x0004
	opLmemb uint16 = 0x0005
	opLmemw uint16 = 0x0006
	opLmemd uint16 = 0x0007
	opLmemq uint16 = 0x0008

	opLli uint16 = 0x0009
	opLui uint16 = 0x000A

	opCbw  uint16 = 0x000B
	opCbws uint16 = 0x000C
	opCwd  uint16 = 0x000D
	opCwds uint16 = 0x000E
	opCdq  uint16 = 0x000F
	opCdqs uint16 = 0x0010

	opMovb uint16 = 0x0011
	opMovw uint16 = 0x0012
	opMovd uint16 = 0x0013
	opMovq uint16 = 0x0014

	opAddb  uint16 = 0x0100
	opAddw  uint16 = 0x0101
	opAddd  uint16 = 0x0102
	opAddq  uint16 = 0x0103
	opAddbs uint16 = 0x0104
	opAddws uint16 = 0x0105
	opAddds uint16 = 0x0106
	opAddqs uint16 = 0x0107

	opSubb  uint16 = 0x0108
	opSubw  uint16 = 0x0109
	opSubd  uint16 = 0x010A
	opSubq  uint16 = 0x010B
	opSubbs uint16 = 0x010C
	opSubws uint16 = 0x010D
	opSubds uint16 = 0x010E
	opSubqs uint16 = 0x010F

	opMulb  uint16 = 0x0110
	opMulw  uint16 = 0x0111
	opMuld  uint16 = 0x0112
	opMulq  uint16 = 0x0113
	opMulbs uint16 = 0x0114
	opMulws uint16 = 0x0115
	opMulds uint16 = 0x0116
	opMulqs uint16 = 0x0117

	opDivb  uint16 = 0x0118
	opDivw  uint16 = 0x0119
	opDivd  uint16 = 0x011A
	opDivq  uint16 = 0x011B
	opDivbs uint16 = 0x011C
	opDivws uint16 = 0x011D
	opDivds uint16 = 0x011E
	opDivqs uint16 = 0x011F

	opIncb  uint16 = 0x0120
	opIncw  uint16 = 0x0121
	opIncd  uint16 = 0x0122
	opIncq  uint16 = 0x0123
	opIncbs uint16 = 0x0124
	opIncws uint16 = 0x0125
	opIncds uint16 = 0x0126
	opIncqs uint16 = 0x0127

	opDecb  uint16 = 0x0128
	opDecw  uint16 = 0x0129
	opDecd  uint16 = 0x012A
	opDecq  uint16 = 0x012B
	opDecbs uint16 = 0x012C
	opDecws uint16 = 0x012D
	opDecds uint16 = 0x012E
	opDecqs uint16 = 0x012F

	opNegb uint16 = 0x0130
	opNegw uint16 = 0x0131
	opNegd uint16 = 0x0132
	opNegq uint16 = 0x0133

	opCmpb  uint16 = 0x0134
	opCmpw  uint16 = 0x0135
	opCmpd  uint16 = 0x0136
	opCmpq  uint16 = 0x0137
	opCmpbs uint16 = 0x0138
	opCmpws uint16 = 0x0139
	opCmpds uint16 = 0x013A
	opCmpqs uint16 = 0x013B

	opAndb uint16 = 0x013C
	opAndw uint16 = 0x013D
	opAndd uint16 = 0x013E
	opAndq uint16 = 0x013F

	opOrb uint16 = 0x0140
	opOrw uint16 = 0x0141
	opOrd uint16 = 0x0142
	opOrq uint16 = 0x0143

	opXorb uint16 = 0x0144
	opXorw uint16 = 0x0145
	opXord uint16 = 0x0146
	opXorq uint16 = 0x0147

	opNotb uint16 = 0x0148
	opNotw uint16 = 0x0149
	opNotd uint16 = 0x014A
	opNotq uint16 = 0x014B

	opNorb uint16 = 0x014C
	opNorw uint16 = 0x014D
	opNord uint16 = 0x014E
	opNorq uint16 = 0x014F

	opNandb uint16 = 0x0150
	opNandw uint16 = 0x0151
	opNandd uint16 = 0x0152
	opNandq uint16 = 0x0153

	opShlb uint16 = 0x0154
	opShlw uint16 = 0x0155
	opShld uint16 = 0x0156
	opShlq uint16 = 0x0157

	opShrb uint16 = 0x0158
	opShrw uint16 = 0x0159
	opShrd uint16 = 0x015A
	opShrq uint16 = 0x015B

	opRolb uint16 = 0x015C
	opRolw uint16 = 0x015D
	opRold uint16 = 0x015E
	opRolq uint16 = 0x015F

	opRorb uint16 = 0x0160
	opRorw uint16 = 0x0161
	opRord uint16 = 0x0162
	opRorq uint16 = 0x0163

	opBitt uint16 = 0x0200
	opBits uint16 = 0x0201
	opBitc uint16 = 0x0202

	opJmp    uint16 = 0x0300
	opJmpeq  uint16 = 0x0301
	opJmpz   uint16 = 0x0302
	opJmpneq uint16 = 0x0303
	opJmpnz  uint16 = 0x0304
	opJmpgt  uint16 = 0x0305
	opJmpge  uint16 = 0x0306
	opJmplt  uint16 = 0x0307
	opJmple  uint16 = 0x0308
	opJmpo   uint16 = 0x0309
	opJmpn   uint16 = 0x030A
	opJmpp   uint16 = 0x030B
	opInt    uint16 = 0x030C
	opWfi    uint16 = 0x030D
	opRst    uint16 = 0x030E

	opInb  uint16 = 0x0400
	opInw  uint16 = 0x0401
	opInd  uint16 = 0x0402
	opInq  uint16 = 0x0403
	opOutb uint16 = 0x0404
	opOutw uint16 = 0x0405
	opOutd uint16 = 0x0406
	opOutq uint16 = 0x0407

	opCpuid uint16 = 0x0FFF
)
