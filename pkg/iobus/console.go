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

package iobus

import (
	"bufio"
	"io"
)

// ConsoleDevice is a single-byte-wide UART-style port: writes go to an
// output writer (typically stdout), reads return the next unread byte from
// an input reader, waiting on the reader if needed, or 0 once the reader
// reports an error or end of input. It
// exists only so INB/OUTB have something real to exercise end-to-end; the
// spec leaves concrete device implementations as an external concern.
type ConsoleDevice struct {
	out *bufio.Writer
	in  *bufio.Reader
}

// NewConsoleDevice wraps w/r as the device's output/input streams.
func NewConsoleDevice(w io.Writer, r io.Reader) *ConsoleDevice {
	return &ConsoleDevice{out: bufio.NewWriter(w), in: bufio.NewReader(r)}
}

// Handler returns an iobus.Handler exposing this device at every width;
// only the low 8 bits of wider reads/writes carry meaning.
func (d *ConsoleDevice) Handler() *Handler {
	return &Handler{
		Read8:  func(uint16) uint8 { return d.readByte() },
		Read16: func(uint16) uint16 { return uint16(d.readByte()) },
		Read32: func(uint16) uint32 { return uint32(d.readByte()) },
		Read64: func(uint16) uint64 { return uint64(d.readByte()) },

		Write8:  func(_ uint16, v uint8) { d.writeByte(v) },
		Write16: func(_ uint16, v uint16) { d.writeByte(uint8(v)) },
		Write32: func(_ uint16, v uint32) { d.writeByte(uint8(v)) },
		Write64: func(_ uint16, v uint64) { d.writeByte(uint8(v)) },
	}
}

func (d *ConsoleDevice) readByte() uint8 {
	b, err := d.in.ReadByte()
	if err != nil {
		return 0
	}
	return b
}

func (d *ConsoleDevice) writeByte(b uint8) {
	_ = d.out.WriteByte(b)
	_ = d.out.Flush()
}
