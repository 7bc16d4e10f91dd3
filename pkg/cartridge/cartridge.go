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

// Package cartridge implements the boot cartridge the motherboard copies
// into RAM at startup: a raw byte image plus a one-byte revision.
package cartridge

import (
	"errors"
	"io"
	"os"
)

// SupportedRevision is the only cartridge revision the motherboard accepts.
const SupportedRevision = 0

// Cartridge is an immutable boot image: raw bytes plus a revision byte.
// Revision is always SupportedRevision for cartridges built with New; Load
// preserves that same invariant by construction.
type Cartridge struct {
	data     []byte
	revision uint8
}

// New wraps data as a revision-0 boot cartridge. The slice is copied so the
// cartridge stays immutable even if the caller mutates its original buffer.
func New(data []byte) *Cartridge {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Cartridge{data: owned, revision: SupportedRevision}
}

// Load reads a raw boot image off disk. original_source only ever embeds
// the cartridge at compile time (include_bytes!); a real CLI needs a
// runtime loading path instead.
func Load(path string) (cart *Cartridge, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		return
	}
	if len(data) == 0 {
		err = errors.New("cartridge: boot image is empty")
		return
	}
	cart = New(data)
	return
}

// LoadFrom reads a raw boot image from an already-open reader.
func LoadFrom(r io.Reader) (cart *Cartridge, err error) {
	var data []byte
	data, err = io.ReadAll(r)
	if err != nil {
		return
	}
	if len(data) == 0 {
		err = errors.New("cartridge: boot image is empty")
		return
	}
	cart = New(data)
	return
}

// Revision reports the cartridge's revision byte.
func (c *Cartridge) Revision() uint8 {
	return c.revision
}

// Data returns the raw boot image. Callers must not mutate the returned
// slice; it aliases the cartridge's internal storage.
func (c *Cartridge) Data() []byte {
	return c.data
}

// Size returns the length of the boot image in bytes.
func (c *Cartridge) Size() int {
	return len(c.data)
}
