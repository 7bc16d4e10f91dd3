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

// Package memio implements the flat, byte-addressable RAM that sits behind
// the Monad CPU's 48-bit address space.
package memio

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultSize matches the original MemoryBus48 constant: 4KB of RAM.
const DefaultSize = 1024 * 4

// Bus is a flat byte-addressable memory region guarded by a mutex so the
// CPU's fetch/execute path and any future second bus owner never race on
// the backing array.
type Bus struct {
	mu  sync.Mutex
	ram []byte
	log *zap.Logger
}

// New creates a Bus with the given size in bytes, zero-initialized.
func New(size int, log *zap.Logger) *Bus {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bus{
		ram: make([]byte, size),
		log: log,
	}
}

// Size returns the RAM capacity in bytes.
func (b *Bus) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.ram)
}

// Read returns the length bytes starting at address. A read that would run
// past the end of RAM is logged and returns an empty slice rather than
// faulting the caller.
func (b *Bus) Read(address uint64, length int) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	end := address + uint64(length)
	if length < 0 || end > uint64(len(b.ram)) {
		b.log.Error("memory bus: read beyond RAM bounds",
			zap.Uint64("address", address), zap.Int("length", length))
		return nil
	}

	out := make([]byte, length)
	copy(out, b.ram[address:end])
	return out
}

// Write copies value into RAM starting at baseAddress. A write that would
// run past the end of RAM is logged and dropped; RAM is left untouched.
func (b *Bus) Write(baseAddress uint64, value []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	end := baseAddress + uint64(len(value))
	if end > uint64(len(b.ram)) {
		b.log.Error("memory bus: write beyond RAM bounds",
			zap.Uint64("address", baseAddress), zap.Int("length", len(value)))
		return
	}

	copy(b.ram[baseAddress:end], value)
}
