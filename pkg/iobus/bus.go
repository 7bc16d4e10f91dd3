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

// Package iobus implements the port-indexed I/O bus the Monad CPU's
// IN{B,W,D,Q}/OUT{B,W,D,Q} opcodes dispatch through.
package iobus

import "sync"

// NumPorts is the size of the port table; port numbers are uint16 so this
// covers the full address space.
const NumPorts = 1 << 16

// Handler is the set of eight callable slots a device installs at a port.
// A single handler may be installed at more than one port index; the port
// number is passed to every call so one handler can serve a span.
type Handler struct {
	Read8  func(port uint16) uint8
	Read16 func(port uint16) uint16
	Read32 func(port uint16) uint32
	Read64 func(port uint16) uint64

	Write8  func(port uint16, value uint8)
	Write16 func(port uint16, value uint16)
	Write32 func(port uint16, value uint32)
	Write64 func(port uint16, value uint64)
}

// Bus is an ordered table of port handlers. Indexing a port with no
// installed handler is a fatal bus error, matching the original's
// unchecked slice indexing into io_handlers.
type Bus struct {
	mu       sync.Mutex
	handlers [NumPorts]*Handler
}

// New returns an empty I/O bus; ports have no handler until Install is called.
func New() *Bus {
	return &Bus{}
}

// Install attaches a handler to a single port index.
func (b *Bus) Install(port uint16, h *Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[port] = h
}

// InstallRange attaches the same handler to every port in [start, end].
func (b *Bus) InstallRange(start, end uint16, h *Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for p := uint32(start); p <= uint32(end); p++ {
		b.handlers[uint16(p)] = h
	}
}

func (b *Bus) handler(port uint16) *Handler {
	h := b.handlers[port]
	if h == nil {
		panic(&BusFault{Port: port})
	}
	return h
}

// BusFault reports an access to a port with no installed handler.
type BusFault struct {
	Port uint16
}

func (f *BusFault) Error() string {
	return "io bus: no handler installed at port"
}

func (b *Bus) Read8(port uint16) uint8 {
	b.mu.Lock()
	h := b.handler(port)
	b.mu.Unlock()
	return h.Read8(port)
}

func (b *Bus) Read16(port uint16) uint16 {
	b.mu.Lock()
	h := b.handler(port)
	b.mu.Unlock()
	return h.Read16(port)
}

func (b *Bus) Read32(port uint16) uint32 {
	b.mu.Lock()
	h := b.handler(port)
	b.mu.Unlock()
	return h.Read32(port)
}

func (b *Bus) Read64(port uint16) uint64 {
	b.mu.Lock()
	h := b.handler(port)
	b.mu.Unlock()
	return h.Read64(port)
}

func (b *Bus) Write8(port uint16, value uint8) {
	b.mu.Lock()
	h := b.handler(port)
	b.mu.Unlock()
	h.Write8(port, value)
}

func (b *Bus) Write16(port uint16, value uint16) {
	b.mu.Lock()
	h := b.handler(port)
	b.mu.Unlock()
	h.Write16(port, value)
}

func (b *Bus) Write32(port uint16, value uint32) {
	b.mu.Lock()
	h := b.handler(port)
	b.mu.Unlock()
	h.Write32(port, value)
}

func (b *Bus) Write64(port uint16, value uint64) {
	b.mu.Lock()
	h := b.handler(port)
	b.mu.Unlock()
	h.Write64(port, value)
}
