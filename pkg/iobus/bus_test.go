package iobus

import "testing"

func TestInstallAndReadWrite8(t *testing.T) {
	b := New()
	var stored uint8
	b.Install(0x10, &Handler{
		Read8:  func(uint16) uint8 { return stored },
		Write8: func(_ uint16, v uint8) { stored = v },
	})

	b.Write8(0x10, 42)
	if got := b.Read8(0x10); got != 42 {
		t.Fatalf("Read8() = %d, want 42", got)
	}
}

func TestUnregisteredPortPanics(t *testing.T) {
	b := New()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic reading an unregistered port")
		}
	}()
	b.Read8(0x99)
}

func TestInstallRange(t *testing.T) {
	b := New()
	var last uint16
	h := &Handler{Write8: func(port uint16, _ uint8) { last = port }}
	b.InstallRange(0x20, 0x22, h)

	b.Write8(0x20, 1)
	b.Write8(0x22, 1)
	if last != 0x22 {
		t.Fatalf("InstallRange did not cover port 0x22")
	}
}

func TestConsoleDeviceEchoesBytes(t *testing.T) {
	var out []byte
	writer := writerFunc(func(p []byte) (int, error) {
		out = append(out, p...)
		return len(p), nil
	})
	dev := NewConsoleDevice(writer, readerFunc(func([]byte) (int, error) { return 0, nil }))
	h := dev.Handler()
	h.Write8(0, 'A')

	if len(out) != 1 || out[0] != 'A' {
		t.Fatalf("console device wrote %v, want [A]", out)
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

type readerFunc func([]byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }
