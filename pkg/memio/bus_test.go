package memio

import (
	"bytes"
	"testing"
)

func TestReadWriteRoundTrip(t *testing.T) {
	b := New(16, nil)
	b.Write(4, []byte{1, 2, 3, 4})

	got := b.Read(4, 4)
	want := []byte{1, 2, 3, 4}
	if !bytes.Equal(got, want) {
		t.Fatalf("Read() = %v, want %v", got, want)
	}
}

func TestReadOutOfBoundsReturnsNil(t *testing.T) {
	b := New(8, nil)
	if got := b.Read(4, 8); got != nil {
		t.Fatalf("Read() past bounds = %v, want nil", got)
	}
}

func TestWriteOutOfBoundsIsNoop(t *testing.T) {
	b := New(8, nil)
	before := b.Read(0, 8)
	b.Write(4, []byte{1, 2, 3, 4, 5, 6})
	after := b.Read(0, 8)
	if !bytes.Equal(before, after) {
		t.Fatalf("Write() past bounds mutated RAM: before=%v after=%v", before, after)
	}
}

func TestBoundaryReadAtSizeMinusEight(t *testing.T) {
	b := New(16, nil)
	b.Write(8, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	if got := b.Read(8, 8); got == nil {
		t.Fatalf("Read() at exactly size-8 should succeed")
	}
}

func TestBoundaryReadAtSizeMinusSeven(t *testing.T) {
	b := New(16, nil)
	if got := b.Read(9, 8); got != nil {
		t.Fatalf("Read() starting at size-7 with length 8 should fail, got %v", got)
	}
}

func TestSize(t *testing.T) {
	b := New(DefaultSize, nil)
	if got := b.Size(); got != DefaultSize {
		t.Fatalf("Size() = %d, want %d", got, DefaultSize)
	}
}
