package cartridge

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewAlwaysRevisionZero(t *testing.T) {
	c := New([]byte{1, 2, 3})
	if c.Revision() != SupportedRevision {
		t.Fatalf("Revision() = %d, want %d", c.Revision(), SupportedRevision)
	}
}

func TestDataIsCopiedNotAliased(t *testing.T) {
	src := []byte{1, 2, 3}
	c := New(src)
	src[0] = 0xFF
	if c.Data()[0] == 0xFF {
		t.Fatalf("Cartridge aliased caller's backing array")
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boot.bin")
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if err := os.WriteFile(path, want, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Size() != len(want) {
		t.Fatalf("Size() = %d, want %d", c.Size(), len(want))
	}
	if c.Revision() != SupportedRevision {
		t.Fatalf("Revision() = %d, want %d", c.Revision(), SupportedRevision)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Fatalf("Load() of missing file should error")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load() of empty file should error")
	}
}
