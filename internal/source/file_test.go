package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.js")
	if err := os.WriteFile(path, []byte("var a = \"x\";\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := Load(path, UTF8)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Text != "var a = \"x\";\n" {
		t.Fatalf("unexpected text %q", f.Text)
	}

	if err := f.Save("var a = 'x';\n"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "var a = 'x';\n" {
		t.Fatalf("saved %q", data)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode changed to %v", info.Mode().Perm())
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.js"), UTF8)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestLoadInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin.js")
	if err := os.WriteFile(path, []byte{0xc3, 0x28}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path, UTF8)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestLoadDirectory(t *testing.T) {
	if _, err := Load(t.TempDir(), UTF8); err == nil {
		t.Fatal("expected error for directory")
	}
}
