package source

import (
	"errors"
	"testing"
)

func TestLookupEncodingUTF8Aliases(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF-8", "utf8", " UTF8 "} {
		enc, err := LookupEncoding(name)
		if err != nil {
			t.Fatalf("LookupEncoding(%q): %v", name, err)
		}
		if enc != UTF8 {
			t.Fatalf("LookupEncoding(%q) = %v, want UTF8", name, enc)
		}
	}
}

func TestLookupEncodingUnknown(t *testing.T) {
	if _, err := LookupEncoding("no-such-charset"); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestUTF8DecodeRejectsInvalid(t *testing.T) {
	_, err := UTF8.Decode([]byte{'a', 0xff, 'b'})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestUTF8DecodeKeepsBytes(t *testing.T) {
	raw := []byte("\xef\xbb\xbfvar a = 1;\r\n")
	text, err := UTF8.Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if text != string(raw) {
		t.Fatalf("Decode altered content: %q", text)
	}
}

func TestLatin1RoundTrip(t *testing.T) {
	enc, err := LookupEncoding("ISO-8859-1")
	if err != nil {
		t.Fatalf("LookupEncoding: %v", err)
	}
	if enc.Name() != "ISO-8859-1" {
		t.Fatalf("Name() = %q", enc.Name())
	}
	text, err := enc.Decode([]byte{'c', 'a', 'f', 0xe9})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if text != "café" {
		t.Fatalf("Decode = %q, want %q", text, "café")
	}
	raw, err := enc.Encode(text)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(raw) != "caf\xe9" {
		t.Fatalf("Encode = %q", raw)
	}
}
