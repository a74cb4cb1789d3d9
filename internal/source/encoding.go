package source

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidUTF8 is returned when UTF-8 content fails validation.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Encoding is a named character encoding used to decode and encode file content.
// The zero value is UTF-8.
type Encoding struct {
	name string
	enc  encoding.Encoding // nil for UTF-8: bytes pass through untouched
}

// UTF8 is the default encoding.
var UTF8 = Encoding{name: "utf-8"}

// LookupEncoding resolves an IANA encoding name such as "utf-8" or "ISO-8859-1".
// An empty name means UTF-8.
func LookupEncoding(name string) (Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return Encoding{}, fmt.Errorf("encoding %q: %w", name, err)
	}
	if enc == nil {
		return Encoding{}, fmt.Errorf("encoding %q: unsupported", name)
	}
	if enc == unicode.UTF8 {
		return UTF8, nil
	}
	return Encoding{name: name, enc: enc}, nil
}

// Name returns the encoding name as given to LookupEncoding.
func (e Encoding) Name() string {
	if e.name == "" {
		return UTF8.name
	}
	return e.name
}

// Decode converts raw file bytes to text. UTF-8 input is validated, not
// normalized: a BOM or CRLF line endings survive the round trip.
func (e Encoding) Decode(data []byte) (string, error) {
	if e.enc == nil {
		if !utf8.Valid(data) {
			return "", ErrInvalidUTF8
		}
		return string(data), nil
	}
	out, err := e.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", e.Name(), err)
	}
	return string(out), nil
}

// Encode converts text back to raw bytes in this encoding.
func (e Encoding) Encode(text string) ([]byte, error) {
	if e.enc == nil {
		return []byte(text), nil
	}
	out, err := e.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.Name(), err)
	}
	return out, nil
}
