package source

import (
	"fmt"
	"io/fs"
	"os"
)

// File is one file's decoded content together with what is needed to write it back.
type File struct {
	Path     string
	Text     string
	Encoding Encoding
	Mode     fs.FileMode
}

// Load reads path and decodes it with enc.
func Load(path string, enc Encoding) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", path)
	}
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := enc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{
		Path:     path,
		Text:     text,
		Encoding: enc,
		Mode:     info.Mode(),
	}, nil
}

// Save encodes text and overwrites the file, keeping its permission bits.
func (f *File) Save(text string) error {
	data, err := f.Encoding.Encode(text)
	if err != nil {
		return fmt.Errorf("%s: %w", f.Path, err)
	}
	mode := f.Mode.Perm()
	if mode == 0 {
		mode = 0o644
	}
	if err := os.WriteFile(f.Path, data, mode); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	f.Text = text
	return nil
}
