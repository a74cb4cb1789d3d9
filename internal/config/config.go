// Package config loads jsrestyle.toml, the optional per-project settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"jsrestyle/internal/rewrite"
	"jsrestyle/internal/source"
)

// FileName is the name searched for by Find.
const FileName = "jsrestyle.toml"

// MaxIndent bounds the configurable indent unit.
const MaxIndent = 16

// ErrNotFound is returned by Discover when no config file exists.
var ErrNotFound = errors.New("no " + FileName + " found")

// Config holds the effective settings.
type Config struct {
	Path  string      `toml:"-"`
	Style StyleConfig `toml:"style"`
	Files FilesConfig `toml:"files"`
}

// StyleConfig is the [style] table.
type StyleConfig struct {
	Indent int64 `toml:"indent"`
}

// FilesConfig is the [files] table.
type FilesConfig struct {
	Encoding   string   `toml:"encoding"`
	Extensions []string `toml:"extensions"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Style: StyleConfig{Indent: int64(len(rewrite.DefaultIndent))},
		Files: FilesConfig{Encoding: "utf-8", Extensions: []string{".js"}},
	}
}

// Find walks from startDir up to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the nearest config file above startDir.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Config{}, ErrNotFound
	}
	return Load(path)
}

// Load parses path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("files", "encoding") && strings.TrimSpace(cfg.Files.Encoding) == "" {
		return Config{}, fmt.Errorf("%s: [files].encoding is empty", path)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and that the encoding resolves.
func (c Config) Validate() error {
	if c.Style.Indent < 1 || c.Style.Indent > MaxIndent {
		return fmt.Errorf("[style].indent must be between 1 and %d, got %d", MaxIndent, c.Style.Indent)
	}
	if len(c.Files.Extensions) == 0 {
		return errors.New("[files].extensions must not be empty")
	}
	for _, ext := range c.Files.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("[files].extensions: %q must start with '.'", ext)
		}
	}
	if _, err := source.LookupEncoding(c.Files.Encoding); err != nil {
		return fmt.Errorf("[files].encoding: %w", err)
	}
	return nil
}

// IndentWidth returns the indent unit width as an int.
func (c Config) IndentWidth() (int, error) {
	return safecast.Conv[int](c.Style.Indent)
}
