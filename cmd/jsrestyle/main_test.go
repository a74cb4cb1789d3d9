package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes a fresh root command with an explicit config file so the
// result does not depend on files above the working directory.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "jsrestyle.toml")
	if err := os.WriteFile(cfgPath, []byte("[style]\nindent = 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeJS(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func readJS(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestRestyleUpdatesFile(t *testing.T) {
	path := writeJS(t, t.TempDir(), "a.js", "x = \"hello\";\n")

	out, err := runCLI(t, path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "jsrestyle '" + path + "' (updated)\n"; out != want {
		t.Fatalf("output %q, want %q", out, want)
	}
	if got := readJS(t, path); got != "x = 'hello';\n" {
		t.Fatalf("file = %q", got)
	}
}

func TestRestyleNoChange(t *testing.T) {
	path := writeJS(t, t.TempDir(), "a.js", "x = 'hello';\n")

	out, err := runCLI(t, path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "jsrestyle '" + path + "' (no change)\n"; out != want {
		t.Fatalf("output %q, want %q", out, want)
	}

	out, err = runCLI(t, "--quiet", path)
	if err != nil || out != "" {
		t.Fatalf("quiet run: out=%q err=%v", out, err)
	}
}

func TestRestyleDryRunShowsDiff(t *testing.T) {
	path := writeJS(t, t.TempDir(), "a.js", "x = \"hello\";\n")

	for _, flag := range []string{"-n", "--dry-run"} {
		out, err := runCLI(t, flag, path)
		if err != nil {
			t.Fatalf("run %s: %v", flag, err)
		}
		want := "jsrestyle '" + path + "' (would be updated, dry-run)\n" +
			"--- before\n+++ after\n@@ -1 +1 @@\n-x = \"hello\";\n+x = 'hello';\n\n"
		if out != want {
			t.Fatalf("%s output:\n%q\nwant:\n%q", flag, out, want)
		}
		if got := readJS(t, path); got != "x = \"hello\";\n" {
			t.Fatalf("dry-run modified file: %q", got)
		}
	}
}

func TestRestyleCheck(t *testing.T) {
	dir := t.TempDir()
	dirty := writeJS(t, dir, "dirty.js", "catch(e) {}\n")
	clean := writeJS(t, dir, "clean.js", "catch (e) {}\n")

	if _, err := runCLI(t, "--check", clean); err != nil {
		t.Fatalf("check on clean file: %v", err)
	}

	out, err := runCLI(t, "--check", dirty, clean)
	if err == nil || !strings.Contains(err.Error(), "1 file(s)") {
		t.Fatalf("expected check failure, got %v", err)
	}
	if !strings.Contains(out, "'"+dirty+"' (would be updated)\n") {
		t.Fatalf("missing status line in %q", out)
	}
	if strings.Contains(out, "--- before") {
		t.Fatalf("check printed a diff: %q", out)
	}
	if got := readJS(t, dirty); got != "catch(e) {}\n" {
		t.Fatalf("check modified file: %q", got)
	}
}

func TestRestyleMissingFileAborts(t *testing.T) {
	dir := t.TempDir()
	first := writeJS(t, dir, "first.js", "typeof(x);\n")
	last := writeJS(t, dir, "last.js", "typeof(x);\n")

	out, err := runCLI(t, first, filepath.Join(dir, "missing.js"), last)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	if out != "jsrestyle '"+first+"' (updated)\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if got := readJS(t, last); got != "typeof(x);\n" {
		t.Fatalf("file after failure was processed: %q", got)
	}
}

func TestRestyleIndentFlag(t *testing.T) {
	path := writeJS(t, t.TempDir(), "a.js", "  if (x) throw e;\n")

	if _, err := runCLI(t, "--indent", "4", path); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := readJS(t, path); got != "  if (x)\n      throw e;\n" {
		t.Fatalf("file = %q", got)
	}
}

func TestRestyleFlagErrors(t *testing.T) {
	path := writeJS(t, t.TempDir(), "a.js", "x;\n")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"exclusive modes", []string{"-n", "--check", path}, "mutually exclusive"},
		{"bad color", []string{"--color", "rainbow", path}, "--color"},
		{"bad indent", []string{"--indent", "0", path}, "[style].indent"},
		{"bad encoding", []string{"--encoding", "klingon", path}, "[files].encoding"},
		{"bad trace level", []string{"--trace-level", "loud", path}, "invalid trace level"},
		{"no args", nil, "requires at least 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestRestyleTraceToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeJS(t, dir, "a.js", "x = \"y\";\n")
	traceFile := filepath.Join(dir, "trace.ndjson")

	if _, err := runCLI(t, "-n", "--trace", traceFile, "--trace-level", "detail", path); err != nil {
		t.Fatalf("run: %v", err)
	}
	data := readJS(t, traceFile)
	if !strings.Contains(data, `"name":"restyle"`) || !strings.Contains(data, `"status":"would-update"`) {
		t.Fatalf("unexpected trace output:\n%s", data)
	}
}
