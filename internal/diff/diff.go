// Package diff renders the unified diff shown by dry-run mode.
package diff

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// ContextLines is the number of unchanged lines shown around each hunk.
const ContextLines = 3

// Labels used for the two sides of the diff.
const (
	FromLabel = "before"
	ToLabel   = "after"
)

// The caller decides whether to colour, so these ignore color.NoColor.
var (
	headerColor = forced(color.Bold)
	hunkColor   = forced(color.FgCyan)
	delColor    = forced(color.FgRed)
	addColor    = forced(color.FgGreen)
)

func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Unified returns a unified diff between before and after labelled
// "before"/"after". Lines keep their terminators, so a missing final newline
// shows up as a line without one. Equal inputs produce an empty string.
func Unified(before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(before),
		B:        splitLines(after),
		FromFile: FromLabel,
		ToFile:   ToLabel,
		Context:  ContextLines,
	})
}

// Write renders a unified diff to w, colouring it when useColor is set.
func Write(w io.Writer, before, after string, useColor bool) error {
	text, err := Unified(before, after)
	if err != nil || text == "" {
		return err
	}
	if !useColor {
		_, err = io.WriteString(w, text)
		return err
	}
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		if _, err := io.WriteString(w, colorize(line)); err != nil {
			return err
		}
	}
	return nil
}

func colorize(line string) string {
	body, eol := strings.CutSuffix(line, "\n")
	var c *color.Color
	switch {
	case strings.HasPrefix(body, "--- "), strings.HasPrefix(body, "+++ "):
		c = headerColor
	case strings.HasPrefix(body, "@@"):
		c = hunkColor
	case strings.HasPrefix(body, "-"):
		c = delColor
	case strings.HasPrefix(body, "+"):
		c = addColor
	default:
		return line
	}
	out := c.Sprint(body)
	if eol {
		out += "\n"
	}
	return out
}

// splitLines splits s after each newline, keeping the terminators.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
