package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"jsrestyle/internal/observ"
	"jsrestyle/internal/rewrite"
	"jsrestyle/internal/source"
	"jsrestyle/internal/trace"
)

// ErrNoFiles is returned when the arguments name no file to process.
var ErrNoFiles = errors.New("restyle: no source files found")

// Status is the outcome for one file.
type Status uint8

const (
	StatusUnchanged   Status = iota // output equals input
	StatusUpdated                   // file rewritten in place
	StatusWouldUpdate               // changes found, file left alone (dry-run)
)

// String returns the string representation of Status.
func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusUpdated:
		return "updated"
	case StatusWouldUpdate:
		return "would-update"
	default:
		return "unknown"
	}
}

// Options configures Restyle.
type Options struct {
	// DryRun computes changes without writing any file.
	DryRun bool
	// Encoding decodes and encodes file content. The zero value is UTF-8.
	Encoding source.Encoding
	// Pipeline defaults to rewrite.Default().
	Pipeline *rewrite.Pipeline
	// Extensions selects files when a directory is given. Defaults to ".js".
	Extensions []string
	// Timer, when set, records load/rewrite/write phases.
	Timer *observ.Timer
	// Report is called with each result as soon as the file is done.
	// A non-nil error stops the run.
	Report func(Result) error
}

// Result captures what happened to a single file.
type Result struct {
	Path   string
	Status Status
	Before string
	After  string
}

// Changed reports whether the pipeline altered the text.
func (r Result) Changed() bool { return r.Status != StatusUnchanged }

// Restyle runs the rewrite pipeline over every file named by paths, one file
// at a time and in argument order. Directories are walked recursively for
// files with one of opts.Extensions. The first error stops the run; results
// for the files finished before it are returned alongside the error.
func Restyle(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Pipeline == nil {
		opts.Pipeline = rewrite.Default()
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".js"}
	}

	tracer := trace.FromContext(ctx)
	runSpan := trace.Begin(tracer, trace.ScopeRun, "restyle", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, runSpan)

	var results []Result
	seen := make(map[string]struct{})
	process := func(path string) error {
		if _, ok := seen[path]; ok {
			return nil
		}
		seen[path] = struct{}{}
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := restyleFile(ctx, path, opts)
		if err != nil {
			return err
		}
		results = append(results, res)
		if opts.Report != nil {
			return opts.Report(res)
		}
		return nil
	}

	for _, p := range paths {
		if err := expandPath(ctx, p, opts.Extensions, process); err != nil {
			trace.Error(tracer, trace.ScopeFile, p, err, runSpan.ID())
			runSpan.WithExtra("files", fmt.Sprint(len(results))).End("failed")
			return results, err
		}
	}
	runSpan.WithExtra("files", fmt.Sprint(len(results))).End("")

	if len(results) == 0 {
		return nil, ErrNoFiles
	}
	return results, nil
}

func restyleFile(ctx context.Context, path string, opts Options) (Result, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, path, trace.CurrentSpan(ctx))

	phase := opts.Timer.Begin("load")
	file, err := source.Load(path, opts.Encoding)
	opts.Timer.End(phase)
	if err != nil {
		span.End("load failed")
		return Result{Path: path}, err
	}

	phase = opts.Timer.Begin("rewrite")
	after := opts.Pipeline.ApplyEach(file.Text, func(step string, changed bool) {
		if changed {
			trace.Point(tracer, trace.ScopeStep, step, "changed", span.ID())
		}
	})
	opts.Timer.End(phase)

	res := Result{Path: path, Before: file.Text, After: after}
	switch {
	case after == file.Text:
		res.Status = StatusUnchanged
	case opts.DryRun:
		res.Status = StatusWouldUpdate
	default:
		phase = opts.Timer.Begin("write")
		err = file.Save(after)
		opts.Timer.End(phase)
		if err != nil {
			span.End("write failed")
			return res, err
		}
		res.Status = StatusUpdated
	}

	span.WithExtra("status", res.Status.String()).End("")
	return res, nil
}

// expandPath calls fn for path itself, or for every matching file below it
// when path is a directory. Explicit file arguments are never filtered.
func expandPath(ctx context.Context, path string, exts []string, fn func(string) error) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fn(path)
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != path && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(exts, filepath.Ext(p)) {
			return fn(p)
		}
		return nil
	})
}

// skipDir reports dot-directories and node_modules.
func skipDir(name string) bool {
	if name == "node_modules" {
		return true
	}
	return len(name) > 1 && name[0] == '.'
}
