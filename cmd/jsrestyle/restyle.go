package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jsrestyle/internal/diff"
	"jsrestyle/internal/driver"
	"jsrestyle/internal/observ"
	"jsrestyle/internal/rewrite"
	"jsrestyle/internal/source"
)

type outputOptions struct {
	dryRun bool
	check  bool
	quiet  bool
	color  bool
}

func runRestyle(cmd *cobra.Command, args []string) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	if dryRun && check {
		return fmt.Errorf("--dry-run and --check are mutually exclusive")
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	useColor, err := resolveColor(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	indent, err := cfg.IndentWidth()
	if err != nil {
		return err
	}
	enc, err := source.LookupEncoding(cfg.Files.Encoding)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	out := cmd.OutOrStdout()
	outOpts := outputOptions{dryRun: dryRun, check: check, quiet: quiet, color: useColor}
	pending := 0

	_, err = driver.Restyle(cmd.Context(), args, driver.Options{
		DryRun:     dryRun || check,
		Encoding:   enc,
		Pipeline:   rewrite.New(rewrite.Options{IndentWidth: indent}),
		Extensions: cfg.Files.Extensions,
		Timer:      timer,
		Report: func(res driver.Result) error {
			if res.Status == driver.StatusWouldUpdate {
				pending++
			}
			return renderResult(out, res, outOpts)
		},
	})

	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	if err != nil {
		return err
	}
	if check && pending > 0 {
		return fmt.Errorf("%d file(s) would be restyled", pending)
	}
	return nil
}

// renderResult prints the status line for one file and, in dry-run mode,
// the unified diff of the would-be change.
func renderResult(w io.Writer, res driver.Result, opts outputOptions) error {
	switch res.Status {
	case driver.StatusUnchanged:
		if opts.quiet {
			return nil
		}
		_, err := fmt.Fprintf(w, "jsrestyle '%s' (no change)\n", res.Path)
		return err
	case driver.StatusUpdated:
		_, err := fmt.Fprintf(w, "jsrestyle '%s' (updated)\n", res.Path)
		return err
	case driver.StatusWouldUpdate:
		if opts.check {
			_, err := fmt.Fprintf(w, "jsrestyle '%s' (would be updated)\n", res.Path)
			return err
		}
		if _, err := fmt.Fprintf(w, "jsrestyle '%s' (would be updated, dry-run)\n", res.Path); err != nil {
			return err
		}
		if err := diff.Write(w, res.Before, res.After, opts.color); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	default:
		return fmt.Errorf("%s: unexpected status %s", res.Path, res.Status)
	}
}

func resolveColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		if f, ok := cmd.OutOrStdout().(*os.File); ok {
			return isTerminal(f), nil
		}
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
}
