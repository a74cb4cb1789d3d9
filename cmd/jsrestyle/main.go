package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jsrestyle/internal/version"
)

// newRootCmd builds the command tree. Tests build a fresh one per case.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsrestyle [flags] <file|dir>...",
		Short: "Massage JavaScript files toward jsstyle conventions",
		Long: `jsrestyle applies a fixed sequence of regex rewrites to JavaScript files:
double quotes become single quotes, function/catch/typeof get a space before "(",
and "if (test) return|throw ..." one-liners are split over two lines.

It is a best-effort pattern rewriter, not a parser: review the result.`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runRestyle,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Full(),
	}

	// Флаги режима
	cmd.Flags().BoolP("dry-run", "n", false, "do not modify files; show a unified diff of the would-be changes")
	cmd.Flags().Bool("check", false, "do not modify files; exit with status 1 if any file would change")
	cmd.Flags().String("encoding", "", "character encoding of the files (default from config, else utf-8)")
	cmd.Flags().Int("indent", 0, "indent unit width in spaces for split conditionals (default from config, else 2)")
	cmd.Flags().String("config", "", "path to "+configFileName()+" (default: search upward from the working directory)")

	// Глобальные флаги
	cmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().Bool("quiet", false, "suppress (no change) lines")
	cmd.PersistentFlags().Bool("timings", false, "show timing information")
	cmd.PersistentFlags().String("trace", "", "write trace events to a file (- for stderr)")
	cmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	cmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")

	return cmd
}

// main executes the root command. Any error is printed to stderr and the
// process exits with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jsrestyle: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
