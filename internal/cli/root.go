// Package cli provides the Cobra command structure for gorslint.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gorslint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gorslint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gorslint",
		Short: "A fast, self-fixing compliance scanner for Rust sources",
		Long: `gorslint is a fast, self-fixing compliance scanner for Rust codebases,
written in Go.

It scans .rs files and Cargo manifests for production-readiness violations:
suppressed errors, unwrap/expect panics outside tests, oversized files and
functions, undocumented public items, and stale manifest declarations.
gorslint can automatically fix many violations while ensuring safety through
conflict detection, dry-run mode, and optional backups.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
