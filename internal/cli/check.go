package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gorslint/internal/configloader"
	"github.com/yaklabco/gorslint/internal/logging"
	"github.com/yaklabco/gorslint/pkg/config"
	"github.com/yaklabco/gorslint/pkg/lint"
	_ "github.com/yaklabco/gorslint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/gorslint/pkg/reporter"
	"github.com/yaklabco/gorslint/pkg/runner"
)

// ErrViolationsFound is returned when the scan finds violations.
var ErrViolationsFound = errors.New("violations found")

type checkFlags struct {
	format       string
	ignore       []string
	enable       []string
	disable      []string
	fixRules     []string
	strict       bool
	explain      bool
	noContext    bool
	compact      bool
	perFile      bool
	skipManifest bool
	ruleFormat   string
	summaryOrder string
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "check [paths...]",
		Aliases: []string{"scan"},
		Short:   "Scan Rust sources for compliance violations",
		Long:    checkLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags)
		},
	}

	addCheckFlags(cmd, &cfg, flags)

	return cmd
}

const checkLongDescription = `Scan Rust source files and Cargo manifests for compliance violations.

By default, scans all .rs files and Cargo.toml manifests in the current
directory and subdirectories, skipping target/, vendored trees, and
generated files. Specify paths to scan specific files or directories.

Examples:
  gorslint check                    # Scan current directory
  gorslint check src/               # Scan src directory
  gorslint check src/main.rs        # Scan single file
  gorslint check --fix              # Scan and auto-fix violations
  gorslint check --fix --dry-run    # Show fixes without applying
  gorslint check --format json      # Output as JSON for CI
  gorslint check --strict           # Treat warnings as errors`

func runCheck(cmd *cobra.Command, args []string, cfg *config.Config, flags *checkFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.FixRules = flags.fixRules
	cfg.Strict = flags.strict
	cfg.Explain = flags.explain
	cfg.NoContext = flags.noContext

	// Load and merge configuration.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	// Get working directory for config discovery.
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	// Build load options.
	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	// Log warnings from config loading.
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	// Log loaded configuration files.
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	// Compile the pattern set (built-ins plus custom patterns).
	patterns, err := lint.NewPatternSet(finalCfg.CustomPatterns)
	if err != nil {
		return errors.Join(errors.New("failed to compile patterns"), err)
	}

	// Use the default registry which has all built-in rules registered.
	registry := lint.DefaultRegistry

	// Create the scan engine.
	engine := lint.NewEngine(patterns, registry)

	// Create the safety pipeline.
	pipeline := lint.NewPipeline(engine)

	// Create the runner.
	scanRunner := runner.New(pipeline)

	// Build runner options.
	runOpts := runner.Options{
		Paths:         args,
		WorkingDir:    workDir,
		Extensions:    runner.DefaultExtensions(),
		ExcludeGlobs:  finalCfg.Ignore,
		SkipManifests: flags.skipManifest,
		Jobs:          finalCfg.Jobs,
		Config:        finalCfg,
	}

	logger.Debug("starting scan",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	// Run the scan.
	result, err := scanRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("scan failed"), err)
	}

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	// Parse output format.
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	// Create reporter.
	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		ErrorWriter:  cmd.ErrOrStderr(),
		Format:       format,
		Color:        colorMode,
		ShowContext:  !flags.noContext,
		Explain:      flags.explain,
		ShowSummary:  true,
		GroupByFile:  true,
		Compact:      flags.compact,
		PerFile:      flags.perFile,
		RuleFormat:   config.RuleFormat(flags.ruleFormat),
		SummaryOrder: config.SummaryOrder(flags.summaryOrder),
		WorkingDir:   workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	// Report results.
	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	// Determine exit code based on result.
	exitCode := ExitCodeFromResult(result, flags.strict)
	if exitCode != ExitSuccess {
		return ErrViolationsFound
	}

	return nil
}

func addCheckFlags(cmd *cobra.Command, cfg *config.Config, flags *checkFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix violations")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, markdown, diff, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().StringSliceVar(&flags.fixRules, "fix-rules", nil, "limit auto-fix to specific rule IDs")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when fixing")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.explain, "explain", false, "include code context with violations (json output)")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false, "output separate report for each file (table format)")
	cmd.Flags().BoolVar(&flags.skipManifest, "skip-manifests", false, "do not scan Cargo.toml manifests")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.summaryOrder, "summary-order", "rules",
		"order of tables in summary output: rules, files")
}
