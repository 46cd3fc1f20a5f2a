package cli

import "github.com/yaklabco/gorslint/pkg/runner"

// Exit codes for gorslint.
const (
	// ExitSuccess indicates successful execution with no violations.
	ExitSuccess = 0

	// ExitViolations indicates the scan completed but found errors.
	ExitViolations = 1

	// ExitWarnings indicates the scan completed but found warnings (when strict mode).
	ExitWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	errors := result.Stats.ViolationsBySeverity["error"]
	warnings := result.Stats.ViolationsBySeverity["warning"]

	if errors > 0 {
		return ExitViolations
	}

	if strict && warnings > 0 {
		return ExitWarnings
	}

	return ExitSuccess
}
