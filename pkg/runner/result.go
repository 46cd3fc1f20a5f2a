package runner

import "github.com/yaklabco/gorslint/pkg/lint"

// FileOutcome wraps PipelineResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// May be nil if the file encountered an error during processing.
	Result *lint.PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files skipped (e.g., generated code or
	// concurrent modification).
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// ViolationsTotal is the total number of violations across all files.
	ViolationsTotal int

	// ViolationsFixable is the number of violations that have auto-fixes.
	ViolationsFixable int

	// ViolationsBySeverity maps severity levels to counts.
	ViolationsBySeverity map[string]int

	// ViolationsByKind maps stable violation-kind tags to counts.
	ViolationsByKind map[string]int

	// FilesWithViolations is the number of files with at least one violation.
	FilesWithViolations int

	// FilesModified is the number of files that were modified by fixes.
	FilesModified int

	// ViolationsFixed is the total number of issues fixed across all files.
	ViolationsFixed int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasFailures reports whether any violations with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.ViolationsBySeverity["error"] > 0
}

// HasIssues reports whether any violations were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.ViolationsTotal > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		ViolationsBySeverity: make(map[string]int),
		ViolationsByKind:     make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Result.Skipped {
		r.Stats.FilesSkipped++
	}

	if outcome.Result.Written {
		r.Stats.FilesModified++
	}

	// Track total edits applied (issues fixed).
	r.Stats.ViolationsFixed += outcome.Result.TotalEditsApplied

	if outcome.Result.FileResult != nil {
		count := len(outcome.Result.Violations)
		r.Stats.ViolationsTotal += count
		r.Stats.ViolationsFixable += outcome.Result.FixableCount()

		if count > 0 {
			r.Stats.FilesWithViolations++
		}

		for _, v := range outcome.Result.Violations {
			severity := string(v.Severity)
			if severity == "" {
				severity = "warning"
			}
			r.Stats.ViolationsBySeverity[severity]++
			r.Stats.ViolationsByKind[string(v.Kind)]++
		}
	}
}
