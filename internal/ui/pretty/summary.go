package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gorslint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 violations (8 errors, 4 warnings) in 3 files, 6 fixable".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.ViolationsTotal == 0 {
		msg := s.Success.Render("No violations found") + s.Dim.Render(fmt.Sprintf(" (%d files scanned)", stats.FilesProcessed))
		// Show fixes applied even when no violations remain
		if stats.ViolationsFixed > 0 {
			fileWord := wordFiles
			if stats.FilesModified == 1 {
				fileWord = wordFile
			}
			msg += ", " + s.Success.Render(fmt.Sprintf("%d fixed in %d %s", stats.ViolationsFixed, stats.FilesModified, fileWord))
		}
		return msg + "\n"
	}

	var parts []string

	// Total violations
	issueWord := "violations"
	if stats.ViolationsTotal == 1 {
		issueWord = "violation"
	}

	// Build severity breakdown
	var severityParts []string
	if errors := stats.ViolationsBySeverity["error"]; errors > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings := stats.ViolationsBySeverity["warning"]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if infos := stats.ViolationsBySeverity["info"]; infos > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}

	// Main count with severity breakdown
	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.ViolationsTotal, issueWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.ViolationsTotal, issueWord))
	}

	// Files with violations
	fileWord := wordFiles
	if stats.FilesWithViolations == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithViolations, fileWord))

	// Fixable count
	if stats.ViolationsFixable > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixable", stats.ViolationsFixable)))
	}

	// Violations fixed (if any)
	if stats.ViolationsFixed > 0 {
		fixedFileWord := wordFiles
		if stats.FilesModified == 1 {
			fixedFileWord = wordFile
		}
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixed in %d %s", stats.ViolationsFixed, stats.FilesModified, fixedFileWord)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block, compliance
// percentage included.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files scanned:        " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWithViolations > 0 {
		builder.WriteString("  Files with violations: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithViolations)) + "\n")
	}

	if stats.FilesModified > 0 {
		builder.WriteString("  Files modified:       " +
			s.Success.Render(strconv.Itoa(stats.FilesModified)) + "\n")
	}

	builder.WriteString("\n")

	// Violations by severity
	builder.WriteString("  Total violations:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.ViolationsTotal)) + "\n")

	if errors := stats.ViolationsBySeverity["error"]; errors > 0 {
		builder.WriteString("    Errors:             " +
			s.Error.Render(strconv.Itoa(errors)) + "\n")
	}
	if warnings := stats.ViolationsBySeverity["warning"]; warnings > 0 {
		builder.WriteString("    Warnings:           " +
			s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if infos := stats.ViolationsBySeverity["info"]; infos > 0 {
		builder.WriteString("    Info:               " +
			s.Info.Render(strconv.Itoa(infos)) + "\n")
	}

	builder.WriteString("\n")

	// Compliance and overall status
	builder.WriteString("  Compliance:           " +
		s.SummaryValue.Render(fmt.Sprintf("%.1f%%", compliance(stats))) + "\n")

	switch {
	case stats.ViolationsBySeverity["error"] > 0:
		builder.WriteString(s.Failure.Render("Scan failed with errors"))
	case stats.ViolationsBySeverity["warning"] > 0:
		builder.WriteString(s.Warning.Render("Scan completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Scan passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// compliance derives the zero-violation file percentage from run stats.
func compliance(stats runner.Stats) float64 {
	if stats.FilesProcessed <= 0 || stats.FilesWithViolations > stats.FilesProcessed {
		return 0.0
	}
	return float64(stats.FilesProcessed-stats.FilesWithViolations) / float64(stats.FilesProcessed) * 100.0
}
