package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gorslint/pkg/runner"
	"github.com/yaklabco/gorslint/pkg/rustsrc"
)

// Severity string constants.
const (
	severityWarning = "warning"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string          `json:"path"`
	Violations []JSONViolation `json:"violations"`
	Modified   bool            `json:"modified,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// JSONViolation represents a single violation.
type JSONViolation struct {
	Kind       string               `json:"kind"`
	RuleID     string               `json:"ruleId"`
	RuleName   string               `json:"ruleName"`
	Severity   string               `json:"severity"`
	Message    string               `json:"message"`
	Line       int                  `json:"line"`
	Column     int                  `json:"column"`
	Suggestion string               `json:"suggestion,omitempty"`
	Fixable    bool                 `json:"fixable"`
	Fixes      []JSONFix            `json:"fixes,omitempty"`
	Context    *rustsrc.CodeContext `json:"context,omitempty"`
}

// JSONFix represents a proposed fix.
type JSONFix struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesScanned        int            `json:"filesScanned"`
	FilesWithViolations int            `json:"filesWithViolations"`
	FilesModified       int            `json:"filesModified"`
	FilesErrored        int            `json:"filesErrored"`
	TotalViolations     int            `json:"totalViolations"`
	BySeverity          map[string]int `json:"bySeverity"`
	ByKind              map[string]int `json:"byKind"`
	Compliance          float64        `json:"compliancePercentage"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalViolations, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
			ByKind:     make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	// Pre-allocate if we have files
	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:       file.Path,
			Violations: make([]JSONViolation, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Result != nil {
			fileResult.Modified = file.Result.Written

			if file.Result.FileResult != nil {
				for i := range file.Result.Violations {
					v := &file.Result.Violations[i]
					jsonViolation := JSONViolation{
						Kind:       string(v.Kind),
						RuleID:     v.RuleID,
						RuleName:   v.RuleName,
						Severity:   string(v.Severity),
						Message:    v.Message,
						Line:       v.Line,
						Column:     v.Column,
						Suggestion: v.Suggestion,
						Fixable:    len(v.FixEdits) > 0,
					}

					if r.opts.Explain {
						jsonViolation.Context = v.Context
					}

					for _, edit := range v.FixEdits {
						jsonViolation.Fixes = append(jsonViolation.Fixes, JSONFix{
							StartOffset: edit.StartOffset,
							EndOffset:   edit.EndOffset,
							NewText:     edit.NewText,
						})
					}

					fileResult.Violations = append(fileResult.Violations, jsonViolation)
					output.Summary.TotalViolations++

					severity := string(v.Severity)
					if severity == "" {
						severity = severityWarning
					}
					output.Summary.BySeverity[severity]++
					output.Summary.ByKind[string(v.Kind)]++
				}
			}
		}

		if len(fileResult.Violations) > 0 {
			output.Summary.FilesWithViolations++
		}
		if fileResult.Modified {
			output.Summary.FilesModified++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesScanned++
	}

	output.Summary.Compliance = compliancePercentage(
		output.Summary.FilesScanned, output.Summary.FilesWithViolations)

	return output
}

// compliancePercentage is the share of scanned files with no violations.
func compliancePercentage(scanned, withViolations int) float64 {
	if scanned <= 0 || withViolations > scanned {
		return 0.0
	}
	return float64(scanned-withViolations) / float64(scanned) * 100.0
}
