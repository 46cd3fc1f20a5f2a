package analysis

import "time"

// Report contains pre-computed views of scan results.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Violations is the flat list for detailed output, ordered by file
	// path, then line, then violation-kind ordinal.
	Violations []ViolationEntry `json:"violations,omitempty"`

	// ByFile groups violations by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByRule groups violations by rule.
	ByRule []RuleAnalysis `json:"byRule,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// ViolationEntry represents a single violation in the report.
type ViolationEntry struct {
	FilePath   string     `json:"filePath"`
	Kind       string     `json:"kind"`
	RuleID     string     `json:"ruleId"`
	RuleName   string     `json:"ruleName"`
	Severity   string     `json:"severity"`
	Message    string     `json:"message"`
	Line       int        `json:"line"`
	Column     int        `json:"column,omitempty"`
	Suggestion string     `json:"suggestion,omitempty"`
	Fixable    bool       `json:"fixable"`
	Fixes      []FixEntry `json:"fixes,omitempty"`
}

// FixEntry represents a text edit fix.
type FixEntry struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files               int            `json:"filesScanned"`
	FilesWithViolations int            `json:"filesWithViolations"`
	Violations          int            `json:"totalViolations"`
	Errors              int            `json:"errors"`
	Warnings            int            `json:"warnings"`
	Infos               int            `json:"infos"`
	Fixable             int            `json:"fixable"`
	ByKind              map[string]int `json:"byKind,omitempty"`

	// Compliance is the percentage of scanned files with zero
	// violations, 0-100.
	Compliance float64 `json:"compliancePercentage"`
}

// HasViolations returns true if there are any violations.
func (t Totals) HasViolations() bool {
	return t.Violations > 0
}

// HasErrors returns true if there are any error-severity violations.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path       string   `json:"path"`
	Violations int      `json:"violations"`
	Errors     int      `json:"errors"`
	Warnings   int      `json:"warnings"`
	Infos      int      `json:"infos"`
	Rules      []string `json:"rules,omitempty"`
}

// RuleAnalysis contains aggregated data for a single rule.
type RuleAnalysis struct {
	RuleID     string   `json:"ruleId"`
	RuleName   string   `json:"ruleName"`
	Violations int      `json:"violations"`
	Errors     int      `json:"errors"`
	Warnings   int      `json:"warnings"`
	Infos      int      `json:"infos"`
	Fixable    bool     `json:"fixable"`
	Files      []string `json:"files,omitempty"`
}
