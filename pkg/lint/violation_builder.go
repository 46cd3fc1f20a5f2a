package lint

import (
	"github.com/yaklabco/gorslint/pkg/config"
	"github.com/yaklabco/gorslint/pkg/fix"
)

// ViolationBuilder helps construct Violation values.
type ViolationBuilder struct {
	violation Violation
}

// NewViolation starts building a violation of the given kind at a 1-based
// line of the file. Line 0 anchors manifest-level violations with no
// offending line.
func NewViolation(
	ruleID string,
	kind ViolationKind,
	filePath string,
	line int,
	message string,
) *ViolationBuilder {
	return &ViolationBuilder{
		violation: Violation{
			RuleID:   ruleID,
			Kind:     kind,
			Message:  message,
			FilePath: filePath,
			Line:     line,
		},
	}
}

// WithColumn sets the 1-based column.
func (b *ViolationBuilder) WithColumn(col int) *ViolationBuilder {
	b.violation.Column = col
	return b
}

// WithSeverity sets the severity. Rules normally leave it unset and let
// the engine stamp the resolved severity; custom patterns set their own.
func (b *ViolationBuilder) WithSeverity(s config.Severity) *ViolationBuilder {
	b.violation.Severity = s
	return b
}

// WithRuleName sets the rule name. Custom patterns use the pattern name.
func (b *ViolationBuilder) WithRuleName(name string) *ViolationBuilder {
	b.violation.RuleName = name
	return b
}

// WithSuggestion sets a human-readable fix suggestion.
func (b *ViolationBuilder) WithSuggestion(s string) *ViolationBuilder {
	b.violation.Suggestion = s
	return b
}

// WithFix adds fix edits from an EditBuilder.
func (b *ViolationBuilder) WithFix(builder *fix.EditBuilder) *ViolationBuilder {
	if builder != nil {
		b.violation.FixEdits = append(b.violation.FixEdits, builder.Edits...)
	}
	return b
}

// WithEdit adds a single fix edit.
func (b *ViolationBuilder) WithEdit(edit fix.TextEdit) *ViolationBuilder {
	b.violation.FixEdits = append(b.violation.FixEdits, edit)
	return b
}

// Build returns the constructed Violation.
func (b *ViolationBuilder) Build() Violation {
	return b.violation
}
