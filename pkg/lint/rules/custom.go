package rules

import (
	"github.com/yaklabco/gorslint/pkg/lint"
)

// CustomPatternRule applies the user-configured pattern library. One
// rule instance wraps the whole merged set; each matching pattern
// reports under its own name and severity.
type CustomPatternRule struct {
	lint.BaseRule
}

// NewCustomPatternRule creates a new custom pattern rule.
func NewCustomPatternRule() *CustomPatternRule {
	return &CustomPatternRule{
		BaseRule: lint.NewBaseRule(
			"RS011",
			"custom-pattern",
			"Project-specific banned patterns from configuration",
			[]string{"patterns"},
			false,
		),
	}
}

// Apply matches every enabled custom pattern against every line, with
// the same production gating as the unwrap rules. The matched text
// stands in for the pattern in string/comment classification.
func (r *CustomPatternRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.FileType != lint.FileTypeSource || ctx.File == nil || ctx.Patterns == nil {
		return nil, nil
	}

	patterns := ctx.Patterns.Custom()
	if len(patterns) == 0 {
		return nil, nil
	}

	scan := ctx.Scan()
	if scan.IsTestFile() {
		return nil, nil
	}

	var violations []lint.Violation

	for lineNum := 1; lineNum <= scan.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return violations, ctx.Ctx.Err()
		}

		line := scan.Line(lineNum)

		for _, pattern := range patterns {
			matched := pattern.Regexp.FindString(line)
			if matched == "" {
				continue
			}
			if !isProductionLine(ctx, lineNum, matched) {
				continue
			}

			violations = append(violations, lint.NewViolation(
				r.ID(), pattern.Kind, ctx.File.Path, lineNum,
				pattern.Message,
			).WithRuleName(pattern.Name).WithSeverity(pattern.Severity).Build())
		}
	}

	return violations, nil
}
