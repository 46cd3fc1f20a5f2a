package rules

import (
	"github.com/yaklabco/gorslint/pkg/config"
	"github.com/yaklabco/gorslint/pkg/lint"
)

// Messages for the two underscore forms. The parameter form hides an
// unused-argument warning; the binding form throws a value away.
const (
	underscoreParamMessage = "underscore parameter hides an unused-argument warning; fix the design instead"
	underscoreLetMessage   = "underscore assignment discards a value; handle the result properly"
)

// UnderscoreBandaidRule flags underscore parameters and let _ = bindings.
type UnderscoreBandaidRule struct {
	lint.BaseRule
}

// NewUnderscoreBandaidRule creates a new underscore bandaid rule.
func NewUnderscoreBandaidRule() *UnderscoreBandaidRule {
	return &UnderscoreBandaidRule{
		BaseRule: lint.NewBaseRule(
			"RS001",
			"no-underscore-bandaid",
			"Underscore parameters and bindings hide problems instead of fixing them",
			[]string{"patterns"},
			false,
		),
	}
}

// DefaultSeverity returns the default severity for this rule.
func (r *UnderscoreBandaidRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Apply flags every line carrying an underscore parameter or a
// discarding let binding. Unlike the unwrap rules, there is no test
// exemption; both forms are flagged everywhere.
func (r *UnderscoreBandaidRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.FileType != lint.FileTypeSource || ctx.File == nil || ctx.Patterns == nil {
		return nil, nil
	}

	var violations []lint.Violation

	for lineNum := 1; lineNum <= ctx.File.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return violations, ctx.Ctx.Err()
		}

		line := ctx.File.LineText(lineNum)

		if ctx.Patterns.UnderscoreParam().MatchString(line) {
			violations = append(violations, lint.NewViolation(
				r.ID(), lint.KindUnderscoreBandaid, ctx.File.Path, lineNum,
				underscoreParamMessage,
			).Build())
		}

		if ctx.Patterns.UnderscoreLet().MatchString(line) {
			violations = append(violations, lint.NewViolation(
				r.ID(), lint.KindUnderscoreBandaid, ctx.File.Path, lineNum,
				underscoreLetMessage,
			).Build())
		}
	}

	return violations, nil
}
