package rules

import (
	"strings"

	"github.com/yaklabco/gorslint/pkg/config"
	"github.com/yaklabco/gorslint/pkg/fix"
	"github.com/yaklabco/gorslint/pkg/lint"
	"github.com/yaklabco/gorslint/pkg/rustsrc"
)

// Literal call tokens, used for string/comment classification and fix
// targeting. They must agree with the pattern set's regular expressions.
const (
	unwrapToken = ".unwrap()"
	expectToken = ".expect("
)

const (
	unwrapMessage    = ".unwrap() in production code"
	expectMessage    = ".expect() in production code"
	tryOpSuggestion  = "use ? or handle the error explicitly"
	tryOpReplacement = "?"
)

// UnwrapRule flags .unwrap() calls in production code.
type UnwrapRule struct {
	lint.BaseRule
}

// NewUnwrapRule creates a new unwrap rule.
func NewUnwrapRule() *UnwrapRule {
	return &UnwrapRule{
		BaseRule: lint.NewBaseRule(
			"RS002",
			"no-unwrap",
			".unwrap() panics on the error path; production code handles errors",
			[]string{"error-handling"},
			true, // Auto-fixable to ? inside try-compatible functions.
		),
	}
}

// DefaultSeverity returns the default severity for this rule.
func (r *UnwrapRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Apply flags production .unwrap() calls, one violation per offending
// line. A fix to ? is attached when the enclosing function can carry it.
func (r *UnwrapRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.FileType != lint.FileTypeSource || ctx.File == nil || ctx.Patterns == nil {
		return nil, nil
	}

	scan := ctx.Scan()
	if scan.IsTestFile() || scan.AllowUnwrap() {
		return nil, nil
	}

	var violations []lint.Violation

	for lineNum := 1; lineNum <= scan.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return violations, ctx.Ctx.Err()
		}

		line := scan.Line(lineNum)
		if !ctx.Patterns.UnwrapCall().MatchString(line) {
			continue
		}
		if !isProductionLine(ctx, lineNum, unwrapToken) {
			continue
		}

		builder := lint.NewViolation(
			r.ID(), lint.KindUnwrapInProduction, ctx.File.Path, lineNum,
			unwrapMessage,
		).WithSuggestion(tryOpSuggestion)

		if fixer := buildUnwrapFix(ctx, lineNum, line); fixer != nil {
			builder = builder.WithFix(fixer)
		}

		violations = append(violations, builder.Build())
	}

	return violations, nil
}

// ExpectRule flags .expect() calls in production code.
type ExpectRule struct {
	lint.BaseRule
}

// NewExpectRule creates a new expect rule.
func NewExpectRule() *ExpectRule {
	return &ExpectRule{
		BaseRule: lint.NewBaseRule(
			"RS003",
			"no-expect",
			".expect() panics on the error path; production code handles errors",
			[]string{"error-handling"},
			true, // Auto-fixable to ? inside try-compatible functions.
		),
	}
}

// DefaultSeverity returns the default severity for this rule.
func (r *ExpectRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Apply flags production .expect() calls, one violation per offending
// line. The fix replaces the whole call, message argument included.
func (r *ExpectRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.FileType != lint.FileTypeSource || ctx.File == nil || ctx.Patterns == nil {
		return nil, nil
	}

	scan := ctx.Scan()
	if scan.IsTestFile() || scan.AllowExpect() {
		return nil, nil
	}

	var violations []lint.Violation

	for lineNum := 1; lineNum <= scan.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return violations, ctx.Ctx.Err()
		}

		line := scan.Line(lineNum)
		if !ctx.Patterns.ExpectCall().MatchString(line) {
			continue
		}
		if !isProductionLine(ctx, lineNum, expectToken) {
			continue
		}

		builder := lint.NewViolation(
			r.ID(), lint.KindUnwrapInProduction, ctx.File.Path, lineNum,
			expectMessage,
		).WithSuggestion(tryOpSuggestion)

		if fixer := buildExpectFix(ctx, lineNum, line); fixer != nil {
			builder = builder.WithFix(fixer)
		}

		violations = append(violations, builder.Build())
	}

	return violations, nil
}

// isProductionLine reports whether the pattern occurrence on lineNum is
// held to production standards. Test scope, comment lines, and
// occurrences confined to strings or comments are exempt. The file-level
// gates (test file paths, allow attributes) are the caller's job.
func isProductionLine(ctx *lint.RuleContext, lineNum int, token string) bool {
	scan := ctx.Scan()
	if scan.InTest(lineNum) {
		return false
	}
	if strings.HasPrefix(scan.Trimmed(lineNum), "//") {
		return false
	}
	return !rustsrc.IsInStringOrComment(scan.Line(lineNum), token)
}

// enclosingFunction locates the function whose body contains lineNum. It
// walks upward to the nearest definition line and scans that function's
// boundary; a definition that closed above lineNum is skipped in favor
// of an outer candidate.
func enclosingFunction(ctx *lint.RuleContext, lineNum int) (rustsrc.FunctionSignature, bool) {
	scan := ctx.Scan()
	for ln := lineNum; ln >= 1; ln-- {
		if !scan.IsFunctionDef(ln) {
			continue
		}
		sig, ok := rustsrc.LocateFunction(ctx.File, ln-1)
		if ok && lineNum <= sig.EndLine {
			return sig, true
		}
	}
	return rustsrc.FunctionSignature{}, false
}

// canCarryTryOp reports whether the function enclosing lineNum returns
// Result or Option, so a ? rewrite type-checks.
func canCarryTryOp(ctx *lint.RuleContext, lineNum int) bool {
	sig, ok := enclosingFunction(ctx, lineNum)
	return ok && (sig.ReturnsResult || sig.ReturnsOption)
}

// buildUnwrapFix returns an edit replacing the first real .unwrap() call
// on the line with ?. Nil when the enclosing function cannot carry the
// rewrite or no occurrence sits in real code. Later occurrences on the
// same line are left for the next fix pass.
func buildUnwrapFix(ctx *lint.RuleContext, lineNum int, line string) *fix.EditBuilder {
	if !canCarryTryOp(ctx, lineNum) {
		return nil
	}

	real := rustsrc.RealOccurrences(line, unwrapToken)
	if len(real) == 0 {
		return nil
	}

	lineStart := ctx.File.Lines[lineNum-1].StartOffset
	builder := fix.NewEditBuilder()
	builder.ReplaceRange(lineStart+real[0], lineStart+real[0]+len(unwrapToken), tryOpReplacement)
	return builder
}

// buildExpectFix returns an edit replacing the first real .expect(...)
// call on the line, through its closing parenthesis, with ?. Nil when
// the enclosing function cannot carry the rewrite or the call does not
// close on the same line.
func buildExpectFix(ctx *lint.RuleContext, lineNum int, line string) *fix.EditBuilder {
	if !canCarryTryOp(ctx, lineNum) {
		return nil
	}

	real := rustsrc.RealOccurrences(line, expectToken)
	if len(real) == 0 {
		return nil
	}

	end := expectCallEnd(line, real[0])
	if end < 0 {
		return nil
	}

	lineStart := ctx.File.Lines[lineNum-1].StartOffset
	builder := fix.NewEditBuilder()
	builder.ReplaceRange(lineStart+real[0], lineStart+end, tryOpReplacement)
	return builder
}

// expectCallEnd returns the index just past the parenthesis closing the
// .expect( call that starts at off, or -1 when the call does not close
// on the line. String escapes are honored so parentheses inside the
// message argument do not end the call early.
func expectCallEnd(line string, off int) int {
	depth := 1
	inString := false
	escaped := false

	for i := off + len(expectToken); i < len(line); i++ {
		c := line[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '(':
			if !inString {
				depth++
			}
		case ')':
			if !inString {
				depth--
				if depth == 0 {
					return i + 1
				}
			}
		}
	}

	return -1
}
