package rules

import (
	"fmt"

	"github.com/yaklabco/gorslint/pkg/config"
	"github.com/yaklabco/gorslint/pkg/lint"
	"github.com/yaklabco/gorslint/pkg/rustsrc"
)

// FileSizeRule checks that files do not exceed a maximum line count.
type FileSizeRule struct {
	lint.BaseRule
}

// NewFileSizeRule creates a new file size rule.
func NewFileSizeRule() *FileSizeRule {
	return &FileSizeRule{
		BaseRule: lint.NewBaseRule(
			"RS004",
			"file-too-large",
			"Files should not exceed the configured maximum number of lines",
			[]string{"size"},
			false,
		),
	}
}

// DefaultSeverity returns the default severity for this rule.
func (r *FileSizeRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Apply emits one violation on the last content line when the file is
// over the limit.
func (r *FileSizeRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.FileType != lint.FileTypeSource || ctx.File == nil {
		return nil, nil
	}

	maxLines := ctx.LimitOption("max_lines", ctx.Limits().MaxFileLines, config.DefaultMaxFileLines)
	count := lint.ContentLineCount(ctx.File)
	if count <= maxLines {
		return nil, nil
	}

	violation := lint.NewViolation(
		r.ID(), lint.KindFileTooLarge, ctx.File.Path, count,
		fmt.Sprintf("file has %d lines, maximum allowed is %d", count, maxLines),
	).WithSuggestion("split the file into smaller modules").Build()

	return []lint.Violation{violation}, nil
}

// FunctionSizeRule checks that functions do not exceed a maximum line count.
type FunctionSizeRule struct {
	lint.BaseRule
}

// NewFunctionSizeRule creates a new function size rule.
func NewFunctionSizeRule() *FunctionSizeRule {
	return &FunctionSizeRule{
		BaseRule: lint.NewBaseRule(
			"RS005",
			"function-too-large",
			"Functions should not exceed the configured maximum number of lines",
			[]string{"size"},
			false,
		),
	}
}

// DefaultSeverity returns the default severity for this rule.
func (r *FunctionSizeRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Apply measures every located function, nested definitions included.
// The size is the span from the definition line to the balancing closing
// brace, so nested blocks count toward the total.
func (r *FunctionSizeRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.FileType != lint.FileTypeSource || ctx.File == nil {
		return nil, nil
	}

	scan := ctx.Scan()
	maxLines := ctx.LimitOption("max_lines", ctx.Limits().MaxFunctionLines, config.DefaultMaxFunctionLines)

	var violations []lint.Violation

	for lineNum := 1; lineNum <= scan.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return violations, ctx.Ctx.Err()
		}

		if !scan.IsFunctionDef(lineNum) {
			continue
		}

		sig, ok := rustsrc.LocateFunction(ctx.File, lineNum-1)
		if !ok {
			continue
		}

		size := sig.EndLine - sig.StartLine
		if size <= maxLines {
			continue
		}

		violations = append(violations, lint.NewViolation(
			r.ID(), lint.KindFunctionTooLarge, ctx.File.Path, sig.StartLine,
			fmt.Sprintf("function %s has %d lines, maximum allowed is %d", sig.Name, size, maxLines),
		).WithSuggestion("extract helpers until the function fits").Build())
	}

	return violations, nil
}

// LineLengthRule checks that lines do not exceed a maximum byte length.
type LineLengthRule struct {
	lint.BaseRule
}

// NewLineLengthRule creates a new line length rule.
func NewLineLengthRule() *LineLengthRule {
	return &LineLengthRule{
		BaseRule: lint.NewBaseRule(
			"RS006",
			"line-too-long",
			"Lines should not exceed the configured maximum length",
			[]string{"size"},
			false,
		),
	}
}

// Apply emits one warning per line over the limit. Length counts bytes,
// not runes.
func (r *LineLengthRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.FileType != lint.FileTypeSource || ctx.File == nil {
		return nil, nil
	}

	maxLength := ctx.LimitOption("max", ctx.Limits().MaxLineLength, config.DefaultMaxLineLength)

	var violations []lint.Violation

	for lineNum := 1; lineNum <= ctx.File.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return violations, ctx.Ctx.Err()
		}

		length := lint.LineLength(ctx.File, lineNum)
		if length <= maxLength {
			continue
		}

		violations = append(violations, lint.NewViolation(
			r.ID(), lint.KindLineTooLong, ctx.File.Path, lineNum,
			fmt.Sprintf("line has %d characters, maximum allowed is %d", length, maxLength),
		).WithColumn(maxLength+1).Build())
	}

	return violations, nil
}
