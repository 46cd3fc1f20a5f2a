package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/gorslint/pkg/lint"
)

// pubItemRe matches the declaration line of a public item. The captured
// group is the item keyword used in the violation message. Restricted
// visibility (pub(crate) and friends) counts as public.
var pubItemRe = regexp.MustCompile(
	`^pub(?:\([^)]*\))?\s+(?:async\s+)?(?:unsafe\s+)?(fn|struct|enum|trait|type|const|static|mod)\b`,
)

// MissingDocsRule checks that public items carry doc comments.
type MissingDocsRule struct {
	lint.BaseRule
}

// NewMissingDocsRule creates a new missing docs rule.
func NewMissingDocsRule() *MissingDocsRule {
	return &MissingDocsRule{
		BaseRule: lint.NewBaseRule(
			"RS007",
			"missing-docs",
			"Public items should carry a /// doc comment",
			[]string{"documentation"},
			false,
		),
	}
}

// Apply warns on every public item whose preceding content is not a doc
// comment. Attribute lines between the comment and the item are allowed.
// Test files are exempt.
func (r *MissingDocsRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.FileType != lint.FileTypeSource || ctx.File == nil {
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

		match := pubItemRe.FindStringSubmatch(scan.Trimmed(lineNum))
		if match == nil {
			continue
		}
		if isDocumented(ctx, lineNum) {
			continue
		}

		violations = append(violations, lint.NewViolation(
			r.ID(), lint.KindMissingDocs, ctx.File.Path, lineNum,
			fmt.Sprintf("missing documentation for public %s", match[1]),
		).WithSuggestion("add a /// doc comment describing the item").Build())
	}

	return violations, nil
}

// isDocumented reports whether the item declared at lineNum carries a
// doc comment. The scan walks upward over blank and attribute lines; the
// first other line decides.
func isDocumented(ctx *lint.RuleContext, lineNum int) bool {
	scan := ctx.Scan()

	ln := lint.PrevNonBlankLine(ctx.File, lineNum)
	for ln >= 1 && strings.HasPrefix(scan.Trimmed(ln), "#[") {
		ln = lint.PrevNonBlankLine(ctx.File, ln)
	}
	if ln < 1 {
		return false
	}

	trimmed := scan.Trimmed(ln)
	return strings.HasPrefix(trimmed, "///") || strings.HasPrefix(trimmed, "//!")
}
