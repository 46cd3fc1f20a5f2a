package lint

import (
	"cmp"

	"github.com/yaklabco/gorslint/pkg/config"
	"github.com/yaklabco/gorslint/pkg/fix"
	"github.com/yaklabco/gorslint/pkg/rustsrc"
)

// ViolationKind is a stable tag naming what a violation is about.
// Reports and tests key on these strings; they never change.
type ViolationKind string

// The closed set of violation kinds. Declaration order fixes the ordinal
// used to break ties when violations share a line.
const (
	KindUnderscoreBandaid   ViolationKind = "UnderscoreBandaid"
	KindWrongEdition        ViolationKind = "WrongEdition"
	KindFileTooLarge        ViolationKind = "FileTooLarge"
	KindFunctionTooLarge    ViolationKind = "FunctionTooLarge"
	KindLineTooLong         ViolationKind = "LineTooLong"
	KindUnwrapInProduction  ViolationKind = "UnwrapInProduction"
	KindMissingDocs         ViolationKind = "MissingDocs"
	KindMissingDependencies ViolationKind = "MissingDependencies"
	KindOldRustVersion      ViolationKind = "OldRustVersion"
)

//nolint:gochecknoglobals // Fixed enumeration order shared by Ordinal and Kinds
var kindOrder = []ViolationKind{
	KindUnderscoreBandaid,
	KindWrongEdition,
	KindFileTooLarge,
	KindFunctionTooLarge,
	KindLineTooLong,
	KindUnwrapInProduction,
	KindMissingDocs,
	KindMissingDependencies,
	KindOldRustVersion,
}

// Kinds returns the closed set of violation kinds in ordinal order.
func Kinds() []ViolationKind {
	out := make([]ViolationKind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// Ordinal returns the kind's position in the enumeration order. A kind
// outside the closed set returns len(Kinds()), so unknown kinds sort last.
func (k ViolationKind) Ordinal() int {
	for idx, kind := range kindOrder {
		if kind == k {
			return idx
		}
	}
	return len(kindOrder)
}

// Valid reports whether the kind belongs to the closed set.
func (k ViolationKind) Valid() bool {
	return k.Ordinal() < len(kindOrder)
}

// ParseKind resolves a configuration string to a ViolationKind.
func ParseKind(s string) (ViolationKind, bool) {
	kind := ViolationKind(s)
	return kind, kind.Valid()
}

// Violation represents a single issue found in a file.
// Values are created once per detected issue and never mutated afterwards.
type Violation struct {
	// Kind tags what the violation is about.
	Kind ViolationKind

	// RuleID is the identifier of the rule that produced this violation.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "no-unwrap").
	// Custom pattern matches carry the pattern name here.
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the violation.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// Line is the 1-based line number. Manifest violations with no
	// anchoring line (a missing edition key) use 0.
	Line int

	// Column is the 1-based column number, 0 when unknown.
	Column int

	// Suggestion is an optional human-readable fix suggestion.
	Suggestion string

	// FixEdits contains the text edits to fix this issue (may be empty).
	FixEdits []fix.TextEdit

	// Context is the extracted code context around the violation line.
	// Populated only when explain output is requested.
	Context *rustsrc.CodeContext
}

// HasFix returns true if this violation has associated fix edits.
func (v *Violation) HasFix() bool {
	return len(v.FixEdits) > 0
}

// CompareViolations orders two violations within one file: line ascending,
// ties broken by kind ordinal. The engine applies it after all rules have
// run, so per-file output is deterministic regardless of rule order.
func CompareViolations(a, b Violation) int {
	if c := cmp.Compare(a.Line, b.Line); c != 0 {
		return c
	}
	return cmp.Compare(a.Kind.Ordinal(), b.Kind.Ordinal())
}
