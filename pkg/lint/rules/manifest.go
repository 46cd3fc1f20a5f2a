package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/gorslint/pkg/cargo"
	"github.com/yaklabco/gorslint/pkg/config"
	"github.com/yaklabco/gorslint/pkg/lint"
)

// EditionRule checks that Cargo.toml declares an accepted edition.
type EditionRule struct {
	lint.BaseRule
}

// NewEditionRule creates a new edition rule.
func NewEditionRule() *EditionRule {
	return &EditionRule{
		BaseRule: lint.NewBaseRule(
			"RS008",
			"require-edition",
			"Cargo.toml must declare one of the accepted Rust editions",
			[]string{"manifest"},
			false,
		),
	}
}

// DefaultSeverity returns the default severity for this rule.
func (r *EditionRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Apply checks the manifest's edition against the accepted list. A
// missing declaration anchors at line 0; a wrong one at its own line.
func (r *EditionRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.FileType != lint.FileTypeManifest || ctx.Manifest == nil {
		return nil, nil
	}

	editions := acceptedEditions(ctx)
	manifest := ctx.Manifest

	if manifest.Edition == "" {
		violation := lint.NewViolation(
			r.ID(), lint.KindWrongEdition, manifest.Path, 0,
			"missing edition specification",
		).WithSuggestion(fmt.Sprintf("add edition = %q under [package]", editions[len(editions)-1])).Build()
		return []lint.Violation{violation}, nil
	}

	if slices.Contains(editions, manifest.Edition) {
		return nil, nil
	}

	violation := lint.NewViolation(
		r.ID(), lint.KindWrongEdition, manifest.Path, manifest.EditionLine,
		fmt.Sprintf("edition must be %s", strings.Join(editions, " or ")),
	).Build()

	return []lint.Violation{violation}, nil
}

// acceptedEditions resolves the accepted edition list: rule options win
// over project configuration, which wins over the built-in default.
func acceptedEditions(ctx *lint.RuleContext) []string {
	editions := ctx.OptionStringSlice("editions", nil)
	if len(editions) == 0 && ctx.Config != nil {
		editions = ctx.Config.Editions
	}
	if len(editions) == 0 {
		editions = config.DefaultEditions()
	}
	return editions
}

// DependenciesRule checks that required crates appear in [dependencies].
type DependenciesRule struct {
	lint.BaseRule
}

// NewDependenciesRule creates a new required dependencies rule.
func NewDependenciesRule() *DependenciesRule {
	return &DependenciesRule{
		BaseRule: lint.NewBaseRule(
			"RS009",
			"require-dependencies",
			"Cargo.toml must declare every crate the project standard requires",
			[]string{"manifest"},
			false,
		),
	}
}

// DefaultEnabled returns false. The rule only means something once a
// required list is configured.
func (r *DependenciesRule) DefaultEnabled() bool {
	return false
}

// DefaultSeverity returns the default severity for this rule.
func (r *DependenciesRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Apply emits one violation per required crate missing from
// [dependencies].
func (r *DependenciesRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.FileType != lint.FileTypeManifest || ctx.Manifest == nil {
		return nil, nil
	}

	required := ctx.OptionStringSlice("required", nil)
	if len(required) == 0 && ctx.Config != nil {
		required = ctx.Config.RequiredDependencies
	}

	var violations []lint.Violation

	for _, crate := range required {
		if ctx.Manifest.HasDependency(crate) {
			continue
		}
		violations = append(violations, lint.NewViolation(
			r.ID(), lint.KindMissingDependencies, ctx.Manifest.Path, 0,
			fmt.Sprintf("missing required dependency %s", crate),
		).WithSuggestion(fmt.Sprintf("add %s to [dependencies]", crate)).Build())
	}

	return violations, nil
}

// RustVersionRule checks the declared rust-version against a minimum.
type RustVersionRule struct {
	lint.BaseRule
}

// NewRustVersionRule creates a new minimum rust version rule.
func NewRustVersionRule() *RustVersionRule {
	return &RustVersionRule{
		BaseRule: lint.NewBaseRule(
			"RS010",
			"min-rust-version",
			"The declared Rust toolchain must meet the minimum version",
			[]string{"manifest"},
			false,
		),
	}
}

// DefaultSeverity returns the default severity for this rule.
func (r *RustVersionRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Apply compares the manifest's rust-version, falling back to the
// toolchain channel resolved next to it, against the configured minimum.
// A missing or unparseable declaration is not a violation; stable and
// named channels never count as too old.
func (r *RustVersionRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.FileType != lint.FileTypeManifest || ctx.Manifest == nil {
		return nil, nil
	}

	minStr := ctx.OptionString("min", "")
	if minStr == "" && ctx.Config != nil {
		minStr = ctx.Config.MinRustVersion
	}
	if minStr == "" {
		minStr = config.DefaultMinRustVersion
	}

	minVersion, ok := cargo.ParseVersion(minStr)
	if !ok {
		return nil, nil
	}

	declared := ctx.Manifest.RustVersion
	line := ctx.Manifest.RustVersionLine
	if declared == "" {
		declared = ctx.ToolchainChannel
		line = 0
	}
	if declared == "" {
		return nil, nil
	}

	version, ok := cargo.ParseVersion(declared)
	if !ok {
		return nil, nil
	}
	if version.Compare(minVersion) >= 0 {
		return nil, nil
	}

	violation := lint.NewViolation(
		r.ID(), lint.KindOldRustVersion, ctx.Manifest.Path, line,
		fmt.Sprintf("rust version %s is too old, minimum required is %s", declared, minStr),
	).Build()

	return []lint.Violation{violation}, nil
}
