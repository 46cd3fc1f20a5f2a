package lint

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/yaklabco/gorslint/pkg/cargo"
	"github.com/yaklabco/gorslint/pkg/config"
	"github.com/yaklabco/gorslint/pkg/fix"
	"github.com/yaklabco/gorslint/pkg/rustsrc"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Snapshot is the scanned file.
	Snapshot *rustsrc.FileSnapshot

	// FileType says whether the file was scanned as source or manifest.
	FileType FileType

	// Violations contains all issues found, ordered by line and kind.
	Violations []Violation

	// Edits contains validated, sorted edits for auto-fix.
	// Empty if no fixes are available or --fix was not requested.
	Edits []fix.TextEdit

	// SkippedEdits contains edits that were skipped due to conflicts.
	// When multiple edits overlap, earlier edits (by start position) take precedence.
	SkippedEdits []fix.TextEdit

	// EditConflicts is true if any edits were skipped due to conflicts.
	EditConflicts bool

	// RuleErrors contains any errors from rule execution.
	RuleErrors map[string]error
}

// HasIssues returns true if any violations were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Violations) > 0
}

// HasFixes returns true if any fixes are available.
func (fr *FileResult) HasFixes() bool {
	return len(fr.Edits) > 0
}

// IssueCount returns the total number of violations.
func (fr *FileResult) IssueCount() int {
	return len(fr.Violations)
}

// FixableCount returns the number of violations with fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for _, v := range fr.Violations {
		if v.HasFix() {
			count++
		}
	}
	return count
}

// Engine coordinates snapshot construction and rule execution.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry

	// Patterns is the compiled pattern library shared by every scan.
	Patterns *PatternSet

	// Toolchain resolves the rust-toolchain channel for manifest
	// directories. May be nil; manifests then carry no channel.
	Toolchain ToolchainResolver
}

// NewEngine creates a new Engine with the given pattern set and registry.
func NewEngine(patterns *PatternSet, registry *Registry) *Engine {
	return &Engine{
		Registry: registry,
		Patterns: patterns,
	}
}

// LintFile scans a single file: it builds the line-indexed snapshot,
// decides the file type, and runs every resolved rule against it.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	snapshot := rustsrc.NewFileSnapshot(path, content)

	fileType := FileTypeSource
	var manifest *cargo.Manifest
	var channel string
	if filepath.Base(path) == cargo.ManifestName {
		fileType = FileTypeManifest
		manifest = cargo.ParseManifest(path, content)
		if e.Toolchain != nil {
			channel, _ = e.Toolchain.Channel(filepath.Dir(path))
		}
	}

	// Resolve which rules to run.
	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		Snapshot:   snapshot,
		FileType:   fileType,
		RuleErrors: make(map[string]error),
	}

	// Collect all edits for validation.
	var allEdits []fix.TextEdit

	// The scan cache is built lazily by the first rule that needs it and
	// carried across the remaining rules on this file.
	var scan *ScanCache

	for _, rr := range resolved {
		// Check for cancellation.
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, snapshot, cfg, rr.Config)
		ruleCtx.FileType = fileType
		ruleCtx.Manifest = manifest
		ruleCtx.ToolchainChannel = channel
		ruleCtx.Patterns = e.Patterns
		ruleCtx.Registry = e.Registry
		ruleCtx.scan = scan

		violations, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}
		scan = ruleCtx.scan

		for idx := range violations {
			// Stamp the resolved severity unless the rule set its own
			// (custom patterns carry per-pattern severities).
			if violations[idx].Severity == "" {
				violations[idx].Severity = rr.Severity
			}

			// Ensure file path is set.
			if violations[idx].FilePath == "" {
				violations[idx].FilePath = path
			}

			// Ensure rule name is set for human-readable output.
			if violations[idx].RuleName == "" {
				violations[idx].RuleName = rr.Rule.Name()
			}

			// Collect edits if auto-fix is enabled for this rule.
			if rr.AutoFix && len(violations[idx].FixEdits) > 0 {
				allEdits = append(allEdits, violations[idx].FixEdits...)
			}
		}

		result.Violations = append(result.Violations, violations...)
	}

	// Per-file order is part of the contract: line ascending, kind
	// ordinal on ties, stable for repeated runs on unchanged input.
	slices.SortStableFunc(result.Violations, CompareViolations)

	// Attach extracted context when explain output was requested.
	if cfg != nil && cfg.Explain && fileType == FileTypeSource {
		for idx := range result.Violations {
			if result.Violations[idx].Line < 1 {
				continue
			}
			cc := rustsrc.ExtractContext(snapshot, result.Violations[idx].Line)
			result.Violations[idx].Context = &cc
		}
	}

	// Validate and prepare edits, merging deletions and filtering conflicts.
	if len(allEdits) > 0 {
		accepted, skipped, _, err := fix.PrepareEditsFiltered(allEdits, len(content))
		if err != nil {
			// Validation error (not conflicts - those are filtered).
			// Still include violations but clear edits.
			result.Edits = nil
			result.SkippedEdits = nil
			result.EditConflicts = true
		} else {
			result.Edits = accepted
			result.SkippedEdits = skipped
			result.EditConflicts = len(skipped) > 0
		}
	}

	return result, nil
}
