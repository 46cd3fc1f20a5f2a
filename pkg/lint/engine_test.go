package lint

import (
	"context"
	"errors"
	"testing"

	"github.com/yaklabco/gorslint/pkg/config"
	"github.com/yaklabco/gorslint/pkg/fix"
)

// emitRule returns preset violations, unstamped, the way concrete rules do.
type emitRule struct {
	BaseRule
	violations []Violation
}

func (r *emitRule) Apply(_ *RuleContext) ([]Violation, error) {
	out := make([]Violation, len(r.violations))
	copy(out, r.violations)
	return out, nil
}

// failRule always fails.
type failRule struct {
	BaseRule
}

func (r *failRule) Apply(_ *RuleContext) ([]Violation, error) {
	return nil, errors.New("rule blew up")
}

// manifestProbe records the file type and manifest it was handed.
type manifestProbe struct {
	BaseRule
	sawType     FileType
	sawManifest bool
}

func (r *manifestProbe) Apply(ctx *RuleContext) ([]Violation, error) {
	r.sawType = ctx.FileType
	r.sawManifest = ctx.Manifest != nil
	return nil, nil
}

func newEngineForTest(t *testing.T, rules ...Rule) *Engine {
	t.Helper()

	patterns, err := NewPatternSet(nil)
	if err != nil {
		t.Fatalf("NewPatternSet() error = %v", err)
	}

	registry := NewRegistry()
	for _, rule := range rules {
		registry.Register(rule)
	}

	return NewEngine(patterns, registry)
}

func TestEngine_LintFile_SortsViolations(t *testing.T) {
	t.Parallel()

	rule := &emitRule{
		BaseRule: NewBaseRule("RS901", "emit", "emits violations", nil, false),
		violations: []Violation{
			{Kind: KindUnwrapInProduction, Line: 9},
			{Kind: KindLineTooLong, Line: 2},
			{Kind: KindUnderscoreBandaid, Line: 9},
		},
	}

	engine := newEngineForTest(t, rule)
	result, err := engine.LintFile(context.Background(), "src/lib.rs", []byte("fn main() {}\n"), config.NewConfig())
	if err != nil {
		t.Fatalf("LintFile() error = %v", err)
	}

	if len(result.Violations) != 3 {
		t.Fatalf("len(Violations) = %d, want 3", len(result.Violations))
	}

	wantOrder := []ViolationKind{KindLineTooLong, KindUnderscoreBandaid, KindUnwrapInProduction}
	for idx, want := range wantOrder {
		if result.Violations[idx].Kind != want {
			t.Errorf("Violations[%d].Kind = %q, want %q", idx, result.Violations[idx].Kind, want)
		}
	}
}

func TestEngine_LintFile_StampsSeverityPathAndName(t *testing.T) {
	t.Parallel()

	rule := &emitRule{
		BaseRule: NewBaseRule("RS901", "emit", "emits violations", nil, false),
		violations: []Violation{
			{Kind: KindLineTooLong, Line: 1},
			{Kind: KindLineTooLong, Line: 2, Severity: config.SeverityInfo, RuleName: "custom-name"},
		},
	}

	engine := newEngineForTest(t, rule)
	result, err := engine.LintFile(context.Background(), "src/lib.rs", []byte("fn main() {}\n"), config.NewConfig())
	if err != nil {
		t.Fatalf("LintFile() error = %v", err)
	}

	first := result.Violations[0]
	if first.Severity != config.SeverityWarning {
		t.Errorf("unstamped severity = %q, want resolved warning", first.Severity)
	}
	if first.FilePath != "src/lib.rs" {
		t.Errorf("FilePath = %q, want src/lib.rs", first.FilePath)
	}
	if first.RuleName != "emit" {
		t.Errorf("RuleName = %q, want emit", first.RuleName)
	}

	// A rule-set severity and name survive the stamping pass.
	second := result.Violations[1]
	if second.Severity != config.SeverityInfo {
		t.Errorf("preset severity = %q, want info", second.Severity)
	}
	if second.RuleName != "custom-name" {
		t.Errorf("preset rule name = %q, want custom-name", second.RuleName)
	}
}

func TestEngine_LintFile_RuleErrorIsIsolated(t *testing.T) {
	t.Parallel()

	good := &emitRule{
		BaseRule:   NewBaseRule("RS901", "emit", "emits violations", nil, false),
		violations: []Violation{{Kind: KindLineTooLong, Line: 1}},
	}
	bad := &failRule{BaseRule: NewBaseRule("RS902", "fail", "always fails", nil, false)}

	engine := newEngineForTest(t, good, bad)
	result, err := engine.LintFile(context.Background(), "src/lib.rs", []byte("fn main() {}\n"), config.NewConfig())
	if err != nil {
		t.Fatalf("LintFile() error = %v", err)
	}

	if len(result.Violations) != 1 {
		t.Errorf("len(Violations) = %d, want 1 from the healthy rule", len(result.Violations))
	}
	if _, ok := result.RuleErrors["RS902"]; !ok {
		t.Error("failing rule should be recorded in RuleErrors")
	}
}

func TestEngine_LintFile_DetectsManifest(t *testing.T) {
	t.Parallel()

	probe := &manifestProbe{BaseRule: NewBaseRule("RS901", "probe", "records context", nil, false)}
	engine := newEngineForTest(t, probe)

	manifest := "[package]\nname = \"demo\"\nedition = \"2021\"\n"
	result, err := engine.LintFile(context.Background(), "crates/demo/Cargo.toml", []byte(manifest), config.NewConfig())
	if err != nil {
		t.Fatalf("LintFile() error = %v", err)
	}

	if result.FileType != FileTypeManifest {
		t.Errorf("FileType = %v, want manifest", result.FileType)
	}
	if probe.sawType != FileTypeManifest {
		t.Error("rule should see the manifest file type")
	}
	if !probe.sawManifest {
		t.Error("rule should receive the parsed manifest")
	}
}

func TestEngine_LintFile_SourceFileHasNoManifest(t *testing.T) {
	t.Parallel()

	probe := &manifestProbe{BaseRule: NewBaseRule("RS901", "probe", "records context", nil, false)}
	engine := newEngineForTest(t, probe)

	if _, err := engine.LintFile(context.Background(), "src/lib.rs", []byte("fn main() {}\n"), config.NewConfig()); err != nil {
		t.Fatalf("LintFile() error = %v", err)
	}

	if probe.sawType != FileTypeSource {
		t.Error("rule should see the source file type")
	}
	if probe.sawManifest {
		t.Error("source files must not carry a manifest")
	}
}

func TestEngine_LintFile_Cancellation(t *testing.T) {
	t.Parallel()

	rule := &emitRule{BaseRule: NewBaseRule("RS901", "emit", "emits violations", nil, false)}
	engine := newEngineForTest(t, rule)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.LintFile(ctx, "src/lib.rs", []byte("fn main() {}\n"), config.NewConfig()); err == nil {
		t.Error("cancelled context should fail the scan")
	}
}

func TestEngine_LintFile_CollectsEditsWhenFixing(t *testing.T) {
	t.Parallel()

	edit := fix.TextEdit{StartOffset: 3, EndOffset: 7, NewText: "run"}
	rule := &emitRule{
		BaseRule: NewBaseRule("RS901", "emit", "emits violations", nil, true),
		violations: []Violation{
			{Kind: KindUnwrapInProduction, Line: 1, FixEdits: []fix.TextEdit{edit}},
		},
	}

	engine := newEngineForTest(t, rule)

	cfg := config.NewConfig()
	result, err := engine.LintFile(context.Background(), "src/lib.rs", []byte("fn main() {}\n"), cfg)
	if err != nil {
		t.Fatalf("LintFile() error = %v", err)
	}
	if len(result.Edits) != 0 {
		t.Errorf("edits collected without --fix: %v", result.Edits)
	}

	cfg.Fix = true
	result, err = engine.LintFile(context.Background(), "src/lib.rs", []byte("fn main() {}\n"), cfg)
	if err != nil {
		t.Fatalf("LintFile() error = %v", err)
	}
	if len(result.Edits) != 1 {
		t.Fatalf("len(Edits) = %d, want 1 with --fix", len(result.Edits))
	}
	if result.Edits[0] != edit {
		t.Errorf("Edits[0] = %+v, want %+v", result.Edits[0], edit)
	}
}

func TestFileResult_Counters(t *testing.T) {
	t.Parallel()

	fr := &FileResult{}
	if fr.HasIssues() || fr.HasFixes() {
		t.Error("empty result should have no issues or fixes")
	}

	fr.Violations = []Violation{
		{Kind: KindLineTooLong},
		{Kind: KindUnwrapInProduction, FixEdits: []fix.TextEdit{{EndOffset: 1, NewText: "?"}}},
	}
	fr.Edits = fr.Violations[1].FixEdits

	if !fr.HasIssues() || !fr.HasFixes() {
		t.Error("result with violations and edits should report both")
	}
	if fr.IssueCount() != 2 {
		t.Errorf("IssueCount() = %d, want 2", fr.IssueCount())
	}
	if fr.FixableCount() != 1 {
		t.Errorf("FixableCount() = %d, want 1", fr.FixableCount())
	}
}
