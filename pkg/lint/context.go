package lint

import (
	"context"

	"github.com/yaklabco/gorslint/pkg/cargo"
	"github.com/yaklabco/gorslint/pkg/config"
	"github.com/yaklabco/gorslint/pkg/fix"
	"github.com/yaklabco/gorslint/pkg/rustsrc"
)

// FileType tells a rule what kind of file the context describes. Source
// rules return early for manifests and manifest rules for sources, so a
// single resolved rule list serves both.
type FileType int

const (
	// FileTypeSource is a Rust source file.
	FileTypeSource FileType = iota

	// FileTypeManifest is a Cargo.toml manifest.
	FileTypeManifest
)

// RuleContext provides all context needed by a rule to perform linting.
//
// Design note: RuleContext stores context.Context as a field (Ctx) rather than
// passing it as a method parameter. This is acceptable because RuleContext is
// a short-lived parameter object created per-rule-invocation, not a long-lived
// struct. This design simplifies the Rule interface (single Apply method) while
// still providing cancellation support via the Cancelled() helper.
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// File is the snapshot under scan.
	File *rustsrc.FileSnapshot

	// FileType says whether File is Rust source or a Cargo manifest.
	FileType FileType

	// Manifest is the decoded manifest, nil for source files.
	Manifest *cargo.Manifest

	// ToolchainChannel is the rust-toolchain channel governing the
	// manifest's directory, empty when none was resolved.
	ToolchainChannel string

	// Patterns is the compiled pattern library for this run.
	Patterns *PatternSet

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Builder accumulates text edits for auto-fix.
	Builder *fix.EditBuilder

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry

	// scan is the cached per-file scan state, lazily initialized.
	scan *ScanCache
}

// NewRuleContext creates a RuleContext for the given file and configuration.
func NewRuleContext(
	ctx context.Context,
	file *rustsrc.FileSnapshot,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	return &RuleContext{
		Ctx:        ctx,
		File:       file,
		FileType:   FileTypeSource,
		Config:     cfg,
		RuleConfig: ruleCfg,
		Builder:    fix.NewEditBuilder(),
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v := rc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a rule-specific string slice option, or the default.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := rc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// Handle []interface{} from YAML/JSON parsing
	if iface, ok := v.([]interface{}); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}

// Limits returns the configured limits block, or the zero value when no
// configuration is attached.
func (rc *RuleContext) Limits() config.LimitsConfig {
	if rc.Config == nil {
		return config.LimitsConfig{}
	}
	return rc.Config.Limits
}

// LimitOption resolves a numeric limit: the per-rule option wins, then
// the config-level limits value, then the built-in default. Zero and
// negative values mean "not set" at every level.
func (rc *RuleContext) LimitOption(key string, configured, fallback int) int {
	if v := rc.OptionInt(key, 0); v > 0 {
		return v
	}
	if configured > 0 {
		return configured
	}
	return fallback
}

// Scan returns the per-file scan cache, building it lazily. The cache
// holds the line classifications shared by every rule on this file:
// trimmed text, function-definition flags, test-scope markers, and the
// header allow directives.
func (rc *RuleContext) Scan() *ScanCache {
	if rc.scan == nil {
		rc.scan = buildScanCache(rc.File)
	}
	return rc.scan
}
