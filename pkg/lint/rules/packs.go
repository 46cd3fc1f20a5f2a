package rules

import "github.com/yaklabco/gorslint/pkg/config"

// Pack describes a named group of rule defaults for a particular use case.
// Packs are configuration fragments that can be used as starting points
// for .gorslint.yml files.
type Pack struct {
	// Name is the short identifier for the pack (e.g., "core", "strict").
	Name string

	// Description explains the purpose and characteristics of the pack.
	Description string

	// Rules contains rule configurations keyed by rule ID.
	Rules map[string]config.RuleConfig
}

// CorePack returns the core pack with the standard production checks.
// This pack mirrors the built-in defaults: panics and bandaids are
// errors, style limits are warnings.
func CorePack() Pack {
	return Pack{
		Name:        "core",
		Description: "Standard production checks: no panics, no bandaids, size limits",
		Rules: map[string]config.RuleConfig{
			"RS001": enabled("error"),   // no-underscore-bandaid
			"RS002": enabled("error"),   // no-unwrap
			"RS003": enabled("error"),   // no-expect
			"RS004": enabled("error"),   // file-too-large
			"RS005": enabled("error"),   // function-too-large
			"RS006": enabled("warning"), // line-too-long
			"RS007": enabled("warning"), // missing-docs
			"RS008": enabled("error"),   // require-edition
			"RS010": enabled("error"),   // min-rust-version
		},
	}
}

// StrictPack returns the strict pack with every rule enabled as an
// error, including the required-dependencies check that is off by
// default.
func StrictPack() Pack {
	return Pack{
		Name:        "strict",
		Description: "Strict pack: every rule as an error, required dependencies enforced",
		Rules: map[string]config.RuleConfig{
			"RS001": enabled("error"), // no-underscore-bandaid
			"RS002": enabled("error"), // no-unwrap
			"RS003": enabled("error"), // no-expect
			"RS004": enabled("error"), // file-too-large
			"RS005": enabled("error"), // function-too-large
			"RS006": enabled("error"), // line-too-long
			"RS007": enabled("error"), // missing-docs
			"RS008": enabled("error"), // require-edition
			"RS009": enabled("error"), // require-dependencies
			"RS010": enabled("error"), // min-rust-version
			"RS011": enabled("error"), // custom-pattern
		},
	}
}

// RelaxedPack returns a relaxed pack with only the panic checks,
// suitable for legacy codebases being cleaned up incrementally.
func RelaxedPack() Pack {
	return Pack{
		Name:        "relaxed",
		Description: "Relaxed pack: only unwrap and expect checks, minimal noise",
		Rules: map[string]config.RuleConfig{
			"RS002": enabled("warning"), // no-unwrap
			"RS003": enabled("warning"), // no-expect
		},
	}
}

// ManifestPack returns rules covering Cargo.toml only, for repositories
// that lint manifests separately from source.
func ManifestPack() Pack {
	return Pack{
		Name:        "manifest",
		Description: "Manifest pack: edition, toolchain, and dependency checks for Cargo.toml",
		Rules: map[string]config.RuleConfig{
			"RS008": enabled("error"),   // require-edition
			"RS009": enabled("warning"), // require-dependencies
			"RS010": enabled("error"),   // min-rust-version
		},
	}
}

// Packs returns all built-in rule packs.
func Packs() []Pack {
	return []Pack{
		CorePack(),
		StrictPack(),
		RelaxedPack(),
		ManifestPack(),
	}
}

// PackByName returns a pack by name, or nil if not found.
func PackByName(name string) *Pack {
	for _, p := range Packs() {
		if p.Name == name {
			return &p
		}
	}
	return nil
}

// PackNames returns the names of all available packs.
func PackNames() []string {
	packs := Packs()
	names := make([]string, len(packs))
	for i, p := range packs {
		names[i] = p.Name
	}
	return names
}

// enabled creates a RuleConfig with the rule enabled and the given severity.
func enabled(sev string) config.RuleConfig {
	enabled := true
	return config.RuleConfig{
		Enabled:  &enabled,
		Severity: &sev,
	}
}
