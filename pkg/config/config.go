// Package config defines core configuration types for gorslint.
// These types are pure data structures with no external dependencies on config loaders.
package config

// Severity represents the severity level of a violation.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `mapstructure:"enabled" yaml:"enabled"`
	Severity *string        `mapstructure:"severity" yaml:"severity"`
	AutoFix  *bool          `mapstructure:"auto_fix" yaml:"auto_fix"`
	Options  map[string]any `mapstructure:"options" yaml:"options"`
}

// LimitsConfig holds the size limits shared by the size rules. Per-rule
// options override these when both are set.
type LimitsConfig struct {
	// MaxFileLines is the maximum number of lines per source file.
	MaxFileLines int `mapstructure:"max_file_lines" yaml:"max_file_lines"`

	// MaxFunctionLines is the maximum number of lines per function body.
	MaxFunctionLines int `mapstructure:"max_function_lines" yaml:"max_function_lines"`

	// MaxLineLength is the maximum line length in bytes.
	MaxLineLength int `mapstructure:"max_line_length" yaml:"max_line_length"`
}

// CustomPattern is a user-defined lexical pattern checked by the
// custom-pattern rule. Matches run through the same string/comment
// classification as the built-in patterns.
type CustomPattern struct {
	// Name identifies the pattern in output (e.g., "print-debug").
	Name string `mapstructure:"name" yaml:"name"`

	// Pattern is the regular expression to match.
	Pattern string `mapstructure:"pattern" yaml:"pattern"`

	// Message is the violation message for a match.
	Message string `mapstructure:"message" yaml:"message"`

	// Kind names the violation kind attached to matches. Empty defaults
	// to underscore-bandaid; a value outside the known set is a
	// configuration error.
	Kind string `mapstructure:"kind" yaml:"kind"`

	// Severity is "error" or "warning". Empty defaults to warning.
	Severity string `mapstructure:"severity" yaml:"severity"`

	// Enabled toggles the pattern. Nil means enabled.
	Enabled *bool `mapstructure:"enabled" yaml:"enabled"`
}

// IsEnabled returns whether the pattern should be checked.
func (p CustomPattern) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Mode    string `mapstructure:"mode" yaml:"mode"` // "sidecar", "xdg", etc.
}

// OutputFormat specifies the output format for violations.
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatTable    OutputFormat = "table"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
	FormatDiff     OutputFormat = "diff"
	FormatSummary  OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "no-unwrap"
	RuleFormatID       RuleFormat = "id"       // "RS002"
	RuleFormatCombined RuleFormat = "combined" // "RS002/no-unwrap"
)

// SummaryOrder controls the order of tables in summary output.
type SummaryOrder string

const (
	// SummaryOrderRules shows rules table first (default).
	SummaryOrderRules SummaryOrder = "rules"
	// SummaryOrderFiles shows files table first.
	SummaryOrderFiles SummaryOrder = "files"
)

// IsValid returns true if the summary order is valid.
func (s SummaryOrder) IsValid() bool {
	switch s {
	case SummaryOrderRules, SummaryOrderFiles:
		return true
	default:
		return false
	}
}

// Default limits and toolchain floor.
const (
	DefaultMaxFileLines     = 300
	DefaultMaxFunctionLines = 50
	DefaultMaxLineLength    = 100
	DefaultMinRustVersion   = "1.82.0"
)

// DefaultEditions returns the accepted Cargo editions.
func DefaultEditions() []string {
	return []string{"2021", "2024"}
}

// Config is the root configuration structure for gorslint.
type Config struct {
	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `mapstructure:"severity_default" yaml:"severity_default"`

	// Limits holds the shared size limits.
	Limits LimitsConfig `mapstructure:"limits" yaml:"limits"`

	// Editions lists the accepted Cargo editions.
	Editions []string `mapstructure:"editions" yaml:"editions"`

	// MinRustVersion is the minimum accepted rust-version declaration.
	MinRustVersion string `mapstructure:"min_rust_version" yaml:"min_rust_version"`

	// RequiredDependencies lists crates every manifest must declare.
	RequiredDependencies []string `mapstructure:"required_dependencies" yaml:"required_dependencies"`

	// CustomPatterns holds user-defined lexical patterns.
	CustomPatterns []CustomPattern `mapstructure:"custom_patterns" yaml:"custom_patterns"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `mapstructure:"rules" yaml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool `mapstructure:"-" yaml:"-"`

	// DryRun shows what would be fixed without making changes.
	DryRun bool `mapstructure:"-" yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `mapstructure:"-" yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `mapstructure:"-" yaml:"-"`

	// FixRules limits auto-fixing to specific rule IDs.
	FixRules []string `mapstructure:"-" yaml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `mapstructure:"-" yaml:"-"`

	// Strict promotes warnings to the failing exit code.
	Strict bool `mapstructure:"-" yaml:"-"`

	// Explain attaches extracted code context to JSON output.
	Explain bool `mapstructure:"-" yaml:"-"`

	// NoContext suppresses source snippets in text output.
	NoContext bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		Limits: LimitsConfig{
			MaxFileLines:     DefaultMaxFileLines,
			MaxFunctionLines: DefaultMaxFunctionLines,
			MaxLineLength:    DefaultMaxLineLength,
		},
		Editions:       DefaultEditions(),
		MinRustVersion: DefaultMinRustVersion,
		Rules:          make(map[string]RuleConfig),
		Ignore:         nil,
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format:     FormatText,
		RuleFormat: RuleFormatName,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}
