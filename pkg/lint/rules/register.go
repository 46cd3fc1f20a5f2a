package rules

import "github.com/yaklabco/gorslint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Lexical pattern rules
	registry.Register(NewUnderscoreBandaidRule()) // RS001
	registry.Register(NewUnwrapRule())            // RS002
	registry.Register(NewExpectRule())            // RS003
	registry.Register(NewCustomPatternRule())     // RS011

	// Size rules
	registry.Register(NewFileSizeRule())     // RS004
	registry.Register(NewFunctionSizeRule()) // RS005
	registry.Register(NewLineLengthRule())   // RS006

	// Documentation rules
	registry.Register(NewMissingDocsRule()) // RS007

	// Manifest rules
	registry.Register(NewEditionRule())      // RS008
	registry.Register(NewDependenciesRule()) // RS009
	registry.Register(NewRustVersionRule())  // RS010
}

// RegisterKindAliases registers the violation-kind names as aliases for
// the rules that produce them, so configuration files can address rules
// by the tags reports print. Kinds with two producers alias the
// lower-numbered rule.
func RegisterKindAliases(registry *lint.Registry) {
	// UnwrapInProduction is produced by both RS002 and RS003.
	registry.RegisterAlias(string(lint.KindUnderscoreBandaid), "RS001")
	registry.RegisterAlias(string(lint.KindUnwrapInProduction), "RS002")
	registry.RegisterAlias(string(lint.KindFileTooLarge), "RS004")
	registry.RegisterAlias(string(lint.KindFunctionTooLarge), "RS005")
	registry.RegisterAlias(string(lint.KindLineTooLong), "RS006")
	registry.RegisterAlias(string(lint.KindMissingDocs), "RS007")
	registry.RegisterAlias(string(lint.KindWrongEdition), "RS008")
	registry.RegisterAlias(string(lint.KindMissingDependencies), "RS009")
	registry.RegisterAlias(string(lint.KindOldRustVersion), "RS010")
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterKindAliases(lint.DefaultRegistry)
}
