// Package configloader provides configuration loading and resolution.
package configloader

import "strings"

// ruleAliases maps human-readable rule names to their canonical rule IDs,
// so configuration files can address rules either way.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ruleAliases = map[string]string{
	// Lexical patterns
	"no-underscore-bandaid": "RS001",
	"no-unwrap":             "RS002",
	"no-expect":             "RS003",
	"custom-pattern":        "RS011",

	// Size limits
	"file-too-large":     "RS004",
	"function-too-large": "RS005",
	"line-too-long":      "RS006",

	// Documentation
	"missing-docs": "RS007",

	// Manifest
	"require-edition":      "RS008",
	"require-dependencies": "RS009",
	"min-rust-version":     "RS010",
}

// ruleTags maps tag names to the rule IDs they contain.
// Tags can be used in configuration to enable/disable groups of rules at once.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ruleTags = map[string][]string{
	"patterns": {"RS001", "RS002", "RS003", "RS011"},
	"panics":   {"RS002", "RS003"},
	"size":     {"RS004", "RS005", "RS006"},
	"docs":     {"RS007"},
	"manifest": {"RS008", "RS009", "RS010"},
}

// NormalizeRuleID converts a rule alias or ID to its canonical rule ID.
// Returns empty string if the key is not a recognized rule ID or alias.
func NormalizeRuleID(key string) string {
	// Check if already a rule ID (starts with RS)
	upper := strings.ToUpper(key)
	if strings.HasPrefix(upper, "RS") {
		return upper
	}

	// Check aliases
	if id, ok := ruleAliases[key]; ok {
		return id
	}

	return ""
}

// IsTag returns true if the key is a recognized tag name.
func IsTag(key string) bool {
	_, ok := ruleTags[key]
	return ok
}

// GetTagRules returns the rule IDs associated with a tag.
// Returns nil if the tag is not recognized.
func GetTagRules(tag string) []string {
	return ruleTags[tag]
}

// GetAllRuleIDs returns a slice of all known rule IDs.
func GetAllRuleIDs() []string {
	seen := make(map[string]struct{})
	for _, id := range ruleAliases {
		seen[id] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	return ids
}

// GetAliasesForRule returns all aliases for a given rule ID.
func GetAliasesForRule(ruleID string) []string {
	var aliases []string
	for alias, id := range ruleAliases {
		if id == ruleID {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}
