// Package cargo models the small slice of Cargo metadata the manifest
// rules need: package name, edition, rust-version, and dependency keys.
// Parsing is a real TOML decode with a line-scan fallback, so a manifest
// the decoder rejects still yields a usable model instead of failing the
// scan.
package cargo

import (
	"slices"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ManifestName is the file name of a Cargo manifest.
const ManifestName = "Cargo.toml"

// Manifest is the decoded view of one Cargo.toml.
type Manifest struct {
	// Path is the manifest's file path.
	Path string

	// Name is the package name, empty if undeclared.
	Name string

	// Edition is the declared edition, empty if undeclared.
	Edition string

	// EditionLine is the 1-based line of the edition key, 0 when the
	// manifest has none. The decoder carries no positions, so this
	// comes from a line scan.
	EditionLine int

	// RustVersion is the declared rust-version, empty if undeclared.
	RustVersion string

	// RustVersionLine is the 1-based line of the rust-version key.
	RustVersionLine int

	// Dependencies holds the sorted [dependencies] keys.
	Dependencies []string

	// DevDependencies holds the sorted [dev-dependencies] keys.
	DevDependencies []string
}

// HasDependency reports whether the crate appears in [dependencies].
func (m *Manifest) HasDependency(crate string) bool {
	for _, dep := range m.Dependencies {
		if dep == crate {
			return true
		}
	}
	return false
}

// manifestTOML is the decode target. Dependency values stay untyped:
// only the keys matter and the values range over strings, tables, and
// inline tables.
type manifestTOML struct {
	Package struct {
		Name        string `toml:"name"`
		Edition     string `toml:"edition"`
		RustVersion string `toml:"rust-version"`
	} `toml:"package"`
	Dependencies    map[string]any `toml:"dependencies"`
	DevDependencies map[string]any `toml:"dev-dependencies"`
}

// ParseManifest builds a Manifest from raw bytes. It never fails: decode
// errors (workspace-inherited keys, malformed TOML) degrade to the line
// scan, and missing keys stay zero-valued.
func ParseManifest(path string, content []byte) *Manifest {
	manifest := &Manifest{Path: path}

	var doc manifestTOML
	if err := toml.Unmarshal(content, &doc); err == nil {
		manifest.Name = doc.Package.Name
		manifest.Edition = doc.Package.Edition
		manifest.RustVersion = doc.Package.RustVersion
		manifest.Dependencies = sortedKeys(doc.Dependencies)
		manifest.DevDependencies = sortedKeys(doc.DevDependencies)
	} else {
		manifest.Dependencies = scanDependencyKeys(content, "dependencies")
		manifest.DevDependencies = scanDependencyKeys(content, "dev-dependencies")
	}

	editionValue, editionLine := scanKeyValue(content, "edition")
	manifest.EditionLine = editionLine
	if manifest.Edition == "" {
		manifest.Edition = editionValue
	}

	versionValue, versionLine := scanKeyValue(content, "rust-version")
	manifest.RustVersionLine = versionLine
	if manifest.RustVersion == "" {
		manifest.RustVersion = versionValue
	}

	return manifest
}

// scanKeyValue finds the first line declaring the key and returns its
// quoted value and 1-based line number. The key must start the trimmed
// line and be followed by whitespace, '=', or '.' so that crates whose
// names merely share the prefix don't match.
func scanKeyValue(content []byte, key string) (string, int) {
	lines := strings.Split(string(content), "\n")
	for idx, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if !strings.HasPrefix(trimmed, key) {
			continue
		}
		rest := trimmed[len(key):]
		if rest == "" || (rest[0] != ' ' && rest[0] != '\t' && rest[0] != '=' && rest[0] != '.') {
			continue
		}
		if !strings.Contains(trimmed, "=") {
			continue
		}
		return quotedValue(trimmed), idx + 1
	}
	return "", 0
}

// quotedValue extracts the text between the first pair of double quotes.
func quotedValue(line string) string {
	start := strings.IndexByte(line, '"')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(line[start+1:], '"')
	if end < 0 {
		return ""
	}
	return line[start+1 : start+1+end]
}

// scanDependencyKeys collects keys under a [section] header by line scan.
// Used only when the decoder rejects the manifest.
func scanDependencyKeys(content []byte, section string) []string {
	var keys []string
	current := ""

	for _, raw := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, "[") {
			current = strings.Trim(trimmed, "[]")
			continue
		}
		if current != section {
			continue
		}
		eq := strings.IndexByte(trimmed, '=')
		if eq <= 0 {
			continue
		}
		key := strings.TrimSpace(trimmed[:eq])
		// Dotted keys like serde.features declare the crate before the dot.
		if dot := strings.IndexByte(key, '.'); dot > 0 {
			key = key[:dot]
		}
		if key != "" {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)
	return slices.Compact(keys)
}

func sortedKeys(m map[string]any) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
