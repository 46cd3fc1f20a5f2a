// Package langdetect decides which discovered files belong in a scan.
// It uses go-enry to recognize Rust sources and to skip vendored and
// generated code that would otherwise drown a report in noise.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langRust = "Rust"

// IsRustSource reports whether the file should be scanned as Rust source.
// The extension decides for the common case; extensionless candidates fall
// back to content classification so scripts and misc files are not
// misattributed by name alone.
func IsRustSource(path string, content []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".rs" {
		return true
	}
	if ext != "" {
		return false
	}
	if len(content) == 0 {
		return false
	}
	lang := enry.GetLanguage(filepath.Base(path), content)
	return lang == langRust
}

// IsVendored reports whether the path looks like third-party code checked
// into the tree (vendor/, target/, node_modules, and friends).
func IsVendored(path string) bool {
	rel := filepath.ToSlash(path)
	if enry.IsVendor(rel) {
		return true
	}
	// Cargo build output is not in enry's vendor list but never belongs
	// in a compliance scan.
	for _, part := range strings.Split(rel, "/") {
		if part == "target" {
			return true
		}
	}
	return false
}

// IsGenerated reports whether the content identifies itself as
// machine-generated. Generated code is exempt from style rules; flagging
// it would only train people to ignore the report.
func IsGenerated(path string, content []byte) bool {
	if enry.IsGenerated(filepath.ToSlash(path), content) {
		return true
	}
	// Common Rust codegen banners enry does not know about.
	head := content
	if len(head) > 512 {
		head = head[:512]
	}
	banner := string(head)
	return strings.Contains(banner, "@generated") ||
		strings.Contains(banner, "Automatically generated by")
}

// ShouldScan combines the discovery filters: Rust source, not vendored,
// not generated.
func ShouldScan(path string, content []byte) bool {
	if IsVendored(path) {
		return false
	}
	if !IsRustSource(path, content) {
		return false
	}
	return !IsGenerated(path, content)
}
