package cargo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Toolchain file names recognized next to a manifest.
const (
	ToolchainName       = "rust-toolchain.toml"
	ToolchainLegacyName = "rust-toolchain"
)

type toolchainTOML struct {
	Toolchain struct {
		Channel string `toml:"channel"`
	} `toml:"toolchain"`
}

// ParseToolchainChannel extracts the channel from rust-toolchain.toml
// content. The legacy bare rust-toolchain file holds just the channel
// string, which is handled last. Returns false when no channel is
// declared.
func ParseToolchainChannel(content []byte) (string, bool) {
	var doc toolchainTOML
	if err := toml.Unmarshal(content, &doc); err == nil && doc.Toolchain.Channel != "" {
		return doc.Toolchain.Channel, true
	}

	if channel, _ := scanKeyValue(content, "channel"); channel != "" {
		return channel, true
	}

	// Legacy single-line format: the file body is the channel itself.
	if channel := bareChannel(content); channel != "" {
		return channel, true
	}

	return "", false
}

// DirResolver resolves toolchain channels by reading the conventional
// files from a directory. It satisfies the lint engine's resolver
// interface.
type DirResolver struct{}

// Channel reads rust-toolchain.toml, then the legacy rust-toolchain file,
// from dir. Absent or unreadable files resolve to not-found.
func (DirResolver) Channel(dir string) (string, bool) {
	for _, name := range []string{ToolchainName, ToolchainLegacyName} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if channel, ok := ParseToolchainChannel(content); ok {
			return channel, true
		}
	}
	return "", false
}

// bareChannel reads the first non-blank, non-comment line as a channel,
// rejecting anything that looks like TOML structure.
func bareChannel(content []byte) string {
	for _, raw := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.ContainsAny(trimmed, "[=") {
			return ""
		}
		return trimmed
	}
	return ""
}
