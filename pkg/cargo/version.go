package cargo

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
)

// Version is a three-component Rust toolchain version. Missing patch
// components parse as zero, so "1.82" and "1.82.0" compare equal.
type Version struct {
	Major int
	Minor int
	Patch int
}

var versionRe = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?$`)

// ParseVersion parses a numeric version string. Channel names such as
// "stable", "beta", or "nightly-2025-01-01" are not versions and return
// false; callers treat those as never-too-old.
func ParseVersion(s string) (Version, bool) {
	match := versionRe.FindStringSubmatch(s)
	if match == nil {
		return Version{}, false
	}

	major, _ := strconv.Atoi(match[1])
	minor, _ := strconv.Atoi(match[2])
	patch := 0
	if match[3] != "" {
		patch, _ = strconv.Atoi(match[3])
	}

	return Version{Major: major, Minor: minor, Patch: patch}, true
}

// Compare returns -1, 0, or 1 ordering v against other.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, other.Patch)
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// String renders the version in major.minor.patch form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
