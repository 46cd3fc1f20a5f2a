package lint

import (
	"strings"

	"github.com/yaklabco/gorslint/pkg/rustsrc"
)

// ScanCache holds per-file line classifications computed once and shared
// by every rule that lints the file.
//
// # Purpose
//
// Several rules need the same per-line facts: the trimmed text, whether a
// line opens a function definition, whether it sits inside test-only
// code. Without caching, each of those rules would rescan the whole file;
// with it, the file is walked once and all rules share the result.
//
// # Thread Safety
//
// ScanCache is NOT thread-safe. It is designed for single-threaded use
// within one file's rule run, where rules execute sequentially.
// File-level parallelism is safe because each file gets its own
// RuleContext and ScanCache.
//
// The slices behind the accessors are shared across all rules; callers
// must not mutate returned values beyond reading them.
type ScanCache struct {
	lines   []string
	trimmed []string
	fnDef   []bool
	inTest  []bool

	allowUnwrap bool
	allowExpect bool
	testFile    bool
}

// buildScanCache classifies every line in a single pass over the snapshot.
func buildScanCache(file *rustsrc.FileSnapshot) *ScanCache {
	sc := &ScanCache{}
	if file == nil {
		return sc
	}

	count := file.LineCount()
	sc.lines = make([]string, count)
	sc.trimmed = make([]string, count)
	sc.fnDef = make([]bool, count)
	sc.inTest = make([]bool, count)

	var scope rustsrc.TestScope
	for idx := range count {
		text := file.LineText(idx + 1)
		sc.lines[idx] = text
		sc.trimmed[idx] = strings.TrimSpace(text)
		sc.fnDef[idx] = rustsrc.IsFunctionDef(text)

		scope.Observe(text, sc.fnDef[idx])
		sc.inTest[idx] = scope.InTest()
	}

	sc.allowUnwrap, sc.allowExpect = rustsrc.AllowDirectives(file)
	sc.testFile = rustsrc.IsTestFile(file.Path)

	return sc
}

// LineCount returns the number of classified lines.
func (sc *ScanCache) LineCount() int {
	return len(sc.lines)
}

// Line returns the raw text of the 1-based line, "" when out of range.
func (sc *ScanCache) Line(line int) string {
	if line < 1 || line > len(sc.lines) {
		return ""
	}
	return sc.lines[line-1]
}

// Trimmed returns the whitespace-trimmed text of the 1-based line.
func (sc *ScanCache) Trimmed(line int) string {
	if line < 1 || line > len(sc.trimmed) {
		return ""
	}
	return sc.trimmed[line-1]
}

// IsFunctionDef reports whether the 1-based line opens a function
// definition.
func (sc *ScanCache) IsFunctionDef(line int) bool {
	if line < 1 || line > len(sc.fnDef) {
		return false
	}
	return sc.fnDef[line-1]
}

// InTest reports whether the 1-based line sits inside a #[cfg(test)]
// module or a test-attributed function.
func (sc *ScanCache) InTest(line int) bool {
	if line < 1 || line > len(sc.inTest) {
		return false
	}
	return sc.inTest[line-1]
}

// AllowUnwrap reports whether the file header allows clippy::unwrap_used.
func (sc *ScanCache) AllowUnwrap() bool {
	return sc.allowUnwrap
}

// AllowExpect reports whether the file header allows clippy::expect_used.
func (sc *ScanCache) AllowExpect() bool {
	return sc.allowExpect
}

// IsTestFile reports whether the file path follows a test or benchmark
// layout convention.
func (sc *ScanCache) IsTestFile() bool {
	return sc.testFile
}
