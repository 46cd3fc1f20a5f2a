package rustsrc

import "strings"

// IsTestFile reports whether the path names a test or benchmark file by
// the usual cargo layout conventions.
func IsTestFile(path string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")
	return strings.Contains(normalized, "/tests/") ||
		strings.Contains(normalized, "/benches/") ||
		strings.Contains(normalized, "/test_") ||
		strings.HasSuffix(normalized, "_test.rs") ||
		strings.HasSuffix(normalized, "_bench.rs")
}

// AllowDirectives scans the file header for inner allow attributes and
// reports (allowUnwrap, allowExpect). The scan stops at the first line
// that is not an attribute, doc comment, or blank, so the attributes must
// sit at the top of the file.
func AllowDirectives(snap *FileSnapshot) (bool, bool) {
	allowUnwrap := false
	allowExpect := false

	for idx := 0; idx < snap.LineCount(); idx++ {
		trimmed := strings.TrimSpace(snap.lineTextAt(idx))

		if strings.HasPrefix(trimmed, "#![allow(") {
			if strings.Contains(trimmed, "clippy::unwrap_used") {
				allowUnwrap = true
			}
			if strings.Contains(trimmed, "clippy::expect_used") {
				allowExpect = true
			}
		}

		// Attribute arguments may continue on their own line.
		if strings.Contains(trimmed, "clippy::unwrap_used") {
			allowUnwrap = true
		}
		if strings.Contains(trimmed, "clippy::expect_used") {
			allowExpect = true
		}

		if trimmed != "" &&
			!strings.HasPrefix(trimmed, "#") &&
			!strings.HasPrefix(trimmed, "//!") {
			break
		}
	}

	return allowUnwrap, allowExpect
}

// TestScope tracks, line by line, whether the scan currently sits inside
// test-only code: a #[cfg(test)] module or a #[test]-attributed function.
// Feed every line in order through Observe, then ask InTest.
type TestScope struct {
	depth int

	inTestModule  bool
	moduleDepth   int
	pendingModule bool
	nextModTest   bool

	inTestFn   bool
	nextFnTest bool
}

// testAttrs mark a function as test-only.
var testAttrs = []string{"#[test]", "#[tokio::test]", "#[bench]"}

// Observe consumes the next source line. isFunctionDef tells the tracker
// the line opens a function definition, so the caller's pattern match is
// reused instead of a second one here.
func (t *TestScope) Observe(line string, isFunctionDef bool) {
	trimmed := strings.TrimSpace(line)

	depthBefore := t.depth
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '{':
			t.depth++
		case '}':
			if t.depth > 0 {
				t.depth--
			}
		}
	}

	if t.pendingModule && strings.Contains(line, "{") {
		t.pendingModule = false
		if t.depth > depthBefore {
			t.inTestModule = true
			t.moduleDepth = depthBefore + 1
		}
	}

	// Leaving the module's scope ends the exemption.
	if t.inTestModule && t.depth < t.moduleDepth {
		t.inTestModule = false
	}

	if strings.Contains(trimmed, "#[cfg(test)]") {
		t.nextModTest = true
		// Attribute and declaration may share a line.
		if strings.Contains(trimmed, "mod ") {
			t.nextModTest = false
			t.enterModule(line, depthBefore)
		}
	}

	if t.nextModTest && isTestModuleDecl(trimmed) {
		t.nextModTest = false
		t.enterModule(line, depthBefore)
	}

	for _, attr := range testAttrs {
		if strings.Contains(trimmed, attr) {
			t.nextFnTest = true
			break
		}
	}

	if isFunctionDef {
		t.inTestFn = t.nextFnTest
		t.nextFnTest = false
	}
}

// enterModule records the test module opened on the current line. A
// module whose body opens and closes within the line needs no tracking;
// one whose brace has not appeared yet is picked up on a later line.
func (t *TestScope) enterModule(line string, depthBefore int) {
	if !strings.Contains(line, "{") {
		t.pendingModule = true
		return
	}
	if t.depth > depthBefore {
		t.inTestModule = true
		t.moduleDepth = depthBefore + 1
	}
}

// InTest reports whether the most recently observed line is test-only.
func (t *TestScope) InTest() bool {
	return t.inTestModule || t.inTestFn
}

// isTestModuleDecl matches mod declarations that name test modules.
func isTestModuleDecl(trimmed string) bool {
	if strings.HasPrefix(trimmed, "mod tests") {
		return true
	}
	return strings.HasPrefix(trimmed, "mod ") && strings.Contains(trimmed, "test")
}
