package rustsrc_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/gorslint/pkg/rustsrc"
)

func TestIsFunctionDef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"plain fn", "fn main() {", true},
		{"indented fn", "    fn helper() {", true},
		{"pub fn", "pub fn api() -> u32 {", true},
		{"pub crate fn", "pub(crate) fn internal() {", true},
		{"async fn", "async fn run() {", true},
		{"pub async fn", "pub async fn serve() {", true},
		{"unsafe fn", "unsafe fn poke(ptr: *mut u8) {", true},
		{"pub async unsafe", "pub async unsafe fn wild() {", true},
		{"struct decl", "struct Function {", false},
		{"commented fn", "// fn old_code() {", false},
		{"closure", "let f = |x: i32| x + 1;", false},
		{"fn in expression", "let g = make_fn();", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := rustsrc.IsFunctionDef(testCase.line); got != testCase.expected {
				t.Errorf("IsFunctionDef(%q): expected %v, got %v", testCase.line, testCase.expected, got)
			}
		})
	}
}

func TestSignatureReturns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		text          string
		returnsResult bool
		returnsOption bool
	}{
		{"plain result", "fn f() -> Result<(), Error> {", true, false},
		{"anyhow result", "fn f() -> anyhow::Result<()> {", true, false},
		{"std result", "fn f() -> std::result::Result<T, E> {", true, false},
		{"io result", "fn f() -> io::Result<String> {", true, false},
		{"option", "fn f() -> Option<u32> {", false, true},
		{"unit", "fn f() {", false, false},
		{"scalar", "fn f() -> i64 {", false, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			gotResult, gotOption := rustsrc.SignatureReturns(testCase.text)
			if gotResult != testCase.returnsResult || gotOption != testCase.returnsOption {
				t.Errorf("SignatureReturns(%q): expected (%v, %v), got (%v, %v)",
					testCase.text, testCase.returnsResult, testCase.returnsOption, gotResult, gotOption)
			}
		})
	}
}

func TestLocateFunction(t *testing.T) {
	t.Parallel()

	t.Run("single line signature", func(t *testing.T) {
		t.Parallel()

		content := strings.Join([]string{
			"fn add(a: i32, b: i32) -> i32 {",
			"    a + b",
			"}",
		}, "\n")
		snapshot := rustsrc.NewFileSnapshot("math.rs", []byte(content))

		sig, ok := rustsrc.LocateFunction(snapshot, 0)
		if !ok {
			t.Fatal("expected function to be located")
		}
		if sig.Name != "add" {
			t.Errorf("expected name %q, got %q", "add", sig.Name)
		}
		if sig.StartLine != 1 || sig.EndLine != 3 {
			t.Errorf("expected lines 1-3, got %d-%d", sig.StartLine, sig.EndLine)
		}
		if sig.ReturnsResult || sig.ReturnsOption {
			t.Errorf("expected no Result/Option markers, got (%v, %v)", sig.ReturnsResult, sig.ReturnsOption)
		}
	})

	t.Run("multi line signature", func(t *testing.T) {
		t.Parallel()

		content := strings.Join([]string{
			"pub async fn process_batch<T>(",
			"    items: Vec<T>,",
			"    limit: usize,",
			") -> anyhow::Result<()> {",
			"    for item in items {",
			"        handle(item)?;",
			"    }",
			"    Ok(())",
			"}",
		}, "\n")
		snapshot := rustsrc.NewFileSnapshot("batch.rs", []byte(content))

		sig, ok := rustsrc.LocateFunction(snapshot, 0)
		if !ok {
			t.Fatal("expected function to be located")
		}
		if sig.Name != "process_batch" {
			t.Errorf("expected name %q, got %q", "process_batch", sig.Name)
		}
		if sig.StartLine != 1 || sig.EndLine != 9 {
			t.Errorf("expected lines 1-9, got %d-%d", sig.StartLine, sig.EndLine)
		}
		if !sig.ReturnsResult {
			t.Error("expected ReturnsResult for anyhow::Result return")
		}
	})

	t.Run("nested braces", func(t *testing.T) {
		t.Parallel()

		content := strings.Join([]string{
			"fn outer() {",
			"    if cond {",
			"        inner();",
			"    }",
			"    done();",
			"}",
			"",
			"fn next() {}",
		}, "\n")
		snapshot := rustsrc.NewFileSnapshot("flow.rs", []byte(content))

		sig, ok := rustsrc.LocateFunction(snapshot, 0)
		if !ok {
			t.Fatal("expected function to be located")
		}
		if sig.EndLine != 6 {
			t.Errorf("expected end at line 6, got %d", sig.EndLine)
		}
	})

	t.Run("truncated body ends at last line", func(t *testing.T) {
		t.Parallel()

		content := "fn broken() {\n    start();"
		snapshot := rustsrc.NewFileSnapshot("partial.rs", []byte(content))

		sig, ok := rustsrc.LocateFunction(snapshot, 0)
		if !ok {
			t.Fatal("expected function to be located")
		}
		if sig.EndLine != 2 {
			t.Errorf("expected end clamped to line 2, got %d", sig.EndLine)
		}
	})

	t.Run("option return", func(t *testing.T) {
		t.Parallel()

		content := "fn lookup(key: &str) -> Option<Value> {\n    None\n}"
		snapshot := rustsrc.NewFileSnapshot("store.rs", []byte(content))

		sig, ok := rustsrc.LocateFunction(snapshot, 0)
		if !ok {
			t.Fatal("expected function to be located")
		}
		if !sig.ReturnsOption || sig.ReturnsResult {
			t.Errorf("expected Option marker only, got (%v, %v)", sig.ReturnsResult, sig.ReturnsOption)
		}
	})

	t.Run("no fn token", func(t *testing.T) {
		t.Parallel()

		content := "struct Config {\n    path: String,\n}"
		snapshot := rustsrc.NewFileSnapshot("config.rs", []byte(content))

		if _, ok := rustsrc.LocateFunction(snapshot, 0); ok {
			t.Error("expected location to fail on a struct declaration")
		}
	})

	t.Run("no parameter list", func(t *testing.T) {
		t.Parallel()

		content := "fn incomplete"
		snapshot := rustsrc.NewFileSnapshot("stub.rs", []byte(content))

		if _, ok := rustsrc.LocateFunction(snapshot, 0); ok {
			t.Error("expected location to fail without a parameter list")
		}
	})

	t.Run("start index out of range", func(t *testing.T) {
		t.Parallel()

		snapshot := rustsrc.NewFileSnapshot("empty.rs", []byte("fn f() {}\n"))

		if _, ok := rustsrc.LocateFunction(snapshot, 99); ok {
			t.Error("expected location to fail past end of file")
		}
	})
}

func TestParseSignature(t *testing.T) {
	t.Parallel()

	content := strings.Join([]string{
		"pub async fn fetch<T: DeserializeOwned>(",
		"    url: &str,",
		") -> Result<T, FetchError> {",
		"    todo!()",
		"}",
	}, "\n")
	snapshot := rustsrc.NewFileSnapshot("client.rs", []byte(content))

	sig, ok := rustsrc.ParseSignature(snapshot, 0)
	if !ok {
		t.Fatal("expected signature to parse")
	}
	if sig.Name != "fetch" {
		t.Errorf("expected name %q, got %q", "fetch", sig.Name)
	}
	if sig.ReturnType != "Result<T, FetchError>" {
		t.Errorf("expected return type %q, got %q", "Result<T, FetchError>", sig.ReturnType)
	}
	if !sig.IsAsync() {
		t.Error("expected async signature")
	}
	if !sig.IsGeneric() {
		t.Error("expected generic signature")
	}
}
