package langdetect_test

import (
	"testing"

	"github.com/yaklabco/gorslint/pkg/langdetect"
)

func TestIsRustSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    bool
	}{
		{
			name: "rs extension",
			path: "src/main.rs",
			want: true,
		},
		{
			name: "rs extension wins without content",
			path: "lib.rs",
			want: true,
		},
		{
			name:    "other extension",
			path:    "build.py",
			content: "def main():\n    pass\n",
			want:    false,
		},
		{
			name:    "toml is not source",
			path:    "Cargo.toml",
			content: "[package]\nname = \"demo\"\n",
			want:    false,
		},
		{
			// Content classification stays conservative: a bare Rust
			// snippet with no extension is not claimed as Rust.
			name:    "extensionless rust snippet not claimed",
			path:    "rustfmt-check",
			content: "fn main() {\n    println!(\"hi\");\n}\n",
			want:    false,
		},
		{
			name: "extensionless empty",
			path: "LICENSE",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := langdetect.IsRustSource(tt.path, []byte(tt.content))
			if got != tt.want {
				t.Errorf("IsRustSource(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsVendored(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"vendor/crate/src/lib.rs", true},
		{"target/debug/build/out.rs", true},
		{"project/target/release/foo.rs", true},
		{"node_modules/pkg/index.js", true},
		{"src/main.rs", false},
		{"crates/core/src/lib.rs", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if got := langdetect.IsVendored(tt.path); got != tt.want {
				t.Errorf("IsVendored(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsGenerated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    bool
	}{
		{
			name:    "generated banner",
			path:    "src/proto.rs",
			content: "// @generated by prost-build\npub struct Msg {}\n",
			want:    true,
		},
		{
			name:    "automatically generated banner",
			path:    "src/bindings.rs",
			content: "/* Automatically generated by bindgen. Do not edit. */\n",
			want:    true,
		},
		{
			name:    "hand-written",
			path:    "src/main.rs",
			content: "fn main() {}\n",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := langdetect.IsGenerated(tt.path, []byte(tt.content))
			if got != tt.want {
				t.Errorf("IsGenerated(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestShouldScan(t *testing.T) {
	t.Parallel()

	if langdetect.ShouldScan("vendor/dep/src/lib.rs", []byte("fn x() {}")) {
		t.Error("vendored file should not be scanned")
	}
	if !langdetect.ShouldScan("src/main.rs", []byte("fn main() {}")) {
		t.Error("plain source file should be scanned")
	}
	if langdetect.ShouldScan("src/gen.rs", []byte("// @generated\nfn x() {}")) {
		t.Error("generated file should not be scanned")
	}
}
