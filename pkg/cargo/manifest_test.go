package cargo_test

import (
	"testing"

	"github.com/yaklabco/gorslint/pkg/cargo"
)

func TestParseManifest(t *testing.T) {
	t.Parallel()

	t.Run("full manifest", func(t *testing.T) {
		t.Parallel()

		content := []byte(`[package]
name = "acme-svc"
version = "0.3.1"
edition = "2024"
rust-version = "1.82.0"

[dependencies]
anyhow = "1"
serde = { version = "1", features = ["derive"] }
tokio = { version = "1", features = ["full"] }

[dev-dependencies]
proptest = "1"
`)

		manifest := cargo.ParseManifest("Cargo.toml", content)

		if manifest.Name != "acme-svc" {
			t.Errorf("expected name %q, got %q", "acme-svc", manifest.Name)
		}
		if manifest.Edition != "2024" {
			t.Errorf("expected edition %q, got %q", "2024", manifest.Edition)
		}
		if manifest.EditionLine != 4 {
			t.Errorf("expected edition line 4, got %d", manifest.EditionLine)
		}
		if manifest.RustVersion != "1.82.0" {
			t.Errorf("expected rust-version %q, got %q", "1.82.0", manifest.RustVersion)
		}
		if manifest.RustVersionLine != 5 {
			t.Errorf("expected rust-version line 5, got %d", manifest.RustVersionLine)
		}

		wantDeps := []string{"anyhow", "serde", "tokio"}
		if len(manifest.Dependencies) != len(wantDeps) {
			t.Fatalf("expected %d dependencies, got %v", len(wantDeps), manifest.Dependencies)
		}
		for i, dep := range wantDeps {
			if manifest.Dependencies[i] != dep {
				t.Errorf("dependency %d: expected %q, got %q", i, dep, manifest.Dependencies[i])
			}
		}
		if !manifest.HasDependency("serde") {
			t.Error("expected HasDependency(serde) to be true")
		}
		if manifest.HasDependency("rand") {
			t.Error("expected HasDependency(rand) to be false")
		}
	})

	t.Run("missing edition", func(t *testing.T) {
		t.Parallel()

		content := []byte("[package]\nname = \"bare\"\n")
		manifest := cargo.ParseManifest("Cargo.toml", content)

		if manifest.Edition != "" {
			t.Errorf("expected empty edition, got %q", manifest.Edition)
		}
		if manifest.EditionLine != 0 {
			t.Errorf("expected edition line 0, got %d", manifest.EditionLine)
		}
	})

	t.Run("crate named like edition does not match", func(t *testing.T) {
		t.Parallel()

		content := []byte("[dependencies]\nedition-guide = \"1.0\"\n")
		manifest := cargo.ParseManifest("Cargo.toml", content)

		if manifest.EditionLine != 0 {
			t.Errorf("expected no edition line, got %d", manifest.EditionLine)
		}
	})

	t.Run("workspace inherited edition degrades to line scan", func(t *testing.T) {
		t.Parallel()

		// edition.workspace = true cannot decode into a string, so the
		// whole decode fails and the line scan takes over.
		content := []byte(`[package]
name = "member"
edition.workspace = true

[dependencies]
anyhow = "1"
`)
		manifest := cargo.ParseManifest("Cargo.toml", content)

		if manifest.EditionLine != 3 {
			t.Errorf("expected edition line 3, got %d", manifest.EditionLine)
		}
		if len(manifest.Dependencies) != 1 || manifest.Dependencies[0] != "anyhow" {
			t.Errorf("expected fallback dependency scan to find anyhow, got %v", manifest.Dependencies)
		}
	})

	t.Run("malformed manifest still yields a model", func(t *testing.T) {
		t.Parallel()

		content := []byte("[package\nname = \"broken\"\nedition = \"2021\"\n")
		manifest := cargo.ParseManifest("Cargo.toml", content)

		if manifest.Edition != "2021" {
			t.Errorf("expected line-scanned edition 2021, got %q", manifest.Edition)
		}
		if manifest.EditionLine != 3 {
			t.Errorf("expected edition line 3, got %d", manifest.EditionLine)
		}
	})
}
