// Package rules provides the built-in lint rules for gorslint.
//
// # Rule Domains
//
// This package contains rule implementations across several domains:
//
//   - Lexical patterns:
//
//   - RS001: no-underscore-bandaid - Underscore parameters and bindings
//
//   - RS002: no-unwrap - .unwrap() in production code
//
//   - RS003: no-expect - .expect() in production code
//
//   - RS011: custom-pattern - Project-specific banned patterns
//
//   - Size limits:
//
//   - RS004: file-too-large - Files over the maximum line count
//
//   - RS005: function-too-large - Functions over the maximum line count
//
//   - RS006: line-too-long - Lines over the maximum byte length
//
//   - Documentation:
//
//   - RS007: missing-docs - Public items without doc comments
//
//   - Manifest (Cargo.toml):
//
//   - RS008: require-edition - Accepted Rust editions
//
//   - RS009: require-dependencies - Required crates present
//
//   - RS010: min-rust-version - Minimum toolchain version
//
// # Production Gating
//
// The unwrap, expect, and custom-pattern rules only fire on production
// code. Test files (paths under tests/ or benches/, or named *_test.rs),
// code inside #[cfg(test)] modules or #[test] functions, files carrying
// #![allow(clippy::unwrap_used)] style attributes, comment lines, and
// occurrences confined to string literals are all exempt.
//
// # Rule Packs
//
// Rule packs are configuration presets for common use cases:
//
//   - core: standard production checks (the built-in defaults)
//   - strict: every rule as an error, required dependencies enforced
//   - relaxed: only unwrap/expect checks, minimal noise
//   - manifest: Cargo.toml checks only
//
// Use PackByName or Packs to access pack definitions programmatically.
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll.
// Each rule follows the lint.Rule interface and uses the RuleContext,
// ViolationBuilder, and EditBuilder infrastructure.
package rules
