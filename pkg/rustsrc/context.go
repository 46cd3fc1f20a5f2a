package rustsrc

import "strings"

// ErrorHandlingStyle is the dominant error-handling idiom of one file.
// Exactly one style is assigned per file by a fixed precedence test.
type ErrorHandlingStyle string

const (
	// StyleAnyhowResult marks files built on anyhow's Result type.
	StyleAnyhowResult ErrorHandlingStyle = "anyhow-result"

	// StyleCustomResult marks files using a crate-local Result alias.
	StyleCustomResult ErrorHandlingStyle = "custom-result"

	// StyleStdResult marks files spelling out std::result::Result.
	StyleStdResult ErrorHandlingStyle = "std-result"

	// StyleOptionBased marks files signalling absence through Option.
	StyleOptionBased ErrorHandlingStyle = "option-based"

	// StylePanic marks files that panic or unwrap instead of returning
	// errors.
	StylePanic ErrorHandlingStyle = "panic"

	// StyleUnknown marks files matching none of the heuristics.
	StyleUnknown ErrorHandlingStyle = "unknown"
)

// contextWindow is the number of lines captured on each side of the
// target line.
const contextWindow = 10

// CodeContext is a read-only description of the code surrounding one
// line. It is built lazily, only for lines that already triggered a
// violation.
type CodeContext struct {
	// FunctionName is the enclosing function's name, empty when no
	// preceding definition is found.
	FunctionName string `json:"function_name,omitempty"`

	// FunctionSignature is the whitespace-joined signature text of the
	// enclosing function.
	FunctionSignature string `json:"function_signature,omitempty"`

	// ReturnType is the enclosing function's return-type text.
	ReturnType string `json:"return_type,omitempty"`

	// IsAsync reports whether the enclosing signature mentions async.
	IsAsync bool `json:"is_async"`

	// IsGeneric reports whether the enclosing signature carries generics.
	IsGeneric bool `json:"is_generic"`

	// TraitImpl is the nearest preceding trait implementation header,
	// empty when none precedes the line.
	TraitImpl string `json:"trait_impl,omitempty"`

	// SurroundingCode is the clamped window of source lines around the
	// target line.
	SurroundingCode []string `json:"surrounding_code"`

	// Imports lists the file's use statements.
	Imports []string `json:"imports"`

	// ErrorHandling is the file's dominant error-handling style.
	ErrorHandling ErrorHandlingStyle `json:"error_handling_style"`
}

// ExtractContext builds the CodeContext for a 1-based target line. Every
// lookup is a bounded backward or forward scan over the line index; the
// call never fails, it degrades to empty fields.
func ExtractContext(snap *FileSnapshot, line int) CodeContext {
	ctx := CodeContext{
		SurroundingCode: surroundingLines(snap, line),
		Imports:         Imports(snap),
		TraitImpl:       enclosingTraitImpl(snap, line),
	}

	if sig, ok := enclosingSignature(snap, line); ok {
		ctx.FunctionName = sig.Name
		ctx.FunctionSignature = sig.Text
		ctx.ReturnType = sig.ReturnType
		ctx.IsAsync = sig.IsAsync()
		ctx.IsGeneric = sig.IsGeneric()
	}

	ctx.ErrorHandling = DetectErrorHandlingStyle(ctx.Imports, string(snap.Content))

	return ctx
}

// surroundingLines returns the window of lines around the 1-based target,
// clamped to the file bounds.
func surroundingLines(snap *FileSnapshot, line int) []string {
	count := snap.LineCount()
	if count == 0 {
		return nil
	}

	start := line - 1 - contextWindow
	if start < 0 {
		start = 0
	}
	end := line + contextWindow
	if end > count {
		end = count
	}
	if start >= end {
		return nil
	}

	window := make([]string, 0, end-start)
	for idx := start; idx < end; idx++ {
		window = append(window, snap.lineTextAt(idx))
	}
	return window
}

// Imports returns the file's use statements, trimmed.
func Imports(snap *FileSnapshot) []string {
	var imports []string
	for idx := 0; idx < snap.LineCount(); idx++ {
		trimmed := strings.TrimSpace(snap.lineTextAt(idx))
		if strings.HasPrefix(trimmed, "use ") {
			imports = append(imports, trimmed)
		}
	}
	return imports
}

// enclosingSignature scans backward from the 1-based target line
// (inclusive) for the nearest function definition and reassembles its
// signature. Only the signature half runs here; the forward boundary walk
// is not needed for context.
func enclosingSignature(snap *FileSnapshot, line int) (Signature, bool) {
	start := line - 1
	if start >= snap.LineCount() {
		start = snap.LineCount() - 1
	}

	for idx := start; idx >= 0; idx-- {
		text := snap.lineTextAt(idx)
		if strings.HasPrefix(strings.TrimSpace(text), "//") {
			continue
		}
		if IsFunctionDef(text) {
			return ParseSignature(snap, idx)
		}
	}

	return Signature{}, false
}

// enclosingTraitImpl scans backward from the 1-based target line
// (inclusive) for the nearest line containing both impl and for, the
// shape of a trait implementation header.
func enclosingTraitImpl(snap *FileSnapshot, line int) string {
	start := line - 1
	if start >= snap.LineCount() {
		start = snap.LineCount() - 1
	}

	for idx := start; idx >= 0; idx-- {
		text := snap.lineTextAt(idx)
		if strings.Contains(text, "impl") && strings.Contains(text, "for") {
			return strings.TrimSpace(text)
		}
	}

	return ""
}

// DetectErrorHandlingStyle classifies a file's dominant error-handling
// idiom. The precedence is fixed and first-match-wins: anyhow beats a
// custom Result, which beats the fully qualified std form, which beats
// Option, which beats panicking. Files matching several heuristics get
// exactly one deterministic label.
func DetectErrorHandlingStyle(imports []string, content string) ErrorHandlingStyle {
	for _, imp := range imports {
		if strings.Contains(imp, "anyhow") {
			return StyleAnyhowResult
		}
	}

	switch {
	case strings.Contains(content, "anyhow::Result"):
		return StyleAnyhowResult
	case strings.Contains(content, "Result<") && !strings.Contains(content, "std::result::Result"):
		return StyleCustomResult
	case strings.Contains(content, "Result<"):
		return StyleStdResult
	case strings.Contains(content, "Option<"):
		return StyleOptionBased
	case strings.Contains(content, "panic!") || strings.Contains(content, ".unwrap()"):
		return StylePanic
	default:
		return StyleUnknown
	}
}
