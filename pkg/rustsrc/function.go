package rustsrc

import (
	"regexp"
	"strings"
)

// FunctionDefPattern matches the opening line of a Rust function
// definition: optional visibility, optional async, optional unsafe, then fn.
const FunctionDefPattern = `^\s*(pub(\([^)]*\))?\s+)?(async\s+)?(unsafe\s+)?fn\s+`

var functionDefRe = regexp.MustCompile(FunctionDefPattern)

// IsFunctionDef reports whether the line opens a function definition.
func IsFunctionDef(line string) bool {
	return functionDefRe.MatchString(line)
}

// Signature is the reassembled header of a function: the definition lines
// joined by single spaces, through the line carrying the opening brace.
type Signature struct {
	// Name is the function name, without generics or parameters.
	Name string

	// Text is the whitespace-joined signature text.
	Text string

	// ReturnType is the text after ->, trimmed, without the trailing
	// opening brace. Empty when the function returns unit.
	ReturnType string
}

// IsAsync reports whether the signature declares an async function.
func (s Signature) IsAsync() bool {
	return strings.Contains(s.Text, "async")
}

// IsGeneric reports whether the signature carries generic parameters.
func (s Signature) IsGeneric() bool {
	return strings.Contains(s.Text, "<")
}

// FunctionSignature describes a located function with its body extent.
type FunctionSignature struct {
	// Name is the function name.
	Name string

	// StartLine is the 1-based line of the definition.
	StartLine int

	// EndLine is the 1-based line carrying the balancing closing brace.
	// For truncated input this is the last line scanned.
	EndLine int

	// ReturnsResult is true when the signature carries a Result return
	// marker. The test is textual, not type-resolved.
	ReturnsResult bool

	// ReturnsOption is true when the signature carries an Option return
	// marker.
	ReturnsOption bool
}

// resultMarkers are the literal return-type markers treated as Result.
// A local alias merely named like Result is not detected; that imprecision
// is the cost of staying off the type system.
var resultMarkers = []string{
	"-> Result",
	"-> anyhow::Result",
	"-> std::result::Result",
	"-> io::Result",
}

// SignatureReturns reports (returnsResult, returnsOption) for signature text.
func SignatureReturns(text string) (bool, bool) {
	returnsResult := false
	for _, marker := range resultMarkers {
		if strings.Contains(text, marker) {
			returnsResult = true
			break
		}
	}
	return returnsResult, strings.Contains(text, "-> Option")
}

// ParseSignature reassembles the signature starting at the 0-based line
// startIdx. Lines are joined by a single space until one contains an
// opening brace; without a brace the rest of the file joins in. Returns
// false when the assembled text has no fn token or no parameter list.
func ParseSignature(snap *FileSnapshot, startIdx int) (Signature, bool) {
	text, _ := collectSignature(snap, startIdx)
	return parseSignatureText(text)
}

// LocateFunction locates the function starting at the 0-based line
// startIdx: signature assembly plus the brace-depth walk to the balancing
// closing brace. Returns false when no fn token is present; truncated
// bodies degrade to the last line instead of failing.
func LocateFunction(snap *FileSnapshot, startIdx int) (FunctionSignature, bool) {
	if startIdx < 0 || startIdx >= snap.LineCount() {
		return FunctionSignature{}, false
	}

	text, braceIdx := collectSignature(snap, startIdx)
	sig, ok := parseSignatureText(text)
	if !ok {
		return FunctionSignature{}, false
	}

	returnsResult, returnsOption := SignatureReturns(text)

	return FunctionSignature{
		Name:          sig.Name,
		StartLine:     startIdx + 1,
		EndLine:       findBlockEnd(snap, braceIdx) + 1,
		ReturnsResult: returnsResult,
		ReturnsOption: returnsOption,
	}, true
}

// collectSignature joins lines from startIdx until the first line
// containing an opening brace, returning the joined text and the 0-based
// index of the brace line. Without a brace the last line index is
// returned and the text covers the remainder of the file.
func collectSignature(snap *FileSnapshot, startIdx int) (string, int) {
	var parts []string

	idx := startIdx
	for idx < snap.LineCount() {
		line := snap.lineTextAt(idx)
		parts = append(parts, line)
		if strings.Contains(line, "{") {
			return strings.Join(parts, " "), idx
		}
		idx++
	}

	return strings.Join(parts, " "), snap.LineCount() - 1
}

// parseSignatureText extracts name and return type from joined signature
// text. The name is the substring after the first fn token, truncated at
// the first ( or <.
func parseSignatureText(text string) (Signature, bool) {
	nameStart := strings.Index(text, "fn ")
	if nameStart < 0 {
		return Signature{}, false
	}

	namePart := text[nameStart+3:]
	end := strings.IndexAny(namePart, "(<")
	if end < 0 {
		return Signature{}, false
	}

	return Signature{
		Name:       strings.TrimSpace(namePart[:end]),
		Text:       text,
		ReturnType: returnTypeText(text),
	}, true
}

// returnTypeText extracts the trimmed return-type text after the first ->,
// dropping the trailing opening brace when the header line carries it.
func returnTypeText(text string) string {
	idx := strings.Index(text, "->")
	if idx < 0 {
		return ""
	}
	ret := text[idx+2:]
	ret = strings.TrimSuffix(strings.TrimSpace(ret), "{")
	return strings.TrimSpace(ret)
}

// findBlockEnd walks from the line holding the opening brace with a depth
// counter initialized to 1, incrementing on { and decrementing on }. The
// end is the first line where the depth reaches zero. Reaching the end of
// input first returns the last scanned line.
func findBlockEnd(snap *FileSnapshot, braceIdx int) int {
	depth := 1

	for idx := braceIdx + 1; idx < snap.LineCount(); idx++ {
		line := snap.lineTextAt(idx)
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return idx
				}
			}
		}
	}

	return snap.LineCount() - 1
}
