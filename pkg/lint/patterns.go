package lint

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/yaklabco/gorslint/pkg/config"
)

// Pattern construction errors. Both are configuration errors: a scan must
// never start with a broken pattern set, so NewPatternSet fails before
// any file is touched.
var (
	// ErrInvalidPattern indicates a custom pattern whose regular
	// expression does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnknownPatternKind indicates a custom pattern naming a violation
	// kind outside the closed set.
	ErrUnknownPatternKind = errors.New("unknown pattern kind")
)

// Built-in pattern sources. The structural function-definition pattern is
// rustsrc.FunctionDefPattern, shared with the boundary scanner; the set
// here carries only the violation-producing patterns.
const (
	underscoreParamPattern = `fn\s+\w+[^{]*\b_\w+\s*:`
	underscoreLetPattern   = `^\s*let\s+_\s*=`
	unwrapCallPattern      = `\.unwrap\(\)`
	expectCallPattern      = `\.expect\(`
)

// CompiledPattern is one user-supplied pattern ready to match.
type CompiledPattern struct {
	// Name identifies the pattern in output and error messages.
	Name string

	// Kind is the violation kind attached to matches.
	Kind ViolationKind

	// Severity is the severity attached to matches.
	Severity config.Severity

	// Message is the violation message for a match.
	Message string

	// Regexp is the compiled expression.
	Regexp *regexp.Regexp
}

// PatternSet is the compiled pattern library for one run. It is built
// once before scanning starts and passed into each scan by dependency
// injection; nothing in it changes afterwards, so sharing across
// concurrent file scans is safe.
type PatternSet struct {
	underscoreParam *regexp.Regexp
	underscoreLet   *regexp.Regexp
	unwrapCall      *regexp.Regexp
	expectCall      *regexp.Regexp

	custom []CompiledPattern
}

// NewPatternSet compiles the built-in patterns plus the enabled custom
// patterns. A custom pattern that does not compile fails the whole
// construction with ErrInvalidPattern naming the pattern; a kind outside
// the closed set fails with ErrUnknownPatternKind. Disabled patterns are
// dropped here so rules never see them.
func NewPatternSet(patterns []config.CustomPattern) (*PatternSet, error) {
	set := &PatternSet{
		underscoreParam: regexp.MustCompile(underscoreParamPattern),
		underscoreLet:   regexp.MustCompile(underscoreLetPattern),
		unwrapCall:      regexp.MustCompile(unwrapCallPattern),
		expectCall:      regexp.MustCompile(expectCallPattern),
	}

	for _, p := range patterns {
		if !p.IsEnabled() {
			continue
		}

		compiled, err := compilePattern(p)
		if err != nil {
			return nil, err
		}
		set.custom = append(set.custom, compiled)
	}

	return set, nil
}

// compilePattern validates and compiles a single custom pattern.
func compilePattern(p config.CustomPattern) (CompiledPattern, error) {
	re, err := regexp.Compile(p.Pattern)
	if err != nil {
		return CompiledPattern{}, fmt.Errorf("%w %q: %w", ErrInvalidPattern, p.Name, err)
	}

	kind := KindUnderscoreBandaid
	if p.Kind != "" {
		parsed, ok := ParseKind(p.Kind)
		if !ok {
			return CompiledPattern{}, fmt.Errorf("%w %q in pattern %q", ErrUnknownPatternKind, p.Kind, p.Name)
		}
		kind = parsed
	}

	severity := config.SeverityWarning
	if p.Severity != "" {
		severity = config.Severity(p.Severity)
	}

	return CompiledPattern{
		Name:     p.Name,
		Kind:     kind,
		Severity: severity,
		Message:  p.Message,
		Regexp:   re,
	}, nil
}

// UnderscoreParam matches an underscore-prefixed function parameter.
func (ps *PatternSet) UnderscoreParam() *regexp.Regexp {
	return ps.underscoreParam
}

// UnderscoreLet matches a discarding let-underscore binding.
func (ps *PatternSet) UnderscoreLet() *regexp.Regexp {
	return ps.underscoreLet
}

// UnwrapCall matches an .unwrap() call.
func (ps *PatternSet) UnwrapCall() *regexp.Regexp {
	return ps.unwrapCall
}

// ExpectCall matches the opening of an .expect( call.
func (ps *PatternSet) ExpectCall() *regexp.Regexp {
	return ps.expectCall
}

// Custom returns the compiled custom patterns. Callers must not mutate
// the returned slice.
func (ps *PatternSet) Custom() []CompiledPattern {
	return ps.custom
}
