package reporter

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/gorslint/pkg/analysis"
)

// MarkdownRenderer writes a report as a Markdown document suitable for
// pasting into a PR description or a tracking issue.
type MarkdownRenderer struct {
	opts Options
}

// NewMarkdownRenderer creates a Markdown renderer.
func NewMarkdownRenderer(opts Options) *MarkdownRenderer {
	return &MarkdownRenderer{opts: opts}
}

// Render implements Renderer.
func (r *MarkdownRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	fmt.Fprintln(bw, "# Compliance Report")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Generated: %s\n", report.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(bw)

	r.renderTotals(bw, report)

	if len(report.Totals.ByKind) > 0 {
		r.renderKindTable(bw, report)
	}

	if len(report.ByFile) > 0 {
		r.renderFiles(bw, report)
	}

	return nil
}

func (r *MarkdownRenderer) renderTotals(bw *bufio.Writer, report *analysis.Report) {
	totals := report.Totals

	fmt.Fprintln(bw, "## Summary")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "- Files scanned: %d\n", totals.Files)
	fmt.Fprintf(bw, "- Files with violations: %d\n", totals.FilesWithViolations)
	fmt.Fprintf(bw, "- Total violations: %d\n", totals.Violations)
	if totals.Errors > 0 {
		fmt.Fprintf(bw, "- Errors: %d\n", totals.Errors)
	}
	if totals.Warnings > 0 {
		fmt.Fprintf(bw, "- Warnings: %d\n", totals.Warnings)
	}
	if totals.Infos > 0 {
		fmt.Fprintf(bw, "- Info: %d\n", totals.Infos)
	}
	if totals.Fixable > 0 {
		fmt.Fprintf(bw, "- Fixable: %d\n", totals.Fixable)
	}
	fmt.Fprintf(bw, "- **Compliance: %.1f%%**\n", totals.Compliance)
	fmt.Fprintln(bw)
}

func (r *MarkdownRenderer) renderKindTable(bw *bufio.Writer, report *analysis.Report) {
	kinds := make([]string, 0, len(report.Totals.ByKind))
	for kind := range report.Totals.ByKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	fmt.Fprintln(bw, "## Violations by Kind")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "| Kind | Count |")
	fmt.Fprintln(bw, "|------|-------|")
	for _, kind := range kinds {
		fmt.Fprintf(bw, "| %s | %d |\n", kind, report.Totals.ByKind[kind])
	}
	fmt.Fprintln(bw)
}

func (r *MarkdownRenderer) renderFiles(bw *bufio.Writer, report *analysis.Report) {
	// Group the flat violation list by file so each section lists its
	// violations in (line, kind) order.
	byPath := make(map[string][]analysis.ViolationEntry)
	for _, entry := range report.Violations {
		byPath[entry.FilePath] = append(byPath[entry.FilePath], entry)
	}

	fmt.Fprintln(bw, "## Files")
	fmt.Fprintln(bw)

	for _, file := range report.ByFile {
		entries := byPath[file.Path]
		if len(entries) == 0 {
			continue
		}

		fmt.Fprintf(bw, "### `%s` (%d)\n", file.Path, file.Violations)
		fmt.Fprintln(bw)
		for _, entry := range entries {
			line := fmt.Sprintf("- **%s** line %d: %s", entry.Kind, entry.Line, entry.Message)
			if entry.Suggestion != "" {
				line += fmt.Sprintf(" _(%s)_", strings.TrimSpace(entry.Suggestion))
			}
			fmt.Fprintln(bw, line)
		}
		fmt.Fprintln(bw)
	}
}
