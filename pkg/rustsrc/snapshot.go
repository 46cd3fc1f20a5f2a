// Package rustsrc provides the line-oriented source model for gorslint.
// It defines:
// - FileSnapshot: an immutable view of a Rust source file with a line index
// - Lexical classification: string/comment detection for pattern matches
// - Function boundary scanning via brace-depth tracking
// - Code context extraction around a target line
//
// Nothing in this package builds a syntax tree. All operations are linear,
// best-effort scans over already-loaded text.
package rustsrc

// FileSnapshot is an immutable view of a source file at a specific time.
// It holds the raw content and per-line metadata so that line slicing
// never reallocates.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewFileSnapshot creates a FileSnapshot from content, building the line index.
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}
