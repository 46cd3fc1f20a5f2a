package lint

import (
	"bytes"

	"github.com/yaklabco/gorslint/pkg/rustsrc"
)

// Line-based helpers.

// ContentLineCount returns the number of content lines in the file.
// A trailing newline does not open a final empty line, so the count
// matches what an editor's gutter shows for the last line of text.
func ContentLineCount(file *rustsrc.FileSnapshot) int {
	if file == nil {
		return 0
	}
	count := file.LineCount()
	if count == 0 {
		return 0
	}
	last := file.Lines[count-1]
	if last.StartOffset == last.EndOffset {
		count--
	}
	return count
}

// LineLength returns the byte length of the specified 1-based line
// (excluding the newline). Returns 0 if the line number is out of range.
func LineLength(file *rustsrc.FileSnapshot, lineNum int) int {
	if file == nil || lineNum < 1 || lineNum > file.LineCount() {
		return 0
	}
	line := file.Lines[lineNum-1]
	return line.NewlineStart - line.StartOffset
}

// IsBlankLine returns true if the line contains only whitespace.
func IsBlankLine(file *rustsrc.FileSnapshot, lineNum int) bool {
	return len(bytes.TrimSpace(file.LineContent(lineNum))) == 0
}

// PrevNonBlankLine returns the 1-based number of the nearest line above
// lineNum that is not blank, or 0 when no such line exists.
func PrevNonBlankLine(file *rustsrc.FileSnapshot, lineNum int) int {
	for ln := lineNum - 1; ln >= 1; ln-- {
		if !IsBlankLine(file, ln) {
			return ln
		}
	}
	return 0
}
