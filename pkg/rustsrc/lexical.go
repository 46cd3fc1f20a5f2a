package rustsrc

import "strings"

// lexState tracks where a byte position sits during a line scan.
type lexState int

const (
	stateNormal lexState = iota
	stateString
	stateRawString
)

// IsInStringOrComment reports whether every occurrence of pattern in line
// lies inside a string literal, a raw string literal, or after a line
// comment marker. A single occurrence in real code makes the whole call
// false. Zero occurrences is a non-match and also returns false.
//
// The scan is a best-effort state machine over one line. Raw strings are
// recognized by their opener (r" or r#") but the number of # delimiters is
// not tracked; closing is the plain quote toggle. Block comments and
// multi-line strings are outside the model.
func IsInStringOrComment(line, pattern string) bool {
	if pattern == "" {
		return false
	}

	offsets := patternOffsets(line, pattern)
	if len(offsets) == 0 {
		return false
	}

	// Anything at or past the first // is treated as commented out.
	// The marker itself may sit inside a string; accepting that
	// mis-read keeps the scan single-pass.
	commentAt := strings.Index(line, "//")

	states := statesAt(line, offsets)

	for i, off := range offsets {
		if commentAt >= 0 && off >= commentAt {
			continue
		}
		if states[i] == stateNormal {
			return false
		}
	}

	return true
}

// RealOccurrences returns the byte offsets of the pattern occurrences
// that sit in real code: outside string literals and before any line
// comment marker. Offsets ascend. The same best-effort state machine as
// IsInStringOrComment backs the classification.
func RealOccurrences(line, pattern string) []int {
	if pattern == "" {
		return nil
	}

	offsets := patternOffsets(line, pattern)
	if len(offsets) == 0 {
		return nil
	}

	commentAt := strings.Index(line, "//")
	states := statesAt(line, offsets)

	var real []int
	for i, off := range offsets {
		if commentAt >= 0 && off >= commentAt {
			continue
		}
		if states[i] == stateNormal {
			real = append(real, off)
		}
	}

	return real
}

// patternOffsets returns the byte offsets of every occurrence of pattern,
// including overlapping ones.
func patternOffsets(line, pattern string) []int {
	var offsets []int
	for from := 0; ; {
		idx := strings.Index(line[from:], pattern)
		if idx < 0 {
			break
		}
		offsets = append(offsets, from+idx)
		from += idx + 1
	}
	return offsets
}

// statesAt walks the line once and records the lexical state at each of
// the given ascending byte offsets.
func statesAt(line string, offsets []int) []lexState {
	states := make([]lexState, len(offsets))
	next := 0

	state := stateNormal
	escaped := false

	for i := 0; i < len(line) && next < len(offsets); i++ {
		for next < len(offsets) && offsets[next] == i {
			states[next] = state
			next++
		}
		if next >= len(offsets) {
			break
		}

		c := line[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			// Raw strings have no escapes.
			if state != stateRawString {
				escaped = true
			}
		case '"':
			switch state {
			case stateNormal:
				if isRawOpener(line, i) {
					state = stateRawString
				} else {
					state = stateString
				}
			case stateString, stateRawString:
				state = stateNormal
			}
		}
	}

	return states
}

// isRawOpener reports whether the quote at index i is preceded by a raw
// string opener: an r immediately before it, with any number of # signs
// in between, and no identifier character before the r.
func isRawOpener(line string, i int) bool {
	j := i - 1
	for j >= 0 && line[j] == '#' {
		j--
	}
	if j < 0 || line[j] != 'r' {
		return false
	}
	if j > 0 && isIdentByte(line[j-1]) {
		return false
	}
	return true
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
