package rustsrc_test

import (
	"testing"

	"github.com/yaklabco/gorslint/pkg/rustsrc"
)

func TestIsInStringOrComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		pattern  string
		expected bool
	}{
		{
			name:     "empty pattern",
			line:     `foo().unwrap();`,
			pattern:  "",
			expected: false,
		},
		{
			name:     "pattern absent",
			line:     `let value = compute()?;`,
			pattern:  ".unwrap()",
			expected: false,
		},
		{
			name:     "plain call in code",
			line:     `let value = map.get(&key).unwrap();`,
			pattern:  ".unwrap()",
			expected: false,
		},
		{
			name:     "inside string literal",
			line:     `let msg = "never call .unwrap() in prod";`,
			pattern:  ".unwrap()",
			expected: true,
		},
		{
			name:     "inside line comment",
			line:     `// TODO: replace .unwrap() with ?`,
			pattern:  ".unwrap()",
			expected: true,
		},
		{
			name:     "trailing comment after code",
			line:     `let v = parse(input)?; // was .unwrap()`,
			pattern:  ".unwrap()",
			expected: true,
		},
		{
			name:     "string occurrence plus real occurrence",
			line:     `log("found .unwrap()"); result.unwrap();`,
			pattern:  ".unwrap()",
			expected: false,
		},
		{
			name:     "string closes before occurrence",
			line:     `println!("{}", value.unwrap());`,
			pattern:  ".unwrap()",
			expected: false,
		},
		{
			name:     "inside raw string",
			line:     `let re = r"call .unwrap() somewhere";`,
			pattern:  ".unwrap()",
			expected: true,
		},
		{
			name:     "inside hashed raw string",
			line:     `let re = r#"pattern .unwrap() here"#;`,
			pattern:  ".unwrap()",
			expected: true,
		},
		{
			name:     "escaped quote keeps string open",
			line:     `let s = "he said \".unwrap()\" once";`,
			pattern:  ".unwrap()",
			expected: true,
		},
		{
			name:     "byte string treated as plain string",
			line:     `let raw = b"payload .unwrap() bytes";`,
			pattern:  ".unwrap()",
			expected: true,
		},
		{
			name:     "underscore binding in code",
			line:     `let _ = send(msg);`,
			pattern:  "let _ =",
			expected: false,
		},
		{
			name:     "underscore binding quoted",
			line:     `assert_eq!(text, "let _ = send(msg);");`,
			pattern:  "let _ =",
			expected: true,
		},
		{
			name:     "expect call in code",
			line:     `let cfg = load().expect("config missing");`,
			pattern:  ".expect(",
			expected: false,
		},
		{
			name:     "all occurrences protected",
			line:     `let hint = ".unwrap()"; // .unwrap() is banned`,
			pattern:  ".unwrap()",
			expected: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := rustsrc.IsInStringOrComment(testCase.line, testCase.pattern)
			if got != testCase.expected {
				t.Errorf("IsInStringOrComment(%q, %q): expected %v, got %v",
					testCase.line, testCase.pattern, testCase.expected, got)
			}
		})
	}
}

func TestIsInStringOrComment_CommentShortCircuit(t *testing.T) {
	t.Parallel()

	// The comment scan keys off the first "//" on the line, so everything
	// after it counts as commented out even when code precedes it.
	line := `do_work(); // then result.unwrap()`
	if !rustsrc.IsInStringOrComment(line, ".unwrap()") {
		t.Error("occurrence after // should be treated as commented out")
	}
}
