package convert_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// convertLine wraps a single paragraph line and extracts its processed text,
// isolating the inline pipeline from the surrounding block markup.
func convertLine(t *testing.T, line string) string {
	t.Helper()

	out := convertString(t, line)
	out = strings.TrimPrefix(out, "<p>\n")
	out = strings.TrimSuffix(out, "\n</p>\n")
	return strings.TrimPrefix(out, "    ")
}

func TestInline_HashDirective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "known digest",
			input:    "[[abc]]",
			expected: "900150983cd24fb0d6963f7d28e17f72",
		},
		{
			name:     "digest embedded in text",
			input:    "before [[x]] after",
			expected: "before 9dd4e461268c8034f5c8564e155c67a6 after",
		},
		{
			name:     "two spans on one line",
			input:    "[[x]] [[x]]",
			expected: "9dd4e461268c8034f5c8564e155c67a6 9dd4e461268c8034f5c8564e155c67a6",
		},
		{
			name:     "shortest match wins",
			input:    "[[a]]b]]",
			expected: "0cc175b9c0f1b6a831c399e269772661b]]",
		},
		{
			name:     "unmatched opener is untouched",
			input:    "[[abc",
			expected: "[[abc",
		},
		{
			name:     "unmatched closer is untouched",
			input:    "abc]]",
			expected: "abc]]",
		},
		{
			name:     "empty span is untouched",
			input:    "[[]]",
			expected: "[[]]",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, convertLine(t, testCase.input))
		})
	}
}

func TestInline_StripDirective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "mixed case removal",
			input:    "((Cocoa))",
			expected: "ooa",
		},
		{
			name:     "no c characters",
			input:    "((hello))",
			expected: "hello",
		},
		{
			name:     "only c characters",
			input:    "((cCc))",
			expected: "",
		},
		{
			name:     "embedded in text",
			input:    "Hello ((Chicago)) there",
			expected: "Hello hiago there",
		},
		{
			name:     "unmatched opener is untouched",
			input:    "((Cocoa",
			expected: "((Cocoa",
		},
		{
			name:     "empty span is untouched",
			input:    "(())",
			expected: "(())",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, convertLine(t, testCase.input))
		})
	}
}

func TestInline_Emphasis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold",
			input:    "**word**",
			expected: "<b>word</b>",
		},
		{
			name:     "emphasis",
			input:    "__word__",
			expected: "<em>word</em>",
		},
		{
			name:     "both on one line",
			input:    "**a** and __b__",
			expected: "<b>a</b> and <em>b</em>",
		},
		{
			name:     "two bold spans take the shortest match",
			input:    "**a** plain **b**",
			expected: "<b>a</b> plain <b>b</b>",
		},
		{
			name:     "lone marker pair is untouched",
			input:    "**bold",
			expected: "**bold",
		},
		{
			name:     "single underscores are untouched",
			input:    "_word_",
			expected: "_word_",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, convertLine(t, testCase.input))
		})
	}
}

// Directives run before emphasis, so markers inside a directive span are
// digested or stripped as literal text rather than rewritten to tags.
func TestInline_DirectivesRunBeforeEmphasis(t *testing.T) {
	t.Parallel()

	// MD5("**x**") — emphasis inside a hash span must hash the raw markers.
	got := convertLine(t, "[[**x**]]")
	assert.NotContains(t, got, "<b>")
	assert.Len(t, got, 32)

	// Markers inside a strip span survive c-removal and are then eligible
	// for emphasis on the directive output.
	assert.Equal(t, "<b>ool</b>", convertLine(t, "((**cool**))"))
}

func TestInline_PlainTextPassesThrough(t *testing.T) {
	t.Parallel()

	lines := []string{
		"no markup at all",
		"single [ brackets ] and ( parens )",
		"a * star and a _ underscore",
	}

	for _, line := range lines {
		assert.Equal(t, line, convertLine(t, line))
	}
}

func TestInline_AppliesToHeadingsAndListItems(t *testing.T) {
	t.Parallel()

	got := convertString(t, "# **Big** [[abc]]\n- ((Cocoa)) __soft__\n")
	expected := "<h1><b>Big</b> 900150983cd24fb0d6963f7d28e17f72</h1>\n" +
		"<ul>\n" +
		"    <li>ooa <em>soft</em></li>\n" +
		"</ul>\n"

	assert.Equal(t, expected, got)
}
