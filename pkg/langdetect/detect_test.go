package langdetect_test

import (
	"testing"

	"github.com/yaklabco/md2html/pkg/langdetect"
)

func TestIsMarkdown_ByPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		expected bool
	}{
		{
			name:     "md extension",
			path:     "README.md",
			expected: true,
		},
		{
			name:     "markdown extension",
			path:     "notes.markdown",
			expected: true,
		},
		{
			name:     "go extension",
			path:     "main.go",
			content:  "package main",
			expected: false,
		},
		{
			name:     "yaml extension",
			path:     "config.yml",
			content:  "key: value",
			expected: false,
		},
		{
			name:     "no extension with go content",
			path:     "notes",
			content:  "package main\n\nfunc main() {}\n",
			expected: false,
		},
		{
			name:     "no extension and empty content",
			path:     "notes",
			content:  "",
			expected: false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.IsMarkdown(testCase.path, []byte(testCase.content))
			if got != testCase.expected {
				t.Errorf("IsMarkdown(%q) = %v, expected %v", testCase.path, got, testCase.expected)
			}
		})
	}
}

func TestHasMarkdownExtension(t *testing.T) {
	t.Parallel()

	extensions := []string{".md", ".markdown"}

	tests := []struct {
		path     string
		expected bool
	}{
		{"README.md", true},
		{"README.MD", true},
		{"docs/guide.markdown", true},
		{"main.go", false},
		{"mdfile", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			t.Parallel()

			got := langdetect.HasMarkdownExtension(testCase.path, extensions)
			if got != testCase.expected {
				t.Errorf("HasMarkdownExtension(%q) = %v, expected %v", testCase.path, got, testCase.expected)
			}
		})
	}
}
