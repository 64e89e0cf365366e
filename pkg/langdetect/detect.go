// Package langdetect decides whether a file should be treated as Markdown
// input. Batch discovery normally goes by extension; with content detection
// enabled, files without a recognized extension are classified by go-enry.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// markdownLang is enry's canonical name for Markdown.
const markdownLang = "Markdown"

// classifierCandidates limits the content classifier to languages that
// plausibly show up next to documentation in a repository.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Markdown", "Text", "HTML", "YAML", "JSON",
	"Go", "Python", "Shell", "JavaScript",
}

// IsMarkdown reports whether the file at path with the given content is
// Markdown. The filename is consulted first; when it is inconclusive the
// content classifier decides. Empty content never classifies as Markdown.
func IsMarkdown(path string, content []byte) bool {
	if lang, safe := enry.GetLanguageByExtension(path); safe {
		return lang == markdownLang
	}
	if lang, safe := enry.GetLanguageByFilename(path); safe {
		return lang == markdownLang
	}

	if len(content) == 0 {
		return false
	}

	lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates)
	return safe && lang == markdownLang
}

// HasMarkdownExtension reports whether path carries one of the given
// extensions (lowercase, with leading dot).
func HasMarkdownExtension(path string, extensions []string) bool {
	lower := strings.ToLower(path)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
