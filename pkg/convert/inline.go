package convert

import (
	"crypto/md5" //nolint:gosec // The [[...]] directive is specified as MD5; not used for security.
	"encoding/hex"
	"regexp"
	"strings"
)

// Inline span patterns. All four are leftmost, shortest-match, and
// non-nesting; unmatched delimiters are left in place, and an empty span
// ("[[]]") is not a match.
var (
	hashSpan  = regexp.MustCompile(`\[\[(.+?)\]\]`)
	stripSpan = regexp.MustCompile(`\(\((.+?)\)\)`)
	boldSpan  = regexp.MustCompile(`\*\*(.+?)\*\*`)
	emSpan    = regexp.MustCompile(`__(.+?)__`)
)

// renderInline applies the full inline pipeline to a block element's text
// payload: the hash and strip directives first, emphasis second. Running
// emphasis first would rewrite ** or __ markers inside a directive span
// before the directive sees them, so the order is fixed.
func renderInline(text string) string {
	return renderEmphasis(expandDirectives(text))
}

// expandDirectives rewrites the two custom spans: [[x]] becomes the lowercase
// hex MD5 digest of x's UTF-8 bytes, and ((x)) becomes x with every c and C
// deleted.
func expandDirectives(text string) string {
	text = hashSpan.ReplaceAllStringFunc(text, func(span string) string {
		sum := md5.Sum([]byte(span[2 : len(span)-2])) //nolint:gosec // Specified digest, not security-sensitive.
		return hex.EncodeToString(sum[:])
	})
	return stripSpan.ReplaceAllStringFunc(text, func(span string) string {
		return strings.Map(dropC, span[2:len(span)-2])
	})
}

func dropC(r rune) rune {
	if r == 'c' || r == 'C' {
		return -1
	}
	return r
}

// renderEmphasis rewrites **x** to <b>x</b> and __x__ to <em>x</em>.
func renderEmphasis(text string) string {
	text = boldSpan.ReplaceAllString(text, "<b>$1</b>")
	return emSpan.ReplaceAllString(text, "<em>$1</em>")
}
