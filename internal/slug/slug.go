// Package slug derives URL-safe identifiers from bilingual display text.
package slug

import (
	"regexp"
	"strings"
)

// The Myanmar block (U+1000..U+109F) is kept verbatim so Burmese titles stay
// readable in URLs.
var (
	invalidChars = regexp.MustCompile(`[^\w\s\x{1000}-\x{109F}-]`)
	separators   = regexp.MustCompile(`[\s_]+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Make converts display text into a lowercase slug containing only word
// characters, Myanmar script and single hyphens. It is deterministic and
// idempotent: Make(Make(x)) == Make(x).
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ShouldUpdate reports whether an editor-visible slug should follow a title
// change. The slug tracks the title only while it is empty or still equals the
// slug derived from the previous title; once hand-edited it is left alone.
func ShouldUpdate(current, previousTitle string) bool {
	return current == "" || current == Make(previousTitle)
}
