package main

import (
	"regexp"
	"strings"
)

// tagPattern matches well-formed tags only. Encoded entities, malformed
// markup, and content split across tags pass through untouched, so this
// is a display cleanup, not a security boundary.
var tagPattern = regexp.MustCompile(`<.*?>`)

// stripTags removes HTML tags from a comment body and trims surrounding
// whitespace. Applied at render time; the stored body is never modified.
func stripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}
